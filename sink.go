package themecheck

import (
	"fmt"
	"io"
)

// ReportSink receives live status updates and itemized report lines from
// the runner. A live terminal display and a plain sequential logger are
// both conformant implementations.
type ReportSink interface {
	// Begin opens a live status region for a check with the given
	// description.
	Begin(description string)

	// Update replaces the text of the live status region.
	Update(status string)

	// End closes the live status region, leaving its final text in place.
	End()

	// Print writes one report line below the closed status region.
	Print(line string)
}

// PlainSink is a headless ReportSink that writes sequential lines to an
// io.Writer. Intermediate status updates overwrite each other; only the
// final status of each region is emitted, when the region ends.
type PlainSink struct {
	W io.Writer

	status string
}

// Begin opens a status region.
func (s *PlainSink) Begin(description string) {
	s.status = description
}

// Update replaces the pending status text.
func (s *PlainSink) Update(status string) {
	s.status = status
}

// End emits the final status text as a line.
func (s *PlainSink) End() {
	fmt.Fprintln(s.W, s.status)
	s.status = ""
}

// Print writes one report line.
func (s *PlainSink) Print(line string) {
	fmt.Fprintln(s.W, line)
}
