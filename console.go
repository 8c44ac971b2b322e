package themecheck

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// ANSI escape codes for terminal output.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}

// ConsoleSink is a ReportSink that renders a live status line with a
// spinner while a check runs, then leaves the final status in place and
// prints report lines below it.
type ConsoleSink struct {
	W io.Writer

	mu     sync.Mutex
	status string
	live   bool
	done   chan struct{}
	wg     sync.WaitGroup
}

// Begin opens a live status region and starts the spinner.
func (s *ConsoleSink) Begin(description string) {
	s.mu.Lock()
	if s.live {
		s.mu.Unlock()
		return
	}
	s.live = true
	s.status = fmt.Sprintf("%s%s%s", ansiBlue, description, ansiReset)
	s.done = make(chan struct{})
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for i := 0; ; i++ {
			s.mu.Lock()
			frame := spinnerFrames[i%len(spinnerFrames)]
			fmt.Fprintf(s.W, "\r\033[K%s%s%s %s", ansiBlue, frame, ansiReset, s.status)
			s.mu.Unlock()

			select {
			case <-s.done:
				return
			case <-ticker.C:
			}
		}
	}()
}

// Update replaces the live status text.
func (s *ConsoleSink) Update(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// End stops the spinner and finalizes the status line.
func (s *ConsoleSink) End() {
	s.mu.Lock()
	if !s.live {
		s.mu.Unlock()
		return
	}
	s.live = false
	close(s.done)
	s.mu.Unlock()
	s.wg.Wait()

	fmt.Fprintf(s.W, "\r\033[K%s\n", s.status)
	s.status = ""
}

// Print writes one report line.
func (s *ConsoleSink) Print(line string) {
	fmt.Fprintln(s.W, line)
}
