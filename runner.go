package themecheck

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Runner executes a single check, classifies its outcome and reports it
// through a ReportSink.
type Runner struct {
	// Sink receives status updates and report lines.
	Sink ReportSink

	// BaseDir is the directory subjects are rendered relative to.
	BaseDir string

	// Color enables ANSI styling of status lines and paths.
	Color bool

	// Log receives debug-level tracing. Nil disables tracing.
	Log *logrus.Logger
}

// Run executes check to completion, consuming its results, and reports the
// derived outcome. It returns true only when the check passed or all of its
// issues were fixed.
func (r Runner) Run(ctx context.Context, check Check) bool {
	description := check.Describe()

	r.Sink.Begin(description)

	if r.Log != nil {
		r.Log.WithField("check", description).Debug("check started")
	}
	start := time.Now()

	var (
		successes []Result
		fixes     []Result
		failures  []Result
	)

	fault := r.consume(ctx, check, func(res Result) {
		switch res.Kind {
		case KindSuccess:
			successes = append(successes, res)
		case KindFix:
			fixes = append(fixes, res)
		case KindFailure:
			failures = append(failures, res)
		}
	})

	total := len(successes) + len(fixes) + len(failures)

	var outcome Outcome
	switch {
	case fault != nil || total == 0:
		outcome = OutcomeError
	case len(fixes) == 0 && len(failures) == 0:
		outcome = OutcomePass
	case len(failures) == 0:
		outcome = OutcomeFixed
	default:
		outcome = OutcomeFailed
	}

	r.Sink.Update(r.statusLine(description, outcome))
	r.Sink.End()

	if r.Log != nil {
		r.Log.WithFields(logrus.Fields{
			"check":    description,
			"outcome":  outcome.String(),
			"results":  total,
			"duration": time.Since(start),
		}).Debug("check finished")
	}

	switch {
	case fault != nil:
		// Results collected before the fault are discarded, not reported.
		for _, line := range strings.Split(strings.TrimRight(fault.Error(), "\n"), "\n") {
			r.inform(line)
		}
		return false
	case total == 0:
		r.inform("No files were checked, this must be an error.")
		return false
	case outcome == OutcomePass:
		return true
	case outcome == OutcomeFixed:
		for _, fix := range fixes {
			r.inform(fmt.Sprintf("%s: %s", r.renderPath(fix.Subject), fix.Reason))
		}
		return true
	default:
		for _, fix := range fixes {
			r.inform(fmt.Sprintf("%s (fixed): %s", r.renderPath(fix.Subject), fix.Reason))
		}
		for _, fail := range failures {
			r.inform(fmt.Sprintf("%s: %s", r.renderPath(fail.Subject), fail.Reason))
		}
		return false
	}
}

// consume drains the check's result stream, converting panics into faults
// that carry the recovered stack.
func (r Runner) consume(ctx context.Context, check Check, report func(Result)) (fault error) {
	defer func() {
		if rec := recover(); rec != nil {
			fault = fmt.Errorf("check panicked: %v\n%s", rec, debug.Stack())
		}
	}()
	return check.Run(ctx, report)
}

func (r Runner) statusLine(description string, outcome Outcome) string {
	if !r.Color {
		return fmt.Sprintf("%s %s %s.", outcome.Glyph(), description, outcome)
	}
	tone := ansiRed
	switch outcome {
	case OutcomePass:
		tone = ansiGreen
	case OutcomeFixed:
		tone = ansiYellow
	}
	return fmt.Sprintf("%s%s%s%s %s%s%s %s%s%s.%s",
		tone, ansiBold, outcome.Glyph(), ansiReset,
		tone, description, ansiReset,
		tone, ansiBold, outcome, ansiReset)
}

// inform prints one indented report line below the status line.
func (r Runner) inform(message string) {
	r.Sink.Print("    ➔ " + message)
}

// renderPath renders a subject path relative to the base directory, with
// the parent portion de-emphasized and the file name emphasized.
func (r Runner) renderPath(subject string) string {
	rel := subject
	if r.BaseDir != "" {
		if p, err := filepath.Rel(r.BaseDir, subject); err == nil && !strings.HasPrefix(p, "..") {
			rel = p
		}
	}
	dir, name := filepath.Split(filepath.ToSlash(rel))
	if !r.Color {
		return dir + name
	}
	return fmt.Sprintf("%s%s%s%s%s%s", ansiDim, dir, ansiReset, ansiBold, name, ansiReset)
}
