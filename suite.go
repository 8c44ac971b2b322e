package themecheck

import (
	"context"
	"fmt"
)

// Suite runs an ordered list of checks and reports an overall verdict.
// Checks are independent; order matters only for deterministic output.
type Suite struct {
	Checks []Check
	Runner Runner
}

// Run executes every check in declared order and prints a final verdict
// through the runner's sink. It returns true only when every check passed
// or was fully auto-fixed.
func (s Suite) Run(ctx context.Context) bool {
	succeeded := 0
	for _, check := range s.Checks {
		if s.Runner.Run(ctx, check) {
			succeeded++
		}
	}

	ok := succeeded == len(s.Checks)
	s.Runner.Sink.Print(s.verdict(ok, succeeded))
	return ok
}

func (s Suite) verdict(ok bool, succeeded int) string {
	counts := fmt.Sprintf("(%d out of %d checks passed)", succeeded, len(s.Checks))
	if !s.Runner.Color {
		if ok {
			return fmt.Sprintf("Final result: SUCCESS %s.", counts)
		}
		return fmt.Sprintf("Final result: FAILURE %s.", counts)
	}
	label := ansiRed + ansiBold + "FAILURE" + ansiReset
	if ok {
		label = ansiGreen + ansiBold + "SUCCESS" + ansiReset
	}
	return fmt.Sprintf("%sFinal result:%s %s %s.", ansiBold, ansiReset, label, counts)
}
