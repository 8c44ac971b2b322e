package themecheck

import (
	"context"
)

// Check is a single validation routine over some set of theme assets.
//
// Run reports zero or more Results through report, one per subject, and
// returns a non-nil error only when the check terminates abruptly. An error
// return is a fault, not a finding: expected problems with individual
// subjects are reported as Failure results instead, and a fault discards
// any results already reported.
//
// Checks must be idempotent on re-run except where the side effect is
// explicitly a fix; a subject fixed on one run must report Success on the
// next.
type Check interface {
	// Describe returns a one-line imperative description of the check.
	Describe() string

	// Run executes the check, reporting each Result as it is produced.
	Run(ctx context.Context, report func(Result)) error
}

// CheckFunc adapts a function to the Check interface.
type CheckFunc struct {
	Description string
	Func        func(ctx context.Context, report func(Result)) error
}

// NewCheck returns a Check with the given description and run function.
func NewCheck(description string, fn func(ctx context.Context, report func(Result)) error) Check {
	return CheckFunc{Description: description, Func: fn}
}

// Describe returns the check's description.
func (c CheckFunc) Describe() string {
	return c.Description
}

// Run executes the check function.
func (c CheckFunc) Run(ctx context.Context, report func(Result)) error {
	return c.Func(ctx, report)
}
