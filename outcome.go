package themecheck

// Outcome classifies one check's full run.
type Outcome int

const (
	// OutcomeError means the check faulted or produced no results at all.
	OutcomeError Outcome = iota
	// OutcomePass means every result was a Success.
	OutcomePass
	// OutcomeFixed means at least one issue was corrected and none remain.
	OutcomeFixed
	// OutcomeFailed means at least one issue could not be corrected.
	OutcomeFailed
)

// String returns a string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeError:
		return "ERROR"
	case OutcomePass:
		return "PASS"
	case OutcomeFixed:
		return "FIX"
	case OutcomeFailed:
		return "FAIL"
	default:
		return "unknown"
	}
}

// Glyph returns the status-line marker for the outcome.
func (o Outcome) Glyph() string {
	switch o {
	case OutcomePass:
		return "✔"
	case OutcomeFixed:
		return "𝐢"
	default:
		return "✘"
	}
}

// Succeeded reports whether the outcome counts toward suite success.
func (o Outcome) Succeeded() bool {
	return o == OutcomePass || o == OutcomeFixed
}
