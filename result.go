package themecheck

// Kind identifies the variant of a Result.
type Kind int

const (
	// KindSuccess means the subject passed the check untouched.
	KindSuccess Kind = iota
	// KindFix means an issue was found and corrected in place.
	KindFix
	// KindFailure means an issue was found that could not be corrected.
	KindFailure
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFix:
		return "fix"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result is the outcome of checking a single subject, typically a file.
// A check emits at most one Result per subject. Results are immutable
// after construction.
type Result struct {
	Kind    Kind
	Subject string
	Reason  string
}

// Success returns a Result recording that subject passed.
func Success(subject string) Result {
	return Result{Kind: KindSuccess, Subject: subject}
}

// Fix returns a Result recording that an issue with subject was corrected
// in place.
func Fix(subject, reason string) Result {
	return Result{Kind: KindFix, Subject: subject, Reason: reason}
}

// Fail returns a Result recording an issue with subject that could not be
// corrected.
func Fail(subject, reason string) Result {
	return Result{Kind: KindFailure, Subject: subject, Reason: reason}
}
