// Package errs defines the structured error taxonomy returned across the
// solver boundary. Unlike the teacher's gosl/chk.Panic idiom — used there
// for programmer-error invariants that should never happen at runtime —
// errors here are ordinary values: the solver never panics out to a caller.
package errs

import "fmt"

// Kind classifies a structured error without relying on its message text.
type Kind string

const (
	// InvalidModel: dangling reference, zero-length member, missing
	// material/section with no default, negative section property.
	// Always surfaced before any linear algebra runs.
	InvalidModel Kind = "InvalidModel"

	// Unstable: singular or indefinite K_ff. See Sub for the distinguishing
	// sub-kind.
	Unstable Kind = "Unstable"

	// Unconverged: CG/BiCGSTAB hit its iteration cap above tolerance. The
	// partial result is still returned to the caller.
	Unconverged Kind = "Unconverged"

	// Cancelled: cooperative cancellation via context or progress callback.
	Cancelled Kind = "Cancelled"

	// ResourceBudgetExceeded: DOF count exceeds a caller-configured ceiling.
	ResourceBudgetExceeded Kind = "ResourceBudgetExceeded"

	// DesignCheckNotImplemented: intentional gap (e.g. non-steel member in
	// the steel check path). Returned as a result value, not an error.
	DesignCheckNotImplemented Kind = "DesignCheckNotImplemented"
)

// Sub distinguishes Unstable failures. The zero value means "not applicable".
type Sub string

const (
	NoSub            Sub = ""
	FullyConstrained Sub = "FullyConstrained"
	Mechanism        Sub = "Mechanism"
	IllConditioned   Sub = "IllConditioned"
)

// E is the structured error value. It formats like a normal error but
// carries a Kind (and, for Unstable, a Sub) that callers can switch on
// instead of parsing the message.
type E struct {
	Kind Kind
	Sub  Sub
	Msg  string
}

func (e *E) Error() string {
	if e.Sub != NoSub {
		return fmt.Sprintf("%s/%s: %s", e.Kind, e.Sub, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// New builds an E with no sub-kind.
func New(kind Kind, format string, args ...interface{}) *E {
	return &E{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// NewUnstable builds an Unstable error with the given distinguishing sub-kind.
func NewUnstable(sub Sub, format string, args ...interface{}) *E {
	return &E{Kind: Unstable, Sub: sub, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is an *E of the given kind, mirroring errors.Is
// ergonomics without requiring a sentinel value per kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*E)
	return ok && e.Kind == kind
}

// IsUnstable reports whether err is an Unstable error with the given
// sub-kind (NoSub matches any sub-kind).
func IsUnstable(err error, sub Sub) bool {
	e, ok := err.(*E)
	if !ok || e.Kind != Unstable {
		return false
	}
	return sub == NoSub || e.Sub == sub
}
