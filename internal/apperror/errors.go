// Package apperror defines the error taxonomy described in spec.md §7: a
// small set of machine-readable Kinds shared by every core package, plus a
// Warning type for non-fatal semantic notes attached to result objects.
//
// Core packages never hand callers a bare string error for anything the
// caller might need to branch on; they return *apperror.Error (or wrap one
// with fmt.Errorf("...: %w", err)) so errors.As/errors.Is work uniformly
// across package boundaries, the same way lvlath's core/dijkstra packages
// expose sentinel errors instead of formatted strings.
package apperror

import "fmt"

// Kind is the machine-readable error classification from spec.md §6/§7.
type Kind string

const (
	KindInvalidTopology    Kind = "invalid_topology"
	KindUnknownRouter      Kind = "unknown_router"
	KindUnknownEdge        Kind = "unknown_edge"
	KindInvalidCost        Kind = "invalid_cost"
	KindCancelled          Kind = "cancelled"
	KindConstraintViolated Kind = "constraint_violation"
	KindCapacityMissing    Kind = "capacity_missing"
)

// Error is the single error type returned at package boundaries for any
// condition a caller might want to branch on by Kind.
type Error struct {
	Kind    Kind
	Code    string // short machine token, e.g. "duplicate_edge"
	Message string // human-readable detail
	Cause   error  // optional wrapped cause
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is allows errors.Is(err, apperror.KindX) style comparisons to work by
// reducing Error values with the same Kind to be considered equal when
// compared against a bare Kind wrapped in an Error with no Code/Message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs an *Error with the given kind, code, and message.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Wrap constructs an *Error that carries an underlying cause.
func Wrap(kind Kind, code, message string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Cause: cause}
}

// InvalidTopology reports a builder-time structural invariant violation.
func InvalidTopology(code, message string) *Error {
	return New(KindInvalidTopology, code, message)
}

// UnknownRouter reports a lookup against a router handle absent from the snapshot.
func UnknownRouter(id string) *Error {
	return New(KindUnknownRouter, "UNKNOWN_ROUTER", fmt.Sprintf("router %q not found in snapshot", id))
}

// UnknownEdge reports a lookup against an edge or logical_id absent from the snapshot.
func UnknownEdge(code, message string) *Error {
	return New(KindUnknownEdge, code, message)
}

// InvalidCost reports an out-of-range OSPF cost (valid range 1..65535).
func InvalidCost(cost int) *Error {
	return New(KindInvalidCost, "cost_out_of_range", fmt.Sprintf("cost %d is outside [1,65535]", cost))
}

// Cancelled reports a caller-tripped cancellation token (spec.md §5).
func Cancelled() *Error {
	return New(KindCancelled, "CANCELLED", "operation cancelled by caller")
}

// ConstraintViolation reports an optimizer constraint that could not be satisfied.
func ConstraintViolation(message string) *Error {
	return New(KindConstraintViolated, "CONSTRAINT_VIOLATION", message)
}

// Warning is a non-fatal semantic note attached to a result object (spec.md
// §7: capacity_missing, asymmetric_without_metadata). Warnings never abort
// a query; they ride along with the result for the caller to surface.
type Warning struct {
	Kind    Kind
	Message string
}

// CapacityMissingWarning documents that utilization math fell back to the
// default capacity constant because an edge had no capacity metadata.
func CapacityMissingWarning(logicalID string) Warning {
	return Warning{
		Kind:    KindCapacityMissing,
		Message: fmt.Sprintf("logical link %q has no capacity metadata; assumed default capacity", logicalID),
	}
}

// AsymmetricWarning documents a logical link present in only one direction
// where capacity/traffic metadata suggests the omission may be unintentional.
func AsymmetricWarning(logicalID string) Warning {
	return Warning{
		Kind:    "asymmetric_without_metadata",
		Message: fmt.Sprintf("logical link %q carries traffic metadata in only one direction", logicalID),
	}
}
