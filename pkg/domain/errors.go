package domain

import (
	"errors"
	"fmt"
)

// ErrNoConstraints is returned when the description carries neither position
// nor orientation sub-constraints.
var ErrNoConstraints = errors.New("no pose constraints in description")

// ErrMixedConstraints is returned when position and orientation
// sub-constraints are combined, which is not supported.
var ErrMixedConstraints = errors.New("combined position and orientation constraints are not supported")

// ErrMissingField is returned when a sub-constraint lacks a required field,
// such as the target pose or the box extents.
var ErrMissingField = errors.New("missing required constraint field")

// ErrDimensionMismatch is returned when a joint vector or Jacobian does not
// match the degrees of freedom the evaluator was built for.
var ErrDimensionMismatch = errors.New("joint vector dimension mismatch")

// SpecError reports a constraint description that is well-formed but cannot
// produce a usable constraint, such as an equality extent narrower than the
// projection tolerance.
type SpecError struct {
	Field  string // Offending field
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation, if useful
}

func (e *SpecError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("constraint field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("constraint field %q: %s (got %v)", e.Field, e.Reason, e.Value)
}
