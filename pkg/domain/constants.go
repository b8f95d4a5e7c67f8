package domain

// Constraint-set names that select a position-constraint variant instead of
// the default box region.
const (
	// SetNameEquality selects the equality position variant: box extents under
	// EqualityThreshold become exact equalities, the rest are left free.
	SetNameEquality = "use_equality_constraints"
	// SetNameLinearSystem selects the on-a-line position variant: the link is
	// pinned to the line through the first two poses of the sub-constraint.
	SetNameLinearSystem = "linear_system_constraints"
)

// Unconstrained marks a box extent or orientation tolerance as unconstrained.
// It is mapped to infinite bounds on both sides of the dimension.
const Unconstrained = -1.0

// EqualityThreshold is the extent under which a dimension is interpreted as
// an equality constraint by the equality variant.
//
// The threshold must exceed the projection tolerance used to satisfy the
// constraint during planning, which in turn must be exceeded by the extent in
// the description, or the downstream state-validity check rejects every
// sampled state:
//
//	EqualityThreshold > extent in description > DefaultTolerance
const EqualityThreshold = 1e-3

// DefaultTolerance is the acceptance tolerance on the residual norm used when
// projecting sampled states onto the constraint manifold.
const DefaultTolerance = 1e-4
