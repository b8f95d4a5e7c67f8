package domain

import (
	"fmt"
	"math"
)

// Bounds represents upper and lower bounds on a scalar value.
//
// A sampling-based planner with a constrained state space needs the
// constraints as generic equalities F(q) = 0, so an interval bound is
// converted into an equality residual through a penalty function: zero inside
// the interval, a linear ramp outside it.
//
//	(penalty) ^
//	          | \         /
//	          |  \       /
//	          |   \_____/
//	          |----------------> (value)
//
// The penalty is continuous but not differentiable at the bounds themselves.
type Bounds struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
}

// NewBounds builds an interval, rejecting Lower > Upper. Either side may be
// infinite to leave that side unconstrained.
func NewBounds(lower, upper float64) (Bounds, error) {
	if lower > upper {
		return Bounds{}, &SpecError{
			Field:  "bounds",
			Reason: fmt.Sprintf("lower bound %g exceeds upper bound %g", lower, upper),
		}
	}
	return Bounds{Lower: lower, Upper: upper}, nil
}

// Unbounded returns an interval open on both sides. Its penalty is zero for
// every finite value.
func Unbounded() Bounds {
	return Bounds{Lower: math.Inf(-1), Upper: math.Inf(1)}
}

// Penalty is the distance of value to the region inside the bounds, zero
// inside them.
func (b Bounds) Penalty(value float64) float64 {
	switch {
	case value < b.Lower:
		return b.Lower - value
	case value > b.Upper:
		return value - b.Upper
	default:
		return 0
	}
}

// Derivative is a sub-gradient of Penalty:
//
//	^
//	|
//	| -1-1-1 0 0 0 +1+1+1
//	|------------------------>
//
// It is used as a scalar multiplier when propagating an error Jacobian through
// the penalty. At the bounds themselves it is an approximation, not an exact
// derivative.
func (b Bounds) Derivative(value float64) float64 {
	switch {
	case value < b.Lower:
		return -1
	case value > b.Upper:
		return 1
	default:
		return 0
	}
}

func (b Bounds) String() string {
	return fmt.Sprintf("Bounds: (%g, %g)", b.Lower, b.Upper)
}
