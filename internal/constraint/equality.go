package constraint

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/motionkit/manifold/pkg/domain"
	"github.com/motionkit/manifold/pkg/ports"
)

// Equality pins individual position axes exactly to the target. An axis whose
// box extent is under domain.EqualityThreshold is constrained; the extent of
// every other axis is discarded entirely and the axis is left free.
//
// Constrained axes emit the raw signed Cartesian error with no penalty
// shaping; free axes emit zero in both the residual and the Jacobian.
type Equality struct {
	target
	constrained [3]bool
}

func newEquality(pc domain.PositionConstraint, dof int, tolerance float64) (*Equality, error) {
	constrained, err := equalityFlags(pc.Extents, tolerance)
	if err != nil {
		return nil, err
	}
	pose, err := targetPose(pc)
	if err != nil {
		return nil, err
	}
	return &Equality{
		target: target{
			link:        pc.LinkName,
			position:    pose.Position,
			orientation: pose.Orientation,
			dof:         dof,
		},
		constrained: constrained,
	}, nil
}

// Constrained reports which axes are equality dimensions, for diagnostics.
func (c *Equality) Constrained() [3]bool { return c.constrained }

func (c *Equality) CoDimension() int { return 3 }

func (c *Equality) Function(kin ports.Kinematics, q []float64, out *mat.VecDense) error {
	if err := c.checkQ(q); err != nil {
		return err
	}
	pose, err := c.pose(kin, q)
	if err != nil {
		return err
	}
	e := domain.RotateInv(c.orientation, r3.Sub(pose.Position, c.position))
	for dim, v := range []float64{e.X, e.Y, e.Z} {
		if c.constrained[dim] {
			out.SetVec(dim, v)
		} else {
			out.SetVec(dim, 0)
		}
	}
	return nil
}

func (c *Equality) Jacobian(kin ports.Kinematics, q []float64, out *mat.Dense) error {
	if err := c.checkQ(q); err != nil {
		return err
	}
	jac, err := c.jacobian(kin, q)
	if err != nil {
		return err
	}
	ej := linearRowsInFrame(c.orientation, jac)
	out.Zero()
	for dim := 0; dim < 3; dim++ {
		if !c.constrained[dim] {
			continue
		}
		for j := 0; j < c.dof; j++ {
			out.Set(dim, j, ej.At(dim, j))
		}
	}
	return nil
}

// equalityFlags classifies each axis. An extent under the equality threshold
// flags the axis as constrained; an extent that is also under the projection
// tolerance is rejected outright, because the downstream state-validity check
// would then reject every sampled state.
func equalityFlags(extents []float64, tolerance float64) ([3]bool, error) {
	var constrained [3]bool
	if len(extents) < 3 {
		return constrained, fmt.Errorf("%w: box region needs 3 extents, got %d",
			domain.ErrMissingField, len(extents))
	}
	for i, ext := range extents[:3] {
		if ext >= domain.EqualityThreshold || ext == domain.Unconstrained {
			continue
		}
		if ext < tolerance {
			return constrained, &domain.SpecError{
				Field: "extents",
				Reason: "equality extent is smaller than the projection tolerance; " +
					"every sampled state would be invalid",
				Value: ext,
			}
		}
		constrained[i] = true
	}
	return constrained, nil
}
