package constraint

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/motionkit/manifold/pkg/domain"
	"github.com/motionkit/manifold/pkg/ports"
)

// Box bounds the position of a link inside a box region centered on the
// target pose. The raw error is the Cartesian offset from the target,
// expressed in the target frame, and each axis is shaped by the penalty of
// its bounds.
type Box struct {
	target
	bounds [3]domain.Bounds
}

func newBox(pc domain.PositionConstraint, dof int) (*Box, error) {
	bounds, err := boxBounds(pc.Extents)
	if err != nil {
		return nil, err
	}
	pose, err := targetPose(pc)
	if err != nil {
		return nil, err
	}
	return &Box{
		target: target{
			link:        pc.LinkName,
			position:    pose.Position,
			orientation: pose.Orientation,
			dof:         dof,
		},
		bounds: bounds,
	}, nil
}

// Bounds exposes the per-axis intervals, for diagnostics.
func (c *Box) Bounds() [3]domain.Bounds { return c.bounds }

func (c *Box) CoDimension() int { return 3 }

func (c *Box) Function(kin ports.Kinematics, q []float64, out *mat.VecDense) error {
	if err := c.checkQ(q); err != nil {
		return err
	}
	return penaltyFunction(c, c.bounds, kin, q, out)
}

func (c *Box) Jacobian(kin ports.Kinematics, q []float64, out *mat.Dense) error {
	if err := c.checkQ(q); err != nil {
		return err
	}
	return penaltyJacobian(c, c.bounds, kin, q, out)
}

// calcError is the link position relative to the target, in the target frame:
// Rₜᵀ·(p(q) − pₜ).
func (c *Box) calcError(kin ports.Kinematics, q []float64) (r3.Vec, error) {
	pose, err := c.pose(kin, q)
	if err != nil {
		return r3.Vec{}, err
	}
	return domain.RotateInv(c.orientation, r3.Sub(pose.Position, c.position)), nil
}

func (c *Box) calcErrorJacobian(kin ports.Kinematics, q []float64) (*mat.Dense, error) {
	jac, err := c.jacobian(kin, q)
	if err != nil {
		return nil, err
	}
	return linearRowsInFrame(c.orientation, jac), nil
}

// boxBounds converts full box extents into symmetric per-axis bounds.
// An extent of domain.Unconstrained leaves the axis unconstrained.
func boxBounds(extents []float64) ([3]domain.Bounds, error) {
	var bounds [3]domain.Bounds
	if len(extents) < 3 {
		return bounds, fmt.Errorf("%w: box region needs 3 extents, got %d",
			domain.ErrMissingField, len(extents))
	}
	for i, ext := range extents[:3] {
		if ext == domain.Unconstrained {
			bounds[i] = domain.Unbounded()
			continue
		}
		b, err := domain.NewBounds(-ext/2, ext/2)
		if err != nil {
			return bounds, err
		}
		bounds[i] = b
	}
	return bounds, nil
}

// targetPose extracts the region's nominal pose, validating the fields the
// variant cannot work without.
func targetPose(pc domain.PositionConstraint) (domain.Pose, error) {
	if len(pc.Poses) < 1 {
		return domain.Pose{}, fmt.Errorf("%w: position constraint on link %q has no target pose",
			domain.ErrMissingField, pc.LinkName)
	}
	pose := pc.Poses[0]
	if err := checkUnitQuat("poses[0].orientation", pose.Orientation); err != nil {
		return domain.Pose{}, err
	}
	return pose, nil
}
