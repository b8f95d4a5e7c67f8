package constraint

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/motionkit/manifold/pkg/domain"
	"github.com/motionkit/manifold/pkg/ports"
)

// LinearSystem pins the position of a link onto the 3-D line through the
// first two poses of the sub-constraint, leaving motion along the line free.
//
// The Cartesian position is reduced to two planar cross-product residuals
// that vanish exactly on the line, treated as hard equalities with no penalty
// shaping. The variant's co-dimension is therefore 2, not 3.
type LinearSystem struct {
	target
	start r3.Vec
	end   r3.Vec
}

func newLinearSystem(pc domain.PositionConstraint, dof int) (*LinearSystem, error) {
	if len(pc.Poses) < 2 {
		return nil, fmt.Errorf("%w: linear-system constraint on link %q needs a start and an end pose",
			domain.ErrMissingField, pc.LinkName)
	}
	pose, err := targetPose(pc)
	if err != nil {
		return nil, err
	}
	return &LinearSystem{
		target: target{
			link:        pc.LinkName,
			position:    pose.Position,
			orientation: pose.Orientation,
			dof:         dof,
		},
		start: pose.Position,
		end:   pc.Poses[1].Position,
	}, nil
}

func (c *LinearSystem) CoDimension() int { return 2 }

// Function evaluates the two line residuals at the link position p, expressed
// in the target frame:
//
//	r0 = (eₓ−sₓ)(p_y−s_y) − (e_y−s_y)(pₓ−sₓ)
//	r1 = (e_y−s_y)(p_z−s_z) − (e_z−s_z)(p_y−s_y)
func (c *LinearSystem) Function(kin ports.Kinematics, q []float64, out *mat.VecDense) error {
	if err := c.checkQ(q); err != nil {
		return err
	}
	pose, err := c.pose(kin, q)
	if err != nil {
		return err
	}
	p := domain.RotateInv(c.orientation, pose.Position)
	d := r3.Sub(c.end, c.start)
	out.SetVec(0, d.X*(p.Y-c.start.Y)-d.Y*(p.X-c.start.X))
	out.SetVec(1, d.Y*(p.Z-c.start.Z)-d.Z*(p.Y-c.start.Y))
	return nil
}

// Jacobian composes the 2×3 map from Cartesian position to the residuals with
// the position Jacobian in the target frame.
func (c *LinearSystem) Jacobian(kin ports.Kinematics, q []float64, out *mat.Dense) error {
	if err := c.checkQ(q); err != nil {
		return err
	}
	jac, err := c.jacobian(kin, q)
	if err != nil {
		return err
	}
	d := r3.Sub(c.end, c.start)
	residualMap := mat.NewDense(2, 3, []float64{
		-d.Y, d.X, 0,
		0, -d.Z, d.Y,
	})
	out.Mul(residualMap, linearRowsInFrame(c.orientation, jac))
	return nil
}
