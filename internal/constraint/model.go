// Package constraint implements the pose-constraint variants behind the
// manifold facade: box-region, equality and on-a-line position constraints,
// and orientation-deviation constraints, each exposed as an equality residual
// F(q) = 0 with its Jacobian dF/dq.
package constraint

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/motionkit/manifold/pkg/domain"
	"github.com/motionkit/manifold/pkg/ports"
)

// Model is the closed set of constraint variants. Exactly one of Box,
// Equality, LinearSystem or Orientation backs an evaluator; the factory in
// this package decides which.
type Model interface {
	// Function writes the residual F(q) into out, which must have length
	// CoDimension.
	Function(kin ports.Kinematics, q []float64, out *mat.VecDense) error

	// Jacobian writes dF/dq into out, which must be CoDimension × DOF.
	Jacobian(kin ports.Kinematics, q []float64, out *mat.Dense) error

	// CoDimension is the number of scalar equations in the residual.
	CoDimension() int

	// LinkName reports the constrained link, for diagnostics.
	LinkName() string

	// TargetPosition reports the nominal position, for diagnostics.
	TargetPosition() r3.Vec

	// TargetOrientation reports the nominal orientation, for diagnostics.
	TargetOrientation() quat.Number
}

// target carries the fields every variant shares: the constrained link, the
// nominal pose and the degrees of freedom the model was built for. Immutable
// after construction.
type target struct {
	link        string
	position    r3.Vec
	orientation quat.Number
	dof         int
}

func (t *target) LinkName() string              { return t.link }
func (t *target) TargetPosition() r3.Vec        { return t.position }
func (t *target) TargetOrientation() quat.Number { return t.orientation }

// checkQ rejects joint vectors that do not match the model's dimensionality.
func (t *target) checkQ(q []float64) error {
	if len(q) != t.dof {
		return fmt.Errorf("%w: got %d joint values, model built for %d",
			domain.ErrDimensionMismatch, len(q), t.dof)
	}
	return nil
}

// jacobian fetches the geometric Jacobian and validates its shape.
func (t *target) jacobian(kin ports.Kinematics, q []float64) (*mat.Dense, error) {
	jac, err := kin.Jacobian(q)
	if err != nil {
		return nil, fmt.Errorf("geometric jacobian for link %s: %w", t.link, err)
	}
	if r, c := jac.Dims(); r != 6 || c != t.dof {
		return nil, fmt.Errorf("%w: geometric jacobian is %dx%d, want 6x%d",
			domain.ErrDimensionMismatch, r, c, t.dof)
	}
	return jac, nil
}

// pose fetches the link pose.
func (t *target) pose(kin ports.Kinematics, q []float64) (domain.Pose, error) {
	p, err := kin.Pose(q)
	if err != nil {
		return domain.Pose{}, fmt.Errorf("forward kinematics for link %s: %w", t.link, err)
	}
	return p, nil
}

// linearRowsInFrame rotates the translational rows of the geometric Jacobian
// into the frame of rot, producing Rₜᵀ·J_lin as a 3×DOF matrix.
func linearRowsInFrame(rot quat.Number, jac *mat.Dense) *mat.Dense {
	return rotateRowsInv(rot, jac, 0)
}

// angularRows returns the rotational rows of the geometric Jacobian.
func angularRows(jac *mat.Dense) mat.Matrix {
	_, n := jac.Caps()
	return jac.Slice(3, 6, 0, n)
}

// rotateRowsInv applies the inverse rotation of rot column-wise to the three
// rows of jac starting at row offset.
func rotateRowsInv(rot quat.Number, jac *mat.Dense, offset int) *mat.Dense {
	_, n := jac.Caps()
	out := mat.NewDense(3, n, nil)
	for j := 0; j < n; j++ {
		v := domain.RotateInv(rot, r3.Vec{
			X: jac.At(offset, j),
			Y: jac.At(offset+1, j),
			Z: jac.At(offset+2, j),
		})
		out.Set(0, j, v.X)
		out.Set(1, j, v.Y)
		out.Set(2, j, v.Z)
	}
	return out
}

// errorModel is the capability shared by the variants that shape a raw pose
// error through per-dimension bounds (box and orientation). Equality and
// linear-system variants build their residuals directly and do not implement
// it.
type errorModel interface {
	// calcError returns the raw error vector for the current pose.
	calcError(kin ports.Kinematics, q []float64) (r3.Vec, error)

	// calcErrorJacobian returns the 3×DOF Jacobian of the raw error.
	calcErrorJacobian(kin ports.Kinematics, q []float64) (*mat.Dense, error)
}

// penaltyFunction composes an error model with bounds: each raw error
// dimension is mapped through its penalty, turning the interval constraints
// into equality residuals.
func penaltyFunction(em errorModel, bounds [3]domain.Bounds, kin ports.Kinematics, q []float64, out *mat.VecDense) error {
	e, err := em.calcError(kin, q)
	if err != nil {
		return err
	}
	out.SetVec(0, bounds[0].Penalty(e.X))
	out.SetVec(1, bounds[1].Penalty(e.Y))
	out.SetVec(2, bounds[2].Penalty(e.Z))
	return nil
}

// penaltyJacobian scales each error-Jacobian row by the penalty sub-gradient
// of its dimension. The chain rule is applied to the outer penalty only.
func penaltyJacobian(em errorModel, bounds [3]domain.Bounds, kin ports.Kinematics, q []float64, out *mat.Dense) error {
	e, err := em.calcError(kin, q)
	if err != nil {
		return err
	}
	ej, err := em.calcErrorJacobian(kin, q)
	if err != nil {
		return err
	}
	_, n := ej.Caps()
	for i, d := range []float64{
		bounds[0].Derivative(e.X),
		bounds[1].Derivative(e.Y),
		bounds[2].Derivative(e.Z),
	} {
		for j := 0; j < n; j++ {
			out.Set(i, j, d*ej.At(i, j))
		}
	}
	return nil
}
