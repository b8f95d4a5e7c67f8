package constraint

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/motionkit/manifold/pkg/domain"
	"github.com/motionkit/manifold/pkg/ports"
)

// Orientation bounds the deviation of a link's orientation from a target,
// parameterized in exponential coordinates: the relative rotation
// R_err = R_link(q)ᵀ·Rₜ is decomposed into angle θ and unit axis a, and the
// raw error is the rotation vector θ·a. Each component is shaped by the
// penalty of its tolerance interval, centered at zero deviation.
type Orientation struct {
	target
	bounds [3]domain.Bounds
}

func newOrientation(oc domain.OrientationConstraint, dof int) (*Orientation, error) {
	if err := checkUnitQuat("target", oc.Target); err != nil {
		return nil, err
	}
	bounds, err := toleranceBounds(oc.Tolerances)
	if err != nil {
		return nil, err
	}
	return &Orientation{
		target: target{
			link:        oc.LinkName,
			orientation: oc.Target,
			dof:         dof,
		},
		bounds: bounds,
	}, nil
}

// Bounds exposes the per-axis tolerance intervals, for diagnostics.
func (c *Orientation) Bounds() [3]domain.Bounds { return c.bounds }

func (c *Orientation) CoDimension() int { return 3 }

func (c *Orientation) Function(kin ports.Kinematics, q []float64, out *mat.VecDense) error {
	if err := c.checkQ(q); err != nil {
		return err
	}
	return penaltyFunction(c, c.bounds, kin, q, out)
}

func (c *Orientation) Jacobian(kin ports.Kinematics, q []float64, out *mat.Dense) error {
	if err := c.checkQ(q); err != nil {
		return err
	}
	return penaltyJacobian(c, c.bounds, kin, q, out)
}

// calcError is the rotation vector of R_link(q)ᵀ·Rₜ.
func (c *Orientation) calcError(kin ports.Kinematics, q []float64) (r3.Vec, error) {
	pose, err := c.pose(kin, q)
	if err != nil {
		return r3.Vec{}, err
	}
	angle, axis := angleAxis(quat.Mul(quat.Conj(pose.Orientation), c.orientation))
	return r3.Scale(angle, axis), nil
}

// calcErrorJacobian maps the rotational rows of the geometric Jacobian into
// rotation-vector derivatives through the closed-form velocity map, with a
// sign flip to match the error's convention.
func (c *Orientation) calcErrorJacobian(kin ports.Kinematics, q []float64) (*mat.Dense, error) {
	pose, err := c.pose(kin, q)
	if err != nil {
		return nil, err
	}
	jac, err := c.jacobian(kin, q)
	if err != nil {
		return nil, err
	}
	angle, axis := angleAxis(quat.Mul(quat.Conj(pose.Orientation), c.orientation))

	out := mat.NewDense(3, c.dof, nil)
	out.Mul(velocityMap(angle, axis), angularRows(jac))
	out.Scale(-1, out)
	return out, nil
}

// toleranceBounds converts per-axis half-width tolerances, centered on zero
// deviation, into bounds. A tolerance of domain.Unconstrained leaves the axis
// unconstrained.
func toleranceBounds(tolerances [3]float64) ([3]domain.Bounds, error) {
	var bounds [3]domain.Bounds
	for i, tol := range tolerances {
		if tol == domain.Unconstrained {
			bounds[i] = domain.Unbounded()
			continue
		}
		b, err := domain.NewBounds(-tol, tol)
		if err != nil {
			return bounds, err
		}
		bounds[i] = b
	}
	return bounds, nil
}

// checkUnitQuat rejects orientations that are not close to unit norm, most
// commonly an all-zero quaternion from a partially filled description.
func checkUnitQuat(field string, q quat.Number) error {
	n := math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	if math.Abs(n-1) > 1e-6 {
		return &domain.SpecError{
			Field:  field,
			Reason: "orientation must be a unit quaternion",
			Value:  fmt.Sprintf("norm %g", n),
		}
	}
	return nil
}
