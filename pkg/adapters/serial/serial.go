// Package serial provides a reference implementation of ports.Kinematics: an
// N-revolute planar arm with analytic forward kinematics and geometric
// Jacobian. It backs the CLI and the library tests; production robots supply
// their own kinematics backend instead.
package serial

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/motionkit/manifold/pkg/domain"
)

// Arm is a serial chain of revolute joints, all rotating about the world +Z
// axis, with each link extending along the rotated X axis. The constrained
// link is the chain tip.
//
// Arm is stateless between calls, so unlike a scratch-carrying kinematics
// backend it is safe to share; tests that exercise the per-goroutine scratch
// contract still allocate one per goroutine.
type Arm struct {
	lengths []float64
}

// New creates an arm from link lengths, one per joint.
func New(lengths ...float64) (*Arm, error) {
	if len(lengths) == 0 {
		return nil, fmt.Errorf("serial arm needs at least one link")
	}
	for i, l := range lengths {
		if l <= 0 {
			return nil, fmt.Errorf("link %d has non-positive length %g", i, l)
		}
	}
	return &Arm{lengths: append([]float64(nil), lengths...)}, nil
}

// DOF returns the number of joints.
func (a *Arm) DOF() int { return len(a.lengths) }

// Pose returns the tip pose at q. The orientation is the accumulated rotation
// about +Z.
func (a *Arm) Pose(q []float64) (domain.Pose, error) {
	if err := a.check(q); err != nil {
		return domain.Pose{}, err
	}
	p := a.joints(q)
	theta := 0.0
	for _, qi := range q {
		theta += qi
	}
	return domain.Pose{
		Position:    p[len(p)-1],
		Orientation: quat.Number(r3.NewRotation(theta, r3.Vec{Z: 1})),
	}, nil
}

// Jacobian returns the 6×DOF geometric Jacobian at the tip: for revolute
// joint i with axis z and origin pᵢ, the linear column is z × (p_tip − pᵢ)
// and the angular column is z.
func (a *Arm) Jacobian(q []float64) (*mat.Dense, error) {
	if err := a.check(q); err != nil {
		return nil, err
	}
	p := a.joints(q)
	tip := p[len(p)-1]
	z := r3.Vec{Z: 1}

	jac := mat.NewDense(6, len(q), nil)
	for i := range q {
		lin := r3.Cross(z, r3.Sub(tip, p[i]))
		jac.Set(0, i, lin.X)
		jac.Set(1, i, lin.Y)
		jac.Set(2, i, lin.Z)
		jac.Set(3, i, z.X)
		jac.Set(4, i, z.Y)
		jac.Set(5, i, z.Z)
	}
	return jac, nil
}

// joints returns the origin of every joint plus the tip.
func (a *Arm) joints(q []float64) []r3.Vec {
	positions := make([]r3.Vec, len(q)+1)
	theta := 0.0
	for i, qi := range q {
		theta += qi
		positions[i+1] = r3.Add(positions[i], r3.Vec{
			X: a.lengths[i] * math.Cos(theta),
			Y: a.lengths[i] * math.Sin(theta),
		})
	}
	return positions
}

func (a *Arm) check(q []float64) error {
	if len(q) != len(a.lengths) {
		return fmt.Errorf("%w: got %d joint values, arm has %d joints",
			domain.ErrDimensionMismatch, len(q), len(a.lengths))
	}
	return nil
}
