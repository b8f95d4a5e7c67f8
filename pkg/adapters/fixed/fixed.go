// Package fixed provides a canned-pose implementation of ports.Kinematics for
// unit tests: it returns the same pose and geometric Jacobian for every joint
// configuration, isolating the constraint math from forward kinematics.
package fixed

import (
	"gonum.org/v1/gonum/mat"

	"github.com/motionkit/manifold/pkg/domain"
)

// Provider implements ports.Kinematics with constant outputs.
type Provider struct {
	pose domain.Pose
	jac  *mat.Dense
}

// New creates a provider that reports pose and jac (6×DOF) at every q.
// A nil jac defaults to a 6×dof zero matrix.
func New(pose domain.Pose, dof int, jac *mat.Dense) *Provider {
	if jac == nil {
		jac = mat.NewDense(6, dof, nil)
	}
	return &Provider{pose: pose, jac: jac}
}

// DOF returns the number of Jacobian columns.
func (p *Provider) DOF() int {
	_, c := p.jac.Dims()
	return c
}

// Pose returns the canned pose.
func (p *Provider) Pose(q []float64) (domain.Pose, error) {
	return p.pose, nil
}

// Jacobian returns a copy of the canned Jacobian.
func (p *Provider) Jacobian(q []float64) (*mat.Dense, error) {
	out := mat.NewDense(6, p.DOF(), nil)
	out.Copy(p.jac)
	return out, nil
}
