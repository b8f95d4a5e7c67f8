package ports

import (
	"gonum.org/v1/gonum/mat"

	"github.com/motionkit/manifold/pkg/domain"
)

// Kinematics resolves the pose and geometric Jacobian of a fixed robot link
// for a joint configuration.
//
// Implementations are expected to reuse internal scratch state between calls
// (joint positions are written into it before forward kinematics runs), so a
// single instance must not be shared across goroutines. The evaluator itself
// is immutable and holds no Kinematics; callers pass a per-goroutine instance
// to every evaluation instead.
type Kinematics interface {
	// DOF returns the number of joints in the planning group.
	DOF() int

	// Pose returns the world pose of the constrained link at q.
	Pose(q []float64) (domain.Pose, error)

	// Jacobian returns the 6×DOF geometric Jacobian of the constrained link
	// at q. The top three rows are translational, the bottom three rotational.
	Jacobian(q []float64) (*mat.Dense, error)
}
