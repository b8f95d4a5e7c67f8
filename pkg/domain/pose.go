package domain

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Pose is the position and orientation of a robot link in the world frame.
// Orientation is a unit quaternion.
type Pose struct {
	Position    r3.Vec      `json:"position" yaml:"position"`
	Orientation quat.Number `json:"orientation" yaml:"orientation"`
}

// IdentityPose returns a pose at the origin with the identity orientation.
func IdentityPose() Pose {
	return Pose{Orientation: quat.Number{Real: 1}}
}

// Rotate applies the rotation q to v.
func Rotate(q quat.Number, v r3.Vec) r3.Vec {
	return r3.Rotation(q).Rotate(v)
}

// RotateInv expresses v in the frame of the rotation q, i.e. applies the
// transpose of the rotation matrix of q. q must be a unit quaternion.
func RotateInv(q quat.Number, v r3.Vec) r3.Vec {
	return r3.Rotation(quat.Conj(q)).Rotate(v)
}
