package domain

import "gonum.org/v1/gonum/num/quat"

// ConstraintSet is the declarative description of path constraints for one
// planning query, after message decoding has reduced it to primitive
// geometric fields.
//
// Name selects the position-constraint variant (see SetNameEquality and
// SetNameLinearSystem); any other name yields the default box variant.
type ConstraintSet struct {
	Name        string                  `json:"name" yaml:"name"`
	Position    []PositionConstraint    `json:"position_constraints,omitempty" yaml:"position_constraints,omitempty"`
	Orientation []OrientationConstraint `json:"orientation_constraints,omitempty" yaml:"orientation_constraints,omitempty"`
}

// PositionConstraint bounds the position of a link inside a box region, or
// pins it to a line for the linear-system variant.
type PositionConstraint struct {
	// LinkName is the robot link the constraint applies to.
	LinkName string `json:"link_name" yaml:"link_name"`

	// Extents are the full box dimensions along the x, y and z axes of the
	// target frame. A value of Unconstrained leaves that axis unconstrained.
	// All three are required for the box and equality variants.
	Extents []float64 `json:"extents" yaml:"extents"`

	// Poses carries the region poses. Poses[0] is the target pose (box center
	// and orientation of the region frame); Poses[1], required only by the
	// linear-system variant, is the end of the line starting at Poses[0].
	Poses []Pose `json:"poses" yaml:"poses"`
}

// OrientationConstraint bounds the orientation deviation of a link from a
// target orientation, parameterized in exponential coordinates.
type OrientationConstraint struct {
	// LinkName is the robot link the constraint applies to.
	LinkName string `json:"link_name" yaml:"link_name"`

	// Target is the desired orientation, a unit quaternion.
	Target quat.Number `json:"target" yaml:"target"`

	// Tolerances are the per-axis half-widths on the rotation-vector error,
	// centered at zero deviation. A value of Unconstrained leaves that axis
	// unconstrained.
	Tolerances [3]float64 `json:"tolerances" yaml:"tolerances"`
}
