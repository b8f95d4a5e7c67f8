/*
Package manifold converts declarative bounded pose constraints on a robot link
(box-region position limits, exact position equalities, on-a-line position
constraints, orientation-deviation limits) into smooth equality residuals
F(q) = 0 with Jacobians dF/dq, the contract a sampling-based planner needs to
project states onto a differentiable constraint manifold.

It separates the constraint math (Core) from the robot model (Kinematics port)
and from message decoding, which is expected to have already reduced the
constraint description to primitive geometric fields. This Hexagonal
Architecture lets the evaluator run against any kinematics backend.

# Key Features

  - Four constraint variants: box region, per-axis equality, on-a-line, and
    exponential-coordinate orientation deviation, selected from the
    description by the factory.
  - Inequality bounds are reformulated as equalities through a piecewise
    linear penalty with a sub-gradient for Jacobian propagation.
  - Immutable evaluators: one instance serves a whole planning query across
    worker threads; the mutable kinematics scratch is passed per call.

# Usage

Build an evaluator from a description, then hand its Function/Jacobian pair to
the planner's constrained state space.

	package main

	import (
		"log"

		"gonum.org/v1/gonum/num/quat"
		"gonum.org/v1/gonum/spatial/r3"

		"github.com/motionkit/manifold"
		"github.com/motionkit/manifold/pkg/adapters/serial"
		"github.com/motionkit/manifold/pkg/domain"
	)

	func main() {
		arm, err := serial.New(0.5, 0.4, 0.3)
		if err != nil {
			log.Fatal(err)
		}

		set := domain.ConstraintSet{
			Position: []domain.PositionConstraint{{
				LinkName: "tool0",
				Extents:  []float64{0.1, 0.1, domain.Unconstrained},
				Poses:    []domain.Pose{{Position: r3.Vec{X: 0.8}, Orientation: quat.Number{Real: 1}}},
			}},
		}

		eval, err := manifold.New(set, arm.DOF())
		if err != nil {
			log.Fatal(err)
		}

		q := []float64{0.1, -0.2, 0.3}
		f, err := eval.Function(arm, q)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("residual:", f.RawVector().Data)
	}
*/
package manifold
