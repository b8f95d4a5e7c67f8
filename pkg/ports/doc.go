/*
Package ports defines the driven ports (interfaces) for the manifold library.

These interfaces decouple the constraint math from the robot model, allowing
the evaluator to work with any kinematics backend.

# Key Interfaces

  - Kinematics: supplies the pose and geometric Jacobian of the constrained
    link for a joint configuration. An instance doubles as the mutable
    per-thread scratch state and is passed explicitly to every evaluation.
*/
package ports
