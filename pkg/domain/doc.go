/*
Package domain contains the core value types for the manifold constraint library.

It defines the declarative description of a pose constraint and the scalar
building blocks the evaluator is composed from. This package is kept pure and
free of kinematics or I/O concerns, following Hexagonal Architecture principles.

# Key Entities

  - Bounds: a lower/upper interval on one scalar constraint dimension, with the
    penalty function that turns the interval into an equality residual.
  - ConstraintSet: the already-decoded declarative description (position and
    orientation sub-constraints plus the variant-selection name).
  - Pose: position and orientation of a robot link.
  - EvalHooks: optional observers invoked on every evaluation.
*/
package domain
