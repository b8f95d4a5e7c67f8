package manifold

import (
	"fmt"
	"log/slog"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/motionkit/manifold/internal/constraint"
	"github.com/motionkit/manifold/internal/logging"
	"github.com/motionkit/manifold/pkg/domain"
	"github.com/motionkit/manifold/pkg/ports"
)

// Evaluator is the planner-facing constraint: an immutable pairing of one
// constraint variant with the co-dimension and tolerance fixed at
// construction. It is safe for unsynchronized concurrent reads; the mutable
// kinematics scratch is supplied per call and must be owned by the calling
// goroutine.
type Evaluator struct {
	model     constraint.Model
	dof       int
	tolerance float64
	hooks     domain.EvalHooks
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Evaluator.
type Option func(*Evaluator)

// WithLogger sets a custom structured logger for construction diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// WithTolerance overrides the acceptance tolerance on ‖F(q)‖. It must stay
// under domain.EqualityThreshold or equality extents in the valid range could
// no longer be satisfied numerically.
func WithTolerance(tol float64) Option {
	return func(e *Evaluator) {
		e.tolerance = tol
	}
}

// WithHooks registers observability hooks invoked after each evaluation.
func WithHooks(hooks domain.EvalHooks) Option {
	return func(e *Evaluator) {
		e.hooks = hooks
	}
}

// New builds an evaluator from a declarative constraint description for a
// planning group with dof joints.
//
// The description must carry position sub-constraints or orientation
// sub-constraints, not both. The set name selects the position variant:
// domain.SetNameEquality, domain.SetNameLinearSystem, or anything else for
// the default box region.
func New(set domain.ConstraintSet, dof int, opts ...Option) (*Evaluator, error) {
	e := &Evaluator{
		tolerance: domain.DefaultTolerance,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.tolerance <= 0 || e.tolerance >= domain.EqualityThreshold {
		return nil, &domain.SpecError{
			Field:  "tolerance",
			Reason: fmt.Sprintf("projection tolerance must be in (0, %g)", domain.EqualityThreshold),
			Value:  e.tolerance,
		}
	}

	model, err := constraint.Build(set, constraint.Config{
		DOF:       dof,
		Tolerance: e.tolerance,
		Logger:    e.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("building constraint: %w", err)
	}
	e.model = model
	e.dof = dof
	return e, nil
}

// Function evaluates the residual F(q). The result has CoDimension entries
// and is zero exactly when the constraint is satisfied.
func (e *Evaluator) Function(kin ports.Kinematics, q []float64) (*mat.VecDense, error) {
	start := time.Now()
	out := mat.NewVecDense(e.model.CoDimension(), nil)
	if err := e.model.Function(kin, q, out); err != nil {
		return nil, err
	}
	if e.hooks.OnFunction != nil {
		e.hooks.OnFunction(e.model.LinkName(), mat.Norm(out, 2), time.Since(start))
	}
	return out, nil
}

// Jacobian evaluates dF/dq as a CoDimension × dof matrix.
func (e *Evaluator) Jacobian(kin ports.Kinematics, q []float64) (*mat.Dense, error) {
	start := time.Now()
	out := mat.NewDense(e.model.CoDimension(), e.dof, nil)
	if err := e.model.Jacobian(kin, q, out); err != nil {
		return nil, err
	}
	if e.hooks.OnJacobian != nil {
		e.hooks.OnJacobian(e.model.LinkName(), time.Since(start))
	}
	return out, nil
}

// Satisfied reports whether ‖F(q)‖ is within the evaluator's tolerance.
func (e *Evaluator) Satisfied(kin ports.Kinematics, q []float64) (bool, error) {
	f, err := e.Function(kin, q)
	if err != nil {
		return false, err
	}
	return mat.Norm(f, 2) <= e.tolerance, nil
}

// CoDimension is the number of scalar equations in the residual: 3 for the
// box, equality and orientation variants, 2 for the linear-system variant.
func (e *Evaluator) CoDimension() int { return e.model.CoDimension() }

// Tolerance is the acceptance tolerance on ‖F(q)‖.
func (e *Evaluator) Tolerance() float64 { return e.tolerance }

// LinkName reports the constrained link, for diagnostics.
func (e *Evaluator) LinkName() string { return e.model.LinkName() }

// TargetPosition reports the nominal position, for diagnostics.
func (e *Evaluator) TargetPosition() r3.Vec { return e.model.TargetPosition() }

// TargetOrientation reports the nominal orientation, for diagnostics.
func (e *Evaluator) TargetOrientation() quat.Number { return e.model.TargetOrientation() }
