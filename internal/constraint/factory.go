package constraint

import (
	"fmt"
	"log/slog"

	"github.com/motionkit/manifold/pkg/domain"
)

// Config carries the build-time parameters shared by every variant.
type Config struct {
	// DOF is the number of joints in the planning group; the residual
	// Jacobians are CoDimension × DOF.
	DOF int

	// Tolerance is the planner's projection tolerance, used to validate
	// equality extents at construction.
	Tolerance float64

	// Logger receives selection and validation diagnostics. Must not be nil.
	Logger *slog.Logger
}

// Build inspects the declarative description and constructs the matching
// variant. Exactly one sub-constraint kind may be present; when several
// sub-constraints of the selected kind are given, only the first is used.
func Build(set domain.ConstraintSet, cfg Config) (Model, error) {
	if cfg.DOF <= 0 {
		return nil, fmt.Errorf("%w: planning group has %d degrees of freedom",
			domain.ErrDimensionMismatch, cfg.DOF)
	}

	nPos := len(set.Position)
	nOri := len(set.Orientation)
	if nPos > 1 {
		cfg.Logger.Warn("only a single position constraint is supported, using the first one",
			"count", nPos)
	}
	if nOri > 1 {
		cfg.Logger.Warn("only a single orientation constraint is supported, using the first one",
			"count", nOri)
	}

	switch {
	case nPos > 0 && nOri > 0:
		return nil, domain.ErrMixedConstraints

	case nPos > 0:
		pc := set.Position[0]
		switch set.Name {
		case domain.SetNameEquality:
			cfg.Logger.Info("using equality position constraints", "link", pc.LinkName)
			return newEquality(pc, cfg.DOF, cfg.Tolerance)
		case domain.SetNameLinearSystem:
			cfg.Logger.Info("using linear-system position constraints", "link", pc.LinkName)
			return newLinearSystem(pc, cfg.DOF)
		default:
			cfg.Logger.Info("using bounded position constraints", "link", pc.LinkName)
			return newBox(pc, cfg.DOF)
		}

	case nOri > 0:
		oc := set.Orientation[0]
		cfg.Logger.Warn("orientation constraints are experimental", "link", oc.LinkName)
		return newOrientation(oc, cfg.DOF)

	default:
		return nil, domain.ErrNoConstraints
	}
}
