package constraint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/motionkit/manifold/pkg/adapters/fixed"
	"github.com/motionkit/manifold/pkg/domain"
)

func identityOrientation() quat.Number { return quat.Number{Real: 1} }

func boxConstraint(extents []float64, target domain.Pose) domain.PositionConstraint {
	return domain.PositionConstraint{
		LinkName: "tool0",
		Extents:  extents,
		Poses:    []domain.Pose{target},
	}
}

func TestBox_ZeroAtTarget(t *testing.T) {
	target := domain.Pose{Position: r3.Vec{X: 1, Y: 2, Z: 3}, Orientation: identityOrientation()}
	c, err := newBox(boxConstraint([]float64{0.2, 0.2, 0.2}, target), 3)
	require.NoError(t, err)

	kin := fixed.New(target, 3, nil)
	out := mat.NewVecDense(3, nil)
	require.NoError(t, c.Function(kin, []float64{0, 0, 0}, out))

	for i := 0; i < 3; i++ {
		assert.Zero(t, out.AtVec(i), "axis %d", i)
	}
}

func TestBox_PenaltyOutsideRegion(t *testing.T) {
	target := domain.Pose{Position: r3.Vec{X: 1}, Orientation: identityOrientation()}
	c, err := newBox(boxConstraint([]float64{0.2, 0.2, 0.2}, target), 3)
	require.NoError(t, err)

	// 0.3 beyond the center on x: 0.2 outside the ±0.1 bound.
	pose := domain.Pose{Position: r3.Vec{X: 1.3}, Orientation: identityOrientation()}
	kin := fixed.New(pose, 3, nil)
	out := mat.NewVecDense(3, nil)
	require.NoError(t, c.Function(kin, []float64{0, 0, 0}, out))

	assert.InDelta(t, 0.2, out.AtVec(0), 1e-12)
	assert.Zero(t, out.AtVec(1))
	assert.Zero(t, out.AtVec(2))
}

func TestBox_UnconstrainedAxis(t *testing.T) {
	target := domain.Pose{Orientation: identityOrientation()}
	c, err := newBox(boxConstraint([]float64{domain.Unconstrained, 0.2, 0.2}, target), 3)
	require.NoError(t, err)

	b := c.Bounds()
	assert.True(t, math.IsInf(b[0].Lower, -1))
	assert.True(t, math.IsInf(b[0].Upper, 1))

	// Any finite offset on the free axis stays feasible.
	pose := domain.Pose{Position: r3.Vec{X: 750}, Orientation: identityOrientation()}
	kin := fixed.New(pose, 3, nil)
	out := mat.NewVecDense(3, nil)
	require.NoError(t, c.Function(kin, []float64{0, 0, 0}, out))
	assert.Zero(t, out.AtVec(0))
}

func TestBox_ErrorInTargetFrame(t *testing.T) {
	// Target frame rotated 90° about z: a +x world offset shows up as -y in
	// the target frame.
	rot := quat.Number(r3.NewRotation(math.Pi/2, r3.Vec{Z: 1}))
	target := domain.Pose{Position: r3.Vec{X: 1}, Orientation: rot}
	c, err := newBox(boxConstraint([]float64{0.2, 0.2, 0.2}, target), 3)
	require.NoError(t, err)

	pose := domain.Pose{Position: r3.Vec{X: 1.3}, Orientation: identityOrientation()}
	e, err := c.calcError(fixed.New(pose, 3, nil), []float64{0, 0, 0})
	require.NoError(t, err)

	assert.InDelta(t, 0, e.X, 1e-12)
	assert.InDelta(t, -0.3, e.Y, 1e-12)
	assert.InDelta(t, 0, e.Z, 1e-12)
}

func TestBox_JacobianZeroInsideBounds(t *testing.T) {
	target := domain.Pose{Orientation: identityOrientation()}
	c, err := newBox(boxConstraint([]float64{0.2, 0.2, 0.2}, target), 2)
	require.NoError(t, err)

	jac := mat.NewDense(6, 2, nil)
	jac.Set(0, 0, 1)
	jac.Set(1, 1, 1)
	kin := fixed.New(target, 2, jac)

	out := mat.NewDense(3, 2, nil)
	require.NoError(t, c.Jacobian(kin, []float64{0, 0}, out))
	assert.Zero(t, mat.Norm(out, 2), "jacobian must vanish inside the region")
}

func TestBox_JacobianSignOutsideBounds(t *testing.T) {
	target := domain.Pose{Orientation: identityOrientation()}
	c, err := newBox(boxConstraint([]float64{0.2, 0.2, 0.2}, target), 2)
	require.NoError(t, err)

	jac := mat.NewDense(6, 2, nil)
	jac.Set(0, 0, 2)
	jac.Set(0, 1, -1)

	// Below the lower x bound: the penalty ramps as lower − value, so the row
	// is the negated error row.
	pose := domain.Pose{Position: r3.Vec{X: -5}, Orientation: identityOrientation()}
	out := mat.NewDense(3, 2, nil)
	require.NoError(t, c.Jacobian(fixed.New(pose, 2, jac), []float64{0, 0}, out))
	assert.InDelta(t, -2, out.At(0, 0), 1e-12)
	assert.InDelta(t, 1, out.At(0, 1), 1e-12)

	// Above the upper x bound: the row carries the error row unchanged.
	pose = domain.Pose{Position: r3.Vec{X: 5}, Orientation: identityOrientation()}
	require.NoError(t, c.Jacobian(fixed.New(pose, 2, jac), []float64{0, 0}, out))
	assert.InDelta(t, 2, out.At(0, 0), 1e-12)
	assert.InDelta(t, -1, out.At(0, 1), 1e-12)
}

func TestBox_MissingFields(t *testing.T) {
	target := domain.Pose{Orientation: identityOrientation()}

	_, err := newBox(domain.PositionConstraint{LinkName: "tool0", Extents: []float64{0.1, 0.1, 0.1}}, 3)
	assert.ErrorIs(t, err, domain.ErrMissingField, "no target pose")

	_, err = newBox(boxConstraint([]float64{0.1, 0.1}, target), 3)
	assert.ErrorIs(t, err, domain.ErrMissingField, "two extents only")
}

func TestBox_WrongJointDimension(t *testing.T) {
	target := domain.Pose{Orientation: identityOrientation()}
	c, err := newBox(boxConstraint([]float64{0.2, 0.2, 0.2}, target), 3)
	require.NoError(t, err)

	out := mat.NewVecDense(3, nil)
	err = c.Function(fixed.New(target, 3, nil), []float64{0, 0}, out)
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}
