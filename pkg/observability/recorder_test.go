package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_CountsEvaluations(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewRecorder(reg)
	require.NoError(t, err)

	hooks := rec.Hooks()
	hooks.OnFunction("tool0", 0.5, 10*time.Microsecond)
	hooks.OnFunction("tool0", 0.0, 12*time.Microsecond)
	hooks.OnJacobian("tool0", 20*time.Microsecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(
		rec.evaluations.WithLabelValues("function", "tool0")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		rec.evaluations.WithLabelValues("jacobian", "tool0")))

	count := testutil.CollectAndCount(rec.residualNorm, "manifold_residual_norm")
	assert.Equal(t, 1, count)
}

func TestNewRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	assert.Error(t, err)
}
