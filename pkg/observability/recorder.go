package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/motionkit/manifold/pkg/domain"
)

// Recorder exports evaluation metrics through Prometheus. Attach it to an
// evaluator with manifold.WithHooks(rec.Hooks()).
type Recorder struct {
	evaluations  *prometheus.CounterVec
	residualNorm *prometheus.HistogramVec
	duration     *prometheus.HistogramVec
}

// NewRecorder creates a recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "manifold",
			Name:      "evaluations_total",
			Help:      "Constraint evaluations, by operation and constrained link.",
		}, []string{"op", "link"}),
		residualNorm: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "manifold",
			Name:      "residual_norm",
			Help:      "Norm of the constraint residual at evaluation.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"link"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "manifold",
			Name:      "evaluation_duration_seconds",
			Help:      "Wall time of a single evaluation, by operation.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 6),
		}, []string{"op"}),
	}
	for _, c := range []prometheus.Collector{r.evaluations, r.residualNorm, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Hooks returns the EvalHooks that feed this recorder.
func (r *Recorder) Hooks() domain.EvalHooks {
	return domain.EvalHooks{
		OnFunction: func(link string, residualNorm float64, elapsed time.Duration) {
			r.evaluations.WithLabelValues("function", link).Inc()
			r.residualNorm.WithLabelValues(link).Observe(residualNorm)
			r.duration.WithLabelValues("function").Observe(elapsed.Seconds())
		},
		OnJacobian: func(link string, elapsed time.Duration) {
			r.evaluations.WithLabelValues("jacobian", link).Inc()
			r.duration.WithLabelValues("jacobian").Observe(elapsed.Seconds())
		},
	}
}
