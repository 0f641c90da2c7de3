package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"heatx/calculator"
)

const (
	OutcomeOK              = "ok"
	OutcomeInvalidInput    = "invalid_input"
	OutcomeInvalidGeometry = "invalid_geometry"
	OutcomeConvergence     = "convergence"
	OutcomeOther           = "other"
)

// Metrics holds the Prometheus metrics of sizing runs.
type Metrics struct {
	Runs           *prometheus.CounterVec
	RegimeWarnings *prometheus.CounterVec
	Iterations     prometheus.Histogram
	SweepPoints    prometheus.Counter
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "heatx_sizing_runs_total",
			Help: "Sizing runs by outcome",
		}, []string{"outcome"}),
		RegimeWarnings: f.NewCounterVec(prometheus.CounterOpts{
			Name: "heatx_regime_warnings_total",
			Help: "Correlation applied outside its validated range, by stream",
		}, []string{"side"}),
		Iterations: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "heatx_length_iterations",
			Help:    "Fixed-point iterations needed to solve the exchanger length",
			Buckets: []float64{1, 2, 3, 5, 10, 20, 50, 100},
		}),
		SweepPoints: f.NewCounter(prometheus.CounterOpts{
			Name: "heatx_sweep_points_total",
			Help: "Points sized as part of a sweep",
		}),
	}
}

// ObserveSizing records the outcome of one sizing run.
func (m *Metrics) ObserveSizing(res *calculator.ExchangerSizingResult, err error) {
	m.Runs.WithLabelValues(Outcome(err)).Inc()
	if err != nil || res == nil {
		return
	}
	m.Iterations.Observe(float64(res.Iterations))
	for _, w := range res.Warnings {
		m.RegimeWarnings.WithLabelValues(string(w.Side)).Inc()
	}
}

// ObserveSweep records every point of a sweep.
func (m *Metrics) ObserveSweep(points []calculator.SweepPoint) {
	m.SweepPoints.Add(float64(len(points)))
	for _, p := range points {
		m.ObserveSizing(p.Result, p.Err)
	}
}

// Outcome classifies a sizing error into a label value.
func Outcome(err error) string {
	var (
		input    *calculator.InvalidInputError
		geometry *calculator.InvalidGeometryError
		conv     *calculator.ConvergenceError
	)
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &input):
		return OutcomeInvalidInput
	case errors.As(err, &geometry):
		return OutcomeInvalidGeometry
	case errors.As(err, &conv):
		return OutcomeConvergence
	default:
		return OutcomeOther
	}
}
