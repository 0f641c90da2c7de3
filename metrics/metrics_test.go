package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatx/calculator"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, OutcomeOK},
		{&calculator.InvalidInputError{Field: "duty", Err: calculator.ErrNonPositiveDuty}, OutcomeInvalidInput},
		{fmt.Errorf("case: %w", &calculator.InvalidGeometryError{Field: "annulus_inner_diameter"}), OutcomeInvalidGeometry},
		{&calculator.ConvergenceError{Iterations: 100}, OutcomeConvergence},
		{errors.New("boom"), OutcomeOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Outcome(tt.err))
	}
}

// counter sums the samples of a counter family whose label set contains label.
func counter(t *testing.T, reg *prometheus.Registry, name, label string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			matched := label == ""
			for _, lp := range m.GetLabel() {
				if lp.GetValue() == label {
					matched = true
				}
			}
			if matched {
				total += m.GetCounter().GetValue()
			}
		}
	}
	return total
}

func TestObserveSizing(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveSizing(&calculator.ExchangerSizingResult{
		Iterations: 2,
		Warnings:   []calculator.RegimeWarning{{Side: calculator.SideCold}},
	}, nil)
	m.ObserveSizing(nil, &calculator.ConvergenceError{})

	assert.Equal(t, 1.0, counter(t, reg, "heatx_sizing_runs_total", OutcomeOK))
	assert.Equal(t, 1.0, counter(t, reg, "heatx_sizing_runs_total", OutcomeConvergence))
	assert.Equal(t, 1.0, counter(t, reg, "heatx_regime_warnings_total", "cold"))
	assert.Equal(t, 0.0, counter(t, reg, "heatx_regime_warnings_total", "hot"))
}

func TestObserveSweep(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveSweep([]calculator.SweepPoint{
		{Result: &calculator.ExchangerSizingResult{Iterations: 2}},
		{Err: errors.New("boom")},
	})

	assert.Equal(t, 2.0, counter(t, reg, "heatx_sweep_points_total", ""))
	assert.Equal(t, 1.0, counter(t, reg, "heatx_sizing_runs_total", OutcomeOther))
}
