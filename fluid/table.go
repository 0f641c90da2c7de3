package fluid

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/interp"
)

// Row is one tabulated state.
type Row struct {
	Temperature         float64 // K
	Density             float64 // kg/m³
	SpecificHeat        float64 // J/(kg·K)
	DynamicViscosity    float64 // Pa·s
	ThermalConductivity float64 // W/(m·K)
}

// Table interpolates properties linearly between tabulated temperatures.
type Table struct {
	Name string

	min, max     float64
	density      interp.PiecewiseLinear
	specificHeat interp.PiecewiseLinear
	viscosity    interp.PiecewiseLinear
	conductivity interp.PiecewiseLinear
}

func NewTable(name string, rows []Row) (*Table, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("table %s: need at least two rows, got %d", name, len(rows))
	}
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Temperature < sorted[j].Temperature
	})

	n := len(sorted)
	ts := make([]float64, n)
	rho := make([]float64, n)
	cp := make([]float64, n)
	mu := make([]float64, n)
	k := make([]float64, n)
	for i, r := range sorted {
		ts[i], rho[i], cp[i], mu[i], k[i] = r.Temperature, r.Density, r.SpecificHeat, r.DynamicViscosity, r.ThermalConductivity
	}

	t := &Table{Name: name, min: ts[0], max: ts[n-1]}
	for _, fit := range []struct {
		pl *interp.PiecewiseLinear
		ys []float64
	}{
		{&t.density, rho},
		{&t.specificHeat, cp},
		{&t.viscosity, mu},
		{&t.conductivity, k},
	} {
		if err := fit.pl.Fit(ts, fit.ys); err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
	}
	return t, nil
}

// Range returns the tabulated temperature interval.
func (t *Table) Range() (min, max float64) {
	return t.min, t.max
}

// At interpolates the properties at temperature T (K).
func (t *Table) At(T float64) (Properties, error) {
	if T < t.min || T > t.max {
		return Properties{}, fmt.Errorf("%s at %.2f K (%.0f..%.0f K): %w", t.Name, T, t.min, t.max, ErrOutOfRange)
	}
	p := Properties{
		Density:          t.density.Predict(T),
		SpecificHeat:     t.specificHeat.Predict(T),
		DynamicViscosity: t.viscosity.Predict(T),
		Conductivity:     t.conductivity.Predict(T),
	}
	return p.Normalize(), nil
}

// Lookup returns the built-in table registered under name.
func Lookup(name string) (*Table, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "water":
		return Water(), nil
	case "air":
		return Air(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFluid, name)
	}
}

func mustTable(name string, rows []Row) *Table {
	t, err := NewTable(name, rows)
	if err != nil {
		panic(err)
	}
	return t
}
