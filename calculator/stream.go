package calculator

import (
	"fmt"
	"math"
)

const (
	dittusBoelterC  = 0.023
	dittusBoelterRe = 0.8

	exponentHeated = 0.4
	exponentCooled = 0.3
)

// NusseltExponent returns n for the Dittus-Boelter correlation.
func (s FluidStream) NusseltExponent() (float64, error) {
	dT := s.TOut - s.TIn
	if dT == 0 {
		return 0, invalidInput("t_out", s.TOut, ErrZeroTemperatureChange)
	}
	heated := dT > 0
	switch s.Mode {
	case ModeAuto, "":
	case ModeHeated:
		if !heated {
			return 0, invalidInput("t_out", s.TOut, fmt.Errorf("%w: marked heated but cools from %g K", ErrModeMismatch, s.TIn))
		}
	case ModeCooled:
		if heated {
			return 0, invalidInput("t_out", s.TOut, fmt.Errorf("%w: marked cooled but heats from %g K", ErrModeMismatch, s.TIn))
		}
	default:
		return 0, invalidInput("mode", 0, fmt.Errorf("%w: unknown mode %q", ErrModeMismatch, s.Mode))
	}
	if heated {
		return exponentHeated, nil
	}
	return exponentCooled, nil
}

// Velocity returns Q / (ρ·A·Cp·|T_out − T_in|).
func Velocity(duty float64, s FluidStream, area float64) (float64, error) {
	dT := math.Abs(s.TOut - s.TIn)
	if dT == 0 {
		return 0, invalidInput("t_out", s.TOut, ErrZeroTemperatureChange)
	}
	v := duty / (s.Density * area * s.SpecificHeat * dT)
	if !finite(v) || v <= 0 {
		return 0, invalidInput("velocity", v, ErrNonPositiveVelocity)
	}
	return v, nil
}

// DittusBoelter returns Nu = 0.023·Re^0.8·Pr^n.
func DittusBoelter(re, pr, n float64) float64 {
	return dittusBoelterC * math.Pow(re, dittusBoelterRe) * math.Pow(pr, n)
}

// classify maps a Reynolds number onto a flow regime.
func (c Config) classify(re float64) Regime {
	switch {
	case re < c.LaminarLimit:
		return RegimeLaminar
	case re < c.TurbulentLimit:
		return RegimeTransitional
	default:
		return RegimeTurbulent
	}
}

// analyzeStream runs velocity, diameters, dimensionless groups and the film
// coefficient for one stream. Every violated correlation limit yields a warning.
func analyzeStream(side Side, duty float64, s FluidStream, g TubeGeometry, cfg Config) (FlowRegimeResult, []RegimeWarning, error) {
	s.Properties = s.Properties.Normalize()
	if err := s.Properties.Validate(); err != nil {
		return FlowRegimeResult{}, nil, invalidInput(string(side)+".properties", 0, err)
	}
	for _, t := range []struct {
		field string
		value float64
	}{{"t_in", s.TIn}, {"t_out", s.TOut}} {
		if !finite(t.value) || t.value <= 0 {
			return FlowRegimeResult{}, nil, invalidInput(string(side)+"."+t.field, t.value, fmt.Errorf("absolute temperature must be positive"))
		}
	}

	n, err := s.NusseltExponent()
	if err != nil {
		return FlowRegimeResult{}, nil, err
	}
	area, dh, de, err := g.flowPath(side)
	if err != nil {
		return FlowRegimeResult{}, nil, err
	}
	v, err := Velocity(duty, s, area)
	if err != nil {
		return FlowRegimeResult{}, nil, err
	}

	re := v * dh / s.KinematicViscosity
	pr := s.Prandtl()
	nu := DittusBoelter(re, pr, n)
	r := FlowRegimeResult{
		Side:                 side,
		MassFlow:             duty / (s.SpecificHeat * math.Abs(s.TOut-s.TIn)),
		FlowArea:             area,
		Velocity:             v,
		HydraulicDiameter:    dh,
		HeatTransferDiameter: de,
		Reynolds:             re,
		Prandtl:              pr,
		NusseltExponent:      n,
		Nusselt:              nu,
		H:                    nu * s.Conductivity / de,
		Regime:               cfg.classify(re),
	}

	var warnings []RegimeWarning
	if r.Regime != RegimeTurbulent {
		warnings = append(warnings, RegimeWarning{Side: side, Regime: r.Regime, Reynolds: re, Prandtl: pr,
			Message: fmt.Sprintf("%s flow, correlation valid for Re >= %.0f", r.Regime, cfg.TurbulentLimit)})
	}
	if pr < cfg.PrandtlMin || pr > cfg.PrandtlMax {
		warnings = append(warnings, RegimeWarning{Side: side, Regime: r.Regime, Reynolds: re, Prandtl: pr,
			Message: fmt.Sprintf("Prandtl number outside %.2g..%.3g", cfg.PrandtlMin, cfg.PrandtlMax)})
	}
	return r, warnings, nil
}
