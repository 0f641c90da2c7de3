// Package fluid holds the thermophysical properties of the working fluids and the
// temperature tables they are interpolated from.
package fluid

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrOutOfRange    = errors.New("temperature outside tabulated range")
	ErrUnknownFluid  = errors.New("unknown fluid")
	ErrBadProperties = errors.New("non-physical fluid properties")
)

// Properties of a fluid at a single state. SI units throughout.
type Properties struct {
	Density            float64 `json:"density" yaml:"density"`                         // kg/m³
	SpecificHeat       float64 `json:"specific_heat" yaml:"specific_heat"`             // J/(kg·K)
	DynamicViscosity   float64 `json:"dynamic_viscosity" yaml:"dynamic_viscosity"`     // Pa·s
	KinematicViscosity float64 `json:"kinematic_viscosity" yaml:"kinematic_viscosity"` // m²/s
	Conductivity       float64 `json:"conductivity" yaml:"conductivity"`               // W/(m·K)
}

// Normalize fills the kinematic viscosity from μ/ρ when it was left unset.
func (p Properties) Normalize() Properties {
	if p.KinematicViscosity == 0 && p.Density > 0 {
		p.KinematicViscosity = p.DynamicViscosity / p.Density
	}
	return p
}

// Validate requires every property to be finite and strictly positive.
func (p Properties) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"density", p.Density},
		{"specific heat", p.SpecificHeat},
		{"dynamic viscosity", p.DynamicViscosity},
		{"kinematic viscosity", p.KinematicViscosity},
		{"conductivity", p.Conductivity},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return fmt.Errorf("%w: %s = %g", ErrBadProperties, f.name, f.value)
		}
	}
	return nil
}

// Prandtl returns Cp·μ/k.
func (p Properties) Prandtl() float64 {
	return p.SpecificHeat * p.DynamicViscosity / p.Conductivity
}

// Merge overlays the non-zero fields of o onto p.
func (p Properties) Merge(o Properties) Properties {
	if o.Density != 0 {
		p.Density = o.Density
	}
	if o.SpecificHeat != 0 {
		p.SpecificHeat = o.SpecificHeat
	}
	if o.DynamicViscosity != 0 {
		p.DynamicViscosity = o.DynamicViscosity
	}
	if o.KinematicViscosity != 0 {
		p.KinematicViscosity = o.KinematicViscosity
	}
	if o.Conductivity != 0 {
		p.Conductivity = o.Conductivity
	}
	// ν follows an overridden ρ or μ unless it was overridden itself
	if o.KinematicViscosity == 0 && (o.Density != 0 || o.DynamicViscosity != 0) && p.Density > 0 {
		p.KinematicViscosity = p.DynamicViscosity / p.Density
	}
	return p
}
