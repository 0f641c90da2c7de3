package calculator

import (
	"fmt"

	"heatx/fluid"
	"heatx/model"
)

// NewInput resolves a case into a sizing input. Named fluids are read from their
// table at the stream's property temperature; explicit properties win.
func NewInput(c model.Case) (Input, error) {
	hot, err := newStream("hot", c.Hot)
	if err != nil {
		return Input{}, err
	}
	cold, err := newStream("cold", c.Cold)
	if err != nil {
		return Input{}, err
	}
	return Input{
		Duty: c.Duty,
		Hot:  hot,
		Cold: cold,
		Geometry: TubeGeometry{
			PipeInnerDiameter:    c.Geometry.PipeInnerDiameter,
			PipeOuterDiameter:    c.Geometry.PipeOuterDiameter,
			AnnulusInnerDiameter: c.Geometry.AnnulusInnerDiameter,
			WallConductivity:     c.Geometry.WallConductivity,
			FoulingInner:         c.Geometry.FoulingInner,
			FoulingOuter:         c.Geometry.FoulingOuter,
		},
		MaxPassLength: c.MaxPassLength,
		Arrangement:   Arrangement(c.Arrangement),
		Shells:        c.Shells,
	}, nil
}

func newStream(side string, sc model.StreamCase) (FluidStream, error) {
	explicit := fluid.Properties{
		Density:            sc.Density,
		SpecificHeat:       sc.SpecificHeat,
		DynamicViscosity:   sc.DynamicViscosity,
		KinematicViscosity: sc.KinematicViscosity,
		Conductivity:       sc.Conductivity,
	}

	props := explicit.Normalize()
	if sc.Fluid != "" {
		table, err := fluid.Lookup(sc.Fluid)
		if err != nil {
			return FluidStream{}, fmt.Errorf("%s stream: %w", side, err)
		}
		t := sc.PropertyTemperature
		if t == 0 {
			t = (sc.TIn + sc.TOut) / 2
		}
		base, err := table.At(t)
		if err != nil {
			return FluidStream{}, fmt.Errorf("%s stream: %w", side, err)
		}
		props = base.Merge(explicit)
	}

	mode := Mode(sc.Mode)
	if mode == "" {
		mode = ModeAuto
	}
	return FluidStream{Properties: props, TIn: sc.TIn, TOut: sc.TOut, Mode: mode}, nil
}
