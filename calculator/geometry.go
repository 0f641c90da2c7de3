package calculator

import "math"

// Validate checks IDa > ODp > IDp > 0 and the non-negative resistances.
func (g TubeGeometry) Validate() error {
	for _, d := range []struct {
		field string
		value float64
	}{
		{"pipe_inner_diameter", g.PipeInnerDiameter},
		{"pipe_outer_diameter", g.PipeOuterDiameter},
		{"annulus_inner_diameter", g.AnnulusInnerDiameter},
	} {
		if !finite(d.value) || d.value <= 0 {
			return invalidGeometry(d.field, d.value, "diameter must be positive")
		}
	}
	if g.PipeOuterDiameter <= g.PipeInnerDiameter {
		return invalidGeometry("pipe_outer_diameter", g.PipeOuterDiameter, "pipe wall must have positive thickness")
	}
	if g.AnnulusInnerDiameter <= g.PipeOuterDiameter {
		return invalidGeometry("annulus_inner_diameter", g.AnnulusInnerDiameter, "annulus must contain the pipe with a positive gap")
	}
	if !finite(g.WallConductivity) || g.WallConductivity < 0 {
		return invalidGeometry("wall_conductivity", g.WallConductivity, "must be zero or positive")
	}
	if !finite(g.FoulingInner) || g.FoulingInner < 0 {
		return invalidGeometry("fouling_inner", g.FoulingInner, "must be zero or positive")
	}
	if !finite(g.FoulingOuter) || g.FoulingOuter < 0 {
		return invalidGeometry("fouling_outer", g.FoulingOuter, "must be zero or positive")
	}
	return nil
}

// AnnulusDiameters returns the hydraulic diameter IDa − ODp and the heat-transfer
// diameter (IDa² − ODp²)/ODp of the annulus.
func (g TubeGeometry) AnnulusDiameters() (dh, de float64, err error) {
	if g.AnnulusInnerDiameter <= g.PipeOuterDiameter {
		return 0, 0, invalidGeometry("annulus_inner_diameter", g.AnnulusInnerDiameter, "annulus must contain the pipe with a positive gap")
	}
	if g.PipeOuterDiameter <= 0 {
		return 0, 0, invalidGeometry("pipe_outer_diameter", g.PipeOuterDiameter, "diameter must be positive")
	}
	dh = g.AnnulusInnerDiameter - g.PipeOuterDiameter
	de = (sq(g.AnnulusInnerDiameter) - sq(g.PipeOuterDiameter)) / g.PipeOuterDiameter
	return dh, de, nil
}

// PipeFlowArea is the cross-section of the pipe interior.
func (g TubeGeometry) PipeFlowArea() float64 {
	return math.Pi * sq(g.PipeInnerDiameter) / 4
}

// AnnulusFlowArea is the cross-section between the pipe and the annulus wall.
func (g TubeGeometry) AnnulusFlowArea() float64 {
	return math.Pi * (sq(g.AnnulusInnerDiameter) - sq(g.PipeOuterDiameter)) / 4
}

// flowPath returns the flow area and the two characteristic diameters for a side.
func (g TubeGeometry) flowPath(side Side) (area, dh, de float64, err error) {
	if side == SideHot {
		return g.PipeFlowArea(), g.PipeInnerDiameter, g.PipeInnerDiameter, nil
	}
	dh, de, err = g.AnnulusDiameters()
	if err != nil {
		return 0, 0, 0, err
	}
	return g.AnnulusFlowArea(), dh, de, nil
}

func sq(x float64) float64 { return x * x }

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
