package calculator

import "math"

// FrictionFactor returns the Darcy friction factor of a smooth duct: 64/Re when
// laminar, Petukhov's correlation otherwise.
func FrictionFactor(re, laminarLimit float64) float64 {
	if re < laminarLimit {
		return 64 / re
	}
	return math.Pow(0.790*math.Log(re)-1.64, -2)
}

// applyHydraulics fills the friction factor, pressure drop and pumping power of a
// stream flowing over length.
func applyHydraulics(r *FlowRegimeResult, density, length float64, cfg Config) {
	r.FrictionFactor = FrictionFactor(r.Reynolds, cfg.LaminarLimit)
	r.PressureDrop = r.FrictionFactor * length / r.HydraulicDiameter * density * sq(r.Velocity) / 2
	r.PumpingPower = r.PressureDrop * r.MassFlow / density / cfg.PumpEfficiency
}

func volumes(g TubeGeometry, cold FlowRegimeResult, coldDensity, length float64, cfg Config) VolumeResult {
	return VolumeResult{
		PipeSide:    g.PipeFlowArea() * length,
		AnnulusSide: g.AnnulusFlowArea() * length,
		CoolantTank: cold.MassFlow * cfg.MissionDuration / coldDensity,
	}
}
