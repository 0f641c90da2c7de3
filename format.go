package main

import (
	"fmt"

	"heatx/calculator"
)

func printResult(name string, in calculator.Input, res *calculator.ExchangerSizingResult) {
	if name != "" {
		fmt.Printf("CASE %s\n", name)
	}
	fmt.Printf("Duty:            %.1f W\n", in.Duty)
	fmt.Printf("LMTD:            %.3f K\n", res.LMTD)
	fmt.Printf("Uo:              %.2f W/m²K\n", res.Uo)
	fmt.Printf("Length:          %.3f m (%d iterations)\n", res.Length, res.Iterations)
	fmt.Printf("Area:            %.4f m²\n", res.Area)
	fmt.Println()

	for _, s := range []calculator.FlowRegimeResult{res.Hot, res.Cold} {
		fmt.Printf("%s stream:\n", s.Side)
		fmt.Printf("  mass flow %.4f kg/s, velocity %.3f m/s\n", s.MassFlow, s.Velocity)
		fmt.Printf("  Dh %.4f m, De %.4f m\n", s.HydraulicDiameter, s.HeatTransferDiameter)
		fmt.Printf("  Re %.0f (%s), Pr %.3f, Nu %.2f (n = %.1f)\n", s.Reynolds, s.Regime, s.Prandtl, s.Nusselt, s.NusseltExponent)
		fmt.Printf("  h %.2f W/m²K, dP %.1f Pa, pumping %.2f W\n", s.H, s.PressureDrop, s.PumpingPower)
	}
	fmt.Println()

	fmt.Printf("Volume: pipe %.5f m³, annulus %.5f m³, coolant tank %.4f m³\n",
		res.Volume.PipeSide, res.Volume.AnnulusSide, res.Volume.CoolantTank)

	if mp := res.MultiPass; mp != nil {
		fmt.Printf("Multi-pass (%s, %d shell(s)): %d passes of %.3f m, F = %.4f (R %.3f, P %.3f)\n",
			mp.Arrangement, mp.Shells, mp.Passes, mp.PassLength, mp.CorrectionFactor, mp.R, mp.P)
		if mp.LowCorrection {
			fmt.Println("  correction factor below practical limit")
		}
	}

	if len(res.Warnings) > 0 {
		fmt.Printf("\nWARNINGS (%d):\n", len(res.Warnings))
		for _, w := range res.Warnings {
			fmt.Printf("  %s\n", w.Error())
		}
	}
}

func printSweep(points []calculator.SweepPoint) {
	fmt.Printf("%12s %10s %12s %8s\n", "duty [W]", "L [m]", "Uo [W/m²K]", "warn")
	for _, p := range points {
		if p.Err != nil {
			fmt.Printf("%12.1f  error: %v\n", p.Duty, p.Err)
			continue
		}
		fmt.Printf("%12.1f %10.3f %12.2f %8d\n", p.Duty, p.Result.Length, p.Result.Uo, len(p.Result.Warnings))
	}
}
