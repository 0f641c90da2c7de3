package calculator

import "math"

// OverallCoefficient returns Uo referenced to the outer pipe area for a tube of the
// given length:
//
//	1/Uo = Ao/(Ai·hi) + Ao·ln(ro/ri)/(2π·k·L) + 1/ho + Rf,i·Ao/Ai + Rf,o
func OverallCoefficient(g TubeGeometry, hi, ho, length float64) float64 {
	ao := math.Pi * g.PipeOuterDiameter * length
	ai := math.Pi * g.PipeInnerDiameter * length
	r := ao/(ai*hi) + 1/ho + g.FoulingInner*ao/ai + g.FoulingOuter
	if g.WallConductivity > 0 {
		r += ao * math.Log(g.PipeOuterDiameter/g.PipeInnerDiameter) / (2 * math.Pi * g.WallConductivity * length)
	}
	return 1 / r
}

// fixedPoint iterates x = next(x) from x0 until the relative change drops to tol.
func fixedPoint(next func(float64) float64, x0, tol float64, maxIter int) (float64, int, error) {
	x, delta := x0, math.Inf(1)
	for i := 1; i <= maxIter; i++ {
		x1 := next(x)
		if !finite(x1) {
			return 0, i, &ConvergenceError{Iterations: i, Last: x1, Delta: math.NaN()}
		}
		delta = math.Abs(x1 - x)
		if delta <= tol*math.Abs(x1) {
			return x1, i, nil
		}
		x = x1
	}
	return 0, maxIter, &ConvergenceError{Iterations: maxIter, Last: x, Delta: delta}
}

// solveLength finds L such that L = Q/(Uo(L)·π·Do·ΔT_LMTD). The wall term of Uo is
// written per total area, so L is carried through each evaluation rather than
// assumed to cancel.
func solveLength(duty, lmtd, hi, ho float64, g TubeGeometry, cfg Config) (length, uo float64, iterations int, err error) {
	perimeter := math.Pi * g.PipeOuterDiameter
	next := func(l float64) float64 {
		return duty / (OverallCoefficient(g, hi, ho, l) * perimeter * lmtd)
	}

	// film resistances alone give the starting guess
	films := g.PipeOuterDiameter/(g.PipeInnerDiameter*hi) + 1/ho
	l0 := duty * films / (perimeter * lmtd)

	length, iterations, err = fixedPoint(next, l0, cfg.Tolerance, cfg.MaxIterations)
	if err != nil {
		return 0, 0, iterations, err
	}
	return length, OverallCoefficient(g, hi, ho, length), iterations, nil
}
