package calculator

import (
	"errors"
	"math"
)

// TerminalDifferences returns ΔT1 = Th,in − Tc,out and ΔT2 = Th,out − Tc,in of a
// counter-flow exchanger.
func TerminalDifferences(hot, cold FluidStream) (dt1, dt2 float64) {
	return hot.TIn - cold.TOut, hot.TOut - cold.TIn
}

// LMTD returns (ΔT2 − ΔT1)/ln(ΔT2/ΔT1). Both differences must be non-zero and of
// the same sign. Exactly equal differences are reported as
// ErrEqualTerminalDifferences; the limit there is ΔT1.
func LMTD(dt1, dt2 float64) (float64, error) {
	if !finite(dt1) || dt1 == 0 {
		return 0, invalidInput("delta_t1", dt1, ErrTemperatureCross)
	}
	if !finite(dt2) || dt2 == 0 {
		return 0, invalidInput("delta_t2", dt2, ErrTemperatureCross)
	}
	if (dt1 > 0) != (dt2 > 0) {
		return 0, invalidInput("delta_t2", dt2, ErrTemperatureCross)
	}
	if dt1 == dt2 {
		return 0, invalidInput("delta_t2", dt2, ErrEqualTerminalDifferences)
	}
	// log1p keeps precision when the two differences are close
	return (dt2 - dt1) / math.Log1p((dt2-dt1)/dt1), nil
}

func isEqualTerminalDifferences(err error) bool {
	return errors.Is(err, ErrEqualTerminalDifferences)
}
