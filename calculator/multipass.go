package calculator

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// CapacityRatio returns R = (Th,in − Th,out)/(Tc,out − Tc,in) and the thermal
// effectiveness P = (Tc,out − Tc,in)/(Th,in − Tc,in).
func CapacityRatio(hot, cold FluidStream) (r, p float64) {
	r = (hot.TIn - hot.TOut) / (cold.TOut - cold.TIn)
	p = (cold.TOut - cold.TIn) / (hot.TIn - cold.TIn)
	return r, p
}

// CorrectionFactor returns the LMTD correction F. Series counterflow hairpins keep
// F = 1; shell-and-tube uses the closed form for one shell pass and an even number
// of tube passes, applied per shell for several shells in series.
func CorrectionFactor(a Arrangement, r, p float64, shells int) (float64, error) {
	switch a {
	case ArrangementSeriesCounterflow:
		return 1, nil
	case ArrangementShellAndTube:
	default:
		return 0, invalidInput("arrangement", 0, fmt.Errorf("%w: unknown arrangement %q", ErrInfeasibleCorrection, a))
	}
	if shells < 1 {
		return 0, invalidInput("shells", float64(shells), ErrInfeasibleCorrection)
	}
	if !(p > 0 && p < 1) || !(r > 0) {
		return 0, invalidInput("effectiveness", p, ErrInfeasibleCorrection)
	}

	p1 := p
	if shells > 1 {
		n := float64(shells)
		if math.Abs(r-1) < 1e-9 {
			p1 = p / (n - (n-1)*p)
		} else {
			x := math.Pow((1-r*p)/(1-p), 1/n)
			p1 = (x - 1) / (x - r)
		}
	}

	var f float64
	if math.Abs(r-1) < 1e-9 {
		arg := (2 - p1*(2-math.Sqrt2)) / (2 - p1*(2+math.Sqrt2))
		if arg <= 0 || arg == 1 {
			return 0, invalidInput("effectiveness", p, ErrInfeasibleCorrection)
		}
		f = p1 * math.Sqrt2 / (1 - p1) / math.Log(arg)
	} else {
		s := math.Sqrt(r*r + 1)
		ratio := (1 - p1) / (1 - r*p1)
		arg := (2 - p1*(r+1-s)) / (2 - p1*(r+1+s))
		if ratio <= 0 || arg <= 0 || arg == 1 {
			return 0, invalidInput("effectiveness", p, ErrInfeasibleCorrection)
		}
		f = s * math.Log(ratio) / ((r - 1) * math.Log(arg))
	}
	if !finite(f) || f <= 0 {
		return 0, invalidInput("correction_factor", f, ErrInfeasibleCorrection)
	}
	return math.Min(f, 1), nil
}

// validatePasses rejects a per-request pass layout that the config would refuse.
func (in Input) validatePasses() error {
	if !finite(in.MaxPassLength) || in.MaxPassLength < 0 {
		return invalidInput("max_pass_length", in.MaxPassLength, ErrInvalidPassLayout)
	}
	if in.Shells < 0 {
		return invalidInput("shells", float64(in.Shells), ErrInvalidPassLayout)
	}
	return nil
}

// multiPass splits the required length into passes no longer than maxPassLength.
func multiPass(in Input, single float64, lmtd float64, cfg Config) (*MultiPassResult, error) {
	maxLen := in.MaxPassLength
	if maxLen == 0 {
		maxLen = cfg.MaxPassLength
	}
	if maxLen <= 0 || !finite(maxLen) {
		return nil, nil
	}
	arrangement := in.Arrangement
	if arrangement == "" {
		arrangement = cfg.Arrangement
	}
	shells := in.Shells
	if shells == 0 {
		shells = cfg.Shells
	}

	r, p := CapacityRatio(in.Hot, in.Cold)
	f, err := CorrectionFactor(arrangement, r, p, shells)
	if err != nil {
		return nil, err
	}
	total := single / f
	passes := int(math.Ceil(total / maxLen))
	if passes < 1 {
		passes = 1
	}
	mp := &MultiPassResult{
		Arrangement:      arrangement,
		Shells:           shells,
		Passes:           passes,
		R:                r,
		P:                p,
		CorrectionFactor: f,
		CorrectedLMTD:    f * lmtd,
		TotalLength:      total,
		PassLength:       total / float64(passes),
		LowCorrection:    f < cfg.MinCorrection,
	}
	if mp.LowCorrection {
		log.WithFields(log.Fields{
			"arrangement": arrangement,
			"F":           f,
			"R":           r,
			"P":           p,
		}).Warn("multi-pass correction factor below practical limit")
	}
	return mp, nil
}
