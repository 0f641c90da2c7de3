package calculator

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// Calculator sizes one exchanger per call.
type Calculator interface {
	Size(in Input) (*ExchangerSizingResult, error)
}

// Sizer is the double-pipe counter-flow exchanger calculator. It holds only its
// configuration, so one Sizer may be shared across goroutines.
type Sizer struct {
	cfg Config
}

func NewSizer(cfg Config) (*Sizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sizer{cfg: cfg}, nil
}

func (s *Sizer) Config() Config {
	return s.cfg
}

// Size computes the length, overall coefficient and derived metrics of the
// exchanger described by in. No partial result is returned on error.
func (s *Sizer) Size(in Input) (*ExchangerSizingResult, error) {
	if !finite(in.Duty) || in.Duty <= 0 {
		return nil, invalidInput("duty", in.Duty, ErrNonPositiveDuty)
	}
	if err := in.Geometry.Validate(); err != nil {
		return nil, err
	}
	if err := in.validatePasses(); err != nil {
		return nil, err
	}
	in.Hot.Properties = in.Hot.Properties.Normalize()
	in.Cold.Properties = in.Cold.Properties.Normalize()

	hot, hotWarnings, err := analyzeStream(SideHot, in.Duty, in.Hot, in.Geometry, s.cfg)
	if err != nil {
		return nil, err
	}
	cold, coldWarnings, err := analyzeStream(SideCold, in.Duty, in.Cold, in.Geometry, s.cfg)
	if err != nil {
		return nil, err
	}
	// the hot stream must give up heat and the cold stream take it
	if in.Hot.TOut > in.Hot.TIn {
		return nil, invalidInput("hot.t_out", in.Hot.TOut, fmt.Errorf("%w: hot stream heats from %g K", ErrStreamDirection, in.Hot.TIn))
	}
	if in.Cold.TOut < in.Cold.TIn {
		return nil, invalidInput("cold.t_out", in.Cold.TOut, fmt.Errorf("%w: cold stream cools from %g K", ErrStreamDirection, in.Cold.TIn))
	}

	dt1, dt2 := TerminalDifferences(in.Hot, in.Cold)
	if dt1 < 0 && dt2 < 0 {
		// same sign but the "hot" stream is the colder one
		return nil, invalidInput("delta_t1", dt1, ErrTemperatureCross)
	}
	lmtd, err := LMTD(dt1, dt2)
	if isEqualTerminalDifferences(err) {
		lmtd, err = dt1, nil
	}
	if err != nil {
		return nil, err
	}

	length, uo, iterations, err := solveLength(in.Duty, lmtd, hot.H, cold.H, in.Geometry, s.cfg)
	if err != nil {
		return nil, err
	}

	mp, err := multiPass(in, length, lmtd, s.cfg)
	if err != nil {
		return nil, err
	}
	flowLength := length
	if mp != nil {
		flowLength = mp.TotalLength
	}

	applyHydraulics(&hot, in.Hot.Density, flowLength, s.cfg)
	applyHydraulics(&cold, in.Cold.Density, flowLength, s.cfg)

	res := &ExchangerSizingResult{
		Uo:         uo,
		LMTD:       lmtd,
		Length:     length,
		Area:       math.Pi * in.Geometry.PipeOuterDiameter * flowLength,
		Iterations: iterations,
		Hot:        hot,
		Cold:       cold,
		Volume:     volumes(in.Geometry, cold, in.Cold.Density, flowLength, s.cfg),
		MultiPass:  mp,
	}
	res.Warnings = append(res.Warnings, hotWarnings...)
	res.Warnings = append(res.Warnings, coldWarnings...)

	log.WithFields(log.Fields{
		"duty":       in.Duty,
		"uo":         uo,
		"lmtd":       lmtd,
		"length":     length,
		"iterations": iterations,
		"warnings":   len(res.Warnings),
	}).Debug("exchanger sized")
	return res, nil
}
