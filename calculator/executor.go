package calculator

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"heatx/model"
)

// SweepPoint is the outcome of one input of a sweep. A failed point carries its
// error and no result.
type SweepPoint struct {
	Index  int                    `json:"index"`
	Duty   float64                `json:"duty"`
	Result *ExchangerSizingResult `json:"result,omitempty"`
	Err    error                  `json:"-"`
	Error  string                 `json:"error,omitempty"`
}

// Sweep sizes every input on at most workers goroutines. Points keep the order of
// inputs; a failing point does not stop the sweep, a cancelled context does.
func Sweep(ctx context.Context, c Calculator, inputs []Input, workers int) ([]SweepPoint, error) {
	if workers < 1 {
		workers = 1
	}
	start := time.Now()
	points := make([]SweepPoint, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range inputs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := c.Size(inputs[i])
			p := SweepPoint{Index: i, Duty: inputs[i].Duty, Result: res, Err: err}
			if err != nil {
				p.Error = err.Error()
			}
			points[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"points":  len(points),
		"workers": workers,
		"elapsed": time.Since(start),
	}).Debug("sweep finished")
	return points, nil
}

// DutySpan returns steps duties evenly spaced over [from, to]. steps is bounded by
// maxSteps before anything is allocated.
func DutySpan(from, to float64, steps, maxSteps int) ([]float64, error) {
	switch {
	case steps < 1:
		return nil, fmt.Errorf("sweep needs at least one step, got %d", steps)
	case steps > maxSteps:
		return nil, fmt.Errorf("sweep of %d steps exceeds the limit of %d", steps, maxSteps)
	case steps == 1:
		return []float64{from}, nil
	}
	return floats.Span(make([]float64, steps), from, to), nil
}

// NewSweep expands a sweep description into one input per duty, at most maxSteps.
func NewSweep(sc model.SweepCase, maxSteps int) ([]Input, error) {
	base, err := NewInput(sc.Case)
	if err != nil {
		return nil, err
	}
	duties, err := DutySpan(sc.DutyFrom, sc.DutyTo, sc.Steps, maxSteps)
	if err != nil {
		return nil, err
	}
	inputs := make([]Input, len(duties))
	for i, q := range duties {
		inputs[i] = base
		inputs[i].Duty = q
	}
	return inputs, nil
}
