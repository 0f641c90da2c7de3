package calculator

import (
	"errors"
	"fmt"
)

var (
	ErrNonPositiveDuty          = errors.New("heat duty must be positive")
	ErrZeroTemperatureChange    = errors.New("outlet temperature equals inlet temperature")
	ErrNonPositiveVelocity      = errors.New("flow velocity is not positive")
	ErrModeMismatch             = errors.New("heating flag contradicts stream temperatures")
	ErrTemperatureCross         = errors.New("temperature cross between streams")
	ErrEqualTerminalDifferences = errors.New("terminal temperature differences are equal")
	ErrInfeasibleCorrection     = errors.New("no multi-pass correction factor for these temperatures")
	ErrStreamDirection          = errors.New("stream does not exchange heat in the expected direction")
	ErrInvalidPassLayout        = errors.New("pass layout must not be negative")
)

// InvalidInputError reports a non-physical or degenerate input quantity.
type InvalidInputError struct {
	Field string
	Value float64
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s = %g: %v", e.Field, e.Value, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// InvalidGeometryError reports a tube/annulus geometry that cannot carry flow.
type InvalidGeometryError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry %s = %g: %s", e.Field, e.Value, e.Reason)
}

// ConvergenceError is returned when the length iteration exceeds its bound.
type ConvergenceError struct {
	Iterations int
	Last       float64
	Delta      float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("length did not converge after %d iterations (last %g, delta %g)", e.Iterations, e.Last, e.Delta)
}

// RegimeWarning is non-fatal: the Dittus-Boelter correlation was applied outside
// turbulent, fully developed flow or outside its Prandtl range.
type RegimeWarning struct {
	Side     Side    `json:"side"`
	Regime   Regime  `json:"regime"`
	Reynolds float64 `json:"reynolds"`
	Prandtl  float64 `json:"prandtl"`
	Message  string  `json:"message"`
}

func (w RegimeWarning) Error() string {
	return fmt.Sprintf("%s stream: %s (Re = %.0f, Pr = %.3g)", w.Side, w.Message, w.Reynolds, w.Prandtl)
}

func invalidInput(field string, value float64, err error) error {
	return &InvalidInputError{Field: field, Value: value, Err: err}
}

func invalidGeometry(field string, value float64, reason string) error {
	return &InvalidGeometryError{Field: field, Value: value, Reason: reason}
}
