package calculator

import (
	"fmt"

	"gopkg.in/ini.v1"
)

type Config struct {
	// [calculator]
	MaxIterations  int
	Tolerance      float64
	LaminarLimit   float64
	TurbulentLimit float64
	PrandtlMin     float64
	PrandtlMax     float64

	// [multipass]
	MaxPassLength float64 // m, 0 keeps a single pass
	Arrangement   Arrangement
	Shells        int
	MinCorrection float64

	// [hydraulics]
	PumpEfficiency  float64
	MissionDuration float64 // s

	// [sweep]
	Workers  int
	MaxSteps int
}

// DefaultConfig is the configuration of an empty ini file.
func DefaultConfig() Config {
	return loadCfg(ini.Empty())
}

// LoadConfig reads an ini file; absent keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := loadCfg(file)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func loadCfg(file *ini.File) Config {
	calc := file.Section("calculator")
	mp := file.Section("multipass")
	hyd := file.Section("hydraulics")
	return Config{
		MaxIterations:  calc.Key("MaxIterations").MustInt(100),
		Tolerance:      calc.Key("Tolerance").MustFloat64(1e-6),
		LaminarLimit:   calc.Key("LaminarLimit").MustFloat64(2300),
		TurbulentLimit: calc.Key("TurbulentLimit").MustFloat64(1e4),
		PrandtlMin:     calc.Key("PrandtlMin").MustFloat64(0.6),
		PrandtlMax:     calc.Key("PrandtlMax").MustFloat64(160),

		MaxPassLength: mp.Key("MaxPassLength").MustFloat64(0),
		Arrangement:   Arrangement(mp.Key("Arrangement").MustString(string(ArrangementSeriesCounterflow))),
		Shells:        mp.Key("Shells").MustInt(1),
		MinCorrection: mp.Key("MinCorrection").MustFloat64(0.75),

		PumpEfficiency:  hyd.Key("PumpEfficiency").MustFloat64(0.7),
		MissionDuration: hyd.Key("MissionDuration").MustFloat64(35 * 60),

		Workers:  file.Section("sweep").Key("Workers").MustInt(4),
		MaxSteps: file.Section("sweep").Key("MaxSteps").MustInt(10000),
	}
}

func (c Config) Validate() error {
	switch {
	case c.MaxIterations < 1:
		return fmt.Errorf("MaxIterations must be at least 1, got %d", c.MaxIterations)
	case !(c.Tolerance > 0):
		return fmt.Errorf("Tolerance must be positive, got %g", c.Tolerance)
	case !(c.LaminarLimit > 0) || c.TurbulentLimit < c.LaminarLimit:
		return fmt.Errorf("need 0 < LaminarLimit <= TurbulentLimit, got %g and %g", c.LaminarLimit, c.TurbulentLimit)
	case c.PrandtlMax < c.PrandtlMin:
		return fmt.Errorf("PrandtlMax %g below PrandtlMin %g", c.PrandtlMax, c.PrandtlMin)
	case c.MaxPassLength < 0:
		return fmt.Errorf("MaxPassLength must not be negative, got %g", c.MaxPassLength)
	case c.Arrangement != ArrangementSeriesCounterflow && c.Arrangement != ArrangementShellAndTube:
		return fmt.Errorf("unknown Arrangement %q", c.Arrangement)
	case c.Shells < 1:
		return fmt.Errorf("Shells must be at least 1, got %d", c.Shells)
	case !(c.PumpEfficiency > 0 && c.PumpEfficiency <= 1):
		return fmt.Errorf("PumpEfficiency must be in (0, 1], got %g", c.PumpEfficiency)
	case c.MissionDuration < 0:
		return fmt.Errorf("MissionDuration must not be negative, got %g", c.MissionDuration)
	case c.Workers < 1:
		return fmt.Errorf("Workers must be at least 1, got %d", c.Workers)
	case c.MaxSteps < 1:
		return fmt.Errorf("MaxSteps must be at least 1, got %d", c.MaxSteps)
	}
	return nil
}
