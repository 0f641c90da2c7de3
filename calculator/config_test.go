package calculator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 100, cfg.MaxIterations)
	assert.Equal(t, 1e-6, cfg.Tolerance)
	assert.Equal(t, 2300.0, cfg.LaminarLimit)
	assert.Equal(t, 1e4, cfg.TurbulentLimit)
	assert.Equal(t, 0.0, cfg.MaxPassLength)
	assert.Equal(t, ArrangementSeriesCounterflow, cfg.Arrangement)
	assert.Equal(t, 1, cfg.Shells)
	assert.Equal(t, 2100.0, cfg.MissionDuration)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 10000, cfg.MaxSteps)
	assert.NoError(t, cfg.Validate())
}

func writeIni(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeIni(t, `
[calculator]
Tolerance = 1e-9

[multipass]
MaxPassLength = 2.5
Arrangement = shell-and-tube
Shells = 2

[sweep]
Workers = 8
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1e-9, cfg.Tolerance)
	assert.Equal(t, 2.5, cfg.MaxPassLength)
	assert.Equal(t, ArrangementShellAndTube, cfg.Arrangement)
	assert.Equal(t, 2, cfg.Shells)
	assert.Equal(t, 8, cfg.Workers)
	// untouched keys keep their defaults
	assert.Equal(t, 100, cfg.MaxIterations)
	assert.Equal(t, 0.7, cfg.PumpEfficiency)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfig(writeIni(t, "[multipass]\nArrangement = cross-flow\n"))
	assert.ErrorContains(t, err, "Arrangement")

	_, err = LoadConfig(writeIni(t, "[hydraulics]\nPumpEfficiency = 1.5\n"))
	assert.ErrorContains(t, err, "PumpEfficiency")

	_, err = LoadConfig(writeIni(t, "[sweep]\nMaxSteps = 0\n"))
	assert.ErrorContains(t, err, "MaxSteps")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}
