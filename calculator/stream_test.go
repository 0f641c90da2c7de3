package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnulusDiameters(t *testing.T) {
	g := airWater().Geometry
	dh, de, err := g.AnnulusDiameters()
	require.NoError(t, err)
	assert.InDelta(t, 0.02, dh, 1e-12)
	assert.InDelta(t, (0.05*0.05-0.03*0.03)/0.03, de, 1e-12)
	assert.Greater(t, dh, 0.0)

	g.AnnulusInnerDiameter = g.PipeOuterDiameter
	_, _, err = g.AnnulusDiameters()
	var geomErr *InvalidGeometryError
	assert.ErrorAs(t, err, &geomErr)
}

func TestGeometryValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*TubeGeometry)
		field  string
	}{
		{"zero pipe diameter", func(g *TubeGeometry) { g.PipeInnerDiameter = 0 }, "pipe_inner_diameter"},
		{"no pipe wall", func(g *TubeGeometry) { g.PipeOuterDiameter = g.PipeInnerDiameter }, "pipe_outer_diameter"},
		{"annulus inside pipe", func(g *TubeGeometry) { g.AnnulusInnerDiameter = 0.02 }, "annulus_inner_diameter"},
		{"negative wall conductivity", func(g *TubeGeometry) { g.WallConductivity = -1 }, "wall_conductivity"},
		{"negative fouling", func(g *TubeGeometry) { g.FoulingOuter = -1e-4 }, "fouling_outer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := airWater().Geometry
			tt.modify(&g)
			var geomErr *InvalidGeometryError
			require.ErrorAs(t, g.Validate(), &geomErr)
			assert.Equal(t, tt.field, geomErr.Field)
		})
	}
	assert.NoError(t, airWater().Geometry.Validate())
}

func TestNusseltExponent(t *testing.T) {
	in := airWater()
	n, err := in.Hot.NusseltExponent()
	require.NoError(t, err)
	assert.Equal(t, 0.3, n)

	n, err = in.Cold.NusseltExponent()
	require.NoError(t, err)
	assert.Equal(t, 0.4, n)

	in.Cold.Mode = ModeHeated
	n, err = in.Cold.NusseltExponent()
	require.NoError(t, err)
	assert.Equal(t, 0.4, n)

	in.Cold.Mode = "boiling"
	_, err = in.Cold.NusseltExponent()
	assert.ErrorIs(t, err, ErrModeMismatch)
}

func TestVelocityScalesWithDuty(t *testing.T) {
	in := airWater()
	area := in.Geometry.PipeFlowArea()
	v1, err := Velocity(1000, in.Hot, area)
	require.NoError(t, err)
	v2, err := Velocity(2000, in.Hot, area)
	require.NoError(t, err)
	assert.InEpsilon(t, 2*v1, v2, 1e-12)

	// the sign of the temperature change does not matter
	in.Hot.TIn, in.Hot.TOut = in.Hot.TOut, in.Hot.TIn
	v3, err := Velocity(1000, in.Hot, area)
	require.NoError(t, err)
	assert.Equal(t, v1, v3)
}

func TestDittusBoelter(t *testing.T) {
	assert.InDelta(t, 0.023*math.Pow(1e4, 0.8), DittusBoelter(1e4, 1, 0.4), 1e-9)
	assert.InDelta(t, 80.41, DittusBoelter(11135.8, 5.8288, 0.4), 0.01)
}

func TestClassify(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, RegimeLaminar, cfg.classify(2299))
	assert.Equal(t, RegimeTransitional, cfg.classify(2300))
	assert.Equal(t, RegimeTransitional, cfg.classify(9999))
	assert.Equal(t, RegimeTurbulent, cfg.classify(1e4))
}

func TestFrictionFactor(t *testing.T) {
	assert.InDelta(t, 0.064, FrictionFactor(1000, 2300), 1e-12)
	assert.InDelta(t, 0.01799, FrictionFactor(1e5, 2300), 1e-4)
}
