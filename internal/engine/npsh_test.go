package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"pump_sizing/internal/engine"
)

func refSuction() engine.SuctionConditions {
	return engine.SuctionConditions{
		PressurePa:      101300,
		VaporPressurePa: 2300,
		VelocityMS:      1.0,
		ElevationM:      2.0,
		Density:         1000,
	}
}

// TestNPSH_Available pins the reference scenario:
// (101300−2300)/(1000·9.81) − 2.0 − 1.0²/(2·9.81) ≈ 8.04 m.
func TestNPSH_Available(t *testing.T) {
	ev := engine.NewNPSHEvaluator(engine.DefaultConfig())

	avail, err := ev.Available(refSuction())
	require.NoError(t, err)

	want := (101300.0-2300.0)/(1000*engine.Gravity) - 2.0 - 1.0/(2*engine.Gravity)
	require.InDelta(t, want, avail, 1e-9)
	require.InDelta(t, 8.04, avail, 0.01)
}

func TestNPSH_FloodedSuction(t *testing.T) {
	ev := engine.NewNPSHEvaluator(engine.DefaultConfig())
	c := refSuction()
	c.ElevationM = -3.0 // liquid level above the pump centerline

	avail, err := ev.Available(c)
	require.NoError(t, err)
	require.InDelta(t, 13.04, avail, 0.01)
}

func TestNPSH_MarginAndRiskFlag(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.NPSHMinMarginM = 1.0
	ev := engine.NewNPSHEvaluator(cfg)

	res := ev.Evaluate(8.0, 6.5)
	require.InDelta(t, 1.5, res.MarginM, 1e-12)
	require.False(t, res.CavitationRisk)
	require.Equal(t, 1.0, res.MinMarginM)

	res = ev.Evaluate(8.0, 7.5)
	require.InDelta(t, 0.5, res.MarginM, 1e-12)
	require.True(t, res.CavitationRisk, "margin below the configured minimum")

	res = ev.Evaluate(5.0, 7.0)
	require.True(t, res.CavitationRisk)
	require.Less(t, res.MarginM, 0.0)
}

func TestNPSH_EvaluateAtCurve(t *testing.T) {
	ev := engine.NewNPSHEvaluator(engine.DefaultConfig())
	pump, err := engine.NewPumpCurveModel(refPumpSamples())
	require.NoError(t, err)

	res, err := ev.EvaluateAt(refSuction(), pump, 0.02)
	require.NoError(t, err)
	require.InDelta(t, 2.0+20*0.02+1500*0.02*0.02, res.RequiredM, 1e-9)
	require.InDelta(t, res.AvailableM-res.RequiredM, res.MarginM, 1e-12)
}

// TestNPSH_MissingRequired: a curve without NPSHr data is the caller's
// problem to fix, surfaced explicitly.
func TestNPSH_MissingRequired(t *testing.T) {
	ev := engine.NewNPSHEvaluator(engine.DefaultConfig())
	pump, err := engine.NewPumpCurveModel(engine.CurveSamples{
		Head: quadSamples(30, 0, -1000, 0, 0.01, 0.02, 0.03),
	})
	require.NoError(t, err)

	_, err = ev.EvaluateAt(refSuction(), pump, 0.01)
	require.ErrorIs(t, err, engine.ErrMissingData)
}

// TestEstimateNPSHR pins the Hydraulic Institute correlation:
// Q=0.05 m³/s (≈792.5 gpm) at 1750 rpm with S=11000 gives ≈2.25 m.
func TestEstimateNPSHR(t *testing.T) {
	got, err := engine.EstimateNPSHR(0.05, 1750, 11000)
	require.NoError(t, err)

	want := math.Pow(1750*math.Sqrt(0.05*15850.32)/11000, 4.0/3.0) * 0.3048
	require.InDelta(t, want, got, 1e-12)
	require.InDelta(t, 2.25, got, 0.01)
}

// TestEstimateNPSHR_DefaultS: a zero suction specific speed selects the
// mid-range default 11000.
func TestEstimateNPSHR_DefaultS(t *testing.T) {
	withDefault, err := engine.EstimateNPSHR(0.05, 1750, 0)
	require.NoError(t, err)
	explicit, err := engine.EstimateNPSHR(0.05, 1750, 11000)
	require.NoError(t, err)
	require.Equal(t, explicit, withDefault)
}

func TestEstimateNPSHR_GrowsWithFlowAndSpeed(t *testing.T) {
	base, err := engine.EstimateNPSHR(0.02, 1450, 0)
	require.NoError(t, err)

	moreFlow, err := engine.EstimateNPSHR(0.04, 1450, 0)
	require.NoError(t, err)
	require.Greater(t, moreFlow, base)

	faster, err := engine.EstimateNPSHR(0.02, 2900, 0)
	require.NoError(t, err)
	require.Greater(t, faster, base)
}

func TestEstimateNPSHR_InvalidInput(t *testing.T) {
	_, err := engine.EstimateNPSHR(0, 1750, 11000)
	require.ErrorIs(t, err, engine.ErrInvalidInput)

	_, err = engine.EstimateNPSHR(0.05, 0, 11000)
	require.ErrorIs(t, err, engine.ErrInvalidInput)

	_, err = engine.EstimateNPSHR(0.05, 1750, -1)
	require.ErrorIs(t, err, engine.ErrInvalidInput)
}

func TestNPSH_InvalidInput(t *testing.T) {
	ev := engine.NewNPSHEvaluator(engine.DefaultConfig())

	cases := []struct {
		name   string
		mutate func(*engine.SuctionConditions)
	}{
		{"zero density", func(c *engine.SuctionConditions) { c.Density = 0 }},
		{"zero suction pressure", func(c *engine.SuctionConditions) { c.PressurePa = 0 }},
		{"negative vapor pressure", func(c *engine.SuctionConditions) { c.VaporPressurePa = -1 }},
		{"negative velocity", func(c *engine.SuctionConditions) { c.VelocityMS = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := refSuction()
			tc.mutate(&c)
			_, err := ev.Available(c)
			require.ErrorIs(t, err, engine.ErrInvalidInput)
		})
	}
}
