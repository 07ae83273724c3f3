package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"pump_sizing"
	"pump_sizing/internal/engine"
)

func newFriction() *engine.FrictionSolver {
	return engine.NewFrictionSolver(engine.DefaultConfig())
}

// TestFriction_LaminarClosedForm verifies f = 64/Re across the laminar band.
func TestFriction_LaminarClosedForm(t *testing.T) {
	s := newFriction()
	for _, re := range []float64{1, 100, 500, 1000, 2000, 2299.9} {
		res, err := s.Solve(re, 0.001)
		require.NoError(t, err)
		require.Equal(t, pump_sizing.RegimeLaminar, res.Regime)
		require.InEpsilon(t, 64/re, res.Factor, 1e-12, "Re=%g", re)
		require.False(t, res.Fallback)
		require.False(t, res.Approximate)
	}
}

// TestFriction_ColebrookMatchesSwameeJain is the documented calibration
// cross-check: at Re=1e5, ε/D=1e-4 the two must agree within 1%.
func TestFriction_ColebrookMatchesSwameeJain(t *testing.T) {
	s := newFriction()
	res, err := s.Solve(1e5, 1e-4)
	require.NoError(t, err)
	require.Equal(t, pump_sizing.RegimeTurbulent, res.Regime)
	require.False(t, res.Fallback)

	seed := engine.SwameeJain(1e5, 1e-4)
	require.InDelta(t, seed, res.Factor, 0.01*seed)
}

// TestFriction_ReferenceScenario pins the turbulent value from the end-to-end
// scenario: Re≈127300, ε/D=5e-4 gives f≈0.0185 within 2%.
func TestFriction_ReferenceScenario(t *testing.T) {
	s := newFriction()
	res, err := s.Solve(127300, 5e-4)
	require.NoError(t, err)
	require.InDelta(t, 0.0185, res.Factor, 0.0185*0.02)
}

// TestFriction_TransitionalInterpolation checks the flagged linear blend
// between the laminar anchor at Re=2300 and the turbulent anchor at Re=4000.
func TestFriction_TransitionalInterpolation(t *testing.T) {
	s := newFriction()

	lam := 64.0 / engine.ReLaminarMax
	turb, err := s.Solve(engine.ReTurbulentMin, 1e-4)
	require.NoError(t, err)

	mid, err := s.Solve(3150, 1e-4)
	require.NoError(t, err)
	require.Equal(t, pump_sizing.RegimeTransitional, mid.Regime)
	require.True(t, mid.Approximate, "transitional result must be flagged approximate")

	frac := (3150 - engine.ReLaminarMax) / (engine.ReTurbulentMin - engine.ReLaminarMax)
	want := lam + (turb.Factor-lam)*frac
	require.InEpsilon(t, want, mid.Factor, 1e-9)
}

func TestFriction_InvalidInput(t *testing.T) {
	s := newFriction()
	cases := []struct {
		name string
		re   float64
		rr   float64
	}{
		{"zero reynolds", 0, 0.001},
		{"negative reynolds", -10, 0.001},
		{"negative roughness", 1e5, -0.1},
		{"roughness at one", 1e5, 1.0},
		{"roughness above one", 1e5, 1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Solve(tc.re, tc.rr)
			require.ErrorIs(t, err, engine.ErrInvalidInput)
		})
	}
}

// TestFriction_SmoothPipe sanity-checks the smooth-pipe limit against the
// Blasius correlation f ≈ 0.3164·Re^-0.25 (valid to a few percent here).
func TestFriction_SmoothPipe(t *testing.T) {
	s := newFriction()
	res, err := s.Solve(5e4, 0)
	require.NoError(t, err)
	blasius := 0.3164 / math.Pow(5e4, 0.25)
	require.InDelta(t, blasius, res.Factor, blasius*0.05)
}
