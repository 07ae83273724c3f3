package engine

import (
	"fmt"
	"math"

	"pump_sizing"
)

// FrictionSolver computes the Darcy friction factor from the Reynolds number
// and relative roughness.
//
// Regime policy:
//   - Re < 2300: laminar, f = 64/Re (closed form).
//   - Re >= 4000: turbulent, implicit Colebrook–White solved by fixed-point
//     iteration seeded with the Swamee–Jain explicit approximation.
//   - 2300 <= Re < 4000: linear interpolation between the laminar value at
//     Re=2300 and the turbulent value at Re=4000. There is no accepted closed
//     form in this band; the result carries an Approximate flag.
type FrictionSolver struct {
	tol     float64
	maxIter int
}

// NewFrictionSolver builds a solver from cfg (zero fields get defaults).
func NewFrictionSolver(cfg Config) *FrictionSolver {
	cfg = cfg.withDefaults()
	return &FrictionSolver{tol: cfg.FrictionTol, maxIter: cfg.FrictionMaxIter}
}

// Regime classifies a Reynolds number.
func Regime(re float64) string {
	switch {
	case re < ReLaminarMax:
		return pump_sizing.RegimeLaminar
	case re < ReTurbulentMin:
		return pump_sizing.RegimeTransitional
	default:
		return pump_sizing.RegimeTurbulent
	}
}

// Solve returns the friction factor for the given Reynolds number and
// relative roughness ε/D. A non-converged Colebrook iteration is not fatal:
// the Swamee–Jain seed is returned with Fallback=true.
func (s *FrictionSolver) Solve(re, relRoughness float64) (pump_sizing.FrictionResult, error) {
	if re <= 0 {
		return pump_sizing.FrictionResult{}, fmt.Errorf("%w: Reynolds number must be positive, got %g", ErrInvalidInput, re)
	}
	if relRoughness < 0 || relRoughness >= 1 {
		return pump_sizing.FrictionResult{}, fmt.Errorf("%w: relative roughness must be in [0,1), got %g", ErrInvalidInput, relRoughness)
	}

	switch Regime(re) {
	case pump_sizing.RegimeLaminar:
		return pump_sizing.FrictionResult{Factor: 64 / re, Regime: pump_sizing.RegimeLaminar}, nil

	case pump_sizing.RegimeTurbulent:
		f, iters, converged := s.colebrook(re, relRoughness)
		return pump_sizing.FrictionResult{
			Factor:     f,
			Regime:     pump_sizing.RegimeTurbulent,
			Iterations: iters,
			Fallback:   !converged,
		}, nil

	default:
		// Interpolate across the transitional band between the two anchors.
		fLam := 64 / ReLaminarMax
		fTurb, iters, converged := s.colebrook(ReTurbulentMin, relRoughness)
		frac := (re - ReLaminarMax) / (ReTurbulentMin - ReLaminarMax)
		return pump_sizing.FrictionResult{
			Factor:      fLam + (fTurb-fLam)*frac,
			Regime:      pump_sizing.RegimeTransitional,
			Iterations:  iters,
			Fallback:    !converged,
			Approximate: true,
		}, nil
	}
}

// SwameeJain is the explicit approximation to Colebrook–White, accurate to
// about 1% for 4e3 < Re < 1e8 and 1e-6 < ε/D < 1e-2.
func SwameeJain(re, relRoughness float64) float64 {
	term := relRoughness/3.7 + 5.74/math.Pow(re, 0.9)
	lg := math.Log10(term)
	return 0.25 / (lg * lg)
}

// colebrook runs the fixed-point iteration
//
//	f_{k+1} = 0.25 / log10(ε/(3.7D) + 2.51/(Re·√f_k))²
//
// seeded with Swamee–Jain, until |f_{k+1}-f_k| < tol or the cap is hit.
func (s *FrictionSolver) colebrook(re, relRoughness float64) (f float64, iters int, converged bool) {
	f = SwameeJain(re, relRoughness)
	seed := f
	for iters = 1; iters <= s.maxIter; iters++ {
		lg := math.Log10(relRoughness/3.7 + 2.51/(re*math.Sqrt(f)))
		next := 0.25 / (lg * lg)
		if math.Abs(next-f) < s.tol {
			return next, iters, true
		}
		f = next
	}
	return seed, s.maxIter, false
}
