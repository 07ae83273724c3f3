package engine

import (
	"fmt"
	"math"

	"pump_sizing"
)

// HeadFunc is a system curve expressed as a function of flow rate.
// SystemCurve.Head satisfies it.
type HeadFunc func(q float64) (float64, error)

// OperatingPointSolver finds the flow at which the pump head curve meets the
// system head curve. It scans g(Q) = H_pump(Q) − H_system(Q) for a sign
// change over the overlapping domain, then closes the bracket with bisection
// refined by secant steps.
//
// Edge policy: no sign change anywhere → ErrNoOperatingPoint, never a guess.
// Multiple sign changes (possible with fitted curves) → the lowest-Q root,
// the first stable intersection moving from shutoff head.
type OperatingPointSolver struct {
	tolRel  float64
	maxIter int
	samples int
}

func NewOperatingPointSolver(cfg Config) *OperatingPointSolver {
	cfg = cfg.withDefaults()
	return &OperatingPointSolver{tolRel: cfg.RootTolRel, maxIter: cfg.RootMaxIter, samples: cfg.ScanSamples}
}

// Solve intersects system with pump over the pump's sampled domain clipped to
// Q >= 0. Power and efficiency are evaluated at the root when the model
// carries those fits.
func (s *OperatingPointSolver) Solve(system HeadFunc, pump *PumpCurveModel) (pump_sizing.OperatingPoint, error) {
	if system == nil || pump == nil {
		return pump_sizing.OperatingPoint{}, fmt.Errorf("%w: solver needs both a system curve and a pump curve", ErrInvalidInput)
	}
	qLo, qHi := pump.Domain()
	if qLo < 0 {
		qLo = 0
	}
	if qHi <= qLo {
		return pump_sizing.OperatingPoint{}, fmt.Errorf("%w: pump curve domain [%g, %g] is empty", ErrInvalidInput, qLo, qHi)
	}

	g := func(q float64) (float64, error) {
		sys, err := system(q)
		if err != nil {
			return 0, err
		}
		h, _ := pump.Head(q)
		return h - sys, nil
	}

	lo, hi, gLo, gHi, err := s.scanForBracket(g, qLo, qHi)
	if err != nil {
		return pump_sizing.OperatingPoint{}, err
	}

	root, iters, converged, err := s.refine(g, lo, hi, gLo, gHi, qHi)
	if err != nil {
		return pump_sizing.OperatingPoint{}, err
	}

	head, extrapolated := pump.Head(root)
	op := pump_sizing.OperatingPoint{
		FlowRate:   root,
		HeadM:      head,
		Iterations: iters,
		Fallback:   !converged,
		OutOfRange: extrapolated,
	}
	if p, ok := pump.Power(root); ok {
		op.PowerW = p
	}
	if eta, ok := pump.Efficiency(root); ok {
		op.Efficiency = eta
	}
	return op, nil
}

// scanForBracket walks a uniform grid across [qLo, qHi] and returns the first
// (lowest-Q) subinterval where g changes sign.
func (s *OperatingPointSolver) scanForBracket(g HeadFunc, qLo, qHi float64) (lo, hi, gLo, gHi float64, err error) {
	step := (qHi - qLo) / float64(s.samples)
	prevQ := qLo
	prevG, err := g(prevQ)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	for i := 1; i <= s.samples; i++ {
		q := qLo + float64(i)*step
		if i == s.samples {
			q = qHi // avoid drifting past the domain edge
		}
		cur, err := g(q)
		if err != nil {
			return 0, 0, 0, 0, err
		}
		if prevG == 0 {
			return prevQ, prevQ, 0, 0, nil
		}
		if prevG*cur <= 0 {
			return prevQ, q, prevG, cur, nil
		}
		prevQ, prevG = q, cur
	}
	return 0, 0, 0, 0, ErrNoOperatingPoint
}

// refine closes the bracket [lo, hi] down to the relative tolerance. Each
// iteration tries a secant step first and falls back to the midpoint when the
// secant estimate leaves the bracket. Hitting the cap is not fatal: the best
// midpoint is returned with converged=false.
func (s *OperatingPointSolver) refine(g HeadFunc, lo, hi, gLo, gHi, domainHi float64) (root float64, iters int, converged bool, err error) {
	if lo == hi {
		return lo, 0, true, nil
	}
	tol := s.tolRel * math.Max(domainHi, 1e-12)
	for iters = 1; iters <= s.maxIter; iters++ {
		var q float64
		if gHi != gLo {
			q = hi - gHi*(hi-lo)/(gHi-gLo) // secant
		}
		if q <= lo || q >= hi {
			q = (lo + hi) / 2
		}
		gq, err := g(q)
		if err != nil {
			return 0, iters, false, err
		}
		if gq == 0 || hi-lo <= tol {
			return q, iters, true, nil
		}
		if gLo*gq < 0 {
			hi, gHi = q, gq
		} else {
			lo, gLo = q, gq
		}
	}
	return (lo + hi) / 2, s.maxIter, false, nil
}
