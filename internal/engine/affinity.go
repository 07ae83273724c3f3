package engine

import (
	"fmt"

	"pump_sizing"
)

// Affinity-law confidence bounds. Efficiency invariance is the standard
// affinity assumption and only holds for small ratio deviations; outside
// [0.8, 1.2] the scaled curve is flagged low-confidence but not rejected.
const (
	affinityLowRatio  = 0.8
	affinityHighRatio = 1.2
)

// ScaleCurve applies the affinity laws for a speed ratio N₂/N₁ (or diameter
// ratio D₂/D₁) r to a fitted pump curve:
//
//	Q₂ = Q₁·r    H₂ = H₁·r²    P₂ = P₁·r³    η₂ = η₁
//
// NPSHr samples scale as heads (r²). The source model is never mutated; the
// transformed sample points are refitted into a new, independent model.
// lowConfidence is set when r falls outside [0.8, 1.2].
func ScaleCurve(m *PumpCurveModel, r float64) (scaled *PumpCurveModel, lowConfidence bool, err error) {
	if r <= 0 {
		return nil, false, fmt.Errorf("%w: affinity ratio must be positive, got %g", ErrInvalidInput, r)
	}
	src := m.Samples()
	out := CurveSamples{
		Head:       scalePoints(src.Head, r, r*r),
		Power:      scalePoints(src.Power, r, r*r*r),
		Efficiency: scalePoints(src.Efficiency, r, 1),
		NPSHR:      scalePoints(src.NPSHR, r, r*r),
	}
	scaled, err = NewPumpCurveModel(out)
	if err != nil {
		return nil, false, err
	}
	return scaled, r < affinityLowRatio || r > affinityHighRatio, nil
}

func scalePoints(pts []pump_sizing.CurvePoint, qFactor, vFactor float64) []pump_sizing.CurvePoint {
	if pts == nil {
		return nil
	}
	out := make([]pump_sizing.CurvePoint, len(pts))
	for i, p := range pts {
		out[i] = pump_sizing.CurvePoint{Q: p.Q * qFactor, V: p.V * vFactor}
	}
	return out
}
