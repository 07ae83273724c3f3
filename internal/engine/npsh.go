package engine

import (
	"fmt"
	"math"

	"pump_sizing"
)

// SuctionConditions describe the pump suction side for NPSH evaluation.
// Elevation is the static suction lift: the height of the pump centerline
// above the liquid level (negative for a flooded suction).
type SuctionConditions struct {
	PressurePa      float64 // absolute pressure at the liquid surface, Pa
	VaporPressurePa float64 // fluid vapor pressure at pumping temperature, Pa
	VelocityMS      float64 // velocity in the suction line, m/s
	ElevationM      float64 // static suction lift, m
	Density         float64 // kg/m³
}

// NPSHEvaluator computes available suction head and compares it against the
// pump's required value. The minimum margin is configuration, not a hardcoded
// constant; standards commonly recommend 0.5–1.0 m.
type NPSHEvaluator struct {
	minMargin float64
}

func NewNPSHEvaluator(cfg Config) *NPSHEvaluator {
	return &NPSHEvaluator{minMargin: cfg.withDefaults().NPSHMinMarginM}
}

// Available computes NPSHa by direct algebra, no iteration:
//
//	NPSHa = (p_s − p_v)/(ρg) − z − v²/2g
func (e *NPSHEvaluator) Available(c SuctionConditions) (float64, error) {
	if c.Density <= 0 {
		return 0, fmt.Errorf("%w: density must be positive, got %g", ErrInvalidInput, c.Density)
	}
	if c.PressurePa <= 0 {
		return 0, fmt.Errorf("%w: suction pressure must be positive absolute, got %g", ErrInvalidInput, c.PressurePa)
	}
	if c.VaporPressurePa < 0 {
		return 0, fmt.Errorf("%w: vapor pressure must be non-negative, got %g", ErrInvalidInput, c.VaporPressurePa)
	}
	if c.VelocityMS < 0 {
		return 0, fmt.Errorf("%w: suction velocity must be non-negative, got %g", ErrInvalidInput, c.VelocityMS)
	}
	pressureHead := (c.PressurePa - c.VaporPressurePa) / (c.Density * Gravity)
	velocityHead := c.VelocityMS * c.VelocityMS / (2 * Gravity)
	return pressureHead - c.ElevationM - velocityHead, nil
}

// Evaluate compares available against required head and sets the
// cavitation-risk flag when the margin falls below the configured minimum.
func (e *NPSHEvaluator) Evaluate(availableM, requiredM float64) pump_sizing.NPSHResult {
	margin := availableM - requiredM
	return pump_sizing.NPSHResult{
		AvailableM:     availableM,
		RequiredM:      requiredM,
		MarginM:        margin,
		MinMarginM:     e.minMargin,
		CavitationRisk: margin < e.minMargin,
	}
}

// Unit conversions for the Hydraulic Institute NPSH-required correlation,
// which is stated in US units (rpm, gpm, ft).
const (
	gpmPerM3S     = 15850.32
	metersPerFoot = 0.3048
)

// defaultSuctionSpecificSpeed is a mid-range S for centrifugal pumps;
// typical machines run 8000-13000.
const defaultSuctionSpecificSpeed = 11000.0

// EstimateNPSHR estimates NPSH-required from suction specific speed per
// Hydraulic Institute practice:
//
//	NPSHr = (N·√Q_gpm / S)^(4/3)  [ft]
//
// suctionSpecificSpeed=0 selects the default S=11000. Use it when the
// manufacturer curve carries no NPSHr samples.
func EstimateNPSHR(q, speedRPM, suctionSpecificSpeed float64) (float64, error) {
	if q <= 0 {
		return 0, fmt.Errorf("%w: flow rate must be positive, got %g", ErrInvalidInput, q)
	}
	if speedRPM <= 0 {
		return 0, fmt.Errorf("%w: pump speed must be positive, got %g", ErrInvalidInput, speedRPM)
	}
	if suctionSpecificSpeed < 0 {
		return 0, fmt.Errorf("%w: suction specific speed must be non-negative, got %g", ErrInvalidInput, suctionSpecificSpeed)
	}
	if suctionSpecificSpeed == 0 {
		suctionSpecificSpeed = defaultSuctionSpecificSpeed
	}
	ft := math.Pow(speedRPM*math.Sqrt(q*gpmPerM3S)/suctionSpecificSpeed, 4.0/3.0)
	return ft * metersPerFoot, nil
}

// EvaluateAt reads NPSH-required from the pump curve at the operating flow.
// A curve without NPSHr samples surfaces ErrMissingData; the caller must then
// supply the required value and use Evaluate directly.
func (e *NPSHEvaluator) EvaluateAt(c SuctionConditions, pump *PumpCurveModel, qStar float64) (pump_sizing.NPSHResult, error) {
	avail, err := e.Available(c)
	if err != nil {
		return pump_sizing.NPSHResult{}, err
	}
	req, err := pump.NPSHR(qStar)
	if err != nil {
		return pump_sizing.NPSHResult{}, err
	}
	return e.Evaluate(avail, req), nil
}
