package engine

import (
	"fmt"
	"math"
)

// Defaults for motor sizing and the API 610 continuous-flow window.
const (
	DefaultMotorEfficiency = 0.95
	DefaultServiceFactor   = 1.15
	MinFlowFraction        = 0.3 // fraction of BEP flow, recirculation limit
	MaxFlowFraction        = 1.2 // fraction of BEP flow, overload limit
)

// HydraulicPower is the useful power transferred to the fluid: ρ·g·Q·H (W).
func HydraulicPower(q, headM, density float64) (float64, error) {
	if q < 0 || headM < 0 || density <= 0 {
		return 0, fmt.Errorf("%w: hydraulic power needs Q>=0, H>=0, density>0", ErrInvalidInput)
	}
	return density * Gravity * q * headM, nil
}

// ShaftPower is hydraulic power divided by pump efficiency.
func ShaftPower(hydraulicW, efficiency float64) (float64, error) {
	if efficiency <= 0 || efficiency > 1 {
		return 0, fmt.Errorf("%w: efficiency must be in (0,1], got %g", ErrInvalidInput, efficiency)
	}
	return hydraulicW / efficiency, nil
}

// MotorPower sizes the driver: shaft power over motor efficiency times a
// service factor. Zero arguments select the defaults.
func MotorPower(shaftW, motorEfficiency, serviceFactor float64) (float64, error) {
	if motorEfficiency == 0 {
		motorEfficiency = DefaultMotorEfficiency
	}
	if serviceFactor == 0 {
		serviceFactor = DefaultServiceFactor
	}
	if motorEfficiency <= 0 || motorEfficiency > 1 {
		return 0, fmt.Errorf("%w: motor efficiency must be in (0,1], got %g", ErrInvalidInput, motorEfficiency)
	}
	if serviceFactor < 1 {
		return 0, fmt.Errorf("%w: service factor must be >= 1, got %g", ErrInvalidInput, serviceFactor)
	}
	return shaftW / motorEfficiency * serviceFactor, nil
}

// SpecificSpeed is the metric specific speed n_s = N·√(Q·3600)/H^0.75 at the
// best-efficiency point, used to classify the pump geometry.
func SpecificSpeed(q, headM, speedRPM float64) (float64, error) {
	if q <= 0 || headM <= 0 || speedRPM <= 0 {
		return 0, fmt.Errorf("%w: specific speed needs positive Q, H and speed", ErrInvalidInput)
	}
	return speedRPM * math.Sqrt(q*3600) / math.Pow(headM, 0.75), nil
}

// ClassifyPump maps metric specific speed to the conventional impeller class.
func ClassifyPump(specificSpeed float64) string {
	switch {
	case specificSpeed < 20:
		return "radial, low specific speed"
	case specificSpeed < 40:
		return "radial"
	case specificSpeed < 80:
		return "radial-mixed"
	case specificSpeed < 150:
		return "mixed flow"
	case specificSpeed < 300:
		return "axial-leaning"
	default:
		return "axial (propeller)"
	}
}

// ContinuousFlowWindow returns the API 610 recommended continuous operating
// window around the best-efficiency flow.
func ContinuousFlowWindow(bepFlow float64) (minFlow, maxFlow float64, err error) {
	if bepFlow <= 0 {
		return 0, 0, fmt.Errorf("%w: BEP flow must be positive, got %g", ErrInvalidInput, bepFlow)
	}
	return bepFlow * MinFlowFraction, bepFlow * MaxFlowFraction, nil
}
