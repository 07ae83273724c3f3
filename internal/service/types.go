package service

import (
	"time"

	"pump_sizing"
	"pump_sizing/internal/engine"
)

// FluidSpec selects the working fluid. With Density and KinematicVisc both
// zero the properties are resolved from the built-in water table at
// TemperatureC; explicit values bypass the table entirely.
type FluidSpec struct {
	TemperatureC  float64
	Density       float64 // kg/m³
	KinematicVisc float64 // m²/s
	VaporPressure float64 // Pa
}

// SystemParams describes one piping system evaluation.
type SystemParams struct {
	Fluid       FluidSpec
	Segment     pump_sizing.PipeSegment
	Material    string // optional; fills Segment.RoughnessM from the standards table
	Fittings    []pump_sizing.FittingLoss
	StaticHeadM float64
	FlowRate    float64 // m³/s
}

// SystemCurveParams sweeps the system from Q=0 to QMax. System.FlowRate is
// ignored; the sweep chooses its own flow rates.
type SystemCurveParams struct {
	System SystemParams
	QMax   float64 // m³/s, > 0
	Points int     // 0 means defaultCurvePoints
}

// SystemCurveResult is the swept curve plus the resolved fluid it was
// evaluated with.
type SystemCurveResult struct {
	Fluid  pump_sizing.FluidProperties `json:"fluid"`
	Points []pump_sizing.CurvePoint    `json:"points"`
}

// CurveFitParams carries the sampled pump data to fit.
type CurveFitParams struct {
	Samples engine.CurveSamples
}

// CurveFitResult summarizes a fitted pump curve. HeadCurve is the fitted
// polynomial evaluated on a uniform grid over the sampled domain.
type CurveFitResult struct {
	QMin           float64                  `json:"q_min_m3_s"`
	QMax           float64                  `json:"q_max_m3_s"`
	ShutoffHeadM   float64                  `json:"shutoff_head_m"`
	BestEfficiency *pump_sizing.CurvePoint  `json:"best_efficiency,omitempty"` // (Q, η), when efficiency samples exist
	HeadCurve      []pump_sizing.CurvePoint `json:"head_curve"`
}

// AffinityParams scales a pump curve by the speed (or impeller diameter)
// ratio N₂/N₁.
type AffinityParams struct {
	Samples engine.CurveSamples
	Ratio   float64
}

// AffinityResult is the scaled sample set and its refit summary.
type AffinityResult struct {
	Ratio         float64             `json:"ratio"`
	Samples       engine.CurveSamples `json:"samples"`
	Fit           CurveFitResult      `json:"fit"`
	LowConfidence bool                `json:"low_confidence,omitempty"` // ratio outside the affinity validity band
}

// OperatingPointParams intersects a system with a pump curve.
type OperatingPointParams struct {
	System SystemParams // FlowRate ignored; the solver finds it
	Pump   engine.CurveSamples
}

// NPSHParams evaluates the suction side. RequiredM may be given directly;
// with Pump samples present instead, NPSH-required is read from the fitted
// curve at FlowRate. With neither, a positive SpeedRPM enables the suction
// specific speed estimate at FlowRate.
type NPSHParams struct {
	Suction   engine.SuctionConditions
	RequiredM float64
	Pump      *engine.CurveSamples
	FlowRate  float64 // m³/s, used with Pump or SpeedRPM

	SpeedRPM             float64 // rpm, enables the NPSHr estimate
	SuctionSpecificSpeed float64 // 0 selects the engine default
}

// ReportParams drives the full selection chain: operating point, losses at
// duty, power sizing, optional NPSH and standards checks.
type ReportParams struct {
	System  SystemParams // FlowRate ignored
	Pump    engine.CurveSamples
	Suction *engine.SuctionConditions // nil skips the NPSH block

	SpeedRPM        float64 // 0 skips specific speed and classification
	MotorEfficiency float64 // 0 selects the engine default
	ServiceFactor   float64 // 0 selects the engine default
}

// Report is the combined pump selection result.
type Report struct {
	Fluid        pump_sizing.FluidProperties    `json:"fluid"`
	SystemAtDuty pump_sizing.HeadLossResult     `json:"system_at_duty"`
	Operating    pump_sizing.OperatingPoint     `json:"operating"`
	Power        pump_sizing.PowerSummary       `json:"power"`
	NPSH         *pump_sizing.NPSHResult        `json:"npsh,omitempty"`
	Compliance   []pump_sizing.ComplianceResult `json:"compliance,omitempty"`
}

// Engine wire types re-exported so service callers need only this package.
type (
	Rule              = engine.Rule
	CurveSamples      = engine.CurveSamples
	SuctionConditions = engine.SuctionConditions
)

// Calculation error sentinels, re-exported from the engine.
var (
	ErrInvalidInput     = engine.ErrInvalidInput
	ErrMissingData      = engine.ErrMissingData
	ErrNoOperatingPoint = engine.ErrNoOperatingPoint
)

// LogFilter supports history filtering by time range and run kind.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Kind string    // "", "SYSTEM", "SYSTEM_CURVE", "CURVE_FIT", "AFFINITY", "OPERATING_POINT", "NPSH", "COMPLIANCE", "REPORT"
}
