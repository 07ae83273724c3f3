package pump_sizing

import "time"

// Flow regimes derived from the Reynolds number.
const (
	RegimeLaminar      = "LAMINAR"
	RegimeTransitional = "TRANSITIONAL"
	RegimeTurbulent    = "TURBULENT"
)

// FluidProperties is the resolved state of the working fluid at a given
// temperature. Immutable; created once per calculation request.
type FluidProperties struct {
	TemperatureC  float64 `json:"temperature_c"`
	Density       float64 `json:"density_kg_m3"`        // kg/m³
	KinematicVisc float64 `json:"kinematic_visc_m2_s"`  // m²/s
	VaporPressure float64 `json:"vapor_pressure_pa"`    // Pa, 0 when unknown
	OutOfRange    bool    `json:"out_of_range,omitempty"` // temperature outside the property table
}

// PipeSegment describes a single straight run of pipe.
type PipeSegment struct {
	DiameterM  float64 `json:"diameter_m"`  // internal diameter, > 0
	LengthM    float64 `json:"length_m"`    // >= 0
	RoughnessM float64 `json:"roughness_m"` // absolute roughness, >= 0
}

// FittingLoss is a minor-loss element attached to a segment: a K coefficient
// and how many identical fittings it stands for.
type FittingLoss struct {
	Label string  `json:"label,omitempty"`
	K     float64 `json:"k"` // dimensionless, >= 0
	Count int     `json:"count"`
}

// FlowState is derived from a flow rate and a pipe segment. It is recomputed
// whenever Q changes and never persisted on its own.
type FlowState struct {
	FlowRate float64 `json:"flow_rate_m3_s"`
	Velocity float64 `json:"velocity_m_s"`
	Reynolds float64 `json:"reynolds"`
	Regime   string  `json:"regime"` // LAMINAR | TRANSITIONAL | TURBULENT
}

// FrictionResult carries the Darcy friction factor together with how it was
// obtained. Fallback=true means the Colebrook iteration hit its cap and the
// Swamee–Jain estimate was returned instead; Approximate=true marks the
// transitional-regime interpolation.
type FrictionResult struct {
	Factor      float64 `json:"factor"`
	Regime      string  `json:"regime"`
	Iterations  int     `json:"iterations,omitempty"`
	Fallback    bool    `json:"fallback,omitempty"`
	Approximate bool    `json:"approximate,omitempty"`
}

// FittingBreakdown is the head loss attributed to one FittingLoss entry.
type FittingBreakdown struct {
	Label string  `json:"label,omitempty"`
	K     float64 `json:"k"`
	Count int     `json:"count"`
	HeadM float64 `json:"head_m"`
}

// HeadLossResult is the full loss picture at one flow rate.
type HeadLossResult struct {
	Flow           FlowState          `json:"flow"`
	Friction       FrictionResult     `json:"friction"`
	MajorM         float64            `json:"major_m"`
	MinorM         float64            `json:"minor_m"`
	StaticM        float64            `json:"static_m"`
	TotalM         float64            `json:"total_m"`
	PressureDropPa float64            `json:"pressure_drop_pa"`
	Fittings       []FittingBreakdown `json:"fittings,omitempty"`
}

// CurvePoint is one sampled (Q, value) pair of a pump or system curve.
type CurvePoint struct {
	Q float64 `json:"q"` // m³/s
	V float64 `json:"v"` // head (m), power (W) or efficiency (0..1)
}

// OperatingPoint is the intersection of a system curve with a pump curve.
// It exists only as solver output and is recomputed per call.
type OperatingPoint struct {
	FlowRate   float64 `json:"flow_rate_m3_s"`
	HeadM      float64 `json:"head_m"`
	PowerW     float64 `json:"power_w,omitempty"`
	Efficiency float64 `json:"efficiency,omitempty"`
	Iterations int     `json:"iterations"`
	Fallback   bool    `json:"fallback,omitempty"`     // solver hit its iteration cap
	OutOfRange bool    `json:"out_of_range,omitempty"` // Q* outside the fitted sample range
}

// NPSHResult compares available against required suction head at the
// operating point.
type NPSHResult struct {
	AvailableM     float64 `json:"available_m"`
	RequiredM      float64 `json:"required_m"`
	MarginM        float64 `json:"margin_m"`
	MinMarginM     float64 `json:"min_margin_m"`
	CavitationRisk bool    `json:"cavitation_risk"`
}

// ComplianceResult is one evaluated standards rule. Purely derivative of the
// hydraulic results it was checked against.
type ComplianceResult struct {
	RuleID   string  `json:"rule_id"`
	Standard string  `json:"standard"`
	Pass     bool    `json:"pass"`
	Measured float64 `json:"measured"`
	Limit    float64 `json:"limit"`
	Detail   string  `json:"detail,omitempty"`
}

// PowerSummary is the power and classification block of a pump report.
type PowerSummary struct {
	HydraulicW    float64 `json:"hydraulic_w"`
	ShaftW        float64 `json:"shaft_w"`
	MotorW        float64 `json:"motor_w"`
	SpecificSpeed float64 `json:"specific_speed,omitempty"`
	PumpType      string  `json:"pump_type,omitempty"`
	MinFlowM3S    float64 `json:"min_flow_m3_s,omitempty"`
	MaxFlowM3S    float64 `json:"max_flow_m3_s,omitempty"`
}

// Run kinds recorded in the calculation log.
const (
	RunSystem         = "SYSTEM"
	RunSystemCurve    = "SYSTEM_CURVE"
	RunCurveFit       = "CURVE_FIT"
	RunAffinity       = "AFFINITY"
	RunOperatingPoint = "OPERATING_POINT"
	RunNPSH           = "NPSH"
	RunCompliance     = "COMPLIANCE"
	RunReport         = "REPORT"
)

// CalculationRun is one persisted engine invocation: what was asked and what
// came back, as opaque JSON snapshots.
type CalculationRun struct {
	RunID      string    `json:"run_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Kind       string    `json:"kind"`
	Summary    string    `json:"summary"`
	Input      any       `json:"input,omitempty"`
	Result     any       `json:"result,omitempty"`
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never exposed
}
