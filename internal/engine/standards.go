package engine

import (
	"fmt"
	"math"

	"pump_sizing"
)

// RuleKind is the closed set of compliance rule variants. Adding a standard
// means adding a kind here and a case in evaluate — nothing else moves.
type RuleKind string

const (
	RuleVelocity        RuleKind = "VELOCITY"         // service velocity window, ISO 15649
	RuleErosionVelocity RuleKind = "EROSION_VELOCITY" // API RP 14E erosional limit
	RulePressureClass   RuleKind = "PRESSURE_CLASS"   // flange class selection, ASME B16.5 / EN 1092
	RulePipeSize        RuleKind = "PIPE_SIZE"        // nominal diameter selection
)

// Pressure class schemes for RulePressureClass.
const (
	SchemeANSI = "ANSI"
	SchemePN   = "PN"
)

// Rule is one compliance check request. Only the fields relevant to its Kind
// are read.
type Rule struct {
	ID   string   `json:"id"`
	Kind RuleKind `json:"kind"`

	Service      string  `json:"service,omitempty"`       // velocity: service-type key
	VelocityMS   float64 `json:"velocity_m_s,omitempty"`  // velocity + erosion
	Density      float64 `json:"density_kg_m3,omitempty"` // erosion
	OperatingBar float64 `json:"operating_bar,omitempty"` // pressure class
	TemperatureC float64 `json:"temperature_c,omitempty"` // pressure class (ANSI)
	Scheme       string  `json:"scheme,omitempty"`        // pressure class: ANSI | PN
	FlowRate     float64 `json:"flow_rate_m3_s,omitempty"`
	MaxVelocity  float64 `json:"max_velocity_m_s,omitempty"` // pipe size
}

// velocityWindow is a recommended service velocity band (m/s), per ISO 15649
// practice.
type velocityWindow struct {
	Min, Max, Recommended float64
}

type pressureClass struct {
	Name     string
	MaxBar   float64
	MaxTempC float64 // 0 = unlimited (the PN scheme carries no temperature limit)
}

// StandardsChecker applies rule tables to hydraulic results. The tables are
// immutable defaults; substitute them through the constructor for testing or
// site-specific limits.
type StandardsChecker struct {
	velocityLimits map[string]velocityWindow
	roughness      map[string]float64
	ansiClasses    []pressureClass
	pnClasses      []pressureClass
	pipeSizesMM    []float64
	erosionC       float64
}

// Default reference tables.
var (
	defaultVelocityLimits = map[string]velocityWindow{
		"pump_suction":      {0.6, 1.5, 1.0},
		"pump_discharge":    {1.5, 3.0, 2.0},
		"general":           {1.0, 3.0, 2.0},
		"gravity_drain":     {0.5, 2.0, 1.0},
		"potable_water":     {0.5, 2.5, 1.5},
		"saturated_steam":   {15.0, 30.0, 20.0},
		"superheated_steam": {20.0, 50.0, 30.0},
		"gas":               {5.0, 30.0, 15.0},
	}

	// Absolute roughness (m) for common pipe materials, ISO/ASME values.
	defaultRoughness = map[string]float64{
		"commercial_steel_new":  0.045e-3,
		"commercial_steel_used": 0.15e-3,
		"riveted_steel":         1.5e-3,
		"cast_iron_new":         0.26e-3,
		"cast_iron_used":        1.5e-3,
		"galvanized_iron":       0.15e-3,
		"pvc":                   0.0015e-3,
		"hdpe":                  0.0015e-3,
		"copper":                0.0015e-3,
		"glass":                 0.0015e-3,
		"smooth_concrete":       0.3e-3,
		"rough_concrete":        3.0e-3,
	}

	defaultANSIClasses = []pressureClass{
		{"150", 19.6, 260},
		{"300", 51.0, 370},
		{"600", 102.0, 400},
		{"900", 153.0, 427},
		{"1500", 255.0, 450},
		{"2500", 425.0, 482},
	}

	defaultPNClasses = []pressureClass{
		{"PN6", 6, 0}, {"PN10", 10, 0}, {"PN16", 16, 0}, {"PN25", 25, 0},
		{"PN40", 40, 0}, {"PN63", 63, 0}, {"PN100", 100, 0},
	}

	// Standard nominal diameters (mm), ISO/DIN series.
	defaultPipeSizesMM = []float64{
		6, 8, 10, 15, 20, 25, 32, 40, 50, 65, 80, 100, 125, 150, 200,
		250, 300, 350, 400, 450, 500, 600, 700, 800, 900, 1000, 1200,
	}
)

// Design-pressure factor over operating pressure, ASME B31.3 practice.
const designPressureFactor = 1.5

// erosionCFactor is the conservative API RP 14E C value for continuous
// service in V_e = C/√ρ.
const erosionCFactor = 100.0

// NewStandardsChecker returns a checker over the default rule tables.
func NewStandardsChecker() *StandardsChecker {
	return &StandardsChecker{
		velocityLimits: defaultVelocityLimits,
		roughness:      defaultRoughness,
		ansiClasses:    defaultANSIClasses,
		pnClasses:      defaultPNClasses,
		pipeSizesMM:    defaultPipeSizesMM,
		erosionC:       erosionCFactor,
	}
}

// RoughnessFor looks up the absolute roughness (m) for a material key.
func (c *StandardsChecker) RoughnessFor(material string) (float64, error) {
	r, ok := c.roughness[material]
	if !ok {
		return 0, fmt.Errorf("%w: unknown pipe material %q", ErrInvalidInput, material)
	}
	return r, nil
}

// Check evaluates every rule and returns one ComplianceResult per rule. An
// unknown key anywhere fails the whole call with ErrInvalidInput — rules are
// never silently defaulted.
func (c *StandardsChecker) Check(rules []Rule) ([]pump_sizing.ComplianceResult, error) {
	out := make([]pump_sizing.ComplianceResult, 0, len(rules))
	for i, r := range rules {
		res, err := c.evaluate(r)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, r.Kind, err)
		}
		out = append(out, res)
	}
	return out, nil
}

// evaluate is the single dispatch point over the rule-variant set.
func (c *StandardsChecker) evaluate(r Rule) (pump_sizing.ComplianceResult, error) {
	switch r.Kind {
	case RuleVelocity:
		return c.checkVelocity(r)
	case RuleErosionVelocity:
		return c.checkErosion(r)
	case RulePressureClass:
		return c.checkPressureClass(r)
	case RulePipeSize:
		return c.checkPipeSize(r)
	default:
		return pump_sizing.ComplianceResult{}, fmt.Errorf("%w: unknown rule kind %q", ErrInvalidInput, r.Kind)
	}
}

func (c *StandardsChecker) checkVelocity(r Rule) (pump_sizing.ComplianceResult, error) {
	w, ok := c.velocityLimits[r.Service]
	if !ok {
		return pump_sizing.ComplianceResult{}, fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, r.Service)
	}
	if r.VelocityMS < 0 {
		return pump_sizing.ComplianceResult{}, fmt.Errorf("%w: velocity must be non-negative", ErrInvalidInput)
	}
	pass := r.VelocityMS >= w.Min && r.VelocityMS <= w.Max
	detail := fmt.Sprintf("service %s window %.2f..%.2f m/s (recommended %.2f)", r.Service, w.Min, w.Max, w.Recommended)
	return pump_sizing.ComplianceResult{
		RuleID: r.ID, Standard: "ISO 15649", Pass: pass,
		Measured: r.VelocityMS, Limit: w.Max, Detail: detail,
	}, nil
}

func (c *StandardsChecker) checkErosion(r Rule) (pump_sizing.ComplianceResult, error) {
	if r.Density <= 0 {
		return pump_sizing.ComplianceResult{}, fmt.Errorf("%w: erosion check needs positive density", ErrInvalidInput)
	}
	if r.VelocityMS < 0 {
		return pump_sizing.ComplianceResult{}, fmt.Errorf("%w: velocity must be non-negative", ErrInvalidInput)
	}
	vErosion := c.erosionC / math.Sqrt(r.Density)
	return pump_sizing.ComplianceResult{
		RuleID: r.ID, Standard: "API RP 14E", Pass: r.VelocityMS < vErosion,
		Measured: r.VelocityMS, Limit: vErosion,
		Detail: fmt.Sprintf("erosional velocity C/√ρ with C=%.0f", c.erosionC),
	}, nil
}

func (c *StandardsChecker) checkPressureClass(r Rule) (pump_sizing.ComplianceResult, error) {
	if r.OperatingBar <= 0 {
		return pump_sizing.ComplianceResult{}, fmt.Errorf("%w: pressure class check needs positive operating pressure", ErrInvalidInput)
	}
	var classes []pressureClass
	var standard string
	switch r.Scheme {
	case SchemeANSI, "":
		classes, standard = c.ansiClasses, "ASME B16.5"
	case SchemePN:
		classes, standard = c.pnClasses, "EN 1092"
	default:
		return pump_sizing.ComplianceResult{}, fmt.Errorf("%w: unknown pressure class scheme %q", ErrInvalidInput, r.Scheme)
	}
	design := r.OperatingBar * designPressureFactor
	for _, pc := range classes {
		if design <= pc.MaxBar && (pc.MaxTempC == 0 || r.TemperatureC <= pc.MaxTempC) {
			return pump_sizing.ComplianceResult{
				RuleID: r.ID, Standard: standard, Pass: true,
				Measured: design, Limit: pc.MaxBar,
				Detail: fmt.Sprintf("class %s covers design pressure %.1f bar", pc.Name, design),
			}, nil
		}
	}
	top := classes[len(classes)-1]
	return pump_sizing.ComplianceResult{
		RuleID: r.ID, Standard: standard, Pass: false,
		Measured: design, Limit: top.MaxBar,
		Detail: "no pressure class covers the design conditions",
	}, nil
}

func (c *StandardsChecker) checkPipeSize(r Rule) (pump_sizing.ComplianceResult, error) {
	if r.FlowRate <= 0 {
		return pump_sizing.ComplianceResult{}, fmt.Errorf("%w: pipe size check needs positive flow rate", ErrInvalidInput)
	}
	if r.MaxVelocity <= 0 {
		return pump_sizing.ComplianceResult{}, fmt.Errorf("%w: pipe size check needs positive max velocity", ErrInvalidInput)
	}
	// Smallest standard DN whose bore keeps velocity under the cap.
	requiredMM := math.Sqrt(4*r.FlowRate/(math.Pi*r.MaxVelocity)) * 1000
	for _, dn := range c.pipeSizesMM {
		if dn >= requiredMM {
			d := dn / 1000
			actual := r.FlowRate / (math.Pi * d * d / 4)
			return pump_sizing.ComplianceResult{
				RuleID: r.ID, Standard: "ISO 6708", Pass: true,
				Measured: requiredMM, Limit: dn,
				Detail: fmt.Sprintf("DN %.0f, actual velocity %.2f m/s", dn, actual),
			}, nil
		}
	}
	return pump_sizing.ComplianceResult{
		RuleID: r.ID, Standard: "ISO 6708", Pass: false,
		Measured: requiredMM, Limit: c.pipeSizesMM[len(c.pipeSizesMM)-1],
		Detail: "required bore exceeds the standard size series",
	}, nil
}
