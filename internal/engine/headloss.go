package engine

import (
	"fmt"
	"math"

	"pump_sizing"
)

// HeadLossAggregator combines major (pipe friction) and minor (fitting)
// losses into a total system head loss at a given flow rate. It is pure and
// side-effect-free, so it can be swept across a Q range to build a system
// curve.
type HeadLossAggregator struct {
	friction *FrictionSolver
}

func NewHeadLossAggregator(friction *FrictionSolver) *HeadLossAggregator {
	return &HeadLossAggregator{friction: friction}
}

// FlowStateFor derives velocity, Reynolds number and regime from a flow rate
// and a pipe segment.
func FlowStateFor(q float64, seg pump_sizing.PipeSegment, fluid pump_sizing.FluidProperties) (pump_sizing.FlowState, error) {
	if err := validateSegment(seg); err != nil {
		return pump_sizing.FlowState{}, err
	}
	if err := ValidateFluid(fluid); err != nil {
		return pump_sizing.FlowState{}, err
	}
	if q < 0 {
		return pump_sizing.FlowState{}, fmt.Errorf("%w: flow rate must be non-negative, got %g", ErrInvalidInput, q)
	}
	area := math.Pi * seg.DiameterM * seg.DiameterM / 4
	v := q / area
	re := v * seg.DiameterM / fluid.KinematicVisc
	return pump_sizing.FlowState{
		FlowRate: q,
		Velocity: v,
		Reynolds: re,
		Regime:   Regime(re),
	}, nil
}

// Aggregate computes the full loss breakdown at flow rate q:
//
//	h_major = f·(L/D)·V²/2g       (Darcy–Weisbach)
//	h_minor = Σ K·count·V²/2g     (per fitting)
//	total   = h_major + h_minor + staticHead
//
// At q=0 both loss terms are exactly zero and the friction solver is not
// consulted. staticHead is the net elevation term and may be negative.
func (a *HeadLossAggregator) Aggregate(
	seg pump_sizing.PipeSegment,
	fittings []pump_sizing.FittingLoss,
	fluid pump_sizing.FluidProperties,
	staticHead float64,
	q float64,
) (pump_sizing.HeadLossResult, error) {
	fs, err := FlowStateFor(q, seg, fluid)
	if err != nil {
		return pump_sizing.HeadLossResult{}, err
	}
	for _, f := range fittings {
		if f.K < 0 {
			return pump_sizing.HeadLossResult{}, fmt.Errorf("%w: fitting %q has negative K %g", ErrInvalidInput, f.Label, f.K)
		}
		if f.Count < 0 {
			return pump_sizing.HeadLossResult{}, fmt.Errorf("%w: fitting %q has negative count %d", ErrInvalidInput, f.Label, f.Count)
		}
	}

	res := pump_sizing.HeadLossResult{Flow: fs, StaticM: staticHead}

	if q > 0 {
		fr, err := a.friction.Solve(fs.Reynolds, seg.RoughnessM/seg.DiameterM)
		if err != nil {
			return pump_sizing.HeadLossResult{}, err
		}
		res.Friction = fr

		velHead := fs.Velocity * fs.Velocity / (2 * Gravity)
		res.MajorM = fr.Factor * (seg.LengthM / seg.DiameterM) * velHead
		for _, f := range fittings {
			h := f.K * float64(f.Count) * velHead
			res.MinorM += h
			res.Fittings = append(res.Fittings, pump_sizing.FittingBreakdown{
				Label: f.Label, K: f.K, Count: f.Count, HeadM: h,
			})
		}
	}

	res.TotalM = res.MajorM + res.MinorM + res.StaticM
	res.PressureDropPa = HeadToPressure(res.TotalM, fluid.Density)
	return res, nil
}

// Hazen-Williams C factors for common pipe materials. Keys match the
// roughness table used by the Darcy-Weisbach path.
var hazenWilliamsC = map[string]float64{
	"commercial_steel_new":  130,
	"commercial_steel_used": 110,
	"riveted_steel":         100,
	"cast_iron_new":         130,
	"cast_iron_used":        90,
	"galvanized_iron":       120,
	"pvc":                   150,
	"hdpe":                  150,
	"copper":                140,
	"glass":                 140,
	"smooth_concrete":       120,
	"rough_concrete":        100,
}

// defaultHazenWilliamsC is the usual design value for average steel pipe.
const defaultHazenWilliamsC = 120.0

// HazenWilliamsCFor looks up the C factor for a material key.
func HazenWilliamsCFor(material string) (float64, error) {
	c, ok := hazenWilliamsC[material]
	if !ok {
		return 0, fmt.Errorf("%w: unknown pipe material %q", ErrInvalidInput, material)
	}
	return c, nil
}

// HazenWilliams computes friction head loss by the empirical Hazen-Williams
// equation:
//
//	hf = 10.67·L·Q^1.852 / (C^1.852·D^4.87)
//
// Valid for water near ambient temperature only; it needs no viscosity data
// and no iteration. cFactor=0 selects the default C=120. For any other fluid
// or condition, use Aggregate.
func HazenWilliams(q float64, seg pump_sizing.PipeSegment, cFactor float64) (float64, error) {
	if err := validateSegment(seg); err != nil {
		return 0, err
	}
	if q < 0 {
		return 0, fmt.Errorf("%w: flow rate must be non-negative, got %g", ErrInvalidInput, q)
	}
	if cFactor < 0 {
		return 0, fmt.Errorf("%w: C factor must be non-negative, got %g", ErrInvalidInput, cFactor)
	}
	if cFactor == 0 {
		cFactor = defaultHazenWilliamsC
	}
	return 10.67 * seg.LengthM * math.Pow(q, 1.852) / (math.Pow(cFactor, 1.852) * math.Pow(seg.DiameterM, 4.87)), nil
}

// PressureToHead converts a pressure (Pa) to head (m) for the given density.
func PressureToHead(pressurePa, density float64) float64 {
	return pressurePa / (density * Gravity)
}

// HeadToPressure converts a head (m) to pressure (Pa) for the given density.
func HeadToPressure(headM, density float64) float64 {
	return density * Gravity * headM
}

func validateSegment(seg pump_sizing.PipeSegment) error {
	if seg.DiameterM <= 0 {
		return fmt.Errorf("%w: pipe diameter must be positive, got %g", ErrInvalidInput, seg.DiameterM)
	}
	if seg.LengthM < 0 {
		return fmt.Errorf("%w: pipe length must be non-negative, got %g", ErrInvalidInput, seg.LengthM)
	}
	if seg.RoughnessM < 0 {
		return fmt.Errorf("%w: pipe roughness must be non-negative, got %g", ErrInvalidInput, seg.RoughnessM)
	}
	if seg.RoughnessM >= seg.DiameterM {
		return fmt.Errorf("%w: roughness %g must be smaller than diameter %g", ErrInvalidInput, seg.RoughnessM, seg.DiameterM)
	}
	return nil
}

// SystemCurve maps a flow rate to the total head the system demands. Its
// inputs are validated once at construction; Head is then a pure function of
// Q and monotonically non-decreasing for physically valid inputs.
type SystemCurve struct {
	agg        *HeadLossAggregator
	seg        pump_sizing.PipeSegment
	fittings   []pump_sizing.FittingLoss
	fluid      pump_sizing.FluidProperties
	staticHead float64
}

// NewSystemCurve validates the configuration and returns an evaluable curve.
func NewSystemCurve(
	agg *HeadLossAggregator,
	seg pump_sizing.PipeSegment,
	fittings []pump_sizing.FittingLoss,
	fluid pump_sizing.FluidProperties,
	staticHead float64,
) (*SystemCurve, error) {
	// Probe at zero flow so configuration errors surface here, not mid-sweep.
	if _, err := agg.Aggregate(seg, fittings, fluid, staticHead, 0); err != nil {
		return nil, err
	}
	fit := make([]pump_sizing.FittingLoss, len(fittings))
	copy(fit, fittings)
	return &SystemCurve{agg: agg, seg: seg, fittings: fit, fluid: fluid, staticHead: staticHead}, nil
}

// Head evaluates the curve at q.
func (c *SystemCurve) Head(q float64) (float64, error) {
	res, err := c.agg.Aggregate(c.seg, c.fittings, c.fluid, c.staticHead, q)
	if err != nil {
		return 0, err
	}
	return res.TotalM, nil
}

// Sample evaluates the curve over a caller-chosen sweep. The engine does not
// choose sample density; that is the visualization layer's call.
func (c *SystemCurve) Sample(qs []float64) ([]pump_sizing.CurvePoint, error) {
	out := make([]pump_sizing.CurvePoint, 0, len(qs))
	for _, q := range qs {
		h, err := c.Head(q)
		if err != nil {
			return nil, err
		}
		out = append(out, pump_sizing.CurvePoint{Q: q, V: h})
	}
	return out, nil
}
