package service

import (
	"context"
	"fmt"

	"pump_sizing"
	"pump_sizing/internal/engine"
	"pump_sizing/internal/repository"
)

// defaultCurvePoints is the sweep density used when the caller does not ask
// for a specific one.
const defaultCurvePoints = 50

var errInvalidSweep = fmt.Errorf("%w: sweep q_max must be positive", engine.ErrInvalidInput)

type HydraulicsService struct {
	runs      repository.RunRepo
	resolver  *engine.FluidResolver
	agg       *engine.HeadLossAggregator
	standards *engine.StandardsChecker
}

func NewHydraulicsService(
	runs repository.RunRepo,
	resolver *engine.FluidResolver,
	agg *engine.HeadLossAggregator,
	standards *engine.StandardsChecker,
) *HydraulicsService {
	return &HydraulicsService{runs: runs, resolver: resolver, agg: agg, standards: standards}
}

// CalculateSystem resolves the fluid, evaluates the full loss breakdown at
// p.FlowRate and records the run.
func (s *HydraulicsService) CalculateSystem(ctx context.Context, p SystemParams) (pump_sizing.HeadLossResult, error) {
	fluid, seg, err := s.resolveInputs(p)
	if err != nil {
		return pump_sizing.HeadLossResult{}, err
	}

	res, err := s.agg.Aggregate(seg, p.Fittings, fluid, p.StaticHeadM, p.FlowRate)
	if err != nil {
		return pump_sizing.HeadLossResult{}, err
	}

	summary := fmt.Sprintf("total head %.3f m at Q=%.4g m³/s (%s)", res.TotalM, p.FlowRate, res.Flow.Regime)
	if err := recordRun(ctx, s.runs, pump_sizing.RunSystem, summary, p, res); err != nil {
		return pump_sizing.HeadLossResult{}, err
	}
	return res, nil
}

// SystemCurve sweeps the system head from zero flow to p.QMax and records
// the run.
func (s *HydraulicsService) SystemCurve(ctx context.Context, p SystemCurveParams) (SystemCurveResult, error) {
	if p.QMax <= 0 {
		return SystemCurveResult{}, errInvalidSweep
	}
	points := p.Points
	if points <= 0 {
		points = defaultCurvePoints
	}

	curve, fluid, err := s.curveFor(p.System)
	if err != nil {
		return SystemCurveResult{}, err
	}

	qs := make([]float64, points+1)
	for i := range qs {
		qs[i] = p.QMax * float64(i) / float64(points)
	}
	pts, err := curve.Sample(qs)
	if err != nil {
		return SystemCurveResult{}, err
	}

	res := SystemCurveResult{Fluid: fluid, Points: pts}
	summary := fmt.Sprintf("system curve, %d points up to Q=%.4g m³/s", len(pts), p.QMax)
	if err := recordRun(ctx, s.runs, pump_sizing.RunSystemCurve, summary, p, res); err != nil {
		return SystemCurveResult{}, err
	}
	return res, nil
}

// curveFor builds an evaluable system curve for the pump-side solvers. It
// does not record a run; the caller owns that.
func (s *HydraulicsService) curveFor(p SystemParams) (*engine.SystemCurve, pump_sizing.FluidProperties, error) {
	fluid, seg, err := s.resolveInputs(p)
	if err != nil {
		return nil, pump_sizing.FluidProperties{}, err
	}
	curve, err := engine.NewSystemCurve(s.agg, seg, p.Fittings, fluid, p.StaticHeadM)
	if err != nil {
		return nil, pump_sizing.FluidProperties{}, err
	}
	return curve, fluid, nil
}

// breakdownAt evaluates the full loss breakdown at an arbitrary flow rate
// without recording a run. Used by the report chain.
func (s *HydraulicsService) breakdownAt(p SystemParams, q float64) (pump_sizing.HeadLossResult, pump_sizing.FluidProperties, error) {
	fluid, seg, err := s.resolveInputs(p)
	if err != nil {
		return pump_sizing.HeadLossResult{}, pump_sizing.FluidProperties{}, err
	}
	res, err := s.agg.Aggregate(seg, p.Fittings, fluid, p.StaticHeadM, q)
	if err != nil {
		return pump_sizing.HeadLossResult{}, pump_sizing.FluidProperties{}, err
	}
	return res, fluid, nil
}

// resolveInputs turns the wire-level spec into engine inputs: fluid
// properties from the table or the explicit override, roughness from the
// material table when the segment does not carry one.
func (s *HydraulicsService) resolveInputs(p SystemParams) (pump_sizing.FluidProperties, pump_sizing.PipeSegment, error) {
	fluid := s.resolveFluid(p.Fluid)

	seg := p.Segment
	if seg.RoughnessM == 0 && p.Material != "" {
		r, err := s.standards.RoughnessFor(p.Material)
		if err != nil {
			return pump_sizing.FluidProperties{}, pump_sizing.PipeSegment{}, err
		}
		seg.RoughnessM = r
	}
	return fluid, seg, nil
}

func (s *HydraulicsService) resolveFluid(f FluidSpec) pump_sizing.FluidProperties {
	if f.Density > 0 && f.KinematicVisc > 0 {
		return pump_sizing.FluidProperties{
			TemperatureC:  f.TemperatureC,
			Density:       f.Density,
			KinematicVisc: f.KinematicVisc,
			VaporPressure: f.VaporPressure,
		}
	}
	return s.resolver.Resolve(f.TemperatureC)
}
