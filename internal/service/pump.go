package service

import (
	"context"
	"fmt"

	"pump_sizing"
	"pump_sizing/internal/engine"
	"pump_sizing/internal/repository"
)

// bepScanSamples is the grid density used to locate the best-efficiency
// point on a fitted curve.
const bepScanSamples = 200

type PumpService struct {
	runs       repository.RunRepo
	hydraulics *HydraulicsService
	op         *engine.OperatingPointSolver
	npsh       *engine.NPSHEvaluator
}

func NewPumpService(runs repository.RunRepo, hydraulics *HydraulicsService, cfg engine.Config) *PumpService {
	return &PumpService{
		runs:       runs,
		hydraulics: hydraulics,
		op:         engine.NewOperatingPointSolver(cfg),
		npsh:       engine.NewNPSHEvaluator(cfg),
	}
}

// FitCurve fits the sampled pump data and records the run.
func (s *PumpService) FitCurve(ctx context.Context, p CurveFitParams) (CurveFitResult, error) {
	m, err := engine.NewPumpCurveModel(p.Samples)
	if err != nil {
		return CurveFitResult{}, err
	}
	res := summarizeFit(m)

	summary := fmt.Sprintf("quadratic fit over Q∈[%.4g, %.4g] m³/s, shutoff head %.3f m", res.QMin, res.QMax, res.ShutoffHeadM)
	if err := recordRun(ctx, s.runs, pump_sizing.RunCurveFit, summary, p, res); err != nil {
		return CurveFitResult{}, err
	}
	return res, nil
}

// ScaleCurve applies the affinity laws and refits the scaled samples.
func (s *PumpService) ScaleCurve(ctx context.Context, p AffinityParams) (AffinityResult, error) {
	m, err := engine.NewPumpCurveModel(p.Samples)
	if err != nil {
		return AffinityResult{}, err
	}
	scaled, lowConfidence, err := engine.ScaleCurve(m, p.Ratio)
	if err != nil {
		return AffinityResult{}, err
	}

	res := AffinityResult{
		Ratio:         p.Ratio,
		Samples:       scaled.Samples(),
		Fit:           summarizeFit(scaled),
		LowConfidence: lowConfidence,
	}
	summary := fmt.Sprintf("affinity scaling r=%.3f", p.Ratio)
	if lowConfidence {
		summary += " (outside validity band)"
	}
	if err := recordRun(ctx, s.runs, pump_sizing.RunAffinity, summary, p, res); err != nil {
		return AffinityResult{}, err
	}
	return res, nil
}

// OperatingPoint intersects the system curve with the fitted pump curve.
func (s *PumpService) OperatingPoint(ctx context.Context, p OperatingPointParams) (pump_sizing.OperatingPoint, error) {
	op, _, _, err := s.solveOperating(p.System, p.Pump)
	if err != nil {
		return pump_sizing.OperatingPoint{}, err
	}

	summary := fmt.Sprintf("Q*=%.4g m³/s at H=%.3f m", op.FlowRate, op.HeadM)
	if err := recordRun(ctx, s.runs, pump_sizing.RunOperatingPoint, summary, p, op); err != nil {
		return pump_sizing.OperatingPoint{}, err
	}
	return op, nil
}

// EvaluateNPSH computes the available suction head and compares it against
// the required value, read from the pump curve when samples are supplied, or
// estimated from suction specific speed when only a pump speed is known.
func (s *PumpService) EvaluateNPSH(ctx context.Context, p NPSHParams) (pump_sizing.NPSHResult, error) {
	avail, err := s.npsh.Available(p.Suction)
	if err != nil {
		return pump_sizing.NPSHResult{}, err
	}

	required := p.RequiredM
	if p.Pump != nil {
		m, err := engine.NewPumpCurveModel(*p.Pump)
		if err != nil {
			return pump_sizing.NPSHResult{}, err
		}
		if required, err = m.NPSHR(p.FlowRate); err != nil {
			return pump_sizing.NPSHResult{}, err
		}
	} else if required <= 0 {
		if p.SpeedRPM <= 0 {
			return pump_sizing.NPSHResult{}, fmt.Errorf("%w: NPSH-required not supplied and no pump curve or speed to estimate it from", engine.ErrMissingData)
		}
		if required, err = engine.EstimateNPSHR(p.FlowRate, p.SpeedRPM, p.SuctionSpecificSpeed); err != nil {
			return pump_sizing.NPSHResult{}, err
		}
	}

	res := s.npsh.Evaluate(avail, required)
	summary := fmt.Sprintf("NPSHa %.3f m, margin %.3f m", res.AvailableM, res.MarginM)
	if res.CavitationRisk {
		summary += " (cavitation risk)"
	}
	if err := recordRun(ctx, s.runs, pump_sizing.RunNPSH, summary, p, res); err != nil {
		return pump_sizing.NPSHResult{}, err
	}
	return res, nil
}

// Report runs the full selection chain: operating point, loss breakdown at
// duty, power sizing and classification, optional NPSH, standards checks.
func (s *PumpService) Report(ctx context.Context, p ReportParams) (Report, error) {
	op, model, fluid, err := s.solveOperating(p.System, p.Pump)
	if err != nil {
		return Report{}, err
	}

	duty, _, err := s.hydraulics.breakdownAt(p.System, op.FlowRate)
	if err != nil {
		return Report{}, err
	}

	power, err := s.powerSummary(op, model, fluid, p)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Fluid:        fluid,
		SystemAtDuty: duty,
		Operating:    op,
		Power:        power,
	}

	if p.Suction != nil {
		npsh, err := s.npsh.EvaluateAt(*p.Suction, model, op.FlowRate)
		if err != nil {
			return Report{}, err
		}
		rep.NPSH = &npsh
	}

	rep.Compliance, err = s.hydraulics.standards.Check([]engine.Rule{
		{ID: "discharge-velocity", Kind: engine.RuleVelocity, Service: "pump_discharge", VelocityMS: duty.Flow.Velocity},
		{ID: "erosion-velocity", Kind: engine.RuleErosionVelocity, VelocityMS: duty.Flow.Velocity, Density: fluid.Density},
	})
	if err != nil {
		return Report{}, err
	}

	summary := fmt.Sprintf("report: Q*=%.4g m³/s, H=%.3f m, motor %.0f W", op.FlowRate, op.HeadM, power.MotorW)
	if err := recordRun(ctx, s.runs, pump_sizing.RunReport, summary, p, rep); err != nil {
		return Report{}, err
	}
	return rep, nil
}

// solveOperating builds the system curve and the pump model, then finds
// their intersection. Shared between OperatingPoint and Report.
func (s *PumpService) solveOperating(system SystemParams, pump engine.CurveSamples) (pump_sizing.OperatingPoint, *engine.PumpCurveModel, pump_sizing.FluidProperties, error) {
	curve, fluid, err := s.hydraulics.curveFor(system)
	if err != nil {
		return pump_sizing.OperatingPoint{}, nil, pump_sizing.FluidProperties{}, err
	}
	model, err := engine.NewPumpCurveModel(pump)
	if err != nil {
		return pump_sizing.OperatingPoint{}, nil, pump_sizing.FluidProperties{}, err
	}
	op, err := s.op.Solve(curve.Head, model)
	if err != nil {
		return pump_sizing.OperatingPoint{}, nil, pump_sizing.FluidProperties{}, err
	}
	return op, model, fluid, nil
}

// powerSummary computes the power chain at the operating point. Shaft and
// motor power need an efficiency fit; without one only hydraulic power is
// reported.
func (s *PumpService) powerSummary(
	op pump_sizing.OperatingPoint,
	model *engine.PumpCurveModel,
	fluid pump_sizing.FluidProperties,
	p ReportParams,
) (pump_sizing.PowerSummary, error) {
	var out pump_sizing.PowerSummary

	hyd, err := engine.HydraulicPower(op.FlowRate, op.HeadM, fluid.Density)
	if err != nil {
		return pump_sizing.PowerSummary{}, err
	}
	out.HydraulicW = hyd

	if op.Efficiency > 0 {
		if out.ShaftW, err = engine.ShaftPower(hyd, op.Efficiency); err != nil {
			return pump_sizing.PowerSummary{}, err
		}
		if out.MotorW, err = engine.MotorPower(out.ShaftW, p.MotorEfficiency, p.ServiceFactor); err != nil {
			return pump_sizing.PowerSummary{}, err
		}
	}

	if p.SpeedRPM > 0 {
		ns, err := engine.SpecificSpeed(op.FlowRate, op.HeadM, p.SpeedRPM)
		if err != nil {
			return pump_sizing.PowerSummary{}, err
		}
		out.SpecificSpeed = ns
		out.PumpType = engine.ClassifyPump(ns)
	}

	if bep := bestEfficiencyPoint(model); bep != nil {
		if out.MinFlowM3S, out.MaxFlowM3S, err = engine.ContinuousFlowWindow(bep.Q); err != nil {
			return pump_sizing.PowerSummary{}, err
		}
	}
	return out, nil
}

// summarizeFit condenses a fitted model into its wire-level summary.
func summarizeFit(m *engine.PumpCurveModel) CurveFitResult {
	qMin, qMax := m.Domain()
	res := CurveFitResult{
		QMin:           qMin,
		QMax:           qMax,
		ShutoffHeadM:   m.ShutoffHead(),
		BestEfficiency: bestEfficiencyPoint(m),
	}

	res.HeadCurve = make([]pump_sizing.CurvePoint, defaultCurvePoints+1)
	for i := range res.HeadCurve {
		q := qMin + (qMax-qMin)*float64(i)/float64(defaultCurvePoints)
		h, _ := m.Head(q)
		res.HeadCurve[i] = pump_sizing.CurvePoint{Q: q, V: h}
	}
	return res
}

// bestEfficiencyPoint locates the efficiency maximum on a uniform grid over
// the sampled domain. Returns nil when the model carries no efficiency fit.
func bestEfficiencyPoint(m *engine.PumpCurveModel) *pump_sizing.CurvePoint {
	if _, ok := m.Efficiency(0); !ok {
		return nil
	}
	qMin, qMax := m.Domain()
	best := pump_sizing.CurvePoint{Q: qMin}
	best.V, _ = m.Efficiency(qMin)
	for i := 1; i <= bepScanSamples; i++ {
		q := qMin + (qMax-qMin)*float64(i)/float64(bepScanSamples)
		if eta, _ := m.Efficiency(q); eta > best.V {
			best = pump_sizing.CurvePoint{Q: q, V: eta}
		}
	}
	return &best
}
