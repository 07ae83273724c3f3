package service

import (
	"context"
	"time"

	"pump_sizing"
	"pump_sizing/internal/engine"
	"pump_sizing/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Hydraulics exposes system-side calculations: loss breakdown at one flow
// rate and the swept system curve.
type Hydraulics interface {
	CalculateSystem(ctx context.Context, p SystemParams) (pump_sizing.HeadLossResult, error)
	SystemCurve(ctx context.Context, p SystemCurveParams) (SystemCurveResult, error)
}

// PumpAnalysis exposes pump-side calculations: curve fitting, affinity
// scaling, operating point, NPSH and the combined selection report.
type PumpAnalysis interface {
	FitCurve(ctx context.Context, p CurveFitParams) (CurveFitResult, error)
	ScaleCurve(ctx context.Context, p AffinityParams) (AffinityResult, error)
	OperatingPoint(ctx context.Context, p OperatingPointParams) (pump_sizing.OperatingPoint, error)
	EvaluateNPSH(ctx context.Context, p NPSHParams) (pump_sizing.NPSHResult, error)
	Report(ctx context.Context, p ReportParams) (Report, error)
}

// Compliance evaluates standards rules against hydraulic quantities.
type Compliance interface {
	Check(ctx context.Context, rules []Rule) ([]pump_sizing.ComplianceResult, error)
}

// RunLog exposes the append-only calculation history with filtering access.
type RunLog interface {
	List(ctx context.Context, f LogFilter) ([]pump_sizing.CalculationRun, error)
	Latest(ctx context.Context) (pump_sizing.CalculationRun, error)
}

// Config carries the runtime settings the services need beyond their repos.
type Config struct {
	Engine     engine.Config
	SigningKey string
	TokenTTL   time.Duration
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Hydraulics
	PumpAnalysis
	Compliance
	RunLog
	Authorization
}

// NewService wires the repository layer and the calculation engine into
// concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	// The built-in water table is static and valid, so the resolver cannot
	// fail here.
	resolver, _ := engine.NewFluidResolver(nil)
	friction := engine.NewFrictionSolver(cfg.Engine)
	agg := engine.NewHeadLossAggregator(friction)
	standards := engine.NewStandardsChecker()

	hydraulics := NewHydraulicsService(repos.Runs, resolver, agg, standards)
	return &Service{
		Hydraulics:    hydraulics,
		PumpAnalysis:  NewPumpService(repos.Runs, hydraulics, cfg.Engine),
		Compliance:    NewComplianceService(repos.Runs, standards),
		RunLog:        NewRunLogService(repos.Runs),
		Authorization: NewAuthService(repos.Auth, cfg.SigningKey, cfg.TokenTTL),
	}
}
