package handlers

import (
	"context"
	"net/http"

	"pump_sizing"
	"pump_sizing/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockHydraulics struct {
	systemResp pump_sizing.HeadLossResult
	systemErr  error
	lastSystem service.SystemParams

	curveResp service.SystemCurveResult
	curveErr  error
	lastCurve service.SystemCurveParams
}

func (m *mockHydraulics) CalculateSystem(ctx context.Context, p service.SystemParams) (pump_sizing.HeadLossResult, error) {
	m.lastSystem = p
	return m.systemResp, m.systemErr
}
func (m *mockHydraulics) SystemCurve(ctx context.Context, p service.SystemCurveParams) (service.SystemCurveResult, error) {
	m.lastCurve = p
	return m.curveResp, m.curveErr
}

type mockPump struct {
	fitResp service.CurveFitResult
	fitErr  error
	lastFit service.CurveFitParams

	scaleResp service.AffinityResult
	scaleErr  error
	lastScale service.AffinityParams

	opResp pump_sizing.OperatingPoint
	opErr  error
	lastOp service.OperatingPointParams

	npshResp pump_sizing.NPSHResult
	npshErr  error
	lastNPSH service.NPSHParams

	reportResp service.Report
	reportErr  error
	lastReport service.ReportParams
}

func (m *mockPump) FitCurve(ctx context.Context, p service.CurveFitParams) (service.CurveFitResult, error) {
	m.lastFit = p
	return m.fitResp, m.fitErr
}
func (m *mockPump) ScaleCurve(ctx context.Context, p service.AffinityParams) (service.AffinityResult, error) {
	m.lastScale = p
	return m.scaleResp, m.scaleErr
}
func (m *mockPump) OperatingPoint(ctx context.Context, p service.OperatingPointParams) (pump_sizing.OperatingPoint, error) {
	m.lastOp = p
	return m.opResp, m.opErr
}
func (m *mockPump) EvaluateNPSH(ctx context.Context, p service.NPSHParams) (pump_sizing.NPSHResult, error) {
	m.lastNPSH = p
	return m.npshResp, m.npshErr
}
func (m *mockPump) Report(ctx context.Context, p service.ReportParams) (service.Report, error) {
	m.lastReport = p
	return m.reportResp, m.reportErr
}

type mockCompliance struct {
	resp      []pump_sizing.ComplianceResult
	err       error
	lastRules []service.Rule
}

func (m *mockCompliance) Check(ctx context.Context, rules []service.Rule) ([]pump_sizing.ComplianceResult, error) {
	m.lastRules = rules
	return m.resp, m.err
}

type mockRunLog struct {
	listResp   []pump_sizing.CalculationRun
	listErr    error
	lastFilter service.LogFilter

	latest    pump_sizing.CalculationRun
	latestErr error
}

func (m *mockRunLog) List(ctx context.Context, f service.LogFilter) ([]pump_sizing.CalculationRun, error) {
	m.lastFilter = f
	return m.listResp, m.listErr
}
func (m *mockRunLog) Latest(ctx context.Context) (pump_sizing.CalculationRun, error) {
	return m.latest, m.latestErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
