package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"pump_sizing"
	"pump_sizing/internal/service"
)

const pumpBody = `{
	"head": [{"q": 0, "v": 34.5}, {"q": 0.02, "v": 30.75}, {"q": 0.04, "v": 19.5}],
	"efficiency": [{"q": 0, "v": 0.30}, {"q": 0.02, "v": 0.72}, {"q": 0.04, "v": 0.58}]
}`

func TestFitCurve_Handler(t *testing.T) {
	pump := &mockPump{fitResp: service.CurveFitResult{QMin: 0, QMax: 0.04, ShutoffHeadM: 34.5}}
	s := &service.Service{Authorization: &mockAuth{}, PumpAnalysis: pump}
	r := newTestRouter(s)

	w := doJSON(r, http.MethodPost, "/api/v1/pump/curve", pumpBody, "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if len(pump.lastFit.Samples.Head) != 3 || len(pump.lastFit.Samples.Efficiency) != 3 {
		t.Fatalf("samples lost in translation: %+v", pump.lastFit.Samples)
	}

	var res service.CurveFitResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.ShutoffHeadM != 34.5 {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFitCurve_MissingHead(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{}, PumpAnalysis: &mockPump{}}
	r := newTestRouter(s)

	w := doJSON(r, http.MethodPost, "/api/v1/pump/curve", `{"efficiency": [{"q":0,"v":0.3}]}`, "valid")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without head samples, got %d", w.Code)
	}
}

func TestScaleCurve_Handler(t *testing.T) {
	pump := &mockPump{scaleResp: service.AffinityResult{Ratio: 1.1, LowConfidence: false}}
	s := &service.Service{Authorization: &mockAuth{}, PumpAnalysis: pump}
	r := newTestRouter(s)

	body := `{
		"head": [{"q": 0, "v": 34.5}, {"q": 0.02, "v": 30.75}, {"q": 0.04, "v": 19.5}],
		"ratio": 1.1
	}`
	w := doJSON(r, http.MethodPost, "/api/v1/pump/affinity", body, "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if pump.lastScale.Ratio != 1.1 {
		t.Fatalf("ratio not forwarded: %+v", pump.lastScale)
	}
}

func TestOperatingPoint_Handler(t *testing.T) {
	pump := &mockPump{opResp: pump_sizing.OperatingPoint{FlowRate: 0.027, HeadM: 27.6}}
	s := &service.Service{Authorization: &mockAuth{}, PumpAnalysis: pump}
	r := newTestRouter(s)

	body := `{
		"system": ` + systemBody + `,
		"pump": ` + pumpBody + `
	}`
	w := doJSON(r, http.MethodPost, "/api/v1/pump/operating-point", body, "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var op pump_sizing.OperatingPoint
	if err := json.Unmarshal(w.Body.Bytes(), &op); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if op.FlowRate != 0.027 {
		t.Fatalf("unexpected operating point: %+v", op)
	}
}

func TestOperatingPoint_NoIntersectionMapsTo422(t *testing.T) {
	pump := &mockPump{opErr: service.ErrNoOperatingPoint}
	s := &service.Service{Authorization: &mockAuth{}, PumpAnalysis: pump}
	r := newTestRouter(s)

	body := `{"system": ` + systemBody + `, "pump": ` + pumpBody + `}`
	w := doJSON(r, http.MethodPost, "/api/v1/pump/operating-point", body, "valid")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for ErrNoOperatingPoint, got %d", w.Code)
	}
}

func TestEvaluateNPSH_Handler(t *testing.T) {
	pump := &mockPump{npshResp: pump_sizing.NPSHResult{AvailableM: 8.04, RequiredM: 3, MarginM: 5.04}}
	s := &service.Service{Authorization: &mockAuth{}, PumpAnalysis: pump}
	r := newTestRouter(s)

	body := `{
		"suction": {"pressure_pa": 101300, "vapor_pressure_pa": 2300, "velocity_m_s": 1.0, "elevation_m": 2.0, "density_kg_m3": 1000},
		"required_m": 3
	}`
	w := doJSON(r, http.MethodPost, "/api/v1/pump/npsh", body, "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if pump.lastNPSH.Suction.PressurePa != 101300 || pump.lastNPSH.RequiredM != 3 {
		t.Fatalf("suction params lost: %+v", pump.lastNPSH)
	}
	if pump.lastNPSH.Pump != nil {
		t.Fatalf("pump curve must stay nil when not supplied")
	}
}

func TestEvaluateNPSH_MissingDataMapsTo400(t *testing.T) {
	pump := &mockPump{npshErr: service.ErrMissingData}
	s := &service.Service{Authorization: &mockAuth{}, PumpAnalysis: pump}
	r := newTestRouter(s)

	body := `{"suction": {"pressure_pa": 101300, "density_kg_m3": 1000}}`
	w := doJSON(r, http.MethodPost, "/api/v1/pump/npsh", body, "valid")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for ErrMissingData, got %d", w.Code)
	}
}

func TestReport_Handler(t *testing.T) {
	pump := &mockPump{reportResp: service.Report{
		Operating: pump_sizing.OperatingPoint{FlowRate: 0.027, HeadM: 27.6},
		Power:     pump_sizing.PowerSummary{HydraulicW: 7300, ShaftW: 10100, MotorW: 12200},
	}}
	s := &service.Service{Authorization: &mockAuth{}, PumpAnalysis: pump}
	r := newTestRouter(s)

	body := `{
		"system": ` + systemBody + `,
		"pump": ` + pumpBody + `,
		"suction": {"pressure_pa": 101300, "vapor_pressure_pa": 2300, "velocity_m_s": 1.0, "elevation_m": 2.0, "density_kg_m3": 1000},
		"speed_rpm": 1450
	}`
	w := doJSON(r, http.MethodPost, "/api/v1/pump/report", body, "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if pump.lastReport.SpeedRPM != 1450 {
		t.Fatalf("speed not forwarded: %+v", pump.lastReport)
	}
	if pump.lastReport.Suction == nil || pump.lastReport.Suction.Density != 1000 {
		t.Fatalf("suction block lost: %+v", pump.lastReport.Suction)
	}

	var rep service.Report
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rep.Power.MotorW != 12200 {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestCompliance_Handler(t *testing.T) {
	comp := &mockCompliance{resp: []pump_sizing.ComplianceResult{
		{RuleID: "v1", Standard: "ISO 15649", Pass: true},
		{RuleID: "e1", Standard: "API RP 14E", Pass: false},
	}}
	s := &service.Service{Authorization: &mockAuth{}, Compliance: comp}
	r := newTestRouter(s)

	body := `{"rules": [
		{"id": "v1", "kind": "VELOCITY", "service": "general", "velocity_m_s": 2.0},
		{"id": "e1", "kind": "EROSION_VELOCITY", "velocity_m_s": 9.0, "density_kg_m3": 1000}
	]}`
	w := doJSON(r, http.MethodPost, "/api/v1/compliance/check", body, "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if len(comp.lastRules) != 2 || comp.lastRules[0].ID != "v1" {
		t.Fatalf("rules lost: %+v", comp.lastRules)
	}

	var resp struct {
		Count   int                            `json:"count"`
		Results []pump_sizing.ComplianceResult `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 2 || len(resp.Results) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
