package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"pump_sizing"
	"pump_sizing/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 1 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=20000", 1 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 1 * time.Second},
		{"interval_ms_invalid", "/ws?interval_ms=NaN", 1 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

func TestWebSocket_RunStream_InitialAndPeriodic(t *testing.T) {
	runlog := &mockRunLog{latest: pump_sizing.CalculationRun{
		RunID:   "r7",
		Kind:    "OPERATING_POINT",
		Summary: "Q*=0.027 m³/s at H=27.634 m",
	}}
	s := &service.Service{RunLog: runlog}

	r := gin.New()
	h := NewHandler(s, nil, nil)
	r.GET("/ws", h.wsConnect)

	srv := httptest.NewServer(r)
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	q := u.Query()
	q.Set("interval_ms", "20") // fast ticks for the test
	u.RawQuery = q.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	type envelope struct {
		Type  string          `json:"type"`
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}

	// Read initial run
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "run" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var run pump_sizing.CalculationRun
	if err := json.Unmarshal(env.Data, &run); err != nil {
		t.Fatalf("unmarshal run: %v", err)
	}
	if run.RunID != "r7" || run.Kind != "OPERATING_POINT" {
		t.Fatalf("unexpected run: %+v", run)
	}

	// Read a subsequent tick
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "run" {
		t.Fatalf("expected type=run, got %+v", env)
	}
}

// With origins configured, browser handshakes from elsewhere are refused and
// configured ones (plus non-browser clients without an Origin header) pass.
func TestWebSocket_OriginRestriction(t *testing.T) {
	runlog := &mockRunLog{latest: pump_sizing.CalculationRun{RunID: "r1", Kind: "NPSH"}}
	s := &service.Service{RunLog: runlog}

	r := gin.New()
	h := NewHandler(s, nil, []string{"https://dash.example.com"})
	r.GET("/ws", h.wsConnect)

	srv := httptest.NewServer(r)
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}

	_, resp, err := dialer.Dial(u.String(), http.Header{"Origin": {"https://evil.example.com"}})
	if err == nil {
		t.Fatalf("expected handshake refusal for a foreign origin")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 handshake response, got %+v", resp)
	}

	conn, _, err := dialer.Dial(u.String(), http.Header{"Origin": {"https://dash.example.com"}})
	if err != nil {
		t.Fatalf("allowed origin must connect: %v", err)
	}
	conn.Close()

	conn, _, err = dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("client without an Origin header must connect: %v", err)
	}
	conn.Close()
}

func TestWebSocket_InitialLatestError_Closes(t *testing.T) {
	runlog := &mockRunLog{latestErr: errors.New("boom")}
	s := &service.Service{RunLog: runlog}

	r := gin.New()
	h := NewHandler(s, nil, nil)
	r.GET("/ws", h.wsConnect)

	srv := httptest.NewServer(r)
	defer srv.Close()

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	// The server should close immediately after the failed initial fetch.
	_ = conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	var raw json.RawMessage
	if err := conn.ReadJSON(&raw); err == nil {
		t.Fatalf("expected read error (closed), got message: %s", string(raw))
	}
}
