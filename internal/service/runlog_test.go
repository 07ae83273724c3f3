package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pump_sizing"
)

func TestRunLogList_NormalizesFilter(t *testing.T) {
	runs := &fakeRunRepo{listResp: []pump_sizing.CalculationRun{{RunID: "r1"}}}
	svc := newTestService(runs)

	loc := time.FixedZone("UTC+5", 5*3600)
	from := time.Date(2026, 8, 1, 10, 0, 0, 0, loc)
	to := time.Date(2026, 8, 2, 10, 0, 0, 0, loc)

	got, err := svc.RunLog.List(context.Background(), LogFilter{From: from, To: to, Kind: " npsh "})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].RunID != "r1" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if runs.lastKind != "NPSH" {
		t.Fatalf("kind not normalized, repo saw %q", runs.lastKind)
	}
	if runs.lastFrom.Location() != time.UTC || !runs.lastFrom.Equal(from) {
		t.Fatalf("from not normalized to UTC: %v", runs.lastFrom)
	}
	if runs.lastTo.Location() != time.UTC || !runs.lastTo.Equal(to) {
		t.Fatalf("to not normalized to UTC: %v", runs.lastTo)
	}
}

func TestRunLogList_InvalidRange(t *testing.T) {
	svc := newTestService(&fakeRunRepo{})

	later := time.Now()
	earlier := later.Add(-time.Hour)
	_, err := svc.RunLog.List(context.Background(), LogFilter{From: later, To: earlier})
	if !errors.Is(err, errInvalidTimeRange) {
		t.Fatalf("expected errInvalidTimeRange, got %v", err)
	}
}

func TestRunLogLatest_Passthrough(t *testing.T) {
	runs := &fakeRunRepo{latest: pump_sizing.CalculationRun{RunID: "r9", Kind: pump_sizing.RunReport}}
	svc := newTestService(runs)

	run, err := svc.RunLog.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if run.RunID != "r9" {
		t.Fatalf("unexpected run: %+v", run)
	}
}
