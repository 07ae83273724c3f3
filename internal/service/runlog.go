package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"pump_sizing"
	"pump_sizing/internal/repository"
)

type RunLogService struct {
	runs repository.RunRepo
}

func NewRunLogService(runs repository.RunRepo) *RunLogService {
	return &RunLogService{runs: runs}
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeKind trims spaces and uppercases the run kind filter.
func normalizeKind(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f LogFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	return from, to, normalizeKind(f.Kind), nil
}

func (s *RunLogService) List(ctx context.Context, f LogFilter) ([]pump_sizing.CalculationRun, error) {
	from, to, kind, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.runs.List(ctx, from, to, kind)
}

// Latest returns the most recent run; a zero-value run means the log is
// still empty.
func (s *RunLogService) Latest(ctx context.Context) (pump_sizing.CalculationRun, error) {
	return s.runs.Latest(ctx)
}

// recordRun appends one calculation to the history. Input and result are
// stored as opaque JSON snapshots.
func recordRun(ctx context.Context, runs repository.RunRepo, kind, summary string, input, result any) error {
	return runs.Append(ctx, pump_sizing.CalculationRun{
		Kind:    kind,
		Summary: summary,
		Input:   input,
		Result:  result,
	})
}
