package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"pump_sizing"
)

func testCtx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestRunAppend_Success_WithDefaults(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewRunSQLite(db)

	// Generated id and timestamp are unknown here; match shape and the fields
	// the repo normalizes.
	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO calculation_runs (id, occurred_at, kind, summary, input, result)
		VALUES (?, ?, ?, ?, ?, ?)
	`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(),
			"OPERATING_POINT", "Q*=0.0123 m³/s",
			sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(testCtx(t), pump_sizing.CalculationRun{
		// RunID empty -> repo generates
		// OccurredAt zero -> repo sets UTC now
		Kind:    "  operating_point ",
		Summary: "Q*=0.0123 m³/s",
		Input:   map[string]any{"q": 0.0123},
		Result:  map[string]any{"head_m": 21.4},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestRunAppend_DBError(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewRunSQLite(db)

	mock.ExpectExec("INSERT INTO calculation_runs").
		WillReturnError(errors.New("disk full"))

	if err := repo.Append(testCtx(t), pump_sizing.CalculationRun{Kind: pump_sizing.RunSystem}); err == nil {
		t.Fatalf("expected error from Append, got nil")
	}
}

func TestRunList_FiltersByKindAndRange(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewRunSQLite(db)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "occurred_at", "kind", "summary", "input", "result"}).
		AddRow("run-1", from.Add(time.Hour), "NPSH", "margin 2.1 m", `{"q":0.01}`, `{"margin_m":2.1}`).
		AddRow("run-2", from.Add(2*time.Hour), "NPSH", "margin 0.3 m", nil, nil)

	mock.ExpectQuery("SELECT id, occurred_at, kind, summary, input, result FROM calculation_runs WHERE occurred_at >= \\? AND occurred_at <= \\? AND kind = \\? ORDER BY occurred_at ASC").
		WithArgs(from, to, "NPSH").
		WillReturnRows(rows)

	runs, err := repo.List(testCtx(t), from, to, " npsh ")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].RunID != "run-1" || runs[0].Kind != "NPSH" {
		t.Fatalf("unexpected first run: %+v", runs[0])
	}
	res, ok := runs[0].Result.(map[string]any)
	if !ok {
		t.Fatalf("result not decoded as JSON object: %T", runs[0].Result)
	}
	if res["margin_m"] != 2.1 {
		t.Fatalf("unexpected decoded result: %+v", res)
	}
	if runs[1].Input != nil || runs[1].Result != nil {
		t.Fatalf("NULL payloads must decode to nil, got %+v", runs[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestRunLatest_EmptyLog(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewRunSQLite(db)

	mock.ExpectQuery("SELECT id, occurred_at, kind, summary, input, result").
		WillReturnError(sql.ErrNoRows)

	run, err := repo.Latest(testCtx(t))
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if run.RunID != "" {
		t.Fatalf("expected zero run for empty log, got %+v", run)
	}
}

func TestRunLatest_ReturnsNewest(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewRunSQLite(db)

	ts := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "occurred_at", "kind", "summary", "input", "result"}).
		AddRow("run-9", ts, "REPORT", "full report", nil, `{"ok":true}`)

	mock.ExpectQuery("ORDER BY occurred_at DESC, id DESC LIMIT 1").
		WillReturnRows(rows)

	run, err := repo.Latest(testCtx(t))
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if run.RunID != "run-9" || run.Kind != "REPORT" {
		t.Fatalf("unexpected run: %+v", run)
	}
	if !run.OccurredAt.Equal(ts) {
		t.Fatalf("expected UTC timestamp %v, got %v", ts, run.OccurredAt)
	}
}
