package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pump_sizing"
)

type RunSQLite struct {
	db *sql.DB
}

func NewRunSQLite(db *sql.DB) *RunSQLite { return &RunSQLite{db: db} }

var _ RunRepo = (*RunSQLite)(nil)

// SQLite TIMESTAMP format used for the occurred_at column.
const sqliteTimeLayout = "2006-01-02 15:04:05"

const (
	insertRunSQL = `
		INSERT INTO calculation_runs (id, occurred_at, kind, summary, input, result)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	selectRunsSQL   = `SELECT id, occurred_at, kind, summary, input, result FROM calculation_runs`
	selectLatestSQL = `
		SELECT id, occurred_at, kind, summary, input, result
		FROM calculation_runs ORDER BY occurred_at DESC, id DESC LIMIT 1
	`
)

// Append inserts a run. Empty RunID and zero OccurredAt are filled in here so
// services don't have to care.
func (r *RunSQLite) Append(ctx context.Context, run pump_sizing.CalculationRun) error {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	if run.OccurredAt.IsZero() {
		run.OccurredAt = time.Now().UTC()
	} else {
		run.OccurredAt = run.OccurredAt.UTC()
	}

	inputJSON, err := marshalPayload(run.Input)
	if err != nil {
		return err
	}
	resultJSON, err := marshalPayload(run.Result)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, insertRunSQL,
		run.RunID,
		run.OccurredAt.Format(sqliteTimeLayout),
		strings.ToUpper(strings.TrimSpace(run.Kind)),
		run.Summary,
		inputJSON,
		resultJSON,
	)
	return err
}

// List returns runs filtered by [from, to] (inclusive) and/or kind, oldest
// first.
func (r *RunSQLite) List(ctx context.Context, from, to time.Time, kind string) ([]pump_sizing.CalculationRun, error) {
	var (
		conds []string
		args  []any
	)
	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}
	if kind = strings.ToUpper(strings.TrimSpace(kind)); kind != "" {
		conds = append(conds, "kind = ?")
		args = append(args, kind)
	}

	q := selectRunsSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pump_sizing.CalculationRun, 0, 32)
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Latest returns the most recent run, or a zero run when the log is empty.
func (r *RunSQLite) Latest(ctx context.Context) (pump_sizing.CalculationRun, error) {
	row := r.db.QueryRowContext(ctx, selectLatestSQL)
	run, err := scanRun(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pump_sizing.CalculationRun{}, nil
		}
		return pump_sizing.CalculationRun{}, err
	}
	return run, nil
}

func scanRun(scan func(dest ...any) error) (pump_sizing.CalculationRun, error) {
	var (
		run       pump_sizing.CalculationRun
		inputStr  sql.NullString
		resultStr sql.NullString
	)
	if err := scan(&run.RunID, &run.OccurredAt, &run.Kind, &run.Summary, &inputStr, &resultStr); err != nil {
		return pump_sizing.CalculationRun{}, err
	}
	run.OccurredAt = run.OccurredAt.UTC()
	run.Input = unmarshalPayload(inputStr)
	run.Result = unmarshalPayload(resultStr)
	return run, nil
}

func marshalPayload(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func unmarshalPayload(ns sql.NullString) any {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(ns.String), &v); err != nil {
		return ns.String // keep raw if malformed
	}
	return v
}
