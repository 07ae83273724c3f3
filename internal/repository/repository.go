package repository

import (
	"context"
	"database/sql"
	"time"

	"pump_sizing"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*pump_sizing.User, error)
}

// RunRepo is the append-only calculation-run log.
type RunRepo interface {
	Append(ctx context.Context, run pump_sizing.CalculationRun) error
	List(ctx context.Context, from, to time.Time, kind string) ([]pump_sizing.CalculationRun, error)
	Latest(ctx context.Context) (pump_sizing.CalculationRun, error)
}

type Repository struct {
	Runs RunRepo
	Auth Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Runs: NewRunSQLite(db),
		Auth: NewUserRepository(db),
	}
}
