package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sdeshmukh/website-backend/internal/model"
)

// listStatusChecksCap bounds the legacy listing endpoint, which takes no
// pagination parameters.
const listStatusChecksCap = 1000

// StatusCheckRepository defines the persistence interface for status checks.
// It is defined here (in repository) to avoid an import cycle with service.
type StatusCheckRepository interface {
	Insert(ctx context.Context, sc *model.StatusCheck) error
	List(ctx context.Context) ([]*model.StatusCheck, error)
}

// PgStatusCheckRepository is the PostgreSQL implementation of StatusCheckRepository.
type PgStatusCheckRepository struct {
	pool *pgxpool.Pool
}

// NewPgStatusCheckRepository creates a PgStatusCheckRepository backed by the given pool.
func NewPgStatusCheckRepository(pool *pgxpool.Pool) *PgStatusCheckRepository {
	return &PgStatusCheckRepository{pool: pool}
}

var _ StatusCheckRepository = (*PgStatusCheckRepository)(nil)

// Insert appends one status_checks row. The record already carries its id
// and timestamp; the database assigns nothing.
func (r *PgStatusCheckRepository) Insert(ctx context.Context, sc *model.StatusCheck) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO status_checks (id, client_name, timestamp) VALUES ($1, $2, $3)`,
		sc.ID, sc.ClientName, sc.Timestamp,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return ErrNotAcknowledged
	}
	return nil
}

// List returns stored status checks, capped at listStatusChecksCap rows.
func (r *PgStatusCheckRepository) List(ctx context.Context) ([]*model.StatusCheck, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, client_name, timestamp FROM status_checks LIMIT $1`,
		listStatusChecksCap,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []*model.StatusCheck
	for rows.Next() {
		var sc model.StatusCheck
		if err := rows.Scan(&sc.ID, &sc.ClientName, &sc.Timestamp); err != nil {
			return nil, err
		}
		checks = append(checks, &sc)
	}
	return checks, rows.Err()
}
