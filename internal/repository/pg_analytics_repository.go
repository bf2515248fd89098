package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sdeshmukh/website-backend/internal/model"
)

// AnalyticsRepository defines the persistence interface for analytics events.
type AnalyticsRepository interface {
	Insert(ctx context.Context, evt *model.AnalyticsEvent) error
}

// PgAnalyticsRepository is the PostgreSQL implementation of AnalyticsRepository.
// The schema-less client payload is stored as a JSONB document.
type PgAnalyticsRepository struct {
	pool *pgxpool.Pool
}

// NewPgAnalyticsRepository creates a PgAnalyticsRepository backed by the given pool.
func NewPgAnalyticsRepository(pool *pgxpool.Pool) *PgAnalyticsRepository {
	return &PgAnalyticsRepository{pool: pool}
}

var _ AnalyticsRepository = (*PgAnalyticsRepository)(nil)

// Insert appends one analytics_events row with the full merged document in
// the payload column.
func (r *PgAnalyticsRepository) Insert(ctx context.Context, evt *model.AnalyticsEvent) error {
	payload, err := json.Marshal(evt.Document())
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO analytics_events (id, timestamp, payload) VALUES ($1, $2, $3)`,
		evt.ID, evt.Timestamp, payload,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return ErrNotAcknowledged
	}
	return nil
}
