package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sdeshmukh/website-backend/internal/model"
)

// NewsletterRepository defines the persistence interface for newsletter subscriptions.
type NewsletterRepository interface {
	Insert(ctx context.Context, sub *model.NewsletterSubscription) error
}

// PgNewsletterRepository is the PostgreSQL implementation of NewsletterRepository.
type PgNewsletterRepository struct {
	pool *pgxpool.Pool
}

// NewPgNewsletterRepository creates a PgNewsletterRepository backed by the given pool.
func NewPgNewsletterRepository(pool *pgxpool.Pool) *PgNewsletterRepository {
	return &PgNewsletterRepository{pool: pool}
}

var _ NewsletterRepository = (*PgNewsletterRepository)(nil)

// Insert appends one newsletter_subscriptions row. No uniqueness constraint
// on email; resubscribing creates a new row.
func (r *PgNewsletterRepository) Insert(ctx context.Context, sub *model.NewsletterSubscription) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO newsletter_subscriptions (id, email, timestamp, status, source)
		 VALUES ($1, $2, $3, $4, $5)`,
		sub.ID, sub.Email, sub.Timestamp, sub.Status, sub.Source,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return ErrNotAcknowledged
	}
	return nil
}
