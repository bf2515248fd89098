package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sdeshmukh/website-backend/internal/model"
)

// ContactRepository defines the persistence interface for contact messages.
type ContactRepository interface {
	Insert(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Insert appends one contact_messages row. The record carries its own id,
// timestamp, and status; nothing is assigned by the database.
func (r *PgContactRepository) Insert(ctx context.Context, msg *model.ContactMessage) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message, timestamp, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.Timestamp, msg.Status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return ErrNotAcknowledged
	}
	return nil
}

// List returns contact messages ordered newest first, paginated by
// limit/skip. Sorting and pagination happen in the database.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, subject, message, timestamp, status
		 FROM contact_messages
		 ORDER BY timestamp DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Skip,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Timestamp, &m.Status); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}
