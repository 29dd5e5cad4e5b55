package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/civic-complaint-service/internal/domain"
)

// DispatchRepository stores the append-only dispatch history of a complaint.
type DispatchRepository interface {
	Append(ctx context.Context, record *domain.DispatchRecord) error
	ListByComplaint(ctx context.Context, complaintID string) ([]domain.DispatchRecord, error)
}

type dispatchRepository struct {
	pool *pgxpool.Pool
}

// NewDispatchRepository builds repository.
func NewDispatchRepository(pool *pgxpool.Pool) DispatchRepository {
	return &dispatchRepository{pool: pool}
}

func (r *dispatchRepository) Append(ctx context.Context, record *domain.DispatchRecord) error {
	const query = `
        INSERT INTO complaint_dispatches (complaint_id, method)
        VALUES ($1,$2)
        RETURNING id, sent_at`
	return r.pool.QueryRow(ctx, query,
		record.ComplaintID,
		record.Method,
	).Scan(&record.ID, &record.SentAt)
}

func (r *dispatchRepository) ListByComplaint(ctx context.Context, complaintID string) ([]domain.DispatchRecord, error) {
	const query = `
        SELECT id, complaint_id, method, sent_at
        FROM complaint_dispatches WHERE complaint_id=$1 ORDER BY sent_at ASC, id ASC`
	rows, err := r.pool.Query(ctx, query, complaintID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.DispatchRecord
	for rows.Next() {
		var record domain.DispatchRecord
		if err := rows.Scan(&record.ID, &record.ComplaintID, &record.Method, &record.SentAt); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}
