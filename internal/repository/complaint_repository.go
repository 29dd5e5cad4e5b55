package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/civic-complaint-service/internal/domain"
)

// ComplaintRepository encapsulates complaint persistence. Reads and deletes
// are owner-scoped: a complaint is only visible to the user who filed it.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	GetByIDForUser(ctx context.Context, id, userID string) (*domain.Complaint, error)
	GetByTrackingIDForUser(ctx context.Context, trackingID, userID string) (*domain.Complaint, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Complaint, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	UpdateStatus(ctx context.Context, id, userID string, status domain.ComplaintStatus) error
	DeleteForUser(ctx context.Context, id, userID string) error
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

const complaintColumns = `id, tracking_id, user_id, issue_type, city, pincode, address, description,
               image, status, letter, dept_name, dept_email, dept_phone, dept_address,
               dept_website, dept_hours, created_at, updated_at`

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (tracking_id, user_id, issue_type, city, pincode, address, description,
            image, status, letter, dept_name, dept_email, dept_phone, dept_address, dept_website, dept_hours)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		complaint.TrackingID,
		complaint.UserID,
		complaint.IssueType,
		complaint.Location.City,
		complaint.Location.Pincode,
		complaint.Location.Address,
		complaint.Description,
		complaint.Image,
		complaint.Status,
		complaint.Letter,
		complaint.Department.Name,
		complaint.Department.ContactEmail,
		complaint.Department.ContactPhone,
		complaint.Department.Address,
		complaint.Department.Website,
		complaint.Department.WorkingHours,
	).Scan(&complaint.ID, &complaint.CreatedAt, &complaint.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateTrackingID
	}
	return err
}

func (r *complaintRepository) GetByIDForUser(ctx context.Context, id, userID string) (*domain.Complaint, error) {
	query := fmt.Sprintf(`SELECT %s FROM complaints WHERE id=$1 AND user_id=$2`, complaintColumns)
	return r.fetchSingle(ctx, query, id, userID)
}

func (r *complaintRepository) GetByTrackingIDForUser(ctx context.Context, trackingID, userID string) (*domain.Complaint, error) {
	query := fmt.Sprintf(`SELECT %s FROM complaints WHERE tracking_id=$1 AND user_id=$2`, complaintColumns)
	return r.fetchSingle(ctx, query, trackingID, userID)
}

func (r *complaintRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.Complaint, error) {
	var complaint domain.Complaint
	if err := scanComplaint(r.pool.QueryRow(ctx, query, args...), &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Complaint, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	query := fmt.Sprintf(`SELECT %s FROM complaints WHERE user_id=$1 ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		complaintColumns, limit, offset)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Complaint
	for rows.Next() {
		var complaint domain.Complaint
		if err := scanComplaint(rows, &complaint); err != nil {
			return nil, err
		}
		result = append(result, complaint)
	}
	return result, rows.Err()
}

func (r *complaintRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	const query = `SELECT COUNT(*) FROM complaints WHERE user_id=$1`
	var count int64
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *complaintRepository) UpdateStatus(ctx context.Context, id, userID string, status domain.ComplaintStatus) error {
	const query = `
        UPDATE complaints SET status=$1, updated_at=NOW()
        WHERE id=$2 AND user_id=$3`
	cmd, err := r.pool.Exec(ctx, query, status, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *complaintRepository) DeleteForUser(ctx context.Context, id, userID string) error {
	const query = `DELETE FROM complaints WHERE id=$1 AND user_id=$2`
	cmd, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanComplaint(row pgx.Row, complaint *domain.Complaint) error {
	return row.Scan(
		&complaint.ID,
		&complaint.TrackingID,
		&complaint.UserID,
		&complaint.IssueType,
		&complaint.Location.City,
		&complaint.Location.Pincode,
		&complaint.Location.Address,
		&complaint.Description,
		&complaint.Image,
		&complaint.Status,
		&complaint.Letter,
		&complaint.Department.Name,
		&complaint.Department.ContactEmail,
		&complaint.Department.ContactPhone,
		&complaint.Department.Address,
		&complaint.Department.Website,
		&complaint.Department.WorkingHours,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
	)
}
