package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/civic-complaint-service/internal/domain"
)

// DepartmentFilter captures admin listing parameters.
type DepartmentFilter struct {
	City      *string
	IssueType *domain.IssueType
	IsActive  *bool
}

// DepartmentRepository manages the department directory.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	FindActiveByCityAndIssue(ctx context.Context, city string, issueType domain.IssueType) (*domain.Department, error)
	ListActiveByCity(ctx context.Context, city string) ([]domain.Department, error)
	ListWithFilter(ctx context.Context, filter DepartmentFilter) ([]domain.Department, error)
	ListActiveCities(ctx context.Context) ([]string, error)
	ListActiveIssueTypes(ctx context.Context) ([]domain.IssueType, error)
}

type departmentRepository struct {
	pool *pgxpool.Pool
}

// NewDepartmentRepository builds the repository.
func NewDepartmentRepository(pool *pgxpool.Pool) DepartmentRepository {
	return &departmentRepository{pool: pool}
}

const departmentColumns = `id, city, issue_type, name, contact_email, contact_phone, address, website, working_hours, is_active, created_at, updated_at`

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	const query = `
        INSERT INTO departments (city, issue_type, name, contact_email, contact_phone, address, website, working_hours, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		dept.City,
		dept.IssueType,
		dept.Name,
		dept.ContactEmail,
		dept.ContactPhone,
		dept.Address,
		dept.Website,
		dept.WorkingHours,
		dept.IsActive,
	).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateDepartment
	}
	return err
}

func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	const query = `
        UPDATE departments SET city=$1, issue_type=$2, name=$3, contact_email=$4, contact_phone=$5,
            address=$6, website=$7, working_hours=$8, is_active=$9, updated_at=NOW()
        WHERE id=$10`
	cmd, err := r.pool.Exec(ctx, query,
		dept.City,
		dept.IssueType,
		dept.Name,
		dept.ContactEmail,
		dept.ContactPhone,
		dept.Address,
		dept.Website,
		dept.WorkingHours,
		dept.IsActive,
		dept.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateDepartment
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM departments WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments WHERE id=$1`, departmentColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *departmentRepository) FindActiveByCityAndIssue(ctx context.Context, city string, issueType domain.IssueType) (*domain.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments WHERE city=$1 AND issue_type=$2 AND is_active`, departmentColumns)
	return r.fetchSingle(ctx, query, city, issueType)
}

func (r *departmentRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.Department, error) {
	var dept domain.Department
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&dept.ID,
		&dept.City,
		&dept.IssueType,
		&dept.Name,
		&dept.ContactEmail,
		&dept.ContactPhone,
		&dept.Address,
		&dept.Website,
		&dept.WorkingHours,
		&dept.IsActive,
		&dept.CreatedAt,
		&dept.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) ListActiveByCity(ctx context.Context, city string) ([]domain.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments WHERE city=$1 AND is_active ORDER BY issue_type`, departmentColumns)
	rows, err := r.pool.Query(ctx, query, city)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDepartments(rows)
}

func (r *departmentRepository) ListWithFilter(ctx context.Context, filter DepartmentFilter) ([]domain.Department, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.City != nil {
		args = append(args, *filter.City)
		clauses = append(clauses, fmt.Sprintf("city=$%d", len(args)))
	}
	if filter.IssueType != nil {
		args = append(args, *filter.IssueType)
		clauses = append(clauses, fmt.Sprintf("issue_type=$%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		clauses = append(clauses, fmt.Sprintf("is_active=$%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM departments WHERE %s ORDER BY city, issue_type`,
		departmentColumns, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDepartments(rows)
}

func (r *departmentRepository) ListActiveCities(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT city FROM departments WHERE is_active ORDER BY city`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

func (r *departmentRepository) ListActiveIssueTypes(ctx context.Context) ([]domain.IssueType, error) {
	const query = `SELECT DISTINCT issue_type FROM departments WHERE is_active ORDER BY issue_type`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issueTypes []domain.IssueType
	for rows.Next() {
		var issueType domain.IssueType
		if err := rows.Scan(&issueType); err != nil {
			return nil, err
		}
		issueTypes = append(issueTypes, issueType)
	}
	return issueTypes, rows.Err()
}

func scanDepartments(rows pgx.Rows) ([]domain.Department, error) {
	var result []domain.Department
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(
			&dept.ID,
			&dept.City,
			&dept.IssueType,
			&dept.Name,
			&dept.ContactEmail,
			&dept.ContactPhone,
			&dept.Address,
			&dept.Website,
			&dept.WorkingHours,
			&dept.IsActive,
			&dept.CreatedAt,
			&dept.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, dept)
	}
	return result, rows.Err()
}
