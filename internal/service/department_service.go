package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/civic-complaint-service/internal/cache"
	"github.com/spec-kit/civic-complaint-service/internal/domain"
	"github.com/spec-kit/civic-complaint-service/internal/repository"
	"github.com/spec-kit/civic-complaint-service/pkg/util/errorutil"
)

// DepartmentService owns the department directory: public lookups used while
// filing a complaint, and the admin CRUD surface behind them.
type DepartmentService struct {
	departments repository.DepartmentRepository
	directory   *cache.DirectoryCache
	logger      *zap.Logger
}

// NewDepartmentService builds the service. directory may be nil; lookups then
// always hit Postgres.
func NewDepartmentService(departments repository.DepartmentRepository, directory *cache.DirectoryCache, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{
		departments: departments,
		directory:   directory,
		logger:      logger,
	}
}

// DepartmentInput describes create/update payloads for admin operations.
type DepartmentInput struct {
	City         string `validate:"required,min=2,max=100"`
	IssueType    string `validate:"required"`
	Name         string `validate:"required,min=2,max=200"`
	ContactEmail string `validate:"required,email"`
	ContactPhone string `validate:"required,min=7,max=20"`
	Address      string `validate:"required,max=300"`
	Website      string `validate:"omitempty,url"`
	WorkingHours string `validate:"omitempty,max=100"`
	IsActive     *bool  `validate:"-"`
}

// Resolve returns the routing contact for a city and issue type. When no
// active department matches, a synthesized municipal fallback is returned so
// filing never fails on directory gaps; the second return reports the
// fallback case.
func (s *DepartmentService) Resolve(ctx context.Context, city string, issueType domain.IssueType) (domain.DepartmentContact, bool, error) {
	dept, err := s.departments.FindActiveByCityAndIssue(ctx, city, issueType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Info("no department registered, using municipal fallback",
				zap.String("city", city),
				zap.String("issue_type", string(issueType)))
			return FallbackDepartment(city), true, nil
		}
		return domain.DepartmentContact{}, false, err
	}
	return dept.Contact(), false, nil
}

// FallbackDepartment synthesizes a generic municipal contact for a city with
// no registered department. Deterministic for a given city.
func FallbackDepartment(city string) domain.DepartmentContact {
	slug := strings.ToLower(strings.ReplaceAll(city, " ", ""))
	return domain.DepartmentContact{
		Name:         "Municipal Department - " + city,
		ContactEmail: "complaints@" + slug + ".gov.in",
		ContactPhone: "+91-XXX-XXX-XXXX",
		Address:      "Municipal Office, " + city,
		Website:      "https://" + slug + ".gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	}
}

// Cities lists every city with at least one active department.
func (s *DepartmentService) Cities(ctx context.Context) ([]string, error) {
	if cities, ok := s.directory.GetCities(ctx); ok {
		return cities, nil
	}
	cities, err := s.departments.ListActiveCities(ctx)
	if err != nil {
		return nil, err
	}
	s.directory.SetCities(ctx, cities)
	return cities, nil
}

// IssueTypes lists issue types covered by at least one active department.
func (s *DepartmentService) IssueTypes(ctx context.Context) ([]string, error) {
	if issueTypes, ok := s.directory.GetIssueTypes(ctx); ok {
		return issueTypes, nil
	}
	listed, err := s.departments.ListActiveIssueTypes(ctx)
	if err != nil {
		return nil, err
	}
	issueTypes := make([]string, 0, len(listed))
	for _, issueType := range listed {
		issueTypes = append(issueTypes, string(issueType))
	}
	s.directory.SetIssueTypes(ctx, issueTypes)
	return issueTypes, nil
}

// CityDirectory lists the active departments of one city.
func (s *DepartmentService) CityDirectory(ctx context.Context, city string) ([]domain.Department, error) {
	var cached []domain.Department
	if s.directory.GetCityListing(ctx, city, &cached) {
		return cached, nil
	}
	listed, err := s.departments.ListActiveByCity(ctx, city)
	if err != nil {
		return nil, err
	}
	s.directory.SetCityListing(ctx, city, listed)
	return listed, nil
}

// Create registers a department. At most one active department may exist per
// (city, issueType) pair.
func (s *DepartmentService) Create(ctx context.Context, input DepartmentInput) (*domain.Department, error) {
	if err := validateInput(input, issueTypeViolation(input.IssueType)); err != nil {
		return nil, err
	}

	dept := departmentFromInput(input)
	dept.IsActive = input.IsActive == nil || *input.IsActive

	if err := s.departments.Create(ctx, dept); err != nil {
		return nil, s.mapDepartmentError(err, dept.City, dept.IssueType)
	}
	s.directory.Invalidate(ctx)
	return dept, nil
}

// Update replaces a department's fields.
func (s *DepartmentService) Update(ctx context.Context, id string, input DepartmentInput) (*domain.Department, error) {
	if err := validateInput(input, issueTypeViolation(input.IssueType)); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	dept := departmentFromInput(input)
	dept.ID = existing.ID
	dept.IsActive = existing.IsActive
	if input.IsActive != nil {
		dept.IsActive = *input.IsActive
	}

	if err := s.departments.Update(ctx, dept); err != nil {
		return nil, s.mapDepartmentError(err, dept.City, dept.IssueType)
	}
	s.directory.Invalidate(ctx)
	return dept, nil
}

// SetActive toggles a department in or out of the resolvable directory.
func (s *DepartmentService) SetActive(ctx context.Context, id string, active bool) (*domain.Department, error) {
	dept, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if dept.IsActive == active {
		return dept, nil
	}
	dept.IsActive = active
	if err := s.departments.Update(ctx, dept); err != nil {
		return nil, s.mapDepartmentError(err, dept.City, dept.IssueType)
	}
	s.directory.Invalidate(ctx)
	return dept, nil
}

// Delete removes a department. Complaint snapshots are unaffected.
func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	if err := s.departments.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorutil.NewNotFound("department", map[string]any{"id": id})
		}
		return err
	}
	s.directory.Invalidate(ctx)
	return nil
}

// Get fetches one department by ID.
func (s *DepartmentService) Get(ctx context.Context, id string) (*domain.Department, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorutil.NewNotFound("department", map[string]any{"id": id})
		}
		return nil, err
	}
	return dept, nil
}

// List returns departments matching the admin filter, active or not.
func (s *DepartmentService) List(ctx context.Context, filter repository.DepartmentFilter) ([]domain.Department, error) {
	return s.departments.ListWithFilter(ctx, filter)
}

func (s *DepartmentService) mapDepartmentError(err error, city string, issueType domain.IssueType) error {
	if errors.Is(err, repository.ErrDuplicateDepartment) {
		return errorutil.NewConflict("an active department already exists for this city and issue type", map[string]any{
			"city":      city,
			"issueType": string(issueType),
		})
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errorutil.NewNotFound("department", nil)
	}
	return err
}

func departmentFromInput(input DepartmentInput) *domain.Department {
	return &domain.Department{
		City:         strings.TrimSpace(input.City),
		IssueType:    domain.IssueType(input.IssueType),
		Name:         strings.TrimSpace(input.Name),
		ContactEmail: strings.TrimSpace(input.ContactEmail),
		ContactPhone: strings.TrimSpace(input.ContactPhone),
		Address:      strings.TrimSpace(input.Address),
		Website:      strings.TrimSpace(input.Website),
		WorkingHours: strings.TrimSpace(input.WorkingHours),
	}
}

func issueTypeViolation(issueType string) map[string]any {
	if issueType == "" || domain.ValidIssueType(domain.IssueType(issueType)) {
		return nil
	}
	return map[string]any{"issueType": "must be one of the supported issue types"}
}
