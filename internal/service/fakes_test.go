package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/civic-complaint-service/internal/domain"
	"github.com/spec-kit/civic-complaint-service/internal/repository"
)

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.nextID++
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	clone.UpdatedAt = time.Now()
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeComplaintRepo struct {
	complaints  map[string]*domain.Complaint
	nextID      int
	dupFailures int
	createCalls int
}

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{complaints: map[string]*domain.Complaint{}}
}

func (f *fakeComplaintRepo) Create(_ context.Context, complaint *domain.Complaint) error {
	f.createCalls++
	if f.dupFailures > 0 {
		f.dupFailures--
		return repository.ErrDuplicateTrackingID
	}
	for _, existing := range f.complaints {
		if existing.TrackingID == complaint.TrackingID {
			return repository.ErrDuplicateTrackingID
		}
	}
	f.nextID++
	complaint.ID = fmt.Sprintf("complaint-%d", f.nextID)
	complaint.CreatedAt = time.Now().Add(time.Duration(f.nextID) * time.Millisecond)
	complaint.UpdatedAt = complaint.CreatedAt
	clone := *complaint
	f.complaints[complaint.ID] = &clone
	return nil
}

func (f *fakeComplaintRepo) GetByIDForUser(_ context.Context, id, userID string) (*domain.Complaint, error) {
	complaint, ok := f.complaints[id]
	if !ok || complaint.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	clone := *complaint
	return &clone, nil
}

func (f *fakeComplaintRepo) GetByTrackingIDForUser(_ context.Context, trackingID, userID string) (*domain.Complaint, error) {
	for _, complaint := range f.complaints {
		if complaint.TrackingID == trackingID && complaint.UserID == userID {
			clone := *complaint
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeComplaintRepo) ListByUser(_ context.Context, userID string, limit, offset int) ([]domain.Complaint, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	var owned []domain.Complaint
	for _, complaint := range f.complaints {
		if complaint.UserID == userID {
			owned = append(owned, *complaint)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt.After(owned[j].CreatedAt) })
	if offset >= len(owned) {
		return nil, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], nil
}

func (f *fakeComplaintRepo) CountByUser(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, complaint := range f.complaints {
		if complaint.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeComplaintRepo) UpdateStatus(_ context.Context, id, userID string, status domain.ComplaintStatus) error {
	complaint, ok := f.complaints[id]
	if !ok || complaint.UserID != userID {
		return pgx.ErrNoRows
	}
	complaint.Status = status
	complaint.UpdatedAt = time.Now()
	return nil
}

func (f *fakeComplaintRepo) DeleteForUser(_ context.Context, id, userID string) error {
	complaint, ok := f.complaints[id]
	if !ok || complaint.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(f.complaints, id)
	return nil
}

type fakeDispatchRepo struct {
	records []domain.DispatchRecord
	nextID  int
}

func newFakeDispatchRepo() *fakeDispatchRepo {
	return &fakeDispatchRepo{}
}

func (f *fakeDispatchRepo) Append(_ context.Context, record *domain.DispatchRecord) error {
	f.nextID++
	record.ID = fmt.Sprintf("dispatch-%d", f.nextID)
	record.SentAt = time.Now().Add(time.Duration(f.nextID) * time.Millisecond)
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeDispatchRepo) ListByComplaint(_ context.Context, complaintID string) ([]domain.DispatchRecord, error) {
	var result []domain.DispatchRecord
	for _, record := range f.records {
		if record.ComplaintID == complaintID {
			result = append(result, record)
		}
	}
	return result, nil
}

type fakeDepartmentRepo struct {
	departments map[string]*domain.Department
	nextID      int
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: map[string]*domain.Department{}}
}

func (f *fakeDepartmentRepo) Create(_ context.Context, dept *domain.Department) error {
	if dept.IsActive && f.activeExists(dept.City, dept.IssueType, "") {
		return repository.ErrDuplicateDepartment
	}
	f.nextID++
	dept.ID = fmt.Sprintf("dept-%d", f.nextID)
	dept.CreatedAt = time.Now()
	dept.UpdatedAt = dept.CreatedAt
	clone := *dept
	f.departments[dept.ID] = &clone
	return nil
}

func (f *fakeDepartmentRepo) Update(_ context.Context, dept *domain.Department) error {
	if _, ok := f.departments[dept.ID]; !ok {
		return pgx.ErrNoRows
	}
	if dept.IsActive && f.activeExists(dept.City, dept.IssueType, dept.ID) {
		return repository.ErrDuplicateDepartment
	}
	clone := *dept
	clone.UpdatedAt = time.Now()
	f.departments[dept.ID] = &clone
	return nil
}

func (f *fakeDepartmentRepo) activeExists(city string, issueType domain.IssueType, excludeID string) bool {
	for _, existing := range f.departments {
		if existing.ID != excludeID && existing.IsActive && existing.City == city && existing.IssueType == issueType {
			return true
		}
	}
	return false
}

func (f *fakeDepartmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.departments[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.departments, id)
	return nil
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id string) (*domain.Department, error) {
	dept, ok := f.departments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *dept
	return &clone, nil
}

func (f *fakeDepartmentRepo) FindActiveByCityAndIssue(_ context.Context, city string, issueType domain.IssueType) (*domain.Department, error) {
	for _, dept := range f.departments {
		if dept.IsActive && dept.City == city && dept.IssueType == issueType {
			clone := *dept
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeDepartmentRepo) ListActiveByCity(_ context.Context, city string) ([]domain.Department, error) {
	var result []domain.Department
	for _, dept := range f.departments {
		if dept.IsActive && dept.City == city {
			result = append(result, *dept)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].IssueType < result[j].IssueType })
	return result, nil
}

func (f *fakeDepartmentRepo) ListWithFilter(_ context.Context, filter repository.DepartmentFilter) ([]domain.Department, error) {
	var result []domain.Department
	for _, dept := range f.departments {
		if filter.City != nil && dept.City != *filter.City {
			continue
		}
		if filter.IssueType != nil && dept.IssueType != *filter.IssueType {
			continue
		}
		if filter.IsActive != nil && dept.IsActive != *filter.IsActive {
			continue
		}
		result = append(result, *dept)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].City != result[j].City {
			return result[i].City < result[j].City
		}
		return result[i].IssueType < result[j].IssueType
	})
	return result, nil
}

func (f *fakeDepartmentRepo) ListActiveCities(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var cities []string
	for _, dept := range f.departments {
		if dept.IsActive && !seen[dept.City] {
			seen[dept.City] = true
			cities = append(cities, dept.City)
		}
	}
	sort.Strings(cities)
	return cities, nil
}

func (f *fakeDepartmentRepo) ListActiveIssueTypes(_ context.Context) ([]domain.IssueType, error) {
	seen := map[domain.IssueType]bool{}
	var issueTypes []domain.IssueType
	for _, dept := range f.departments {
		if dept.IsActive && !seen[dept.IssueType] {
			seen[dept.IssueType] = true
			issueTypes = append(issueTypes, dept.IssueType)
		}
	}
	sort.Slice(issueTypes, func(i, j int) bool { return issueTypes[i] < issueTypes[j] })
	return issueTypes, nil
}

type fakePasswordResetRepo struct {
	tokens map[string]*repository.PasswordResetToken
	nextID int
}

func newFakePasswordResetRepo() *fakePasswordResetRepo {
	return &fakePasswordResetRepo{tokens: map[string]*repository.PasswordResetToken{}}
}

func (f *fakePasswordResetRepo) Create(_ context.Context, token *repository.PasswordResetToken) error {
	f.nextID++
	token.ID = fmt.Sprintf("reset-%d", f.nextID)
	token.CreatedAt = time.Now()
	clone := *token
	f.tokens[token.Token] = &clone
	return nil
}

func (f *fakePasswordResetRepo) GetByToken(_ context.Context, tokenStr string) (*repository.PasswordResetToken, error) {
	token, ok := f.tokens[tokenStr]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *token
	return &clone, nil
}

func (f *fakePasswordResetRepo) MarkUsed(_ context.Context, id string) error {
	for _, token := range f.tokens {
		if token.ID == id {
			now := time.Now()
			token.UsedAt = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}
