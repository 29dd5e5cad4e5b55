package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/civic-complaint-service/internal/domain"
	"github.com/spec-kit/civic-complaint-service/internal/repository"
	"github.com/spec-kit/civic-complaint-service/pkg/util/errorutil"
)

func newDepartmentFixture() (*DepartmentService, *fakeDepartmentRepo) {
	repo := newFakeDepartmentRepo()
	return NewDepartmentService(repo, nil, zap.NewNop()), repo
}

func validDepartmentInput() DepartmentInput {
	return DepartmentInput{
		City:         "Mumbai",
		IssueType:    "Water",
		Name:         "Mumbai Water Supply Department",
		ContactEmail: "water@mumbai.gov.in",
		ContactPhone: "+91-22-2262-0251",
		Address:      "Municipal Head Office, Mumbai",
		Website:      "https://mumbai.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
	}
}

func TestFallbackDepartment(t *testing.T) {
	contact := FallbackDepartment("Mumbai")
	assert.Equal(t, "Municipal Department - Mumbai", contact.Name)
	assert.Equal(t, "complaints@mumbai.gov.in", contact.ContactEmail)
	assert.Equal(t, "+91-XXX-XXX-XXXX", contact.ContactPhone)
	assert.Equal(t, "Municipal Office, Mumbai", contact.Address)
	assert.Equal(t, "https://mumbai.gov.in", contact.Website)
	assert.Equal(t, "9:00 AM - 5:00 PM (Mon-Fri)", contact.WorkingHours)
}

func TestFallbackDepartmentMultiWordCity(t *testing.T) {
	contact := FallbackDepartment("New Delhi")
	assert.Equal(t, "Municipal Department - New Delhi", contact.Name)
	assert.Equal(t, "complaints@newdelhi.gov.in", contact.ContactEmail)
	assert.Equal(t, "https://newdelhi.gov.in", contact.Website)
}

func TestResolveRegisteredDepartment(t *testing.T) {
	svc, _ := newDepartmentFixture()
	dept, err := svc.Create(context.Background(), validDepartmentInput())
	require.NoError(t, err)

	contact, synthesized, err := svc.Resolve(context.Background(), "Mumbai", domain.IssueTypeWater)
	require.NoError(t, err)
	assert.False(t, synthesized)
	assert.Equal(t, dept.Name, contact.Name)
	assert.Equal(t, dept.ContactEmail, contact.ContactEmail)
}

func TestResolveFallsBackWhenUnregistered(t *testing.T) {
	svc, _ := newDepartmentFixture()

	contact, synthesized, err := svc.Resolve(context.Background(), "Pune", domain.IssueTypeRoad)
	require.NoError(t, err)
	assert.True(t, synthesized)
	assert.Equal(t, "Municipal Department - Pune", contact.Name)
}

func TestResolveIgnoresInactiveDepartment(t *testing.T) {
	svc, _ := newDepartmentFixture()
	dept, err := svc.Create(context.Background(), validDepartmentInput())
	require.NoError(t, err)
	_, err = svc.SetActive(context.Background(), dept.ID, false)
	require.NoError(t, err)

	_, synthesized, err := svc.Resolve(context.Background(), "Mumbai", domain.IssueTypeWater)
	require.NoError(t, err)
	assert.True(t, synthesized)
}

func TestCreateDuplicateActiveDepartment(t *testing.T) {
	svc, _ := newDepartmentFixture()
	_, err := svc.Create(context.Background(), validDepartmentInput())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validDepartmentInput())
	require.Error(t, err)
	domainErr := errorutil.ToDomainError(err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, 400, domainErr.HTTPStatus)
}

func TestCreateCollectsAllViolations(t *testing.T) {
	svc, _ := newDepartmentFixture()

	input := DepartmentInput{
		City:         "M",
		IssueType:    "Potholes",
		Name:         "",
		ContactEmail: "not-an-email",
		ContactPhone: "123",
		Address:      "x",
	}
	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)

	details := errorutil.ToDomainError(err).Details
	assert.Contains(t, details, "city")
	assert.Contains(t, details, "issueType")
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "contactEmail")
	assert.Contains(t, details, "contactPhone")
}

func TestUpdateDepartment(t *testing.T) {
	svc, _ := newDepartmentFixture()
	created, err := svc.Create(context.Background(), validDepartmentInput())
	require.NoError(t, err)

	input := validDepartmentInput()
	input.Name = "Water Supply Board"
	updated, err := svc.Update(context.Background(), created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Water Supply Board", updated.Name)
	assert.True(t, updated.IsActive)
}

func TestSetActiveRoundTrip(t *testing.T) {
	svc, _ := newDepartmentFixture()
	created, err := svc.Create(context.Background(), validDepartmentInput())
	require.NoError(t, err)

	deactivated, err := svc.SetActive(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	reactivated, err := svc.SetActive(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.True(t, reactivated.IsActive)
}

func TestDeleteDepartment(t *testing.T) {
	svc, _ := newDepartmentFixture()
	created, err := svc.Create(context.Background(), validDepartmentInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", errorutil.ToDomainError(err).Code)
}

func TestDirectoryListings(t *testing.T) {
	svc, _ := newDepartmentFixture()
	_, err := svc.Create(context.Background(), validDepartmentInput())
	require.NoError(t, err)

	second := validDepartmentInput()
	second.City = "Delhi"
	second.IssueType = "Road"
	second.ContactEmail = "roads@delhi.gov.in"
	_, err = svc.Create(context.Background(), second)
	require.NoError(t, err)

	cities, err := svc.Cities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Delhi", "Mumbai"}, cities)

	issueTypes, err := svc.IssueTypes(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Water", "Road"}, issueTypes)

	listing, err := svc.CityDirectory(context.Background(), "Mumbai")
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Equal(t, "Mumbai Water Supply Department", listing[0].Name)
}

func TestListWithFilter(t *testing.T) {
	svc, _ := newDepartmentFixture()
	created, err := svc.Create(context.Background(), validDepartmentInput())
	require.NoError(t, err)
	_, err = svc.SetActive(context.Background(), created.ID, false)
	require.NoError(t, err)

	inactive := false
	listed, err := svc.List(context.Background(), repository.DepartmentFilter{IsActive: &inactive})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}
