package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/civic-complaint-service/internal/domain"
	"github.com/spec-kit/civic-complaint-service/internal/events"
	"github.com/spec-kit/civic-complaint-service/pkg/util/errorutil"
)

type complaintFixture struct {
	service    *ComplaintService
	complaints *fakeComplaintRepo
	dispatches *fakeDispatchRepo
	users      *fakeUserRepo
	depts      *fakeDepartmentRepo
	events     *[]events.Event
	userID     string
}

func newComplaintFixture(t *testing.T) *complaintFixture {
	t.Helper()

	users := newFakeUserRepo()
	user := &domain.User{Name: "Asha Rao", Email: "asha@example.com", PasswordHash: "x", Role: domain.UserRoleCitizen}
	require.NoError(t, users.Create(context.Background(), user))

	complaints := newFakeComplaintRepo()
	dispatches := newFakeDispatchRepo()
	depts := newFakeDepartmentRepo()

	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	for _, eventType := range []events.EventType{
		events.EventComplaintFiled,
		events.EventComplaintStatusChanged,
		events.EventComplaintDispatched,
		events.EventComplaintDeleted,
	} {
		dispatcher.Subscribe(eventType, func(_ context.Context, event events.Event) error {
			published = append(published, event)
			return nil
		})
	}

	departmentService := NewDepartmentService(depts, nil, zap.NewNop())
	complaintService := NewComplaintService(ComplaintDependencies{
		ComplaintRepo:     complaints,
		DispatchRepo:      dispatches,
		UserRepo:          users,
		DepartmentService: departmentService,
		Dispatcher:        dispatcher,
		Logger:            zap.NewNop(),
		Now:               func() time.Time { return time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC) },
	})

	return &complaintFixture{
		service:    complaintService,
		complaints: complaints,
		dispatches: dispatches,
		users:      users,
		depts:      depts,
		events:     &published,
		userID:     user.ID,
	}
}

func (f *complaintFixture) registerDepartment(t *testing.T) *domain.Department {
	t.Helper()
	dept := &domain.Department{
		City:         "Mumbai",
		IssueType:    domain.IssueTypeWater,
		Name:         "Municipal Water Department - Mumbai",
		ContactEmail: "water@mumbai.gov.in",
		ContactPhone: "+91-22-2262-0251",
		Address:      "Municipal Head Office, Mumbai",
		IsActive:     true,
	}
	require.NoError(t, f.depts.Create(context.Background(), dept))
	return dept
}

func validFileInput() ComplaintFileInput {
	return ComplaintFileInput{
		IssueType:   "Water",
		City:        "Mumbai",
		Pincode:     "400001",
		Address:     "12 Example Road, Fort area",
		Description: "No water supply for 3 days in our street.",
	}
}

func TestFileComplaint(t *testing.T) {
	f := newComplaintFixture(t)
	dept := f.registerDepartment(t)

	complaint, err := f.service.File(context.Background(), f.userID, validFileInput())
	require.NoError(t, err)

	assert.NotEmpty(t, complaint.ID)
	assert.Regexp(t, trackingIDPattern, complaint.TrackingID)
	assert.Equal(t, domain.ComplaintStatusFiled, complaint.Status)
	assert.Equal(t, dept.Name, complaint.Department.Name)
	assert.Equal(t, dept.ContactEmail, complaint.Department.ContactEmail)
	assert.Nil(t, complaint.Image)
	assert.Contains(t, complaint.Letter, complaint.TrackingID)
	assert.Contains(t, complaint.Letter, "Date: 15 March 2026")

	require.Len(t, *f.events, 1)
	event := (*f.events)[0]
	assert.Equal(t, events.EventComplaintFiled, event.Type)
	assert.Equal(t, complaint.ID, event.ComplaintID)
}

func TestFileComplaintFallbackDepartment(t *testing.T) {
	f := newComplaintFixture(t)

	complaint, err := f.service.File(context.Background(), f.userID, validFileInput())
	require.NoError(t, err)

	assert.Equal(t, "Municipal Department - Mumbai", complaint.Department.Name)
	assert.Equal(t, "complaints@mumbai.gov.in", complaint.Department.ContactEmail)
	assert.Equal(t, "+91-XXX-XXX-XXXX", complaint.Department.ContactPhone)
	assert.Contains(t, complaint.Letter, "Municipal Department - Mumbai")
}

func TestFileComplaintCollectsAllViolations(t *testing.T) {
	f := newComplaintFixture(t)

	input := ComplaintFileInput{
		IssueType:   "Potholes",
		City:        "Mumbai",
		Pincode:     "40001",
		Address:     "12 MG Road",
		Description: "too short",
	}
	_, err := f.service.File(context.Background(), f.userID, input)
	require.Error(t, err)

	domainErr := errorutil.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Contains(t, domainErr.Details, "issueType")
	assert.Contains(t, domainErr.Details, "pincode")
	assert.Contains(t, domainErr.Details, "description")
	assert.Empty(t, *f.events)
}

func TestFileComplaintBoundaryLengths(t *testing.T) {
	f := newComplaintFixture(t)

	atMinimum := validFileInput()
	atMinimum.Description = strings.Repeat("d", 10)
	_, err := f.service.File(context.Background(), f.userID, atMinimum)
	require.NoError(t, err)

	belowMinimum := validFileInput()
	belowMinimum.Description = strings.Repeat("d", 9)
	_, err = f.service.File(context.Background(), f.userID, belowMinimum)
	require.Error(t, err)
	assert.Contains(t, errorutil.ToDomainError(err).Details, "description")

	longPincode := validFileInput()
	longPincode.Pincode = "4000012"
	_, err = f.service.File(context.Background(), f.userID, longPincode)
	require.Error(t, err)
	assert.Contains(t, errorutil.ToDomainError(err).Details, "pincode")
}

func TestFileComplaintImageRules(t *testing.T) {
	f := newComplaintFixture(t)

	notAnImage := validFileInput()
	notAnImage.Image = &ImageUpload{ContentType: "application/pdf", Data: []byte("%PDF")}
	_, err := f.service.File(context.Background(), f.userID, notAnImage)
	require.Error(t, err)
	assert.Contains(t, errorutil.ToDomainError(err).Details, "image")

	oversized := validFileInput()
	oversized.Image = &ImageUpload{ContentType: "image/png", Data: make([]byte, maxImageBytes+1)}
	_, err = f.service.File(context.Background(), f.userID, oversized)
	require.Error(t, err)
	assert.Contains(t, errorutil.ToDomainError(err).Details, "image")

	valid := validFileInput()
	valid.Image = &ImageUpload{ContentType: "image/png", Data: []byte{0x89, 0x50, 0x4e, 0x47}}
	complaint, err := f.service.File(context.Background(), f.userID, valid)
	require.NoError(t, err)
	require.NotNil(t, complaint.Image)
	assert.True(t, strings.HasPrefix(*complaint.Image, "data:image/png;base64,"))
}

func TestFileComplaintRetriesTrackingCollision(t *testing.T) {
	f := newComplaintFixture(t)
	f.complaints.dupFailures = 1

	complaint, err := f.service.File(context.Background(), f.userID, validFileInput())
	require.NoError(t, err)
	assert.Equal(t, 2, f.complaints.createCalls)
	assert.Contains(t, complaint.Letter, complaint.TrackingID)
}

func TestFileComplaintGivesUpAfterSecondCollision(t *testing.T) {
	f := newComplaintFixture(t)
	f.complaints.dupFailures = 2

	_, err := f.service.File(context.Background(), f.userID, validFileInput())
	require.Error(t, err)
	domainErr := errorutil.ToDomainError(err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Equal(t, 2, f.complaints.createCalls)
}

func TestUpdateStatusAllowsAnyTransition(t *testing.T) {
	f := newComplaintFixture(t)
	filed, err := f.service.File(context.Background(), f.userID, validFileInput())
	require.NoError(t, err)

	resolved, err := f.service.UpdateStatus(context.Background(), f.userID, filed.ID, domain.ComplaintStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, domain.ComplaintStatusResolved, resolved.Status)

	// a citizen may reopen a resolved complaint
	reopened, err := f.service.UpdateStatus(context.Background(), f.userID, filed.ID, domain.ComplaintStatusFiled)
	require.NoError(t, err)
	assert.Equal(t, domain.ComplaintStatusFiled, reopened.Status)

	var statusEvents int
	for _, event := range *f.events {
		if event.Type == events.EventComplaintStatusChanged {
			statusEvents++
		}
	}
	assert.Equal(t, 2, statusEvents)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	f := newComplaintFixture(t)
	filed, err := f.service.File(context.Background(), f.userID, validFileInput())
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(context.Background(), f.userID, filed.ID, "Escalated")
	require.Error(t, err)
	assert.Contains(t, errorutil.ToDomainError(err).Details, "status")
}

func TestUpdateStatusSameValueSkipsEvent(t *testing.T) {
	f := newComplaintFixture(t)
	filed, err := f.service.File(context.Background(), f.userID, validFileInput())
	require.NoError(t, err)
	before := len(*f.events)

	_, err = f.service.UpdateStatus(context.Background(), f.userID, filed.ID, domain.ComplaintStatusFiled)
	require.NoError(t, err)
	assert.Len(t, *f.events, before)
}

func TestRecordDispatchAppendsHistory(t *testing.T) {
	f := newComplaintFixture(t)
	filed, err := f.service.File(context.Background(), f.userID, validFileInput())
	require.NoError(t, err)

	for _, method := range []domain.DispatchMethod{
		domain.DispatchMethodWhatsApp,
		domain.DispatchMethodWhatsApp,
		domain.DispatchMethodEmail,
	} {
		_, err := f.service.RecordDispatch(context.Background(), f.userID, filed.ID, method)
		require.NoError(t, err)
	}

	complaint, err := f.service.Get(context.Background(), f.userID, filed.ID)
	require.NoError(t, err)
	require.Len(t, complaint.SentVia, 3)
	assert.Equal(t, domain.DispatchMethodWhatsApp, complaint.SentVia[0].Method)
	assert.Equal(t, domain.DispatchMethodWhatsApp, complaint.SentVia[1].Method)
	assert.Equal(t, domain.DispatchMethodEmail, complaint.SentVia[2].Method)
	assert.True(t, complaint.SentVia[0].SentAt.Before(complaint.SentVia[2].SentAt))
}

func TestRecordDispatchRejectsUnknownMethod(t *testing.T) {
	f := newComplaintFixture(t)
	filed, err := f.service.File(context.Background(), f.userID, validFileInput())
	require.NoError(t, err)

	_, err = f.service.RecordDispatch(context.Background(), f.userID, filed.ID, "Fax")
	require.Error(t, err)
	assert.Contains(t, errorutil.ToDomainError(err).Details, "method")
}

func TestGetByTrackingID(t *testing.T) {
	f := newComplaintFixture(t)
	filed, err := f.service.File(context.Background(), f.userID, validFileInput())
	require.NoError(t, err)

	found, err := f.service.GetByTrackingID(context.Background(), f.userID, filed.TrackingID)
	require.NoError(t, err)
	assert.Equal(t, filed.ID, found.ID)

	_, err = f.service.GetByTrackingID(context.Background(), "someone-else", filed.TrackingID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", errorutil.ToDomainError(err).Code)
}

func TestListPagination(t *testing.T) {
	f := newComplaintFixture(t)
	for i := 0; i < 3; i++ {
		_, err := f.service.File(context.Background(), f.userID, validFileInput())
		require.NoError(t, err)
	}

	page, total, err := f.service.List(context.Background(), f.userID, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, int64(3), total)

	rest, _, err := f.service.List(context.Background(), f.userID, 2, 2)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}

func TestDeleteComplaint(t *testing.T) {
	f := newComplaintFixture(t)
	filed, err := f.service.File(context.Background(), f.userID, validFileInput())
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(context.Background(), f.userID, filed.ID))

	_, err = f.service.Get(context.Background(), f.userID, filed.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", errorutil.ToDomainError(err).Code)

	last := (*f.events)[len(*f.events)-1]
	assert.Equal(t, events.EventComplaintDeleted, last.Type)
}

func TestLinksForComplaint(t *testing.T) {
	f := newComplaintFixture(t)
	f.registerDepartment(t)
	filed, err := f.service.File(context.Background(), f.userID, validFileInput())
	require.NoError(t, err)

	links, err := f.service.Links(context.Background(), f.userID, filed.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(links.WhatsApp, "https://wa.me/912222620251?text="))
	assert.True(t, strings.HasPrefix(links.Email, "mailto:water@mumbai.gov.in?subject="))
	assert.Contains(t, links.Email, filed.TrackingID)
}
