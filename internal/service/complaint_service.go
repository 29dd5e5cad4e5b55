package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/civic-complaint-service/internal/domain"
	"github.com/spec-kit/civic-complaint-service/internal/events"
	"github.com/spec-kit/civic-complaint-service/internal/repository"
	"github.com/spec-kit/civic-complaint-service/pkg/util/errorutil"
)

const maxImageBytes = 5 << 20

// ComplaintService coordinates the complaint lifecycle: intake, letter
// generation, tracking, status updates and dispatch history.
type ComplaintService struct {
	complaints  repository.ComplaintRepository
	dispatches  repository.DispatchRepository
	users       repository.UserRepository
	departments *DepartmentService
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	now         func() time.Time
}

// ComplaintDependencies bundles collaborators for the complaint service.
type ComplaintDependencies struct {
	ComplaintRepo     repository.ComplaintRepository
	DispatchRepo      repository.DispatchRepository
	UserRepo          repository.UserRepository
	DepartmentService *DepartmentService
	Dispatcher        events.Dispatcher
	Logger            *zap.Logger
	Now               func() time.Time
}

// NewComplaintService constructs the service.
func NewComplaintService(deps ComplaintDependencies) *ComplaintService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &ComplaintService{
		complaints:  deps.ComplaintRepo,
		dispatches:  deps.DispatchRepo,
		users:       deps.UserRepo,
		departments: deps.DepartmentService,
		dispatcher:  deps.Dispatcher,
		logger:      deps.Logger,
		now:         now,
	}
}

// ImageUpload carries one uploaded photo before encoding.
type ImageUpload struct {
	ContentType string
	Data        []byte
}

// ComplaintFileInput describes the intake payload.
type ComplaintFileInput struct {
	IssueType   string `validate:"required"`
	City        string `validate:"required,min=2,max=50"`
	Pincode     string `validate:"required,len=6,numeric"`
	Address     string `validate:"required,min=10,max=200"`
	Description string `validate:"required,min=10,max=1000"`
	Image       *ImageUpload `validate:"-"`
}

// File runs the intake workflow: validate everything up front, resolve the
// department, render the letter and persist the complaint. A tracking-ID
// collision is retried once with a fresh ID before giving up.
func (s *ComplaintService) File(ctx context.Context, userID string, input ComplaintFileInput) (*domain.Complaint, error) {
	extra := issueTypeViolation(input.IssueType)
	if message := imageViolation(input.Image); message != "" {
		if extra == nil {
			extra = map[string]any{}
		}
		extra["image"] = message
	}
	if err := validateInput(input, extra); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorutil.NewNotFound("user", map[string]any{"id": userID})
		}
		return nil, err
	}

	city := strings.TrimSpace(input.City)
	contact, synthesized, err := s.departments.Resolve(ctx, city, domain.IssueType(input.IssueType))
	if err != nil {
		return nil, err
	}

	complaint := &domain.Complaint{
		TrackingID:  GenerateTrackingID(),
		UserID:      user.ID,
		IssueType:   domain.IssueType(input.IssueType),
		Location:    domain.Location{City: city, Pincode: strings.TrimSpace(input.Pincode), Address: strings.TrimSpace(input.Address)},
		Description: strings.TrimSpace(input.Description),
		Image:       encodeImage(input.Image),
		Status:      domain.ComplaintStatusFiled,
		Department:  contact,
	}
	complaint.Letter = RenderLetter(complaint, user, contact, s.now())

	if err := s.complaints.Create(ctx, complaint); err != nil {
		if !errors.Is(err, repository.ErrDuplicateTrackingID) {
			return nil, err
		}
		// one retry with a fresh ID; the letter embeds it and must be rebuilt
		complaint.TrackingID = GenerateTrackingID()
		complaint.Letter = RenderLetter(complaint, user, contact, s.now())
		if err := s.complaints.Create(ctx, complaint); err != nil {
			if errors.Is(err, repository.ErrDuplicateTrackingID) {
				return nil, errorutil.NewConflict("could not allocate a unique tracking ID, please retry", nil)
			}
			return nil, err
		}
	}

	s.logger.Info("complaint filed",
		zap.String("tracking_id", complaint.TrackingID),
		zap.String("city", city),
		zap.String("issue_type", string(complaint.IssueType)),
		zap.Bool("fallback_department", synthesized))

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintFiled,
		ComplaintID: complaint.ID,
		UserID:      user.ID,
		Payload: events.ComplaintFiledPayload{
			TrackingID:     complaint.TrackingID,
			IssueType:      complaint.IssueType,
			City:           city,
			DepartmentName: contact.Name,
		},
	})
	return complaint, nil
}

// List returns one page of the caller's complaints, newest first, plus the
// total count for pagination.
func (s *ComplaintService) List(ctx context.Context, userID string, limit, offset int) ([]domain.Complaint, int64, error) {
	complaints, err := s.complaints.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.complaints.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return complaints, total, nil
}

// Get fetches one owned complaint with its dispatch history.
func (s *ComplaintService) Get(ctx context.Context, userID, complaintID string) (*domain.Complaint, error) {
	complaint, err := s.complaints.GetByIDForUser(ctx, complaintID, userID)
	if err != nil {
		return nil, mapComplaintLookupError(err, complaintID)
	}
	return s.withDispatchHistory(ctx, complaint)
}

// GetByTrackingID fetches one owned complaint by its public identifier.
func (s *ComplaintService) GetByTrackingID(ctx context.Context, userID, trackingID string) (*domain.Complaint, error) {
	complaint, err := s.complaints.GetByTrackingIDForUser(ctx, trackingID, userID)
	if err != nil {
		return nil, mapComplaintLookupError(err, trackingID)
	}
	return s.withDispatchHistory(ctx, complaint)
}

// UpdateStatus moves a complaint to another lifecycle state. Any state may
// follow any other; citizens reopen resolved complaints in practice.
func (s *ComplaintService) UpdateStatus(ctx context.Context, userID, complaintID string, status domain.ComplaintStatus) (*domain.Complaint, error) {
	if !domain.ValidComplaintStatus(status) {
		return nil, errorutil.NewValidationError("request validation failed", map[string]any{
			"status": "must be one of Filed, In Progress, Resolved, Closed",
		})
	}

	complaint, err := s.complaints.GetByIDForUser(ctx, complaintID, userID)
	if err != nil {
		return nil, mapComplaintLookupError(err, complaintID)
	}
	oldStatus := complaint.Status

	if err := s.complaints.UpdateStatus(ctx, complaintID, userID, status); err != nil {
		return nil, mapComplaintLookupError(err, complaintID)
	}
	complaint.Status = status
	complaint.UpdatedAt = s.now()

	if oldStatus != status {
		s.publishEvent(ctx, events.Event{
			Type:        events.EventComplaintStatusChanged,
			ComplaintID: complaint.ID,
			UserID:      userID,
			Payload: events.ComplaintStatusChangedPayload{
				TrackingID: complaint.TrackingID,
				OldStatus:  oldStatus,
				NewStatus:  status,
			},
		})
	}
	return s.withDispatchHistory(ctx, complaint)
}

// RecordDispatch appends one send event to the complaint's history. History
// is append-only; repeat sends over the same channel accumulate.
func (s *ComplaintService) RecordDispatch(ctx context.Context, userID, complaintID string, method domain.DispatchMethod) (*domain.DispatchRecord, error) {
	if !domain.ValidDispatchMethod(method) {
		return nil, errorutil.NewValidationError("request validation failed", map[string]any{
			"method": "must be WhatsApp or Email",
		})
	}

	complaint, err := s.complaints.GetByIDForUser(ctx, complaintID, userID)
	if err != nil {
		return nil, mapComplaintLookupError(err, complaintID)
	}

	record := &domain.DispatchRecord{ComplaintID: complaint.ID, Method: method}
	if err := s.dispatches.Append(ctx, record); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintDispatched,
		ComplaintID: complaint.ID,
		UserID:      userID,
		Payload: events.ComplaintDispatchedPayload{
			TrackingID: complaint.TrackingID,
			Method:     method,
			SentAt:     record.SentAt,
		},
	})
	return record, nil
}

// Links computes the outbound deep links for an owned complaint.
func (s *ComplaintService) Links(ctx context.Context, userID, complaintID string) (DispatchLinks, error) {
	complaint, err := s.complaints.GetByIDForUser(ctx, complaintID, userID)
	if err != nil {
		return DispatchLinks{}, mapComplaintLookupError(err, complaintID)
	}
	return BuildDispatchLinks(complaint), nil
}

// Delete removes an owned complaint and its dispatch history.
func (s *ComplaintService) Delete(ctx context.Context, userID, complaintID string) error {
	complaint, err := s.complaints.GetByIDForUser(ctx, complaintID, userID)
	if err != nil {
		return mapComplaintLookupError(err, complaintID)
	}
	if err := s.complaints.DeleteForUser(ctx, complaintID, userID); err != nil {
		return mapComplaintLookupError(err, complaintID)
	}
	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintDeleted,
		ComplaintID: complaint.ID,
		UserID:      userID,
		Payload:     events.ComplaintDeletedPayload{TrackingID: complaint.TrackingID},
	})
	return nil
}

func (s *ComplaintService) withDispatchHistory(ctx context.Context, complaint *domain.Complaint) (*domain.Complaint, error) {
	history, err := s.dispatches.ListByComplaint(ctx, complaint.ID)
	if err != nil {
		return nil, err
	}
	complaint.SentVia = history
	return complaint, nil
}

func (s *ComplaintService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = s.now()
	_ = s.dispatcher.Publish(ctx, event)
}

func mapComplaintLookupError(err error, ref string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errorutil.NewNotFound("complaint", map[string]any{"id": ref})
	}
	return err
}

func imageViolation(image *ImageUpload) string {
	if image == nil {
		return ""
	}
	if !strings.HasPrefix(image.ContentType, "image/") {
		return "must be an image file"
	}
	if len(image.Data) > maxImageBytes {
		return "must not exceed 5MB"
	}
	return ""
}

func encodeImage(image *ImageUpload) *string {
	if image == nil {
		return nil
	}
	encoded := "data:" + image.ContentType + ";base64," + base64.StdEncoding.EncodeToString(image.Data)
	return &encoded
}
