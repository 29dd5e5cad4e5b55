package events

import (
	"time"

	"github.com/spec-kit/civic-complaint-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventComplaintFiled         EventType = "complaint_filed"
	EventComplaintStatusChanged EventType = "complaint_status_changed"
	EventComplaintDispatched    EventType = "complaint_dispatched"
	EventComplaintDeleted       EventType = "complaint_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	ComplaintID string      `json:"complaint_id"`
	UserID      string      `json:"user_id"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// ComplaintFiledPayload payload.
type ComplaintFiledPayload struct {
	TrackingID     string           `json:"tracking_id"`
	IssueType      domain.IssueType `json:"issue_type"`
	City           string           `json:"city"`
	DepartmentName string           `json:"department_name"`
}

// ComplaintStatusChangedPayload payload.
type ComplaintStatusChangedPayload struct {
	TrackingID string                 `json:"tracking_id"`
	OldStatus  domain.ComplaintStatus `json:"old_status"`
	NewStatus  domain.ComplaintStatus `json:"new_status"`
}

// ComplaintDispatchedPayload payload.
type ComplaintDispatchedPayload struct {
	TrackingID string                `json:"tracking_id"`
	Method     domain.DispatchMethod `json:"method"`
	SentAt     time.Time             `json:"sent_at"`
}

// ComplaintDeletedPayload payload.
type ComplaintDeletedPayload struct {
	TrackingID string `json:"tracking_id"`
}
