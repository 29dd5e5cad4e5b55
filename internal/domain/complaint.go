package domain

import "time"

// IssueType classifies the civic problem being reported.
type IssueType string

const (
	IssueTypeWater             IssueType = "Water"
	IssueTypeElectricity       IssueType = "Electricity"
	IssueTypeRoad              IssueType = "Road"
	IssueTypeSanitation        IssueType = "Sanitation"
	IssueTypeStreetLights      IssueType = "Street Lights"
	IssueTypeGarbageCollection IssueType = "Garbage Collection"
	IssueTypePublicTransport   IssueType = "Public Transport"
	IssueTypeParks             IssueType = "Parks"
	IssueTypeNoisePollution    IssueType = "Noise Pollution"
	IssueTypeOther             IssueType = "Other"
)

// IssueTypes lists every supported issue type in display order.
func IssueTypes() []IssueType {
	return []IssueType{
		IssueTypeWater,
		IssueTypeElectricity,
		IssueTypeRoad,
		IssueTypeSanitation,
		IssueTypeStreetLights,
		IssueTypeGarbageCollection,
		IssueTypePublicTransport,
		IssueTypeParks,
		IssueTypeNoisePollution,
		IssueTypeOther,
	}
}

// ValidIssueType reports whether the value belongs to the fixed enumeration.
func ValidIssueType(value IssueType) bool {
	for _, it := range IssueTypes() {
		if it == value {
			return true
		}
	}
	return false
}

// ComplaintStatus enumerates lifecycle states for complaints. Transitions are
// user-driven; any value in the enumeration may replace any other.
type ComplaintStatus string

const (
	ComplaintStatusFiled      ComplaintStatus = "Filed"
	ComplaintStatusInProgress ComplaintStatus = "In Progress"
	ComplaintStatusResolved   ComplaintStatus = "Resolved"
	ComplaintStatusClosed     ComplaintStatus = "Closed"
)

// ValidComplaintStatus reports whether the status belongs to the enumeration.
func ValidComplaintStatus(status ComplaintStatus) bool {
	switch status {
	case ComplaintStatusFiled, ComplaintStatusInProgress, ComplaintStatusResolved, ComplaintStatusClosed:
		return true
	}
	return false
}

// DispatchMethod identifies the outbound channel for a complaint letter.
type DispatchMethod string

const (
	DispatchMethodWhatsApp DispatchMethod = "WhatsApp"
	DispatchMethodEmail    DispatchMethod = "Email"
)

// ValidDispatchMethod reports whether the method is supported.
func ValidDispatchMethod(method DispatchMethod) bool {
	return method == DispatchMethodWhatsApp || method == DispatchMethodEmail
}

// Location pinpoints where the issue was observed.
type Location struct {
	City    string
	Pincode string
	Address string
}

// DepartmentContact is the department snapshot embedded in a complaint at
// filing time. It is a denormalized copy, never a live reference; later
// directory edits do not alter it.
type DepartmentContact struct {
	Name         string
	ContactEmail string
	ContactPhone string
	Address      string
	Website      string
	WorkingHours string
}

// DispatchRecord captures one send event. It records intent to send, not
// delivery confirmation.
type DispatchRecord struct {
	ID          string
	ComplaintID string
	Method      DispatchMethod
	SentAt      time.Time
}

// Complaint is the aggregate for one filing event.
type Complaint struct {
	ID          string
	TrackingID  string
	UserID      string
	IssueType   IssueType
	Location    Location
	Description string
	Image       *string
	Status      ComplaintStatus
	Letter      string
	Department  DepartmentContact
	SentVia     []DispatchRecord
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
