package dto

import (
	"time"

	"github.com/spec-kit/civic-complaint-service/internal/domain"
	"github.com/spec-kit/civic-complaint-service/internal/service"
)

// FileComplaintRequest payload. Intake arrives as multipart form data so a
// photo can ride along; these are the text fields.
type FileComplaintRequest struct {
	IssueType   string `json:"issueType" form:"issueType"`
	City        string `json:"city" form:"city"`
	Pincode     string `json:"pincode" form:"pincode"`
	Address     string `json:"address" form:"address"`
	Description string `json:"description" form:"description"`
}

// UpdateComplaintStatusRequest payload.
type UpdateComplaintStatusRequest struct {
	Status string `json:"status"`
}

// RecordDispatchRequest payload.
type RecordDispatchRequest struct {
	Method string `json:"method"`
}

// LocationResponse mirrors the stored location.
type LocationResponse struct {
	City    string `json:"city"`
	Pincode string `json:"pincode"`
	Address string `json:"address"`
}

// DepartmentContactResponse is the department snapshot taken at filing time.
type DepartmentContactResponse struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address"`
	Website      string `json:"website,omitempty"`
	WorkingHours string `json:"workingHours,omitempty"`
}

// DispatchRecordResponse is one entry of the dispatch history.
type DispatchRecordResponse struct {
	ID     string    `json:"id"`
	Method string    `json:"method"`
	SentAt time.Time `json:"sentAt"`
}

// ComplaintResponse is the full complaint representation.
type ComplaintResponse struct {
	ID          string                    `json:"id"`
	TrackingID  string                    `json:"trackingId"`
	IssueType   string                    `json:"issueType"`
	Location    LocationResponse          `json:"location"`
	Description string                    `json:"description"`
	Image       *string                   `json:"image,omitempty"`
	Status      string                    `json:"status"`
	Letter      string                    `json:"letter"`
	Department  DepartmentContactResponse `json:"department"`
	SentVia     []DispatchRecordResponse  `json:"sentVia"`
	CreatedAt   time.Time                 `json:"createdAt"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
}

// ComplaintListResponse is one page of complaints plus the total count.
type ComplaintListResponse struct {
	Complaints []ComplaintResponse `json:"complaints"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
}

// DispatchLinksResponse carries the outbound deep links.
type DispatchLinksResponse struct {
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

// NewComplaintResponse maps a domain complaint onto the wire shape.
func NewComplaintResponse(complaint *domain.Complaint) ComplaintResponse {
	sentVia := make([]DispatchRecordResponse, 0, len(complaint.SentVia))
	for _, record := range complaint.SentVia {
		sentVia = append(sentVia, DispatchRecordResponse{
			ID:     record.ID,
			Method: string(record.Method),
			SentAt: record.SentAt,
		})
	}
	return ComplaintResponse{
		ID:         complaint.ID,
		TrackingID: complaint.TrackingID,
		IssueType:  string(complaint.IssueType),
		Location: LocationResponse{
			City:    complaint.Location.City,
			Pincode: complaint.Location.Pincode,
			Address: complaint.Location.Address,
		},
		Description: complaint.Description,
		Image:       complaint.Image,
		Status:      string(complaint.Status),
		Letter:      complaint.Letter,
		Department: DepartmentContactResponse{
			Name:         complaint.Department.Name,
			ContactEmail: complaint.Department.ContactEmail,
			ContactPhone: complaint.Department.ContactPhone,
			Address:      complaint.Department.Address,
			Website:      complaint.Department.Website,
			WorkingHours: complaint.Department.WorkingHours,
		},
		SentVia:   sentVia,
		CreatedAt: complaint.CreatedAt,
		UpdatedAt: complaint.UpdatedAt,
	}
}

// NewDispatchLinksResponse maps computed deep links.
func NewDispatchLinksResponse(links service.DispatchLinks) DispatchLinksResponse {
	return DispatchLinksResponse{WhatsApp: links.WhatsApp, Email: links.Email}
}
