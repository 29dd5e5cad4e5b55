package dto

import (
	"time"

	"github.com/spec-kit/civic-complaint-service/internal/domain"
	"github.com/spec-kit/civic-complaint-service/internal/service"
)

// DepartmentRequest payload for admin create/update.
type DepartmentRequest struct {
	City         string `json:"city"`
	IssueType    string `json:"issueType"`
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address"`
	Website      string `json:"website"`
	WorkingHours string `json:"workingHours"`
	IsActive     *bool  `json:"isActive"`
}

// ToInput converts the payload into the service input.
func (r DepartmentRequest) ToInput() service.DepartmentInput {
	return service.DepartmentInput{
		City:         r.City,
		IssueType:    r.IssueType,
		Name:         r.Name,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Address:      r.Address,
		Website:      r.Website,
		WorkingHours: r.WorkingHours,
		IsActive:     r.IsActive,
	}
}

// DepartmentResponse is the full department representation.
type DepartmentResponse struct {
	ID           string    `json:"id"`
	City         string    `json:"city"`
	IssueType    string    `json:"issueType"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone"`
	Address      string    `json:"address"`
	Website      string    `json:"website,omitempty"`
	WorkingHours string    `json:"workingHours,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewDepartmentContactResponse maps a routing contact onto the wire shape.
func NewDepartmentContactResponse(contact domain.DepartmentContact) DepartmentContactResponse {
	return DepartmentContactResponse{
		Name:         contact.Name,
		ContactEmail: contact.ContactEmail,
		ContactPhone: contact.ContactPhone,
		Address:      contact.Address,
		Website:      contact.Website,
		WorkingHours: contact.WorkingHours,
	}
}

// NewDepartmentResponse maps a domain department onto the wire shape.
func NewDepartmentResponse(dept *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:           dept.ID,
		City:         dept.City,
		IssueType:    string(dept.IssueType),
		Name:         dept.Name,
		ContactEmail: dept.ContactEmail,
		ContactPhone: dept.ContactPhone,
		Address:      dept.Address,
		Website:      dept.Website,
		WorkingHours: dept.WorkingHours,
		IsActive:     dept.IsActive,
		CreatedAt:    dept.CreatedAt,
		UpdatedAt:    dept.UpdatedAt,
	}
}
