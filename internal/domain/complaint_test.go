package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidIssueType(t *testing.T) {
	for _, issueType := range IssueTypes() {
		assert.True(t, ValidIssueType(issueType))
	}
	assert.False(t, ValidIssueType("Potholes"))
	assert.False(t, ValidIssueType("water"))
}

func TestValidComplaintStatus(t *testing.T) {
	for _, status := range []ComplaintStatus{ComplaintStatusFiled, ComplaintStatusInProgress, ComplaintStatusResolved, ComplaintStatusClosed} {
		assert.True(t, ValidComplaintStatus(status))
	}
	assert.False(t, ValidComplaintStatus("Escalated"))
}

func TestValidDispatchMethod(t *testing.T) {
	assert.True(t, ValidDispatchMethod(DispatchMethodWhatsApp))
	assert.True(t, ValidDispatchMethod(DispatchMethodEmail))
	assert.False(t, ValidDispatchMethod("Fax"))
}

func TestDepartmentContactSnapshot(t *testing.T) {
	dept := Department{
		Name:         "Mumbai Water Supply Department",
		ContactEmail: "water@mumbai.gov.in",
		ContactPhone: "+91-22-2262-0251",
		Address:      "Municipal Head Office, Mumbai",
		Website:      "https://mumbai.gov.in",
		WorkingHours: "9:00 AM - 5:00 PM (Mon-Fri)",
		IsActive:     true,
	}
	contact := dept.Contact()
	assert.Equal(t, dept.Name, contact.Name)
	assert.Equal(t, dept.ContactEmail, contact.ContactEmail)

	// snapshot is a copy, later edits to the department do not leak in
	dept.ContactEmail = "changed@mumbai.gov.in"
	assert.Equal(t, "water@mumbai.gov.in", contact.ContactEmail)
}
