package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/civic-complaint-service/internal/domain"
)

func letterFixture() (*domain.Complaint, *domain.User, domain.DepartmentContact, time.Time) {
	complaint := &domain.Complaint{
		TrackingID: "CC-TEST01-ABC123",
		IssueType:  domain.IssueTypeWater,
		Location: domain.Location{
			City:    "Mumbai",
			Pincode: "400001",
			Address: "12 MG Road",
		},
		Description: "Severe water shortage in our building for the past week.",
	}
	user := &domain.User{Name: "Asha Rao", Email: "asha@example.com"}
	dept := domain.DepartmentContact{
		Name:         "Mumbai Water Supply Department",
		ContactEmail: "water@mumbai.gov.in",
		ContactPhone: "+91-22-2262-0251",
	}
	date := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	return complaint, user, dept, date
}

func TestRenderLetterDeterministic(t *testing.T) {
	complaint, user, dept, date := letterFixture()
	first := RenderLetter(complaint, user, dept, date)
	second := RenderLetter(complaint, user, dept, date)
	require.Equal(t, first, second)
}

func TestRenderLetterContent(t *testing.T) {
	complaint, user, dept, date := letterFixture()
	letter := RenderLetter(complaint, user, dept, date)

	assert.True(t, strings.HasPrefix(letter, "Date: 15 March 2026"))
	assert.Contains(t, letter, "To,\nMumbai Water Supply Department\nMumbai")
	assert.Contains(t, letter, "Subject: Complaint regarding Water issue - Tracking ID: CC-TEST01-ABC123")
	assert.Contains(t, letter, "a serious issue regarding water in our locality")
	assert.Contains(t, letter, "Name: Asha Rao")
	assert.Contains(t, letter, "Email: asha@example.com")
	assert.Contains(t, letter, "Location: 12 MG Road, Mumbai - 400001")
	assert.Contains(t, letter, "Issue Type: Water")
	assert.Contains(t, letter, complaint.Description)
	assert.Contains(t, letter, "Filed on: 15 March 2026")

	// once in the subject line, once in the footer
	assert.Equal(t, 2, strings.Count(letter, complaint.TrackingID))
}

func TestRenderLetterTrimmed(t *testing.T) {
	complaint, user, dept, date := letterFixture()
	letter := RenderLetter(complaint, user, dept, date)
	assert.Equal(t, letter, strings.TrimSpace(letter))
}
