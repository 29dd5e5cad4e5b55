package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/spec-kit/civic-complaint-service/internal/domain"
)

// letterDateLayout renders dates as "2 January 2006", the fixed presentation
// contract for complaint letters.
const letterDateLayout = "2 January 2006"

// RenderLetter produces the formatted complaint letter. It is a pure
// function: identical inputs and date always yield identical text. All
// interpolated fields are assumed validated by the intake workflow.
func RenderLetter(complaint *domain.Complaint, user *domain.User, dept domain.DepartmentContact, date time.Time) string {
	currentDate := date.Format(letterDateLayout)

	letter := fmt.Sprintf(`
Date: %s

To,
%s
%s

Subject: Complaint regarding %s issue - Tracking ID: %s

Dear Sir/Madam,

I hope this letter finds you in good health. I am writing to bring to your immediate attention a serious issue regarding %s in our locality.

Complainant Details:
Name: %s
Email: %s

Issue Details:
Location: %s, %s - %s
Issue Type: %s

Description:
%s

This issue is causing significant inconvenience to the residents of our area and requires urgent attention from your department. I request you to kindly look into this matter and take appropriate action at the earliest.

I would appreciate if you could acknowledge the receipt of this complaint and provide an estimated timeline for resolution. You can reach me via email at %s for any clarifications.

Thank you for your time and consideration.

Yours sincerely,
%s

Tracking ID: %s
Filed on: %s
`,
		currentDate,
		dept.Name,
		complaint.Location.City,
		complaint.IssueType,
		complaint.TrackingID,
		strings.ToLower(string(complaint.IssueType)),
		user.Name,
		user.Email,
		complaint.Location.Address,
		complaint.Location.City,
		complaint.Location.Pincode,
		complaint.IssueType,
		complaint.Description,
		user.Email,
		user.Name,
		complaint.TrackingID,
		currentDate,
	)

	return strings.TrimSpace(letter)
}
