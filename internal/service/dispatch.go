package service

import (
	"net/url"
	"strings"

	"github.com/spec-kit/civic-complaint-service/internal/domain"
)

// DispatchLinks carries the outbound deep links for one complaint letter.
type DispatchLinks struct {
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

// BuildDispatchLinks computes both deep links. Pure and side-effect free;
// recording a dispatch is a separate operation.
func BuildDispatchLinks(complaint *domain.Complaint) DispatchLinks {
	subject := "Complaint regarding " + string(complaint.IssueType) + " - " + complaint.TrackingID
	return DispatchLinks{
		WhatsApp: WhatsAppLink(complaint.Department.ContactPhone, complaint.Letter),
		Email:    EmailLink(complaint.Department.ContactEmail, subject, complaint.Letter),
	}
}

// WhatsAppLink builds a https://wa.me deep link. The department phone is
// reduced to bare digits: whitespace, hyphens and plus signs are stripped.
func WhatsAppLink(phone, letter string) string {
	digits := strings.NewReplacer(" ", "", "\t", "", "-", "", "+", "").Replace(phone)
	return "https://wa.me/" + digits + "?text=" + escapeComponent(letter)
}

// EmailLink builds a mailto link with percent-encoded subject and body.
func EmailLink(email, subject, letter string) string {
	return "mailto:" + email + "?subject=" + escapeComponent(subject) + "&body=" + escapeComponent(letter)
}

// escapeComponent percent-encodes like encodeURIComponent: query escaping
// with spaces as %20, which both wa.me and mail clients expect.
func escapeComponent(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
