package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/civic-complaint-service/internal/api/dto"
	"github.com/spec-kit/civic-complaint-service/internal/auth"
	"github.com/spec-kit/civic-complaint-service/internal/domain"
	"github.com/spec-kit/civic-complaint-service/internal/service"
	apperrors "github.com/spec-kit/civic-complaint-service/pkg/util/errorutil"
)

// readLimit caps how much of an uploaded photo is read into memory. One byte
// above the service limit so oversized files still trip the size check.
const readLimit = 5<<20 + 1

// ComplaintsHandler manages citizen complaint endpoints.
type ComplaintsHandler struct {
	service *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaintService *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{service: complaintService}
}

// File POST /complaints.
func (h *ComplaintsHandler) File(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	var req dto.FileComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	image, err := readImage(c)
	if err != nil {
		return err
	}

	input := service.ComplaintFileInput{
		IssueType:   req.IssueType,
		City:        req.City,
		Pincode:     req.Pincode,
		Address:     req.Address,
		Description: req.Description,
		Image:       image,
	}
	complaint, err := h.service.File(c.Context(), principal.User.ID, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"complaint":       dto.NewComplaintResponse(complaint),
		"complaintLetter": complaint.Letter,
	}})
}

// List GET /complaints.
func (h *ComplaintsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	page := parseIntQuery(c, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := parseIntQuery(c, "pageSize", 10)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	complaints, total, err := h.service.List(c.Context(), principal.User.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return err
	}

	items := make([]dto.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		items = append(items, dto.NewComplaintResponse(&complaints[i]))
	}
	return c.JSON(fiber.Map{"data": dto.ComplaintListResponse{
		Complaints: items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}})
}

// Get GET /complaints/:id.
func (h *ComplaintsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	complaint, err := h.service.Get(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewComplaintResponse(complaint)})
}

// Track GET /complaints/track/:trackingId.
func (h *ComplaintsHandler) Track(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	complaint, err := h.service.GetByTrackingID(c.Context(), principal.User.ID, c.Params("trackingId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewComplaintResponse(complaint)})
}

// UpdateStatus PUT /complaints/:id/status.
func (h *ComplaintsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateComplaintStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	complaint, err := h.service.UpdateStatus(c.Context(), principal.User.ID, c.Params("id"), domain.ComplaintStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewComplaintResponse(complaint)})
}

// RecordDispatch POST /complaints/:id/sent.
func (h *ComplaintsHandler) RecordDispatch(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.RecordDispatchRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	record, err := h.service.RecordDispatch(c.Context(), principal.User.ID, c.Params("id"), domain.DispatchMethod(req.Method))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.DispatchRecordResponse{
		ID:     record.ID,
		Method: string(record.Method),
		SentAt: record.SentAt,
	}})
}

// Links GET /complaints/:id/links.
func (h *ComplaintsHandler) Links(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	links, err := h.service.Links(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDispatchLinksResponse(links)})
}

// Delete DELETE /complaints/:id.
func (h *ComplaintsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.Delete(c.Context(), principal.User.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func readImage(c *fiber.Ctx) (*service.ImageUpload, error) {
	header, err := c.FormFile("image")
	if err != nil {
		// absent file means no photo was attached
		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.NewValidationError("request validation failed", map[string]any{"image": "could not read uploaded file"})
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, readLimit))
	if err != nil {
		return nil, apperrors.NewValidationError("request validation failed", map[string]any{"image": "could not read uploaded file"})
	}
	return &service.ImageUpload{
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func parseIntQuery(c *fiber.Ctx, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
