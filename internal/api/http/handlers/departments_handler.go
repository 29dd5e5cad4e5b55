package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/civic-complaint-service/internal/api/dto"
	"github.com/spec-kit/civic-complaint-service/internal/domain"
	"github.com/spec-kit/civic-complaint-service/internal/repository"
	"github.com/spec-kit/civic-complaint-service/internal/service"
	apperrors "github.com/spec-kit/civic-complaint-service/pkg/util/errorutil"
)

// DepartmentsHandler exposes the public directory and the admin CRUD surface.
type DepartmentsHandler struct {
	service *service.DepartmentService
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(departmentService *service.DepartmentService) *DepartmentsHandler {
	return &DepartmentsHandler{service: departmentService}
}

// Cities GET /departments/cities.
func (h *DepartmentsHandler) Cities(c *fiber.Ctx) error {
	cities, err := h.service.Cities(c.Context())
	if err != nil {
		return err
	}
	if cities == nil {
		cities = []string{}
	}
	return c.JSON(fiber.Map{"data": cities})
}

// IssueTypes GET /departments/issue-types.
func (h *DepartmentsHandler) IssueTypes(c *fiber.Ctx) error {
	issueTypes, err := h.service.IssueTypes(c.Context())
	if err != nil {
		return err
	}
	if issueTypes == nil {
		issueTypes = []string{}
	}
	return c.JSON(fiber.Map{"data": issueTypes})
}

// CityDirectory GET /departments/city/:city.
func (h *DepartmentsHandler) CityDirectory(c *fiber.Ctx) error {
	city, err := url.PathUnescape(c.Params("city"))
	if err != nil || city == "" {
		return apperrors.NewValidationError("request validation failed", map[string]any{"city": "is required"})
	}
	departments, err := h.service.CityDirectory(c.Context(), city)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": departmentResponses(departments)})
}

// Create POST /departments.
func (h *DepartmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	dept, err := h.service.Create(c.Context(), req.ToInput())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewDepartmentResponse(dept)})
}

// List GET /departments.
func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	filter := repository.DepartmentFilter{}
	if city := c.Query("city"); city != "" {
		filter.City = &city
	}
	if issueType := c.Query("issueType"); issueType != "" {
		it := domain.IssueType(issueType)
		filter.IssueType = &it
	}
	if activeStr := c.Query("isActive"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			return apperrors.NewValidationError("request validation failed", map[string]any{"isActive": "must be true or false"})
		}
		filter.IsActive = &active
	}

	departments, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": departmentResponses(departments)})
}

// Get GET /departments/:id.
func (h *DepartmentsHandler) Get(c *fiber.Ctx) error {
	dept, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDepartmentResponse(dept)})
}

// Update PUT /departments/:id.
func (h *DepartmentsHandler) Update(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	dept, err := h.service.Update(c.Context(), c.Params("id"), req.ToInput())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDepartmentResponse(dept)})
}

// Toggle PATCH /departments/:id/toggle flips the active flag.
func (h *DepartmentsHandler) Toggle(c *fiber.Ctx) error {
	current, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	dept, err := h.service.SetActive(c.Context(), current.ID, !current.IsActive)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDepartmentResponse(dept)})
}

// ResolveContact GET /departments/:city/:issueType. Always answers 200: an
// unregistered pair yields the synthesized municipal fallback.
func (h *DepartmentsHandler) ResolveContact(c *fiber.Ctx) error {
	city, err := url.PathUnescape(c.Params("city"))
	if err != nil || city == "" {
		return apperrors.NewValidationError("request validation failed", map[string]any{"city": "is required"})
	}
	issueTypeRaw, err := url.PathUnescape(c.Params("issueType"))
	if err != nil {
		return apperrors.NewValidationError("request validation failed", map[string]any{"issueType": "is required"})
	}
	issueType := domain.IssueType(issueTypeRaw)
	if !domain.ValidIssueType(issueType) {
		return apperrors.NewValidationError("request validation failed", map[string]any{"issueType": "must be one of the supported issue types"})
	}

	contact, synthesized, err := h.service.Resolve(c.Context(), city, issueType)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"department": dto.NewDepartmentContactResponse(contact),
		"isFallback": synthesized,
	}})
}

// Delete DELETE /departments/:id.
func (h *DepartmentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func departmentResponses(departments []domain.Department) []dto.DepartmentResponse {
	items := make([]dto.DepartmentResponse, 0, len(departments))
	for i := range departments {
		items = append(items, dto.NewDepartmentResponse(&departments[i]))
	}
	return items
}
