package handler

import (
	"feedback-builder/internal/domain"
	"feedback-builder/internal/dto"
	"feedback-builder/internal/service"
	"feedback-builder/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// FeedbackFormHandler serves the category catalog and stored feedback forms
type FeedbackFormHandler struct {
	catalog   service.CatalogService
	forms     service.FeedbackFormService
	validator *validation.Validator
}

// NewFeedbackFormHandler creates a new FeedbackFormHandler instance
func NewFeedbackFormHandler(catalog service.CatalogService, forms service.FeedbackFormService, v *validation.Validator) *FeedbackFormHandler {
	return &FeedbackFormHandler{catalog: catalog, forms: forms, validator: v}
}

// GetCategories handles GET /api/categories
func (h *FeedbackFormHandler) GetCategories(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		return domain.ValidationErrors{domain.NewInvalidFormatError("limit", c.Query("limit"))}
	}

	categories, err := h.catalog.Fetch(c.UserContext())
	if err != nil {
		return err
	}
	if limit > 0 && limit < len(categories) {
		categories = categories[:limit]
	}
	return c.JSON(dto.CategoriesResponse{Categories: dto.NewCategoryResponses(categories)})
}

// GetFeedbackForm handles GET /api/feedback-forms/:id
func (h *FeedbackFormHandler) GetFeedbackForm(c *fiber.Ctx) error {
	form, err := h.forms.GetForm(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.FeedbackFormResponse{ID: form.ID, PersistedForm: form.PersistedForm})
}

// CreateFeedbackForm handles POST /api/feedback-forms
func (h *FeedbackFormHandler) CreateFeedbackForm(c *fiber.Ctx) error {
	var req dto.FeedbackFormRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}

	id, err := h.forms.CreateForm(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateFeedbackFormResponse{ID: id})
}

// UpdateFeedbackForm handles PUT /api/feedback-forms/:id
func (h *FeedbackFormHandler) UpdateFeedbackForm(c *fiber.Ctx) error {
	var req dto.FeedbackFormRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}

	id := c.Params("id")
	if err := h.forms.UpdateForm(c.UserContext(), id, req.ToDomain()); err != nil {
		return err
	}
	return c.JSON(dto.CreateFeedbackFormResponse{ID: id})
}
