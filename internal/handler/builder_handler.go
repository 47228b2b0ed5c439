package handler

import (
	"feedback-builder/internal/domain"
	"feedback-builder/internal/dto"
	"feedback-builder/internal/middleware"
	"feedback-builder/internal/service"
	"feedback-builder/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// BuilderHandler exposes builder sessions over HTTP
type BuilderHandler struct {
	service   service.FormBuilderService
	validator *validation.Validator
}

// NewBuilderHandler creates a new BuilderHandler instance
func NewBuilderHandler(svc service.FormBuilderService, v *validation.Validator) *BuilderHandler {
	return &BuilderHandler{service: svc, validator: v}
}

func sessionResponse(c *fiber.Ctx, status int, session *domain.BuilderSession, err error) error {
	if err != nil {
		return err
	}
	return c.Status(status).JSON(dto.NewSessionResponse(session))
}

// OpenSession handles POST /api/builder/sessions
func (h *BuilderHandler) OpenSession(c *fiber.Ctx) error {
	var req dto.OpenSessionRequest
	if len(c.Body()) > 0 {
		if err := parseAndValidate(c, h.validator, &req); err != nil {
			return err
		}
	}
	session, err := h.service.OpenSession(c.UserContext(), req.FormID)
	return sessionResponse(c, fiber.StatusCreated, session, err)
}

// GetSession handles GET /api/builder/sessions/:sid
func (h *BuilderHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.service.GetSession(c.UserContext(), middleware.SessionID(c))
	return sessionResponse(c, fiber.StatusOK, session, err)
}

// DiscardSession handles DELETE /api/builder/sessions/:sid
func (h *BuilderHandler) DiscardSession(c *fiber.Ctx) error {
	if err := h.service.DiscardSession(c.UserContext(), middleware.SessionID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateDetails handles PATCH /api/builder/sessions/:sid/details
func (h *BuilderHandler) UpdateDetails(c *fiber.Ctx) error {
	var req dto.UpdateDetailsRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	session, err := h.service.UpdateDetails(c.UserContext(), middleware.SessionID(c), req.ToDomain())
	return sessionResponse(c, fiber.StatusOK, session, err)
}

// ApplySelection handles PUT /api/builder/sessions/:sid/selection
func (h *BuilderHandler) ApplySelection(c *fiber.Ctx) error {
	var req dto.SelectionRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	session, err := h.service.ApplySelection(c.UserContext(), middleware.SessionID(c), req.CategoryIDs, req.ConfirmDiscard)
	return sessionResponse(c, fiber.StatusOK, session, err)
}

// AddQuestion handles POST /api/builder/sessions/:sid/categories/:cid/questions
func (h *BuilderHandler) AddQuestion(c *fiber.Ctx) error {
	session, err := h.service.AddQuestion(c.UserContext(), middleware.SessionID(c), c.Params("cid"))
	return sessionResponse(c, fiber.StatusCreated, session, err)
}

// RemoveQuestion handles DELETE /api/builder/sessions/:sid/categories/:cid/questions/:qidx
func (h *BuilderHandler) RemoveQuestion(c *fiber.Ctx) error {
	session, err := h.service.RemoveQuestion(c.UserContext(), middleware.SessionID(c), c.Params("cid"), middleware.Index(c, "qidx"))
	return sessionResponse(c, fiber.StatusOK, session, err)
}

// SetQuestionField handles PATCH /api/builder/sessions/:sid/categories/:cid/questions/:qidx
func (h *BuilderHandler) SetQuestionField(c *fiber.Ctx) error {
	var req dto.SetQuestionFieldRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	session, err := h.service.SetQuestionField(c.UserContext(), middleware.SessionID(c), c.Params("cid"),
		middleware.Index(c, "qidx"), domain.QuestionField(req.Field), *req.Value)
	return sessionResponse(c, fiber.StatusOK, session, err)
}

// AddOption handles POST /api/builder/sessions/:sid/categories/:cid/questions/:qidx/options
func (h *BuilderHandler) AddOption(c *fiber.Ctx) error {
	session, err := h.service.AddOption(c.UserContext(), middleware.SessionID(c), c.Params("cid"), middleware.Index(c, "qidx"))
	return sessionResponse(c, fiber.StatusCreated, session, err)
}

// SetOption handles PUT /api/builder/sessions/:sid/categories/:cid/questions/:qidx/options/:oidx
func (h *BuilderHandler) SetOption(c *fiber.Ctx) error {
	var req dto.SetOptionRequest
	if err := parseAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	session, err := h.service.SetOption(c.UserContext(), middleware.SessionID(c), c.Params("cid"),
		middleware.Index(c, "qidx"), middleware.Index(c, "oidx"), *req.Value)
	return sessionResponse(c, fiber.StatusOK, session, err)
}

// RemoveOption handles DELETE /api/builder/sessions/:sid/categories/:cid/questions/:qidx/options/:oidx
func (h *BuilderHandler) RemoveOption(c *fiber.Ctx) error {
	session, err := h.service.RemoveOption(c.UserContext(), middleware.SessionID(c), c.Params("cid"),
		middleware.Index(c, "qidx"), middleware.Index(c, "oidx"))
	return sessionResponse(c, fiber.StatusOK, session, err)
}

// Submit handles POST /api/builder/sessions/:sid/submit
func (h *BuilderHandler) Submit(c *fiber.Ctx) error {
	result, err := h.service.Submit(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	status := fiber.StatusOK
	if result.Mode == domain.ModeCreate {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.SubmitResponse{
		FormID:  result.FormID,
		Mode:    string(result.Mode),
		Notices: dto.NewNoticeResponses(result.Notices),
	})
}
