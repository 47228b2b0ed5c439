package handler

import (
	"feedback-builder/internal/domain"
	"feedback-builder/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// parseAndValidate decodes the JSON body into req and checks its validate tags.
func parseAndValidate(c *fiber.Ctx, v *validation.Validator, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return domain.ValidationErrors{domain.NewValidationError("body", "malformed request body")}
	}
	if errs := v.ValidateStruct(req); len(errs) > 0 {
		return errs
	}
	return nil
}
