package middleware

import (
	"strconv"

	"feedback-builder/internal/domain"
	"feedback-builder/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by ValidationMiddleware.
const (
	LocalSessionID = "validated_session_id"
	LocalIndexes   = "validated_indexes"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	if v == nil {
		v = validation.NewValidator()
	}
	return &ValidationMiddleware{validator: v}
}

// ValidateSessionID checks the :sid path parameter
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Params("sid")
		if errs := vm.validator.ValidateSessionID(sid); len(errs) > 0 {
			return errs
		}
		c.Locals(LocalSessionID, sid)
		return c.Next()
	}
}

// ValidateIndexes checks that the named path parameters are integers.
// Range checks are left to the draft editor, which ignores stale indices.
func (vm *ValidationMiddleware) ValidateIndexes(params ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		indexes := make(map[string]int, len(params))
		var errs domain.ValidationErrors
		for _, name := range params {
			raw := c.Params(name)
			n, err := strconv.Atoi(raw)
			if err != nil {
				errs = append(errs, domain.NewInvalidFormatError(name, raw))
				continue
			}
			indexes[name] = n
		}
		if len(errs) > 0 {
			return errs
		}
		c.Locals(LocalIndexes, indexes)
		return c.Next()
	}
}

// SessionID returns the :sid parameter validated by ValidateSessionID.
func SessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(LocalSessionID).(string)
	return sid
}

// Index returns a parameter validated by ValidateIndexes.
func Index(c *fiber.Ctx, name string) int {
	indexes, _ := c.Locals(LocalIndexes).(map[string]int)
	return indexes[name]
}
