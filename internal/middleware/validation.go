package middleware

import (
	"strconv"

	"trivia-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// ValidatedIDKey is the Locals key holding the parsed path identifier.
const ValidatedIDKey = "validated_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{}
}

// ValidateID parses the named path parameter as an integer identifier and
// stores it under ValidatedIDKey.
func (vm *ValidationMiddleware) ValidateID(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params(param)
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.NewInvalidIdentifierError(param, raw)
		}
		c.Locals(ValidatedIDKey, id)
		return c.Next()
	}
}

// ValidatedID returns the identifier stored by ValidateID.
func ValidatedID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(ValidatedIDKey).(int64)
	return id
}
