package validators

import (
	"strconv"
	"strings"

	"learnity/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// fieldErrors flattens validator.v10 output into the field→message map the
// API returns on 422s.
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			errors[field] = field + " is required!"
		case "email":
			errors[field] = field + " must be a valid email address!"
		case "gte":
			errors[field] = field + " must be at least " + fe.Param() + "!"
		case "lte":
			errors[field] = field + " must be at most " + fe.Param() + "!"
		default:
			errors[field] = field + " is invalid!"
		}
	}
	return errors
}

// IDParam validates that the named route parameter is a positive integer and
// stores it in Locals under the same name.
func IDParam(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(name))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ID is required!", nil)
		}

		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		c.Locals(name, uint(id))
		return c.Next()
	}
}
