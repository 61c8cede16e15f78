package validators

import (
	"learnity/dto"
	"learnity/middleware"

	"github.com/gofiber/fiber/v2"
)

func EnrollmentBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.EnrollmentModel)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment data!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}
