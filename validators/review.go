package validators

import (
	"learnity/dto"
	"learnity/middleware"

	"github.com/gofiber/fiber/v2"
)

func ReviewBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.ReviewModel)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
