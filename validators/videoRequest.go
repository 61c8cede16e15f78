package validators

import (
	"learnity/dto"
	"learnity/middleware"

	"github.com/gofiber/fiber/v2"
)

func VideoRequestBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.VideoRequestModel)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedVideoRequest", reqData)
		return c.Next()
	}
}
