package validators

import (
	"learnity/dto"
	"learnity/middleware"

	"github.com/gofiber/fiber/v2"
)

func ContactBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(c.Body()) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Contact message cannot be null!", nil)
		}

		reqData := new(dto.ContactMessage)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Contact message cannot be null!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}
