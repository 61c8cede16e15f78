package validators

import (
	"strconv"

	"learnity/dto"
	"learnity/middleware"

	"github.com/gofiber/fiber/v2"
)

func CourseBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.CourseModel)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UploadThumbnail validates the multipart form: a non-empty file plus a
// courseId form value. The empty-file rejection happens here, before any
// storage call.
func UploadThumbnail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("file")
		if err != nil || file == nil || file.Size == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded!", nil)
		}

		raw := c.FormValue("courseId")
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("thumbnailFile", file)
		c.Locals("courseId", uint(id))
		return c.Next()
	}
}
