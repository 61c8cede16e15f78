package validators

import (
	"strconv"
	"strings"

	"learnity/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfile validates the multipart profile update: a userId form value
// plus an optional picture and optional bio. At least one of the two must be
// present for the request to mean anything.
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.FormValue("userId"))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		file, _ := c.FormFile("picture")
		bio := c.FormValue("bio")
		if (file == nil || file.Size == 0) && strings.TrimSpace(bio) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Nothing to update!", nil)
		}

		c.Locals("profileUserId", uint(id))
		if file != nil && file.Size > 0 {
			c.Locals("profilePicture", file)
		}
		if strings.TrimSpace(bio) != "" {
			c.Locals("profileBio", bio)
		}
		return c.Next()
	}
}
