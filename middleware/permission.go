package middleware

import "github.com/gofiber/fiber/v2"

// Named permission scopes carried in the token
const (
	ScopeCourseWrite = "course.write"
	ScopeUserWrite   = "user.write"
)

// AdminOnly returns a middleware requiring the ADMIN role plus the named
// scope claim. Both come from the token issued by the identity provider;
// there is no per-request permission table lookup.
func AdminOnly(requiredScope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok || role != "ADMIN" {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		scopes, _ := c.Locals("userScopes").([]string)
		for _, s := range scopes {
			if s == requiredScope {
				return c.Next()
			}
		}
		return JsonResponse(c, fiber.StatusForbidden, false, "Missing required scope: "+requiredScope, nil)
	}
}
