package routers

import (
	"learnity/controllers"
	"learnity/middleware"
	"learnity/validators"

	"github.com/gofiber/fiber/v2"
)

// Controllers bundles everything the router needs
type Controllers struct {
	Category     *controllers.CategoryController
	Course       *controllers.CourseController
	Enrollment   *controllers.EnrollmentController
	Review       *controllers.ReviewController
	VideoRequest *controllers.VideoRequestController
	UserProfile  *controllers.UserProfileController
	Contact      *controllers.ContactController
	Health       *controllers.HealthController
}

// SetupRoutes registers every endpoint with its middleware chain. Reads are
// anonymous; writes require a token; administrative mutations additionally
// require the ADMIN role and a named scope.
func SetupRoutes(app *fiber.App, ctl Controllers) {
	app.Get("/health", ctl.Health.Check)

	setupCategoryRoutes(app, ctl)
	setupCourseRoutes(app, ctl)
	setupEnrollmentRoutes(app, ctl)
	setupReviewRoutes(app, ctl)
	setupVideoRequestRoutes(app, ctl)
	setupUserProfileRoutes(app, ctl)

	app.Post("/contact", validators.ContactBody(), ctl.Contact.SendMessage)
}

func setupCategoryRoutes(app *fiber.App, ctl Controllers) {
	group := app.Group("/category")

	group.Get("/", ctl.Category.GetAll)
	group.Get("/:id", validators.IDParam("id"), ctl.Category.GetByID)

	group.Post("/", middleware.JWTMiddleware, middleware.AdminOnly(middleware.ScopeCourseWrite), validators.CategoryBody(), ctl.Category.Create)
	group.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly(middleware.ScopeCourseWrite), validators.IDParam("id"), validators.CategoryBody(), ctl.Category.Update)
	group.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly(middleware.ScopeCourseWrite), validators.IDParam("id"), ctl.Category.Delete)
}

func setupCourseRoutes(app *fiber.App, ctl Controllers) {
	group := app.Group("/course")

	group.Get("/", ctl.Course.GetAll)
	group.Get("/instructors", ctl.Course.GetInstructors)
	group.Get("/category/:id", validators.IDParam("id"), ctl.Course.GetByCategory)
	group.Get("/detail/:id", validators.IDParam("id"), ctl.Course.GetDetail)

	group.Post("/", middleware.JWTMiddleware, middleware.AdminOnly(middleware.ScopeCourseWrite), validators.CourseBody(), ctl.Course.Create)
	group.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly(middleware.ScopeCourseWrite), validators.IDParam("id"), validators.CourseBody(), ctl.Course.Update)
	group.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly(middleware.ScopeCourseWrite), validators.IDParam("id"), ctl.Course.Delete)
	group.Post("/upload-thumbnail", middleware.JWTMiddleware, middleware.AdminOnly(middleware.ScopeCourseWrite), validators.UploadThumbnail(), ctl.Course.UploadThumbnail)
}

func setupEnrollmentRoutes(app *fiber.App, ctl Controllers) {
	group := app.Group("/enrollment", middleware.JWTMiddleware)

	group.Post("/", validators.EnrollmentBody(), ctl.Enrollment.Enroll)
	group.Get("/user/:id", validators.IDParam("id"), ctl.Enrollment.GetByUser)
	group.Get("/:id", validators.IDParam("id"), ctl.Enrollment.GetByID)
}

func setupReviewRoutes(app *fiber.App, ctl Controllers) {
	group := app.Group("/review", middleware.JWTMiddleware)

	group.Get("/course/:id", validators.IDParam("id"), ctl.Review.GetByCourse)
	group.Get("/user/:id", validators.IDParam("id"), ctl.Review.GetByUser)
	group.Get("/:id", validators.IDParam("id"), ctl.Review.GetByID)
	group.Post("/", validators.ReviewBody(), ctl.Review.Create)
	group.Put("/:id", validators.IDParam("id"), validators.ReviewBody(), ctl.Review.Update)
	group.Delete("/:id", validators.IDParam("id"), ctl.Review.Delete)
}

func setupVideoRequestRoutes(app *fiber.App, ctl Controllers) {
	group := app.Group("/videorequest", middleware.JWTMiddleware)

	group.Get("/", ctl.VideoRequest.GetAll)
	group.Get("/user/:id", validators.IDParam("id"), ctl.VideoRequest.GetByUser)
	group.Get("/:id", validators.IDParam("id"), ctl.VideoRequest.GetByID)
	group.Post("/", validators.VideoRequestBody(), ctl.VideoRequest.Create)
	group.Put("/:id", validators.IDParam("id"), validators.VideoRequestBody(), ctl.VideoRequest.Update)
	group.Delete("/:id", validators.IDParam("id"), ctl.VideoRequest.Delete)
}

func setupUserProfileRoutes(app *fiber.App, ctl Controllers) {
	group := app.Group("/userprofile")

	group.Get("/:id", validators.IDParam("id"), ctl.UserProfile.GetByID)
	group.Post("/update", middleware.JWTMiddleware, validators.UpdateProfile(), ctl.UserProfile.UpdateProfile)
}
