package main

import (
	"log"

	"learnity/config"
	"learnity/controllers"
	"learnity/database"
	"learnity/repository"
	"learnity/routers"
	"learnity/services"
	"learnity/storage"
	"learnity/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	db := database.Database.Db

	// Collaborators
	blobClient := storage.NewBlobClient(
		config.AppConfig.BlobEndpoint,
		config.AppConfig.BlobAccount,
		config.AppConfig.BlobAccessKey,
	)
	emailService := utils.NewEmailService(
		config.AppConfig.SendGridAPIKey,
		config.AppConfig.EmailSender,
		config.AppConfig.AdminEmail,
	)

	// Repositories
	categoryRepo := repository.NewCategoryRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	videoRequestRepo := repository.NewVideoRequestRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	categoryService := services.NewCategoryService(categoryRepo)
	courseService := services.NewCourseService(courseRepo)
	enrollmentService := services.NewEnrollmentService(enrollmentRepo, courseRepo)
	reviewService := services.NewReviewService(reviewRepo)
	videoRequestService := services.NewVideoRequestService(videoRequestRepo, emailService)
	userProfileService := services.NewUserProfileService(userRepo)
	contactService := services.NewContactService(emailService)

	// Background reminder sweep for stale video requests
	scheduler := utils.StartVideoRequestScheduler(videoRequestService, emailService)
	defer scheduler.Stop()

	app := fiber.New()

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	routers.SetupRoutes(app, routers.Controllers{
		Category:     controllers.NewCategoryController(categoryService),
		Course:       controllers.NewCourseController(courseService, blobClient),
		Enrollment:   controllers.NewEnrollmentController(enrollmentService),
		Review:       controllers.NewReviewController(reviewService),
		VideoRequest: controllers.NewVideoRequestController(videoRequestService),
		UserProfile:  controllers.NewUserProfileController(userProfileService, blobClient),
		Contact:      controllers.NewContactController(contactService),
		Health:       controllers.NewHealthController(db, config.AppConfig.MaxMemoryMB),
	})

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
