package controllers

import (
	"learnity/dto"
	"learnity/middleware"
	"learnity/services"

	"github.com/gofiber/fiber/v2"
)

// EnrollmentController serves the enrollment endpoints
type EnrollmentController struct {
	service services.EnrollmentService
}

func NewEnrollmentController(service services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{service: service}
}

func (ctl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	reqData := c.Locals("validatedEnrollment").(*dto.EnrollmentModel)

	enrollment, err := ctl.service.Enroll(c.UserContext(), reqData.UserID, reqData.CourseID)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

func (ctl *EnrollmentController) GetByID(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)

	enrollment, err := ctl.service.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}

func (ctl *EnrollmentController) GetByUser(c *fiber.Ctx) error {
	userID := c.Locals("id").(uint)

	enrollments, err := ctl.service.GetByUser(c.UserContext(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}
