package controllers

import (
	"learnity/dto"
	"learnity/middleware"
	"learnity/services"

	"github.com/gofiber/fiber/v2"
)

// ReviewController serves the review endpoints
type ReviewController struct {
	service services.ReviewService
}

func NewReviewController(service services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

func (ctl *ReviewController) GetByID(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)

	review, err := ctl.service.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review fetched successfully!", review)
}

func (ctl *ReviewController) GetByCourse(c *fiber.Ctx) error {
	courseID := c.Locals("id").(uint)

	reviews, err := ctl.service.GetByCourse(c.UserContext(), courseID)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", reviews)
}

func (ctl *ReviewController) GetByUser(c *fiber.Ctx) error {
	userID := c.Locals("id").(uint)

	reviews, err := ctl.service.GetByUser(c.UserContext(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", reviews)
}

func (ctl *ReviewController) Create(c *fiber.Ctx) error {
	reqData := c.Locals("validatedReview").(*dto.ReviewModel)

	review, err := ctl.service.Create(c.UserContext(), *reqData)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review created successfully!", review)
}

func (ctl *ReviewController) Update(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)
	reqData := c.Locals("validatedReview").(*dto.ReviewModel)

	review, err := ctl.service.Update(c.UserContext(), id, *reqData)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully!", review)
}

func (ctl *ReviewController) Delete(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)

	if err := ctl.service.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully!", nil)
}
