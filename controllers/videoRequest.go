package controllers

import (
	"learnity/dto"
	"learnity/middleware"
	"learnity/services"

	"github.com/gofiber/fiber/v2"
)

// VideoRequestController serves the video-request endpoints
type VideoRequestController struct {
	service services.VideoRequestService
}

func NewVideoRequestController(service services.VideoRequestService) *VideoRequestController {
	return &VideoRequestController{service: service}
}

// GetAll returns every request for admins; other callers see their own only
func (ctl *VideoRequestController) GetAll(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	if role == "ADMIN" {
		requests, err := ctl.service.GetAll(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Video requests fetched successfully!", requests)
	}

	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	requests, err := ctl.service.GetByUser(c.UserContext(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video requests fetched successfully!", requests)
}

func (ctl *VideoRequestController) GetByID(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)

	request, err := ctl.service.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video request fetched successfully!", request)
}

func (ctl *VideoRequestController) GetByUser(c *fiber.Ctx) error {
	userID := c.Locals("id").(uint)

	requests, err := ctl.service.GetByUser(c.UserContext(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video requests fetched successfully!", requests)
}

func (ctl *VideoRequestController) Create(c *fiber.Ctx) error {
	reqData := c.Locals("validatedVideoRequest").(*dto.VideoRequestModel)

	request, err := ctl.service.Create(c.UserContext(), *reqData)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video request created successfully!", request)
}

func (ctl *VideoRequestController) Update(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)
	reqData := c.Locals("validatedVideoRequest").(*dto.VideoRequestModel)

	request, err := ctl.service.Update(c.UserContext(), id, *reqData)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video request updated successfully!", request)
}

func (ctl *VideoRequestController) Delete(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)

	if err := ctl.service.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video request deleted successfully!", nil)
}
