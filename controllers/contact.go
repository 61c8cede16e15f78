package controllers

import (
	"learnity/dto"
	"learnity/middleware"
	"learnity/services"

	"github.com/gofiber/fiber/v2"
)

// ContactController serves the contact-us endpoint
type ContactController struct {
	service services.ContactService
}

func NewContactController(service services.ContactService) *ContactController {
	return &ContactController{service: service}
}

func (ctl *ContactController) SendMessage(c *fiber.Ctx) error {
	reqData := c.Locals("validatedContact").(*dto.ContactMessage)

	if err := ctl.service.Send(c.UserContext(), reqData); err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message sent successfully!", reqData)
}
