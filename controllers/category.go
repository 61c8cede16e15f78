package controllers

import (
	"learnity/dto"
	"learnity/middleware"
	"learnity/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryController serves the course-category endpoints
type CategoryController struct {
	service services.CategoryService
}

func NewCategoryController(service services.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

func (ctl *CategoryController) GetByID(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)

	category, err := ctl.service.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category fetched successfully!", category)
}

func (ctl *CategoryController) GetAll(c *fiber.Ctx) error {
	categories, err := ctl.service.GetAll(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

func (ctl *CategoryController) Create(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCategory").(*dto.CategoryModel)

	category, err := ctl.service.Create(c.UserContext(), *reqData)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

func (ctl *CategoryController) Update(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)
	reqData := c.Locals("validatedCategory").(*dto.CategoryModel)

	category, err := ctl.service.Update(c.UserContext(), id, *reqData)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

func (ctl *CategoryController) Delete(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)

	if err := ctl.service.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}
