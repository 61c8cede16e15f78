package controllers

import (
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"learnity/dto"
	"learnity/middleware"
	"learnity/services"
	"learnity/storage"

	"github.com/gofiber/fiber/v2"
)

const thumbnailContainer = "course-preview"

// CourseController serves course browsing, admin mutations, and thumbnail upload
type CourseController struct {
	service  services.CourseService
	uploader storage.Uploader
}

func NewCourseController(service services.CourseService, uploader storage.Uploader) *CourseController {
	return &CourseController{service: service, uploader: uploader}
}

func (ctl *CourseController) GetAll(c *fiber.Ctx) error {
	courses, err := ctl.service.GetAll(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

func (ctl *CourseController) GetByCategory(c *fiber.Ctx) error {
	categoryID := c.Locals("id").(uint)

	courses, err := ctl.service.GetByCategory(c.UserContext(), categoryID)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

func (ctl *CourseController) GetDetail(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)

	course, err := ctl.service.GetDetail(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func (ctl *CourseController) GetInstructors(c *fiber.Ctx) error {
	instructors, err := ctl.service.GetInstructors(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructors fetched successfully!", instructors)
}

func (ctl *CourseController) Create(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*dto.CourseModel)

	course, err := ctl.service.Create(c.UserContext(), *reqData)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func (ctl *CourseController) Update(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)
	reqData := c.Locals("validatedCourse").(*dto.CourseModel)

	course, err := ctl.service.Update(c.UserContext(), id, *reqData)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)

	if err := ctl.service.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// UploadThumbnail stores the validated file in blob storage and records the
// URL on the course. The validator has already rejected empty files, so the
// not-found check runs before storage is touched.
func (ctl *CourseController) UploadThumbnail(c *fiber.Ctx) error {
	courseID := c.Locals("courseId").(uint)
	file := c.Locals("thumbnailFile").(*multipart.FileHeader)

	course, err := ctl.service.GetDetail(c.UserContext(), courseID)
	if err != nil {
		return serviceError(c, err)
	}

	src, err := file.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read uploaded file!", nil)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read uploaded file!", nil)
	}

	name := fmt.Sprintf("%d_%s%s", courseID, strings.ReplaceAll(strings.TrimSpace(course.Title), " ", "_"), path.Ext(file.Filename))
	url, err := ctl.uploader.Upload(c.UserContext(), data, name, thumbnailContainer)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload thumbnail!", nil)
	}

	if err := ctl.service.UpdateThumbnail(c.UserContext(), courseID, url); err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thumbnail uploaded successfully!", fiber.Map{
		"thumbnail_url": url,
	})
}
