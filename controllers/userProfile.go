package controllers

import (
	"fmt"
	"io"
	"mime/multipart"
	"path"

	"learnity/middleware"
	"learnity/services"
	"learnity/storage"

	"github.com/gofiber/fiber/v2"
)

const profilePictureContainer = "profile-pictures"

// UserProfileController serves profile reads and the multipart profile update
type UserProfileController struct {
	service  services.UserProfileService
	uploader storage.Uploader
}

func NewUserProfileController(service services.UserProfileService, uploader storage.Uploader) *UserProfileController {
	return &UserProfileController{service: service, uploader: uploader}
}

func (ctl *UserProfileController) GetByID(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)

	user, err := ctl.service.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User profile fetched successfully!", user)
}

// UpdateProfile applies whichever of picture/bio the validator found. The
// picture goes to blob storage first, then the URL lands in the database.
func (ctl *UserProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("profileUserId").(uint)

	var pictureURL string
	if file, ok := c.Locals("profilePicture").(*multipart.FileHeader); ok {
		src, err := file.Open()
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read uploaded picture!", nil)
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Could not read uploaded picture!", nil)
		}

		name := fmt.Sprintf("%d_profile_picture%s", userID, path.Ext(file.Filename))
		pictureURL, err = ctl.uploader.Upload(c.UserContext(), data, name, profilePictureContainer)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload profile picture!", nil)
		}

		if err := ctl.service.UpdateProfilePicture(c.UserContext(), userID, pictureURL); err != nil {
			return serviceError(c, err)
		}
	}

	if bio, ok := c.Locals("profileBio").(string); ok {
		if err := ctl.service.UpdateBio(c.UserContext(), userID, bio); err != nil {
			return serviceError(c, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", fiber.Map{
		"profile_picture_url": pictureURL,
	})
}
