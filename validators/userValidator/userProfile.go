package userValidator

import (
	"strings"

	"storefront/apiclient"
	"storefront/config"
	"storefront/middleware"
	"storefront/utils"
	"storefront/validators/shared"

	"github.com/gofiber/fiber/v2"
)

type ProfileForm struct {
	Name string `json:"name" form:"name" validate:"notblank,min=2,max=80"`
	Bio  string `json:"bio" form:"bio" validate:"max=500"`
}

func (f ProfileForm) Input() apiclient.ProfileInput {
	return apiclient.ProfileInput{Name: f.Name, Bio: f.Bio}
}

type UserStatusForm struct {
	IsActive *bool `json:"isActive" form:"isActive" validate:"required"`
}

type ContactForm struct {
	Name    string `json:"name" form:"name" validate:"notblank,max=80"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Subject string `json:"subject" form:"subject" validate:"notblank,max=150"`
	Message string `json:"message" form:"message" validate:"notblank,min=10,max=5000"`
}

func (f ContactForm) Mail() utils.ContactMessage {
	return utils.ContactMessage{Name: f.Name, Email: f.Email, Subject: f.Subject, Message: f.Message}
}

// UpdateProfile validates the profile form and an optional profile picture.
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProfileForm)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Bio = strings.TrimSpace(reqData.Bio)

		uploads, err := utils.CollectUploads(c, utils.FieldProfilePicture)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid multipart form!", nil)
		}

		errors := shared.Struct(reqData)
		maxMB := 0
		if config.AppConfig != nil {
			maxMB = config.AppConfig.MaxUploadMB
		}
		for field, msg := range uploads.CheckSize(maxMB) {
			errors[field] = msg
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		c.Locals("uploads", uploads)
		return c.Next()
	}
}

func UpdateUserStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UserStatusForm)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := shared.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserStatus", reqData)
		return c.Next()
	}
}

func Contact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContactForm)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.ToLower(strings.TrimSpace(reqData.Email))
		reqData.Subject = strings.TrimSpace(reqData.Subject)
		reqData.Message = strings.TrimSpace(reqData.Message)

		if errors := shared.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}
