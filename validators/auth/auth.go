package authValidator

import (
	"strings"

	"storefront/middleware"
	"storefront/models"
	"storefront/validators/shared"

	"github.com/gofiber/fiber/v2"
)

type LoginForm struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

type RegisterForm struct {
	Name            string      `json:"name" form:"name" validate:"notblank,min=2,max=80"`
	Email           string      `json:"email" form:"email" validate:"required,email"`
	Password        string      `json:"password" form:"password" validate:"required,min=6"`
	ConfirmPassword string      `json:"confirmPassword" form:"confirmPassword" validate:"required,eqfield=Password"`
	Role            models.Role `json:"role" form:"role" validate:"required,oneof=STUDENT INSTRUCTOR"`
}

type ForgotPasswordForm struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

// ResetPasswordForm takes id and token from the emailed link's query string.
type ResetPasswordForm struct {
	ID              string `json:"id" validate:"required"`
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" form:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,eqfield=Password"`
}

type ChangePasswordForm struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" form:"newPassword" validate:"required,min=6,nefield=CurrentPassword"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

type VerifyEmailForm struct {
	ID    string `json:"id" validate:"required"`
	Token string `json:"token" validate:"required"`
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginForm)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Email = normalizeEmail(reqData.Email)

		if errors := shared.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterForm)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = normalizeEmail(reqData.Email)
		if reqData.Role == "" {
			reqData.Role = models.RoleStudent
		}
		reqData.Role = models.Role(strings.ToUpper(string(reqData.Role)))

		if errors := shared.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ForgotPasswordForm)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.Email = normalizeEmail(reqData.Email)

		if errors := shared.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedForgotPassword", reqData)
		return c.Next()
	}
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ResetPasswordForm)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		reqData.ID = strings.TrimSpace(c.Query("id"))
		reqData.Token = strings.TrimSpace(c.Query("token"))

		if errors := shared.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResetPassword", reqData)
		return c.Next()
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChangePasswordForm)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := shared.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChangePassword", reqData)
		return c.Next()
	}
}

func VerifyEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &VerifyEmailForm{
			ID:    strings.TrimSpace(c.Query("id")),
			Token: strings.TrimSpace(c.Query("token")),
		}

		if errors := shared.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVerifyEmail", reqData)
		return c.Next()
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
