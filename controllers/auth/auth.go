package authController

import (
	"net/http"

	"storefront/apiclient"
	"storefront/logger"
	"storefront/middleware"
	"storefront/navigation"
	"storefront/services"
	"storefront/toast"
	authValidator "storefront/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.LoginForm)

	res, err := services.API.Auth.Login(c.UserContext(), middleware.APISession(c), apiclient.LoginInput{
		Email:    reqData.Email,
		Password: reqData.Password,
	})
	if err != nil {
		logger.Log.Warn("[AUTH] login rejected", "email", reqData.Email, "status", apiclient.StatusOf(err))
		return middleware.ErrorToast(c, toast.Login, err)
	}

	middleware.RelayCookies(c, res.SetCookies)
	middleware.SetLoginFlag(c)

	logger.Log.Info("[AUTH] login", "userId", res.User.ID, "role", res.User.Role)
	return middleware.ToastResponse(c, fiber.StatusOK, toast.Success(toast.Login), fiber.Map{
		"user":     res.User,
		"redirect": navigation.LoginRedirect(res.User.Role),
	})
}

func Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRegister").(*authValidator.RegisterForm)

	user, err := services.API.Auth.Register(c.UserContext(), middleware.APISession(c), apiclient.RegisterInput{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: reqData.Password,
		Role:     reqData.Role,
	})
	if err != nil {
		return middleware.ErrorToast(c, toast.Register, err)
	}

	return middleware.ToastResponse(c, fiber.StatusCreated,
		toast.Info("Registration successful. Check your email to verify your account."),
		fiber.Map{"user": user, "redirect": "/login"})
}

// Logout clears the session upstream and the login flag here. An already expired session counts as logged out.
func Logout(c *fiber.Ctx) error {
	setCookies, err := services.API.Auth.Logout(c.UserContext(), middleware.APISession(c))
	middleware.ClearLoginFlag(c)

	if err != nil && apiclient.StatusOf(err) != http.StatusUnauthorized {
		return middleware.ErrorToast(c, toast.Logout, err)
	}
	middleware.RelayCookies(c, setCookies)

	return middleware.ToastResponse(c, fiber.StatusOK, toast.Success(toast.Logout), fiber.Map{"redirect": "/login"})
}

func ForgotPassword(c *fiber.Ctx) error {
	reqData := c.Locals("validatedForgotPassword").(*authValidator.ForgotPasswordForm)

	if err := services.API.Auth.ForgotPassword(c.UserContext(), middleware.APISession(c), reqData.Email); err != nil {
		return middleware.ErrorToast(c, toast.ForgotPassword, err)
	}

	return middleware.ToastResponse(c, fiber.StatusOK,
		toast.Info("If an account exists for this email, a reset link is on its way."), nil)
}

func ResetPassword(c *fiber.Ctx) error {
	reqData := c.Locals("validatedResetPassword").(*authValidator.ResetPasswordForm)

	err := services.API.Auth.ResetPassword(c.UserContext(), middleware.APISession(c), apiclient.ResetPasswordInput{
		ID:       reqData.ID,
		Token:    reqData.Token,
		Password: reqData.Password,
	})
	if err != nil {
		return middleware.ErrorToast(c, toast.ResetPassword, err)
	}

	return middleware.ToastResponse(c, fiber.StatusOK, toast.Success(toast.ResetPassword), fiber.Map{"redirect": "/login"})
}

func ChangePassword(c *fiber.Ctx) error {
	reqData := c.Locals("validatedChangePassword").(*authValidator.ChangePasswordForm)

	err := services.API.Auth.ChangePassword(c.UserContext(), middleware.APISession(c), apiclient.ChangePasswordInput{
		CurrentPassword: reqData.CurrentPassword,
		NewPassword:     reqData.NewPassword,
	})
	if err != nil {
		return middleware.ErrorToast(c, toast.ChangePassword, err)
	}

	return middleware.ToastResponse(c, fiber.StatusOK, toast.Success(toast.ChangePassword), nil)
}

func VerifyEmail(c *fiber.Ctx) error {
	reqData := c.Locals("validatedVerifyEmail").(*authValidator.VerifyEmailForm)

	if err := services.API.Auth.VerifyEmail(c.UserContext(), middleware.APISession(c), reqData.ID, reqData.Token); err != nil {
		return middleware.ErrorToast(c, toast.VerifyEmail, err)
	}

	return middleware.ToastResponse(c, fiber.StatusOK, toast.Success(toast.VerifyEmail), fiber.Map{"redirect": "/login"})
}

// Me returns the signed-in user and their navigation menu.
func Me(c *fiber.Ctx) error {
	user, err := services.API.Auth.Me(c.UserContext(), middleware.APISession(c))
	if err != nil {
		if apiclient.StatusOf(err) == http.StatusUnauthorized {
			middleware.ClearLoginFlag(c)
		}
		return middleware.JsonResponse(c, apiclient.HTTPStatus(err), false, toast.FromError(toast.LoadAccount, err).Message, nil)
	}

	menu, _ := navigation.ForRole(user.Role)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", fiber.Map{
		"user":       user,
		"navigation": menu,
	})
}
