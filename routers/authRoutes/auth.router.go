package authRoutes

import (
	authControllers "storefront/controllers/auth"
	"storefront/middleware"
	authValidators "storefront/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/logout", authControllers.Logout)
	authGroup.Post("/forgot-password", authValidators.ForgotPassword(), authControllers.ForgotPassword)
	authGroup.Post("/reset-password", authValidators.ResetPassword(), authControllers.ResetPassword)
	authGroup.Get("/verify-email", authValidators.VerifyEmail(), authControllers.VerifyEmail)
	authGroup.Get("/me", middleware.RequireAuth, authControllers.Me)
	authGroup.Patch("/change-password", middleware.RequireAuth, authValidators.ChangePassword(), authControllers.ChangePassword)
}
