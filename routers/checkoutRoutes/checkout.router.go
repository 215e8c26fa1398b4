package checkoutRoutes

import (
	checkoutControllers "storefront/controllers/checkout"
	"storefront/middleware"
	"storefront/models"
	courseValidators "storefront/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCheckoutRoutes(app *fiber.App) {
	checkoutGroup := app.Group("/checkout", middleware.RequireRole(models.RoleStudent))

	checkoutGroup.Get("/", courseValidators.CheckoutQuery(), checkoutControllers.GetCheckout)
	checkoutGroup.Post("/", courseValidators.ValidatePurchase(), checkoutControllers.Purchase)
}
