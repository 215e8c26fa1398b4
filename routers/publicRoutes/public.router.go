package publicRoutes

import (
	publicControllers "storefront/controllers/public"
	"storefront/validators/shared"
	userValidators "storefront/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupPublicRoutes(app *fiber.App) {
	app.Get("/home", publicControllers.Home)
	app.Get("/courses", shared.ListParamsWith(publicControllers.CatalogFilters, publicControllers.CatalogSorts...), publicControllers.Catalog)
	app.Get("/courses/:slug", publicControllers.CourseDetail)
	app.Post("/contact", userValidators.Contact(), publicControllers.Contact)
}
