package dashboardController

import (
	"storefront/middleware"
	"storefront/navigation"

	"github.com/gofiber/fiber/v2"
)

// Navigation returns the session's dashboard menu with ?tab= marked active.
// A tab the menu does not offer falls back to the first item.
func Navigation(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	menu, ok := navigation.ForRole(user.Role)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "No dashboard for this account.", fiber.Map{"redirect": "/"})
	}

	tab := c.Query("tab")
	if !menu.Allows(tab) {
		tab = ""
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Navigation fetched successfully!", menu.WithActive(tab))
}
