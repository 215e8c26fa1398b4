package dashboardController

import (
	"storefront/listview"
	"storefront/middleware"
	"storefront/services"
	"storefront/validators/shared"

	"github.com/gofiber/fiber/v2"
)

var EnrollmentSorts = []string{"createdAt", "progress"}

func StudentEnrollments(c *fiber.Ctx) error {
	params := shared.ListParamsFrom(c)

	page, err := services.API.Enrollments.Mine(c.UserContext(), middleware.APISession(c), params.Values())
	if err != nil {
		return middleware.QueryErrorResponse(c, "your courses", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", listview.NewView(*params, page))
}

func StudentStats(c *fiber.Ctx) error {
	stats, err := services.API.Stats.Student(c.UserContext(), middleware.APISession(c))
	if err != nil {
		return middleware.QueryErrorResponse(c, "your progress", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", stats)
}
