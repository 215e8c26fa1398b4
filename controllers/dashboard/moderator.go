package dashboardController

import (
	"storefront/apiclient"
	"storefront/listview"
	"storefront/middleware"
	"storefront/models/course"
	"storefront/services"
	courseValidator "storefront/validators/course"
	"storefront/validators/shared"

	"github.com/gofiber/fiber/v2"
)

// PendingFilters pins the review queue to pending courses, oldest first unless another sort is picked.
func PendingFilters(p *listview.Params) {
	p.Status = string(course.StatusPending)
	if p.Sort == "" {
		p.Sort = "createdAt"
		p.Order = "asc"
	}
}

// PendingCourses lists courses waiting for review.
func PendingCourses(c *fiber.Ctx) error {
	params := shared.ListParamsFrom(c)
	PendingFilters(params)

	page, err := services.API.Courses.List(c.UserContext(), middleware.APISession(c), params.Values())
	if err != nil {
		return middleware.QueryErrorResponse(c, "pending courses", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending courses fetched successfully!", listview.NewView(*params, page))
}

func approvalInput(f *courseValidator.ApprovalForm) apiclient.ApprovalInput {
	return apiclient.ApprovalInput{Status: f.Status, Reason: f.Reason}
}
