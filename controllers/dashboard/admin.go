package dashboardController

import (
	"time"

	"storefront/listview"
	"storefront/logger"
	"storefront/middleware"
	"storefront/services"
	"storefront/toast"
	courseValidator "storefront/validators/course"
	"storefront/validators/shared"
	userValidator "storefront/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

var UserSorts = []string{"createdAt", "name", "email"}

func AdminUsers(c *fiber.Ctx) error {
	params := shared.ListParamsFrom(c)

	page, err := services.API.Users.List(c.UserContext(), middleware.APISession(c), params.Values())
	if err != nil {
		return middleware.QueryErrorResponse(c, "users", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", listview.NewView(*params, page))
}

func SetUserStatus(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUserStatus").(*userValidator.UserStatusForm)
	id := c.Params("id")

	if self, _ := middleware.CurrentUser(c); self.ID == id {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot change your own status.", nil)
	}

	user, err := services.API.Users.SetActive(c.UserContext(), middleware.APISession(c), id, *reqData.IsActive)
	if err != nil {
		return middleware.ErrorToast(c, toast.UpdateUser, err)
	}

	logger.Log.Info("[ADMIN] user status changed", "userId", id, "active", *reqData.IsActive)
	return middleware.ToastResponse(c, fiber.StatusOK, toast.Success(toast.UpdateUser), user)
}

func DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if self, _ := middleware.CurrentUser(c); self.ID == id {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot delete your own account.", nil)
	}

	if err := services.API.Users.Delete(c.UserContext(), middleware.APISession(c), id); err != nil {
		return middleware.ErrorToast(c, toast.DeleteUser, err)
	}

	logger.Log.Info("[ADMIN] user deleted", "userId", id)
	return middleware.ToastResponse(c, fiber.StatusOK, toast.Success(toast.DeleteUser), nil)
}

// AllCourses lists every course regardless of status. Shared by admins and moderators.
func AllCourses(c *fiber.Ctx) error {
	params := shared.ListParamsFrom(c)

	page, err := services.API.Courses.List(c.UserContext(), middleware.APISession(c), params.Values())
	if err != nil {
		return middleware.QueryErrorResponse(c, "courses", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", listview.NewView(*params, page))
}

// ReviewCourse approves or rejects a course. Shared by admins and moderators.
func ReviewCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedApproval").(*courseValidator.ApprovalForm)

	updated, err := services.API.Courses.SetApproval(c.UserContext(), middleware.APISession(c), c.Params("id"), approvalInput(reqData))
	if err != nil {
		return middleware.ErrorToast(c, toast.ApproveCourse, err)
	}

	logger.Log.Info("[REVIEW] course reviewed", "courseId", updated.ID, "status", updated.Status)
	return middleware.ToastResponse(c, fiber.StatusOK, toast.Success(toast.ApproveCourse), updated)
}

func PublishCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedPublish").(*courseValidator.PublishForm)

	updated, err := services.API.Courses.SetPublished(c.UserContext(), middleware.APISession(c), c.Params("id"), *reqData.IsPublished)
	if err != nil {
		return middleware.ErrorToast(c, toast.PublishCourse, err)
	}
	return middleware.ToastResponse(c, fiber.StatusOK, toast.Success(toast.PublishCourse), updated)
}

func AdminStats(c *fiber.Ctx) error {
	r, err := statsRange(c, time.Now())
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"range": "Invalid date range!"})
	}

	stats, err := services.API.Stats.Admin(c.UserContext(), middleware.APISession(c), r)
	if err != nil {
		return middleware.QueryErrorResponse(c, "analytics", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"range": r,
		"stats": stats,
	})
}
