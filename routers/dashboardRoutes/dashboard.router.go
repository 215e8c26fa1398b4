package dashboardRoutes

import (
	dashboardControllers "storefront/controllers/dashboard"
	"storefront/middleware"
	"storefront/models"
	courseValidators "storefront/validators/course"
	"storefront/validators/shared"
	userValidators "storefront/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	// Shared by every signed-in role
	dashboardGroup := app.Group("/dashboard", middleware.RequireAuth)
	dashboardGroup.Get("/navigation", dashboardControllers.Navigation)
	dashboardGroup.Get("/profile", dashboardControllers.GetProfile)
	dashboardGroup.Patch("/profile", userValidators.UpdateProfile(), dashboardControllers.UpdateProfile)

	studentGroup := app.Group("/student-dashboard", middleware.RequireRole(models.RoleStudent))
	studentGroup.Get("/enrollments", shared.ListParams(dashboardControllers.EnrollmentSorts...), dashboardControllers.StudentEnrollments)
	studentGroup.Get("/stats", dashboardControllers.StudentStats)

	instructorGroup := app.Group("/instructor-dashboard", middleware.RequireRole(models.RoleInstructor))
	instructorGroup.Get("/courses", shared.ListParams(dashboardControllers.CourseSorts...), dashboardControllers.InstructorCourses)
	instructorGroup.Post("/courses", courseValidators.ValidateCourse(), dashboardControllers.CreateCourse)
	instructorGroup.Get("/courses/:id", dashboardControllers.InstructorCourse)
	instructorGroup.Patch("/courses/:id", courseValidators.ValidateCourse(), dashboardControllers.UpdateCourse)
	instructorGroup.Delete("/courses/:id", dashboardControllers.DeleteCourse)
	instructorGroup.Get("/courses/:id/modules", dashboardControllers.ListModules)
	instructorGroup.Post("/courses/:id/modules", courseValidators.ValidateModule(), dashboardControllers.CreateModule)
	instructorGroup.Patch("/modules/:id", courseValidators.ValidateModule(), dashboardControllers.UpdateModule)
	instructorGroup.Delete("/modules/:id", dashboardControllers.DeleteModule)
	instructorGroup.Get("/modules/:id/videos", dashboardControllers.ListVideos)
	instructorGroup.Post("/modules/:id/videos", courseValidators.ValidateVideo(true), dashboardControllers.CreateVideo)
	instructorGroup.Patch("/videos/:id", courseValidators.ValidateVideo(false), dashboardControllers.UpdateVideo)
	instructorGroup.Delete("/videos/:id", dashboardControllers.DeleteVideo)
	instructorGroup.Get("/stats", dashboardControllers.InstructorStats)

	adminGroup := app.Group("/admin-dashboard", middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
	adminGroup.Get("/users", shared.ListParams(dashboardControllers.UserSorts...), dashboardControllers.AdminUsers)
	adminGroup.Patch("/users/:id/status", userValidators.UpdateUserStatus(), dashboardControllers.SetUserStatus)
	adminGroup.Delete("/users/:id", dashboardControllers.DeleteUser)
	adminGroup.Get("/courses", shared.ListParams(dashboardControllers.CourseSorts...), dashboardControllers.AllCourses)
	adminGroup.Patch("/courses/:id/approval", courseValidators.ValidateApproval(), dashboardControllers.ReviewCourse)
	adminGroup.Patch("/courses/:id/publish", courseValidators.ValidatePublish(), dashboardControllers.PublishCourse)
	adminGroup.Delete("/courses/:id", dashboardControllers.DeleteCourse)
	adminGroup.Get("/stats", dashboardControllers.AdminStats)

	moderatorGroup := app.Group("/moderator-dashboard", middleware.RequireRole(models.RoleModerator))
	moderatorGroup.Get("/pending", shared.ListParamsWith(dashboardControllers.PendingFilters, dashboardControllers.CourseSorts...), dashboardControllers.PendingCourses)
	moderatorGroup.Get("/courses", shared.ListParams(dashboardControllers.CourseSorts...), dashboardControllers.AllCourses)
	moderatorGroup.Patch("/courses/:id/approval", courseValidators.ValidateApproval(), dashboardControllers.ReviewCourse)
}
