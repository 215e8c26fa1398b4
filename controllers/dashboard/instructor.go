package dashboardController

import (
	"time"

	"storefront/apiclient"
	"storefront/listview"
	"storefront/logger"
	"storefront/middleware"
	"storefront/models/course"
	"storefront/services"
	"storefront/toast"
	"storefront/utils"
	courseValidator "storefront/validators/course"
	"storefront/validators/shared"

	"github.com/gofiber/fiber/v2"
)

var CourseSorts = []string{"createdAt", "name", "price", "totalStudents"}

func InstructorCourses(c *fiber.Ctx) error {
	params := shared.ListParamsFrom(c)

	page, err := services.API.Courses.Mine(c.UserContext(), middleware.APISession(c), params.Values())
	if err != nil {
		return middleware.QueryErrorResponse(c, "your courses", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", listview.NewView(*params, page))
}

// ownCourse loads a course and checks the session instructor owns it.
func ownCourse(c *fiber.Ctx, id string) (course.Course, bool, error) {
	user, _ := middleware.CurrentUser(c)
	detail, err := services.API.Courses.ByID(c.UserContext(), middleware.APISession(c), id)
	if err != nil {
		return detail, false, err
	}
	return detail, detail.OwnedBy(user.ID), nil
}

func InstructorCourse(c *fiber.Ctx) error {
	detail, owned, err := ownCourse(c, c.Params("id"))
	if err != nil {
		return middleware.QueryErrorResponse(c, "this course", err)
	}
	if !owned {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", detail)
}

func CreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*courseValidator.CourseForm)

	files, closeFiles, err := utils.UploadsFrom(c).Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unable to read uploaded file!", nil)
	}
	defer closeFiles()

	created, err := services.API.Courses.Create(c.UserContext(), middleware.APISession(c), reqData.Input(), files)
	if err != nil {
		return middleware.ErrorToast(c, toast.CreateCourse, err)
	}

	logger.Log.Info("[COURSE] created", "courseId", created.ID, "files", len(files))
	return middleware.ToastResponse(c, fiber.StatusCreated, toast.Success(toast.CreateCourse), created)
}

func UpdateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*courseValidator.CourseForm)

	files, closeFiles, err := utils.UploadsFrom(c).Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unable to read uploaded file!", nil)
	}
	defer closeFiles()

	updated, err := services.API.Courses.Update(c.UserContext(), middleware.APISession(c), c.Params("id"), reqData.Input(), files)
	if err != nil {
		return middleware.ErrorToast(c, toast.UpdateCourse, err)
	}
	return middleware.ToastResponse(c, fiber.StatusOK, toast.Success(toast.UpdateCourse), updated)
}

func DeleteCourse(c *fiber.Ctx) error {
	if err := services.API.Courses.Delete(c.UserContext(), middleware.APISession(c), c.Params("id")); err != nil {
		return middleware.ErrorToast(c, toast.DeleteCourse, err)
	}
	return middleware.ToastResponse(c, fiber.StatusOK, toast.Success(toast.DeleteCourse), nil)
}

func ListModules(c *fiber.Ctx) error {
	modules, err := services.API.Modules.List(c.UserContext(), middleware.APISession(c), c.Params("id"))
	if err != nil {
		return middleware.QueryErrorResponse(c, "modules", err)
	}
	if modules == nil {
		modules = []course.Module{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", modules)
}

func CreateModule(c *fiber.Ctx) error {
	reqData := c.Locals("validatedModule").(*courseValidator.ModuleForm)

	created, err := services.API.Modules.Create(c.UserContext(), middleware.APISession(c), c.Params("id"), reqData.Input())
	if err != nil {
		return middleware.ErrorToast(c, toast.CreateModule, err)
	}
	return middleware.ToastResponse(c, fiber.StatusCreated, toast.Success(toast.CreateModule), created)
}

func UpdateModule(c *fiber.Ctx) error {
	reqData := c.Locals("validatedModule").(*courseValidator.ModuleForm)

	updated, err := services.API.Modules.Update(c.UserContext(), middleware.APISession(c), c.Params("id"), reqData.Input())
	if err != nil {
		return middleware.ErrorToast(c, toast.UpdateModule, err)
	}
	return middleware.ToastResponse(c, fiber.StatusOK, toast.Success(toast.UpdateModule), updated)
}

func DeleteModule(c *fiber.Ctx) error {
	if err := services.API.Modules.Delete(c.UserContext(), middleware.APISession(c), c.Params("id")); err != nil {
		return middleware.ErrorToast(c, toast.DeleteModule, err)
	}
	return middleware.ToastResponse(c, fiber.StatusOK, toast.Success(toast.DeleteModule), nil)
}

func ListVideos(c *fiber.Ctx) error {
	videos, err := services.API.Videos.List(c.UserContext(), middleware.APISession(c), c.Params("id"))
	if err != nil {
		return middleware.QueryErrorResponse(c, "videos", err)
	}
	if videos == nil {
		videos = []course.Video{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched successfully!", videos)
}

func CreateVideo(c *fiber.Ctx) error {
	return saveVideo(c, toast.CreateVideo, func(in apiclient.VideoInput, files []apiclient.File) (course.Video, error) {
		return services.API.Videos.Create(c.UserContext(), middleware.APISession(c), c.Params("id"), in, files)
	})
}

func UpdateVideo(c *fiber.Ctx) error {
	return saveVideo(c, toast.UpdateVideo, func(in apiclient.VideoInput, files []apiclient.File) (course.Video, error) {
		return services.API.Videos.Update(c.UserContext(), middleware.APISession(c), c.Params("id"), in, files)
	})
}

func saveVideo(c *fiber.Ctx, action toast.Action, save func(apiclient.VideoInput, []apiclient.File) (course.Video, error)) error {
	reqData := c.Locals("validatedVideo").(*courseValidator.VideoForm)

	files, closeFiles, err := utils.UploadsFrom(c).Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unable to read uploaded file!", nil)
	}
	defer closeFiles()

	video, err := save(reqData.Input(), files)
	if err != nil {
		return middleware.ErrorToast(c, action, err)
	}

	status := fiber.StatusOK
	if action == toast.CreateVideo {
		status = fiber.StatusCreated
	}
	return middleware.ToastResponse(c, status, toast.Success(action), video)
}

func DeleteVideo(c *fiber.Ctx) error {
	if err := services.API.Videos.Delete(c.UserContext(), middleware.APISession(c), c.Params("id")); err != nil {
		return middleware.ErrorToast(c, toast.DeleteVideo, err)
	}
	return middleware.ToastResponse(c, fiber.StatusOK, toast.Success(toast.DeleteVideo), nil)
}

func InstructorStats(c *fiber.Ctx) error {
	r, err := statsRange(c, time.Now())
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"range": "Invalid date range!"})
	}

	stats, err := services.API.Stats.Instructor(c.UserContext(), middleware.APISession(c), r)
	if err != nil {
		return middleware.QueryErrorResponse(c, "analytics", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"range": r,
		"stats": stats,
	})
}
