package dashboardController

import (
	"storefront/middleware"
	"storefront/services"
	"storefront/toast"
	"storefront/utils"
	userValidator "storefront/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func GetProfile(c *fiber.Ctx) error {
	user, err := services.API.Auth.Me(c.UserContext(), middleware.APISession(c))
	if err != nil {
		return middleware.QueryErrorResponse(c, "your profile", err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// UpdateProfile edits name and bio; a profile picture is forwarded as multipart.
func UpdateProfile(c *fiber.Ctx) error {
	reqData := c.Locals("validatedProfile").(*userValidator.ProfileForm)

	files, closeFiles, err := utils.UploadsFrom(c).Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unable to read uploaded file!", nil)
	}
	defer closeFiles()

	user, err := services.API.Users.UpdateProfile(c.UserContext(), middleware.APISession(c), reqData.Input(), files)
	if err != nil {
		return middleware.ErrorToast(c, toast.UpdateProfile, err)
	}
	return middleware.ToastResponse(c, fiber.StatusOK, toast.Success(toast.UpdateProfile), user)
}
