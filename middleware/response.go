package middleware

import (
	"storefront/apiclient"
	"storefront/toast"

	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// ToastResponse answers a mutation with the toast the page should show.
func ToastResponse(c *fiber.Ctx, statusCode int, t toast.Toast, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  t.Kind == toast.KindSuccess,
		"message": t.Message,
		"toast":   t,
		"data":    data,
	})
}

// ErrorToast maps an API rejection for action onto a toast response.
func ErrorToast(c *fiber.Ctx, action toast.Action, err error) error {
	return ToastResponse(c, apiclient.HTTPStatus(err), toast.FromError(action, err), nil)
}

// QueryErrorResponse answers a failed read. Pages show a fixed message rather than stale or mock data.
func QueryErrorResponse(c *fiber.Ctx, what string, err error) error {
	status := apiclient.HTTPStatus(err)
	message := "Unable to load " + what + " right now. Please try again later."
	switch {
	case apiclient.IsJWTExpired(err):
		message = toast.MsgSessionExpired
	case status == fiber.StatusNotFound:
		message = "Not found!"
	case status == fiber.StatusTooManyRequests:
		message = toast.MsgRateLimited
	}
	return JsonResponse(c, status, false, message, nil)
}
