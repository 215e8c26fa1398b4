package checkoutController

import (
	"math"

	"storefront/logger"
	"storefront/middleware"
	"storefront/models/course"
	"storefront/services"
	"storefront/toast"
	"storefront/utils"
	courseValidator "storefront/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SuccessRedirect is where a completed purchase lands.
const SuccessRedirect = "/student-dashboard"

// Summary is the order summary shown before purchase. Amounts come from the API unchanged.
type Summary struct {
	Course    course.Course `json:"course"`
	Subtotal  float64       `json:"subtotal"`
	Discount  float64       `json:"discount"`
	Total     float64       `json:"total"`
	IsFree    bool          `json:"isFree"`
	Formatted struct {
		Subtotal string `json:"subtotal"`
		Discount string `json:"discount"`
		Total    string `json:"total"`
	} `json:"formatted"`
}

func NewSummary(c course.Course) Summary {
	s := Summary{
		Course:   c,
		Subtotal: c.Price,
		Discount: roundCents(c.Price - c.FinalPrice),
		Total:    c.FinalPrice,
		IsFree:   c.IsFree(),
	}
	if s.Discount < 0 {
		s.Discount = 0
	}
	s.Formatted.Subtotal = utils.FormatPrice(s.Subtotal)
	s.Formatted.Discount = utils.FormatPrice(s.Discount)
	s.Formatted.Total = utils.FormatPrice(s.Total)
	return s
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// GetCheckout returns the order summary for ?course=<slug>.
func GetCheckout(c *fiber.Ctx) error {
	slug := c.Locals("checkoutSlug").(string)

	detail, err := services.API.Courses.BySlug(c.UserContext(), middleware.APISession(c), slug)
	if err != nil {
		return middleware.QueryErrorResponse(c, "this course", err)
	}
	if !detail.Purchasable() {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "This course is not available for purchase.", fiber.Map{"redirect": "/courses"})
	}

	detail.HideVideoSources()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout fetched successfully!", NewSummary(detail))
}

// Purchase enrolls the student. Free courses go through the same call.
func Purchase(c *fiber.Ctx) error {
	reqData := c.Locals("validatedPurchase").(*courseValidator.PurchaseForm)
	session := middleware.APISession(c)

	courseID := reqData.CourseID
	if courseID == "" {
		detail, err := services.API.Courses.BySlug(c.UserContext(), session, reqData.Slug)
		if err != nil {
			return middleware.ErrorToast(c, toast.Purchase, err)
		}
		courseID = detail.ID
	}

	enrollment, err := services.API.Courses.Purchase(c.UserContext(), session, courseID)
	if err != nil {
		logger.Log.Warn("[CHECKOUT] purchase rejected", "courseId", courseID, "userId", session.UserID, "error", err)
		return middleware.ErrorToast(c, toast.Purchase, err)
	}

	logger.Log.Info("[CHECKOUT] purchase", "courseId", courseID, "userId", session.UserID)
	return middleware.ToastResponse(c, fiber.StatusOK, toast.Success(toast.Purchase), fiber.Map{
		"enrollment": enrollment,
		"redirect":   SuccessRedirect,
	})
}
