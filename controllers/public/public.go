package publicController

import (
	"context"
	"net/url"
	"strconv"

	"storefront/apiclient"
	"storefront/listview"
	"storefront/logger"
	"storefront/middleware"
	"storefront/models"
	"storefront/models/course"
	"storefront/services"
	"storefront/toast"
	"storefront/validators/shared"
	userValidator "storefront/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

// FeaturedLimit is how many courses the home page shows.
const FeaturedLimit = 8

// CatalogSorts are the sort keys the catalog accepts.
var CatalogSorts = []string{"createdAt", "name", "price", "totalStudents"}

func publishedOnly(q url.Values) url.Values {
	q.Set("isPublished", "true")
	q.Set("status", string(course.StatusApproved))
	return q
}

// FeaturedQuery selects the most popular published courses.
func FeaturedQuery() url.Values {
	q := publishedOnly(url.Values{})
	q.Set("sort", "totalStudents")
	q.Set("order", "desc")
	q.Set("page", "1")
	q.Set("limit", strconv.Itoa(FeaturedLimit))
	return q
}

// CatalogFilters drops the filters the public catalog does not offer.
func CatalogFilters(p *listview.Params) {
	p.Status = ""
	p.Role = ""
}

// CatalogQuery turns list params into the upstream query for published courses.
func CatalogQuery(p listview.Params) url.Values {
	CatalogFilters(&p)
	return publishedOnly(p.Values())
}

// Home returns the most popular published courses.
func Home(c *fiber.Ctx) error {
	page, err := services.API.Courses.List(c.UserContext(), middleware.APISession(c), FeaturedQuery())
	if err != nil {
		return middleware.QueryErrorResponse(c, "courses", err)
	}

	featured := page.Items
	if featured == nil {
		featured = []course.Course{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Home fetched successfully!", fiber.Map{
		"featured": featured,
	})
}

// Catalog lists published courses with search, type and sort filters.
func Catalog(c *fiber.Ctx) error {
	params := shared.ListParamsFrom(c)

	page, err := services.API.Courses.List(c.UserContext(), middleware.APISession(c), CatalogQuery(*params))
	if err != nil {
		return middleware.QueryErrorResponse(c, "courses", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", listview.NewView(*params, page))
}

// CourseDetail returns a published course by slug. Video sources are only shown to
// enrolled students, the owner and staff.
func CourseDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course slug is required!", nil)
	}

	session := middleware.APISession(c)
	detail, err := services.API.Courses.BySlug(c.UserContext(), session, slug)
	if err != nil {
		return middleware.QueryErrorResponse(c, "this course", err)
	}

	user, loggedIn := middleware.CurrentUser(c)
	if !detail.Purchasable() && !(loggedIn && canSeeUnpublished(user, detail)) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	enrolled := false
	if loggedIn && user.Role == models.RoleStudent {
		enrolled = isEnrolled(c.UserContext(), session, detail.ID)
	}
	if !(enrolled || (loggedIn && canSeeUnpublished(user, detail))) {
		detail.HideVideoSources()
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":     detail,
		"isEnrolled": enrolled,
	})
}

func canSeeUnpublished(user middleware.SessionUser, c course.Course) bool {
	return user.Role.IsAdmin() || user.Role == models.RoleModerator || c.OwnedBy(user.ID)
}

func isEnrolled(ctx context.Context, s apiclient.Session, courseID string) bool {
	q := url.Values{}
	q.Set("page", "1")
	q.Set("limit", strconv.Itoa(listview.MaxLimit))
	page, err := services.API.Enrollments.Mine(ctx, s, q)
	if err != nil {
		logger.Log.Warn("[COURSE] enrollment lookup failed", "courseId", courseID, "error", err)
		return false
	}
	for _, e := range page.Items {
		if e.Course.ID == courseID && e.Status != course.EnrollmentCancelled {
			return true
		}
	}
	return false
}

// Contact forwards a contact form message to the support mailbox.
func Contact(c *fiber.Ctx) error {
	reqData := c.Locals("validatedContact").(*userValidator.ContactForm)

	if err := services.Mailer.SendContact(c.UserContext(), reqData.Mail()); err != nil {
		logger.Log.Error("[CONTACT] delivery failed", "error", err)
		return middleware.ToastResponse(c, fiber.StatusBadGateway, toast.Toast{Kind: toast.KindError, Message: toast.Generic(toast.Contact)}, nil)
	}

	return middleware.ToastResponse(c, fiber.StatusOK, toast.Info("Thanks! Your message has been sent."), nil)
}
