package checkoutController_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/apiclient/apitest"
	"storefront/config"
	checkoutController "storefront/controllers/checkout"
	"storefront/middleware"
	"storefront/models"
	"storefront/models/course"
	checkoutRoutes "storefront/routers/checkoutRoutes"
	"storefront/services"
	"storefront/toast"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtKey = "checkout-test-key"

func setup(t *testing.T, routes map[string]http.HandlerFunc) (*fiber.App, *apitest.Server, string) {
	t.Helper()
	config.AppConfig = &config.Config{JWTKey: jwtKey}
	api := apitest.NewServer(t, routes)
	services.API = api.Client()

	app := fiber.New()
	app.Use(middleware.SessionMiddleware)
	checkoutRoutes.SetupCheckoutRoutes(app)
	return app, api, "accessToken=" + apitest.Token(t, jwtKey, "s1", models.RoleStudent)
}

func send(t *testing.T, app *fiber.App, method, target, body, cookie string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func paidCourse() course.Course {
	return course.Course{ID: "c1", Slug: "go-basics", Name: "Go Basics", Type: course.TypePaid,
		Price: 49.99, Discount: 20, FinalPrice: 39.99, Status: course.StatusApproved, IsPublished: true}
}

func TestNewSummary(t *testing.T) {
	s := checkoutController.NewSummary(paidCourse())
	assert.Equal(t, 49.99, s.Subtotal)
	assert.Equal(t, 10.0, s.Discount)
	assert.Equal(t, 39.99, s.Total)
	assert.False(t, s.IsFree)
	assert.Equal(t, "$39.99", s.Formatted.Total)

	free := checkoutController.NewSummary(course.Course{Type: course.TypeFree})
	assert.True(t, free.IsFree)
	assert.Equal(t, "Free", free.Formatted.Total)
}

func TestGetCheckout(t *testing.T) {
	app, _, student := setup(t, map[string]http.HandlerFunc{
		"GET /courses/slug/go-basics": apitest.Respond(http.StatusOK, paidCourse()),
	})

	code, _ := send(t, app, "GET", "/checkout?course=go-basics", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = send(t, app, "GET", "/checkout", "", student)
	assert.Equal(t, http.StatusBadRequest, code)

	code, out := send(t, app, "GET", "/checkout?course=go-basics", "", student)
	require.Equal(t, http.StatusOK, code)
	data := out["data"].(map[string]interface{})
	assert.Equal(t, 49.99, data["subtotal"])
	assert.Equal(t, 10.0, data["discount"])
	assert.Equal(t, 39.99, data["total"])
}

func TestGetCheckoutUnavailableCourse(t *testing.T) {
	pending := paidCourse()
	pending.Status = course.StatusPending
	app, _, student := setup(t, map[string]http.HandlerFunc{
		"GET /courses/slug/go-basics": apitest.Respond(http.StatusOK, pending),
	})

	code, _ := send(t, app, "GET", "/checkout?course=go-basics", "", student)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestPurchaseRedirectsToStudentDashboard(t *testing.T) {
	app, api, student := setup(t, map[string]http.HandlerFunc{
		"POST /courses/c1/purchase": apitest.Respond(http.StatusCreated, course.Enrollment{ID: "e1", Course: paidCourse()}),
	})

	code, out := send(t, app, "POST", "/checkout", `{"courseId":"c1"}`, student)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "/student-dashboard", out["data"].(map[string]interface{})["redirect"])
	assert.Equal(t, 1, api.Count("POST", "/courses/c1/purchase"))
}

func TestPurchaseBySlug(t *testing.T) {
	app, api, student := setup(t, map[string]http.HandlerFunc{
		"GET /courses/slug/go-basics": apitest.Respond(http.StatusOK, paidCourse()),
		"POST /courses/c1/purchase":   apitest.Respond(http.StatusCreated, course.Enrollment{ID: "e1"}),
	})

	code, _ := send(t, app, "POST", "/checkout?course=go-basics", "", student)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, api.Count("POST", "/courses/c1/purchase"))
}

func TestPurchaseAlreadyEnrolled(t *testing.T) {
	app, _, student := setup(t, map[string]http.HandlerFunc{
		"POST /courses/c1/purchase": apitest.Reject(http.StatusConflict, "Already enrolled"),
	})

	code, out := send(t, app, "POST", "/checkout", `{"courseId":"c1"}`, student)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, toast.MsgAlreadyEnrolled, out["message"])
}

func TestCheckoutIsForStudents(t *testing.T) {
	app, _, _ := setup(t, nil)
	instructor := "accessToken=" + apitest.Token(t, jwtKey, "i1", models.RoleInstructor)

	code, out := send(t, app, "GET", "/checkout?course=go-basics", "", instructor)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "/instructor-dashboard", out["data"].(map[string]interface{})["redirect"])
}
