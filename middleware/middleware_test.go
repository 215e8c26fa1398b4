package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/apiclient"
	"storefront/config"
	"storefront/models"
	"storefront/toast"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	require.NoError(t, err)
	return token
}

func newApp() *fiber.App {
	config.AppConfig = &config.Config{JWTKey: testKey}
	app := fiber.New()
	app.Use(SessionMiddleware)
	app.Get("/whoami", func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		return c.JSON(fiber.Map{"ok": ok, "user": user, "session": APISession(c)})
	})
	app.Get("/private", RequireAuth, func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/admin", RequireRole(models.RoleAdmin, models.RoleSuperAdmin), func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestParseToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: testKey}

	user, err := ParseToken(signToken(t, jwt.MapClaims{"userId": "u1", "role": "instructor", "name": "Ana", "exp": time.Now().Add(time.Hour).Unix()}))
	require.NoError(t, err)
	assert.Equal(t, SessionUser{ID: "u1", Name: "Ana", Role: models.RoleInstructor}, user)

	_, err = ParseToken(signToken(t, jwt.MapClaims{"userId": "u1", "role": "STUDENT", "exp": time.Now().Add(-time.Hour).Unix()}))
	assert.ErrorIs(t, err, errTokenExpired)

	_, err = ParseToken(signToken(t, jwt.MapClaims{"userId": "u1", "role": "PIRATE"}))
	assert.Error(t, err)

	forged, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": "u1", "role": "ADMIN"}).SignedString([]byte("other"))
	_, err = ParseToken(forged)
	assert.Error(t, err)
}

func TestSessionFromCookie(t *testing.T) {
	app := newApp()
	token := signToken(t, jwt.MapClaims{"id": "u7", "role": "STUDENT"})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Cookie", AccessTokenCookie+"="+token+"; theme=dark")
	resp, err := app.Test(req)
	require.NoError(t, err)

	out := decode(t, resp)
	assert.Equal(t, true, out["ok"])
	session := out["session"].(map[string]interface{})
	assert.Equal(t, "u7", session["UserID"])
	assert.Equal(t, "STUDENT", session["Role"])
	assert.Contains(t, session["Cookie"], "theme=dark")
}

func TestSessionFromBearer(t *testing.T) {
	app := newApp()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"sub": "u9", "role": "MODERATOR"}))
	resp, err := app.Test(req)
	require.NoError(t, err)

	user := decode(t, resp)["user"].(map[string]interface{})
	assert.Equal(t, "u9", user["id"])
}

func TestRequireAuth(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Cookie", AccessTokenCookie+"="+signToken(t, jwt.MapClaims{"userId": "u1", "role": "STUDENT", "exp": time.Now().Add(-time.Minute).Unix()}))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, toast.MsgSessionExpired, decode(t, resp)["message"])
}

func TestRequireRoleRedirectsToOwnDashboard(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Cookie", AccessTokenCookie+"="+signToken(t, jwt.MapClaims{"userId": "u1", "role": "INSTRUCTOR"}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	data := decode(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "/instructor-dashboard", data["redirect"])

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Cookie", AccessTokenCookie+"="+signToken(t, jwt.MapClaims{"userId": "u2", "role": "SUPER_ADMIN"}))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCookies(t *testing.T) {
	config.AppConfig = &config.Config{}
	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		RelayCookies(c, []string{"accessToken=abc; Path=/; HttpOnly", "refreshToken=def; Path=/; HttpOnly"})
		SetLoginFlag(c)
		return c.SendStatus(fiber.StatusOK)
	})
	app.Post("/logout", func(c *fiber.Ctx) error {
		ClearLoginFlag(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
	require.NoError(t, err)
	cookies := map[string]*http.Cookie{}
	for _, ck := range resp.Cookies() {
		cookies[ck.Name] = ck
	}
	require.Contains(t, cookies, "accessToken")
	require.Contains(t, cookies, "refreshToken")
	require.Contains(t, cookies, LoginFlagCookie)
	assert.Equal(t, "true", cookies[LoginFlagCookie].Value)
	assert.False(t, cookies[LoginFlagCookie].HttpOnly)
	assert.True(t, cookies["accessToken"].HttpOnly)

	resp, err = app.Test(httptest.NewRequest("POST", "/logout", nil))
	require.NoError(t, err)
	require.Len(t, resp.Cookies(), 1)
	assert.Equal(t, "", resp.Cookies()[0].Value)
}

func TestErrorResponses(t *testing.T) {
	app := fiber.New()
	app.Get("/toast", func(c *fiber.Ctx) error {
		return ErrorToast(c, toast.CreateVideo, &apiclient.Error{Status: http.StatusConflict, Message: "duplicate"})
	})
	app.Get("/query", func(c *fiber.Ctx) error {
		return QueryErrorResponse(c, "courses", fmt.Errorf("GET /courses: %w", apiclient.ErrUnavailable))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/toast", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	out := decode(t, resp)
	assert.Equal(t, false, out["status"])
	assert.Equal(t, toast.MsgDuplicateVideo, out["message"])

	resp, err = app.Test(httptest.NewRequest("GET", "/query", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "Unable to load courses right now. Please try again later.", decode(t, resp)["message"])
}
