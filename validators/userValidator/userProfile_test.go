package userValidator

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, handler fiber.Handler, body string) (int, map[string]string) {
	t.Helper()
	app := fiber.New()
	app.Post("/", handler, func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out struct {
		Data map[string]string `json:"data"`
	}
	if raw, _ := io.ReadAll(resp.Body); len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out.Data
}

func TestUpdateProfile(t *testing.T) {
	code, errs := post(t, UpdateProfile(), `{"name":" ","bio":"hi"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Contains(t, errs, "name")

	code, _ = post(t, UpdateProfile(), `{"name":"Ana Lima","bio":"Teaches Go."}`)
	assert.Equal(t, fiber.StatusNoContent, code)
}

func TestUpdateUserStatusRequiresFlag(t *testing.T) {
	code, errs := post(t, UpdateUserStatus(), `{}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Contains(t, errs, "isActive")

	code, _ = post(t, UpdateUserStatus(), `{"isActive":false}`)
	assert.Equal(t, fiber.StatusNoContent, code)
}

func TestContact(t *testing.T) {
	code, errs := post(t, Contact(), `{"name":"Ana","email":"nope","subject":"Hi","message":"short"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "message")

	code, _ = post(t, Contact(), `{"name":"Ana","email":"ana@example.com","subject":"Refund","message":"Please refund my order."}`)
	assert.Equal(t, fiber.StatusNoContent, code)
}

func TestContactFormMail(t *testing.T) {
	m := ContactForm{Name: "Ana", Email: "ana@example.com", Subject: "Hi", Message: "Hello there"}.Mail()
	assert.Equal(t, "ana@example.com", m.Email)
	assert.Equal(t, "Hello there", m.Message)
}
