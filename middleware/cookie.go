package middleware

import (
	"time"

	"storefront/config"

	"github.com/gofiber/fiber/v2"
)

// LoginFlagCookie is readable by page scripts; it only says a session exists.
const LoginFlagCookie = "user"

func SetLoginFlag(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     LoginFlagCookie,
		Value:    "true",
		Path:     "/",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: false,
		Secure:   config.AppConfig != nil && config.AppConfig.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func ClearLoginFlag(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     LoginFlagCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: false,
	})
}

// RelayCookies passes the API's Set-Cookie headers through to the browser.
func RelayCookies(c *fiber.Ctx, setCookies []string) {
	for _, v := range setCookies {
		c.Response().Header.Add(fiber.HeaderSetCookie, v)
	}
}
