package middleware

import (
	"errors"
	"fmt"
	"strings"

	"storefront/apiclient"
	"storefront/config"
	"storefront/models"
	"storefront/navigation"
	"storefront/toast"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// AccessTokenCookie is the API's session cookie.
const AccessTokenCookie = "accessToken"

// SessionUser is who the access token says the caller is.
type SessionUser struct {
	ID    string      `json:"id"`
	Name  string      `json:"name,omitempty"`
	Email string      `json:"email,omitempty"`
	Role  models.Role `json:"role"`
}

var errTokenExpired = errors.New("jwt expired")

// SessionMiddleware resolves the caller from the access token, when there is one,
// and prepares the session forwarded to the API. Anonymous requests pass through.
func SessionMiddleware(c *fiber.Ctx) error {
	session := apiclient.Session{
		Cookie:        c.Get(fiber.HeaderCookie),
		Authorization: c.Get(fiber.HeaderAuthorization),
	}
	if rid, ok := c.Locals("requestid").(string); ok {
		session.RequestID = rid
	}

	if tokenString := bearerOrCookie(c); tokenString != "" {
		user, err := ParseToken(tokenString)
		if err != nil {
			c.Locals("sessionError", err)
		} else {
			c.Locals("sessionUser", user)
			session.UserID = user.ID
			session.Role = user.Role
		}
	}

	c.Locals("apiSession", session)
	return c.Next()
}

func bearerOrCookie(c *fiber.Ctx) string {
	if h := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	return c.Cookies(AccessTokenCookie)
}

// ParseToken validates an access token signed by the API with the shared key.
func ParseToken(tokenString string) (SessionUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return SessionUser{}, errTokenExpired
		}
		return SessionUser{}, err
	}
	if !token.Valid {
		return SessionUser{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return SessionUser{}, errors.New("invalid token payload")
	}

	user := SessionUser{
		ID:    firstClaim(claims, "userId", "id", "sub"),
		Name:  firstClaim(claims, "name"),
		Email: firstClaim(claims, "email"),
		Role:  models.Role(strings.ToUpper(firstClaim(claims, "role"))),
	}
	if user.ID == "" || !user.Role.Valid() {
		return SessionUser{}, errors.New("invalid token payload")
	}
	return user, nil
}

func firstClaim(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		switch v := claims[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}

// RequireAuth rejects anonymous callers.
func RequireAuth(c *fiber.Ctx) error {
	if _, ok := CurrentUser(c); ok {
		return c.Next()
	}
	if err, ok := c.Locals("sessionError").(error); ok && errors.Is(err, errTokenExpired) {
		return ToastResponse(c, fiber.StatusUnauthorized, toast.Toast{Kind: toast.KindError, Message: toast.MsgSessionExpired}, fiber.Map{"redirect": "/login"})
	}
	return JsonResponse(c, fiber.StatusUnauthorized, false, "Please log in to continue.", fiber.Map{"redirect": "/login"})
}

// RequireRole lets only the given roles through; others are pointed at their own dashboard.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return RequireAuth(c)
		}
		for _, r := range roles {
			if user.Role == r {
				return c.Next()
			}
		}
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this dashboard.", fiber.Map{
			"redirect": navigation.LoginRedirect(user.Role),
		})
	}
}

// CurrentUser returns the session user, if any.
func CurrentUser(c *fiber.Ctx) (SessionUser, bool) {
	u, ok := c.Locals("sessionUser").(SessionUser)
	return u, ok
}

// APISession returns the session to forward upstream.
func APISession(c *fiber.Ctx) apiclient.Session {
	if s, ok := c.Locals("apiSession").(apiclient.Session); ok {
		return s
	}
	return apiclient.Session{Cookie: c.Get(fiber.HeaderCookie)}
}
