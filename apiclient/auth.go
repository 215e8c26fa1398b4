package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"storefront/models"
)

type AuthService struct{ c *Client }

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type ResetPasswordInput struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// AuthResult is a successful auth call plus the session cookies the API set.
type AuthResult struct {
	User       models.User
	SetCookies []string
}

func (a *AuthService) Login(ctx context.Context, s Session, in LoginInput) (AuthResult, error) {
	user, resp, err := mutate[models.User](ctx, a.c, s, http.MethodPost, "/auth/login", in, nil)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, SetCookies: resp.Header().Values("Set-Cookie")}, nil
}

func (a *AuthService) Register(ctx context.Context, s Session, in RegisterInput) (models.User, error) {
	user, _, err := mutate[models.User](ctx, a.c, s, http.MethodPost, "/auth/register", in, nil, TagUsers, TagStats)
	return user, err
}

// Logout asks the API to clear its token cookies and returns them for relaying.
func (a *AuthService) Logout(ctx context.Context, s Session) ([]string, error) {
	_, resp, err := mutate[struct{}](ctx, a.c, s, http.MethodPost, "/auth/logout", nil, nil, TagMe(s.UserID))
	if err != nil {
		return nil, err
	}
	return resp.Header().Values("Set-Cookie"), nil
}

func (a *AuthService) ForgotPassword(ctx context.Context, s Session, email string) error {
	_, _, err := mutate[struct{}](ctx, a.c, s, http.MethodPost, "/auth/forgot-password", map[string]string{"email": email}, nil)
	return err
}

func (a *AuthService) ResetPassword(ctx context.Context, s Session, in ResetPasswordInput) error {
	_, _, err := mutate[struct{}](ctx, a.c, s, http.MethodPost, "/auth/reset-password", in, nil)
	return err
}

func (a *AuthService) ChangePassword(ctx context.Context, s Session, in ChangePasswordInput) error {
	_, _, err := mutate[struct{}](ctx, a.c, s, http.MethodPatch, "/auth/change-password", in, nil)
	return err
}

func (a *AuthService) VerifyEmail(ctx context.Context, s Session, id, token string) error {
	r := a.c.request(ctx, s).SetQueryParams(map[string]string{"id": id, "token": token})
	_, err := a.c.call(r, http.MethodGet, "/auth/verify-email", nil)
	if err == nil {
		a.c.cache.Invalidate(ctx, TagMe(id), TagUsers)
	}
	return err
}

// Me returns the user behind the session.
func (a *AuthService) Me(ctx context.Context, s Session) (models.User, error) {
	return get[models.User](ctx, a.c, s, "/auth/me", url.Values{}, personal(s), []string{TagMe(s.UserID)})
}
