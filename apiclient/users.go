package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"storefront/models"
)

type UserService struct{ c *Client }

type ProfileInput struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

func (in ProfileInput) FormFields() map[string]string {
	return map[string]string{"name": in.Name, "bio": in.Bio}
}

func (us *UserService) List(ctx context.Context, s Session, q url.Values) (models.Page[models.User], error) {
	return get[models.Page[models.User]](ctx, us.c, s, "/users", q, shared(s), []string{TagUsers})
}

func (us *UserService) ByID(ctx context.Context, s Session, id string) (models.User, error) {
	return get[models.User](ctx, us.c, s, "/users/"+url.PathEscape(id), nil, shared(s), []string{TagUsers})
}

// UpdateProfile edits the session user; a profile picture travels as a multipart file.
func (us *UserService) UpdateProfile(ctx context.Context, s Session, in ProfileInput, files []File) (models.User, error) {
	out, _, err := mutate[models.User](ctx, us.c, s, http.MethodPatch, "/users/me", in, files, TagMe(s.UserID), TagUsers)
	return out, err
}

func (us *UserService) SetActive(ctx context.Context, s Session, id string, active bool) (models.User, error) {
	out, _, err := mutate[models.User](ctx, us.c, s, http.MethodPatch, "/users/"+url.PathEscape(id)+"/status", map[string]bool{"isActive": active}, nil,
		TagUsers, TagMe(id), TagStats)
	return out, err
}

func (us *UserService) Delete(ctx context.Context, s Session, id string) error {
	_, _, err := mutate[struct{}](ctx, us.c, s, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil, TagUsers, TagMe(id), TagStats)
	return err
}
