package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"storefront/models/course"
)

type ModuleService struct{ c *Client }

type ModuleInput struct {
	Title        string `json:"title"`
	ModuleNumber int    `json:"moduleNumber"`
}

func (ms *ModuleService) List(ctx context.Context, s Session, courseID string) ([]course.Module, error) {
	return get[[]course.Module](ctx, ms.c, s, "/courses/"+url.PathEscape(courseID)+"/modules", nil, shared(s), []string{TagModules, TagVideos})
}

func (ms *ModuleService) Create(ctx context.Context, s Session, courseID string, in ModuleInput) (course.Module, error) {
	out, _, err := mutate[course.Module](ctx, ms.c, s, http.MethodPost, "/courses/"+url.PathEscape(courseID)+"/modules", in, nil, TagModules, TagCourses)
	return out, err
}

func (ms *ModuleService) Update(ctx context.Context, s Session, id string, in ModuleInput) (course.Module, error) {
	out, _, err := mutate[course.Module](ctx, ms.c, s, http.MethodPatch, "/modules/"+url.PathEscape(id), in, nil, TagModules, TagCourses)
	return out, err
}

func (ms *ModuleService) Delete(ctx context.Context, s Session, id string) error {
	_, _, err := mutate[struct{}](ctx, ms.c, s, http.MethodDelete, "/modules/"+url.PathEscape(id), nil, nil, TagModules, TagCourses)
	return err
}
