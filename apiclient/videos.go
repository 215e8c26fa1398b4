package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront/models/course"
)

type VideoService struct{ c *Client }

// VideoInput describes a video. ExternalURL is empty when the video is uploaded as a file.
type VideoInput struct {
	Title       string `json:"title"`
	Duration    int    `json:"duration"`
	VideoNumber int    `json:"videoNumber"`
	ExternalURL string `json:"externalUrl,omitempty"`
}

func (in VideoInput) FormFields() map[string]string {
	fields := map[string]string{
		"title":       in.Title,
		"duration":    strconv.Itoa(in.Duration),
		"videoNumber": strconv.Itoa(in.VideoNumber),
	}
	if in.ExternalURL != "" {
		fields["externalUrl"] = in.ExternalURL
	}
	return fields
}

func (vs *VideoService) List(ctx context.Context, s Session, moduleID string) ([]course.Video, error) {
	return get[[]course.Video](ctx, vs.c, s, "/modules/"+url.PathEscape(moduleID)+"/videos", nil, shared(s), []string{TagVideos})
}

func (vs *VideoService) Create(ctx context.Context, s Session, moduleID string, in VideoInput, files []File) (course.Video, error) {
	out, _, err := mutate[course.Video](ctx, vs.c, s, http.MethodPost, "/modules/"+url.PathEscape(moduleID)+"/videos", in, files, TagVideos, TagModules, TagCourses)
	return out, err
}

func (vs *VideoService) Update(ctx context.Context, s Session, id string, in VideoInput, files []File) (course.Video, error) {
	out, _, err := mutate[course.Video](ctx, vs.c, s, http.MethodPatch, "/videos/"+url.PathEscape(id), in, files, TagVideos, TagModules, TagCourses)
	return out, err
}

func (vs *VideoService) Delete(ctx context.Context, s Session, id string) error {
	_, _, err := mutate[struct{}](ctx, vs.c, s, http.MethodDelete, "/videos/"+url.PathEscape(id), nil, nil, TagVideos, TagModules, TagCourses)
	return err
}
