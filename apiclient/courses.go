package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storefront/models"
	"storefront/models/course"
)

type CourseService struct{ c *Client }

// CourseInput is the create/update payload for a course.
type CourseInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Type        course.CourseType `json:"type"`
	Price       float64           `json:"price"`
	Discount    float64           `json:"discount"`
	Tags        []string          `json:"tags"`
}

func (in CourseInput) FormFields() map[string]string {
	return map[string]string{
		"name":        in.Name,
		"description": in.Description,
		"type":        string(in.Type),
		"price":       strconv.FormatFloat(in.Price, 'f', 2, 64),
		"discount":    strconv.FormatFloat(in.Discount, 'f', 2, 64),
		"tags":        strings.Join(in.Tags, ","),
	}
}

// ApprovalInput moves a course through moderation.
type ApprovalInput struct {
	Status course.Status `json:"status"`
	Reason string        `json:"reason,omitempty"`
}

func (cs *CourseService) List(ctx context.Context, s Session, q url.Values) (models.Page[course.Course], error) {
	return get[models.Page[course.Course]](ctx, cs.c, s, "/courses", q, shared(s), []string{TagCourses})
}

// Mine lists the instructor's own courses.
func (cs *CourseService) Mine(ctx context.Context, s Session, q url.Values) (models.Page[course.Course], error) {
	return get[models.Page[course.Course]](ctx, cs.c, s, "/courses/instructor/me", q, personal(s), []string{TagCourses})
}

// BySlug and ByID are cached per user: the API tailors video sources to the viewer.
func (cs *CourseService) BySlug(ctx context.Context, s Session, slug string) (course.Course, error) {
	return get[course.Course](ctx, cs.c, s, "/courses/slug/"+url.PathEscape(slug), nil, personal(s), []string{TagCourses, TagModules, TagVideos})
}

func (cs *CourseService) ByID(ctx context.Context, s Session, id string) (course.Course, error) {
	return get[course.Course](ctx, cs.c, s, "/courses/"+url.PathEscape(id), nil, personal(s), []string{TagCourses, TagModules, TagVideos})
}

func (cs *CourseService) Create(ctx context.Context, s Session, in CourseInput, files []File) (course.Course, error) {
	out, _, err := mutate[course.Course](ctx, cs.c, s, http.MethodPost, "/courses", in, files, TagCourses, TagStats)
	return out, err
}

func (cs *CourseService) Update(ctx context.Context, s Session, id string, in CourseInput, files []File) (course.Course, error) {
	out, _, err := mutate[course.Course](ctx, cs.c, s, http.MethodPatch, "/courses/"+url.PathEscape(id), in, files, TagCourses)
	return out, err
}

func (cs *CourseService) Delete(ctx context.Context, s Session, id string) error {
	_, _, err := mutate[struct{}](ctx, cs.c, s, http.MethodDelete, "/courses/"+url.PathEscape(id), nil, nil, TagCourses, TagStats)
	return err
}

func (cs *CourseService) SetPublished(ctx context.Context, s Session, id string, published bool) (course.Course, error) {
	out, _, err := mutate[course.Course](ctx, cs.c, s, http.MethodPatch, "/courses/"+url.PathEscape(id)+"/publish", map[string]bool{"isPublished": published}, nil, TagCourses, TagStats)
	return out, err
}

func (cs *CourseService) SetApproval(ctx context.Context, s Session, id string, in ApprovalInput) (course.Course, error) {
	out, _, err := mutate[course.Course](ctx, cs.c, s, http.MethodPatch, "/courses/"+url.PathEscape(id)+"/approval", in, nil, TagCourses, TagStats)
	return out, err
}

// Purchase enrolls the session user in the course.
func (cs *CourseService) Purchase(ctx context.Context, s Session, id string) (course.Enrollment, error) {
	out, _, err := mutate[course.Enrollment](ctx, cs.c, s, http.MethodPost, "/courses/"+url.PathEscape(id)+"/purchase", nil, nil,
		TagEnrollments(s.UserID), TagCourses, TagStats)
	return out, err
}
