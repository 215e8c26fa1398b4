package apiclient

import (
	"context"
	"net/url"

	"storefront/models"
	"storefront/models/course"
)

type EnrollmentService struct{ c *Client }

func (es *EnrollmentService) Mine(ctx context.Context, s Session, q url.Values) (models.Page[course.Enrollment], error) {
	return get[models.Page[course.Enrollment]](ctx, es.c, s, "/enrollments/me", q, personal(s), []string{TagEnrollments(s.UserID)})
}
