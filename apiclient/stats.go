package apiclient

import (
	"context"
	"net/url"
	"time"

	"storefront/models"
)

type StatsService struct{ c *Client }

// Range bounds a stats query.
type Range struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (r Range) values() url.Values {
	q := url.Values{}
	if !r.From.IsZero() {
		q.Set("from", r.From.Format(time.RFC3339))
	}
	if !r.To.IsZero() {
		q.Set("to", r.To.Format(time.RFC3339))
	}
	return q
}

func (ss *StatsService) Admin(ctx context.Context, s Session, r Range) (models.AdminStats, error) {
	return get[models.AdminStats](ctx, ss.c, s, "/stats/admin", r.values(), shared(s), []string{TagStats})
}

func (ss *StatsService) Instructor(ctx context.Context, s Session, r Range) (models.InstructorStats, error) {
	return get[models.InstructorStats](ctx, ss.c, s, "/stats/instructor", r.values(), personal(s), []string{TagStats})
}

func (ss *StatsService) Student(ctx context.Context, s Session) (models.StudentStats, error) {
	return get[models.StudentStats](ctx, ss.c, s, "/stats/student", nil, personal(s), []string{TagStats, TagEnrollments(s.UserID)})
}
