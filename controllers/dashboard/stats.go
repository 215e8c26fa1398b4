package dashboardController

import (
	"time"

	"storefront/apiclient"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// statsRange reads ?period=week|month|year or explicit ?from=&to= dates.
// The default is the current month.
func statsRange(c *fiber.Ctx, clock time.Time) (apiclient.Range, error) {
	from, to := c.Query("from"), c.Query("to")
	if from != "" || to != "" {
		var r apiclient.Range
		var err error
		if from != "" {
			if r.From, err = now.Parse(from); err != nil {
				return r, err
			}
		}
		if to != "" {
			if r.To, err = now.Parse(to); err != nil {
				return r, err
			}
			r.To = now.With(r.To).EndOfDay()
		}
		return r, nil
	}

	n := now.With(clock)
	switch c.Query("period") {
	case "week":
		return apiclient.Range{From: n.BeginningOfWeek(), To: n.EndOfWeek()}, nil
	case "year":
		return apiclient.Range{From: n.BeginningOfYear(), To: n.EndOfYear()}, nil
	default:
		return apiclient.Range{From: n.BeginningOfMonth(), To: n.EndOfMonth()}, nil
	}
}
