package listview

import "storefront/models"

// View is a list page as the dashboard renders it.
type View[T any] struct {
	Items      []T               `json:"items"`
	Params     Params            `json:"params"`
	Pagination models.Pagination `json:"pagination"`
	Window     PageWindow        `json:"window"`
	FilterKey  string            `json:"filterKey"`
}

// NewView combines the request params with the page the API returned.
// A missing totalPages is derived from total and limit.
func NewView[T any](p Params, page models.Page[T]) View[T] {
	pg := page.Pagination
	if pg.Limit == 0 {
		pg.Limit = p.Limit
	}
	if pg.Page == 0 {
		pg.Page = p.Page
	}
	if pg.TotalPages == 0 {
		pg.TotalPages = models.PageCount(pg.Total, pg.Limit)
	}

	items := page.Items
	if items == nil {
		items = []T{}
	}
	return View[T]{
		Items:      items,
		Params:     p,
		Pagination: pg,
		Window:     Window(pg.Page, pg.TotalPages),
		FilterKey:  p.FilterKey(),
	}
}
