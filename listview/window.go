package listview

// MaxWindow is the most page numbers a pager shows at once.
const MaxWindow = 5

// PageWindow is what a pager renders.
type PageWindow struct {
	Pages            []int `json:"pages"`
	Current          int   `json:"current"`
	TotalPages       int   `json:"totalPages"`
	LeadingEllipsis  bool  `json:"leadingEllipsis"`
	TrailingEllipsis bool  `json:"trailingEllipsis"`
	HasPrev          bool  `json:"hasPrev"`
	HasNext          bool  `json:"hasNext"`
}

// Window returns at most MaxWindow page numbers centered on current where possible.
func Window(current, totalPages int) PageWindow {
	if totalPages < 1 {
		return PageWindow{Pages: []int{}, Current: 1}
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	start, end := 1, totalPages
	if totalPages > MaxWindow {
		start = current - MaxWindow/2
		if start < 1 {
			start = 1
		}
		if start > totalPages-MaxWindow+1 {
			start = totalPages - MaxWindow + 1
		}
		end = start + MaxWindow - 1
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}

	return PageWindow{
		Pages:            pages,
		Current:          current,
		TotalPages:       totalPages,
		LeadingEllipsis:  start > 1,
		TrailingEllipsis: end < totalPages,
		HasPrev:          current > 1,
		HasNext:          current < totalPages,
	}
}
