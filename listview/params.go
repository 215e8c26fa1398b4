package listview

import (
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is the filter/sort/page state of a list view.
type Params struct {
	Search string `query:"search" json:"search"`
	Role   string `query:"role" json:"role,omitempty"`
	Status string `query:"status" json:"status,omitempty"`
	Type   string `query:"type" json:"type,omitempty"`
	Sort   string `query:"sort" json:"sort,omitempty"`
	Order  string `query:"order" json:"order,omitempty"`
	Page   int    `query:"page" json:"page"`
	Limit  int    `query:"limit" json:"limit"`
}

// Normalize clamps page and limit, trims text filters and drops sort keys outside allowedSorts.
func (p *Params) Normalize(allowedSorts ...string) {
	p.Search = strings.TrimSpace(p.Search)
	p.Role = strings.ToUpper(strings.TrimSpace(p.Role))
	p.Status = strings.ToUpper(strings.TrimSpace(p.Status))
	p.Type = strings.ToUpper(strings.TrimSpace(p.Type))

	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	if !contains(allowedSorts, p.Sort) {
		p.Sort = ""
	}
	switch strings.ToLower(p.Order) {
	case "asc":
		p.Order = "asc"
	default:
		p.Order = "desc"
	}
}

// FilterKey digests every field except page and limit.
func (p Params) FilterKey() string {
	raw := strings.Join([]string{p.Search, p.Role, p.Status, p.Type, p.Sort, p.Order}, "\x00")
	sum := blake2b.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:8])
}

// ResetIfFiltersChanged moves back to page 1 when prevKey names different filters.
// An empty prevKey is a first load and keeps the requested page.
func (p *Params) ResetIfFiltersChanged(prevKey string) bool {
	if prevKey == "" || prevKey == p.FilterKey() {
		return false
	}
	p.Page = 1
	return true
}

// SetSearch commits a new search text and resets to page 1.
func (p *Params) SetSearch(text string) {
	p.Search = strings.TrimSpace(text)
	p.Page = 1
}

// Values encodes the params as upstream query parameters, omitting empty filters.
func (p Params) Values() url.Values {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("search", p.Search)
	set("role", p.Role)
	set("status", p.Status)
	set("type", p.Type)
	set("sort", p.Sort)
	if p.Sort != "" {
		set("order", p.Order)
	}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	return q
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
