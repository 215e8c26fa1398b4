package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	p := Params{Search: "  go ", Role: "admin", Page: -3, Limit: 1000, Sort: "price", Order: "ASC"}
	p.Normalize("createdAt", "price")

	assert.Equal(t, "go", p.Search)
	assert.Equal(t, "ADMIN", p.Role)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, "price", p.Sort)
	assert.Equal(t, "asc", p.Order)

	p = Params{Sort: "password"}
	p.Normalize("createdAt")
	assert.Equal(t, "", p.Sort)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, "desc", p.Order)
}

func TestFilterKeyIgnoresPaging(t *testing.T) {
	a := Params{Search: "go", Page: 1, Limit: 10}
	b := Params{Search: "go", Page: 7, Limit: 50}
	c := Params{Search: "rust", Page: 1, Limit: 10}

	assert.Equal(t, a.FilterKey(), b.FilterKey())
	assert.NotEqual(t, a.FilterKey(), c.FilterKey())
}

func TestResetIfFiltersChanged(t *testing.T) {
	prev := Params{Search: "go", Status: "ACTIVE"}.FilterKey()

	same := Params{Search: "go", Status: "ACTIVE", Page: 4}
	assert.False(t, same.ResetIfFiltersChanged(prev))
	assert.Equal(t, 4, same.Page)

	changed := Params{Search: "go", Status: "INACTIVE", Page: 4}
	assert.True(t, changed.ResetIfFiltersChanged(prev))
	assert.Equal(t, 1, changed.Page)

	first := Params{Page: 3}
	assert.False(t, first.ResetIfFiltersChanged(""))
	assert.Equal(t, 3, first.Page)
}

func TestValues(t *testing.T) {
	p := Params{Search: "go", Type: "PAID", Page: 2, Limit: 10}
	p.Normalize()
	q := p.Values()

	assert.Equal(t, "go", q.Get("search"))
	assert.Equal(t, "PAID", q.Get("type"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "10", q.Get("limit"))
	assert.False(t, q.Has("role"))
	assert.False(t, q.Has("order"))
}
