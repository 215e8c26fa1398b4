package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"storefront/listview"
	"storefront/models"
	"storefront/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestPager(t *testing.T) {
	assert.Equal(t, "[1] 2 3 4 5 ... >", pager(listview.Window(1, 12)))
	assert.Equal(t, "< ... 8 9 [10] 11 12 >", pager(listview.Window(10, 12)))
	assert.Equal(t, "", pager(listview.Window(1, 0)))
}

func TestBrowserPagingAndSearch(t *testing.T) {
	var mu sync.Mutex
	var calls []listview.Params
	fetch := func(_ context.Context, p listview.Params) (models.Page[course.Course], error) {
		mu.Lock()
		calls = append(calls, p)
		mu.Unlock()
		return models.Page[course.Course]{
			Items:      []course.Course{{Name: "Go Basics", Slug: "go-basics", Type: course.TypeFree}},
			Pagination: models.Pagination{Page: p.Page, Limit: p.Limit, Total: 30},
		}, nil
	}

	out := &syncBuffer{}
	b := newBrowser(out, fetch)
	done := make(chan struct{})
	go func() {
		b.run(context.Background(), strings.NewReader(":next\n:page 3\n:page 9\ngo\n"))
		close(done)
	}()
	<-done

	mu.Lock()
	got := append([]listview.Params(nil), calls...)
	mu.Unlock()

	// initial load, :next and :page 3; the search was still debouncing when input ended
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Page)
	assert.Equal(t, 2, got[1].Page)
	assert.Equal(t, 3, got[2].Page)
	assert.Contains(t, out.String(), "no such page")
	assert.Contains(t, out.String(), "Go Basics")
}

func TestBrowserSearchCommitsOnce(t *testing.T) {
	var mu sync.Mutex
	var calls []listview.Params
	fetch := func(_ context.Context, p listview.Params) (models.Page[course.Course], error) {
		mu.Lock()
		calls = append(calls, p)
		mu.Unlock()
		return models.Page[course.Course]{Pagination: models.Pagination{Page: p.Page, Limit: p.Limit, Total: 30}}, nil
	}

	b := newBrowser(&syncBuffer{}, fetch)
	initial := listview.Params{Page: 3}
	initial.Normalize()
	b.box = listview.NewSearchBox(initial, 20*time.Millisecond, func(p listview.Params) { b.show(context.Background(), p) })
	defer b.box.Stop()

	b.handle("g")
	b.handle("go")
	b.handle("go ")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) == 1
	}, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, calls, 1)
	assert.Equal(t, "go", calls[0].Search)
	assert.Equal(t, 1, calls[0].Page)
}
