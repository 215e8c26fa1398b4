package listview

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls []Params
}

func (r *recorder) refetch(p Params) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, p)
}

func (r *recorder) snapshot() []Params {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Params(nil), r.calls...)
}

func TestSearchBoxCommitsOnceAfterQuietPeriod(t *testing.T) {
	rec := &recorder{}
	box := NewSearchBox(Params{Page: 4, Limit: 10}, SearchDelay, rec.refetch)
	defer box.Stop()

	for _, text := range []string{"g", "go", "gol", "gola", "golang"} {
		box.Type(text)
		time.Sleep(50 * time.Millisecond)
	}

	// still inside the quiet window of the last keystroke
	time.Sleep(300 * time.Millisecond)
	assert.Empty(t, rec.snapshot())

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(SearchDelay)

	calls := rec.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, "golang", calls[0].Search)
	assert.Equal(t, 1, calls[0].Page)
	assert.Equal(t, "golang", box.Params().Search)
}

func TestSearchBoxSkipsUnchangedText(t *testing.T) {
	rec := &recorder{}
	box := NewSearchBox(Params{Search: "go", Page: 2}, 20*time.Millisecond, rec.refetch)

	box.Type("go ")
	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
	assert.Equal(t, 2, box.Params().Page)
}

func TestSearchBoxStopCancelsPending(t *testing.T) {
	rec := &recorder{}
	box := NewSearchBox(Params{}, 30*time.Millisecond, rec.refetch)

	box.Type("rust")
	box.Stop()
	time.Sleep(90 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestSearchBoxSetPageKeepsSearch(t *testing.T) {
	rec := &recorder{}
	box := NewSearchBox(Params{Search: "go", Page: 1}, SearchDelay, rec.refetch)

	box.SetPage(3)
	calls := rec.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, 3, calls[0].Page)
	assert.Equal(t, "go", calls[0].Search)
}

func TestDebouncerStop(t *testing.T) {
	d := NewDebouncer(time.Hour)
	assert.False(t, d.Stop())
	d.Trigger(func() {})
	assert.True(t, d.Stop())
}
