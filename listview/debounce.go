package listview

import (
	"strings"
	"sync"
	"time"
)

// SearchDelay is how long search input must stay quiet before a refetch.
const SearchDelay = 500 * time.Millisecond

// Debouncer runs a function once its trigger has been quiet for the delay.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn, replacing any call still waiting.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels a pending call. It reports whether one was pending.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}

// SearchBox couples free-text input with list params: typing restarts the debounce,
// and a quiet period commits the text, resets to page 1 and refetches once.
type SearchBox struct {
	mu       sync.Mutex
	params   Params
	pending  string
	debounce *Debouncer
	refetch  func(Params)
}

func NewSearchBox(initial Params, delay time.Duration, refetch func(Params)) *SearchBox {
	return &SearchBox{
		params:   initial,
		pending:  initial.Search,
		debounce: NewDebouncer(delay),
		refetch:  refetch,
	}
}

// Type records the current input text.
func (b *SearchBox) Type(text string) {
	b.mu.Lock()
	b.pending = text
	b.mu.Unlock()
	b.debounce.Trigger(b.commit)
}

// Params returns the committed list params.
func (b *SearchBox) Params() Params {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.params
}

// SetPage changes page without touching the search text.
func (b *SearchBox) SetPage(page int) {
	b.mu.Lock()
	b.params.Page = page
	p := b.params
	b.mu.Unlock()
	b.refetch(p)
}

// Stop drops any pending commit.
func (b *SearchBox) Stop() {
	b.debounce.Stop()
}

func (b *SearchBox) commit() {
	b.mu.Lock()
	if strings.TrimSpace(b.pending) == b.params.Search {
		b.mu.Unlock()
		return
	}
	b.params.SetSearch(b.pending)
	p := b.params
	b.mu.Unlock()
	b.refetch(p)
}
