package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"storefront/apiclient"
	"storefront/config"
	publicControllers "storefront/controllers/public"
	"storefront/database"
	"storefront/listview"
	"storefront/logger"
	"storefront/models"
	"storefront/models/course"
	"storefront/services"
)

// Browses the public catalog from a terminal. Each input line is search text,
// committed once input has been quiet for the search delay.
// Commands: :next, :prev, :page N, :quit.
func main() {
	config.LoadConfig()
	if err := logger.Init(config.AppConfig.LogMode); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Log.Sync()

	if err := database.ConnectDb(config.AppConfig); err != nil {
		log.Fatalf("Failed to connect cache database: %v", err)
	}
	services.Init(config.AppConfig)

	b := newBrowser(os.Stdout, func(ctx context.Context, p listview.Params) (models.Page[course.Course], error) {
		return services.API.Courses.List(ctx, apiclient.Session{}, publicControllers.CatalogQuery(p))
	})
	b.run(context.Background(), os.Stdin)
}

type fetchFunc func(context.Context, listview.Params) (models.Page[course.Course], error)

type browser struct {
	mu         sync.Mutex
	out        io.Writer
	fetch      fetchFunc
	box        *listview.SearchBox
	totalPages int
}

func newBrowser(out io.Writer, fetch fetchFunc) *browser {
	return &browser{out: out, fetch: fetch}
}

func (b *browser) run(ctx context.Context, in io.Reader) {
	initial := listview.Params{}
	initial.Normalize(publicControllers.CatalogSorts...)

	b.box = listview.NewSearchBox(initial, listview.SearchDelay, func(p listview.Params) { b.show(ctx, p) })
	defer b.box.Stop()
	b.show(ctx, initial)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !b.handle(scanner.Text()) {
			return
		}
	}
}

// handle applies one input line and reports whether to keep reading.
func (b *browser) handle(line string) bool {
	cmd := strings.TrimSpace(line)
	current := b.box.Params()

	switch {
	case cmd == ":quit":
		return false
	case cmd == ":next":
		if current.Page < b.pages() {
			b.box.SetPage(current.Page + 1)
		}
	case cmd == ":prev":
		if current.Page > 1 {
			b.box.SetPage(current.Page - 1)
		}
	case strings.HasPrefix(cmd, ":page "):
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(cmd, ":page ")))
		if err != nil || n < 1 || n > b.pages() {
			b.printf("no such page\n")
			return true
		}
		b.box.SetPage(n)
	default:
		b.box.Type(line)
	}
	return true
}

func (b *browser) pages() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalPages
}

func (b *browser) show(ctx context.Context, p listview.Params) {
	page, err := b.fetch(ctx, p)
	if err != nil {
		b.printf("Unable to load courses right now. Please try again later.\n")
		return
	}
	view := listview.NewView(p, page)

	b.mu.Lock()
	b.totalPages = view.Pagination.TotalPages
	b.mu.Unlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "search=%q page %d/%d (%d courses)\n", p.Search, view.Pagination.Page, view.Pagination.TotalPages, view.Pagination.Total)
	for _, c := range view.Items {
		price := "Free"
		if !c.IsFree() {
			price = fmt.Sprintf("$%.2f", c.FinalPrice)
		}
		fmt.Fprintf(&sb, "  %-40s %-8s %s\n", c.Name, price, c.Slug)
	}
	sb.WriteString("  " + pager(view.Window) + "\n")
	b.printf("%s", sb.String())
}

func (b *browser) printf(format string, args ...interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintf(b.out, format, args...)
}

// pager renders a window like "< 1 [2] 3 4 5 ... >".
func pager(w listview.PageWindow) string {
	parts := []string{}
	if w.HasPrev {
		parts = append(parts, "<")
	}
	if w.LeadingEllipsis {
		parts = append(parts, "...")
	}
	for _, n := range w.Pages {
		if n == w.Current {
			parts = append(parts, "["+strconv.Itoa(n)+"]")
		} else {
			parts = append(parts, strconv.Itoa(n))
		}
	}
	if w.TrailingEllipsis {
		parts = append(parts, "...")
	}
	if w.HasNext {
		parts = append(parts, ">")
	}
	return strings.Join(parts, " ")
}
