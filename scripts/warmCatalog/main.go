package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"storefront/apiclient"
	"storefront/config"
	publicControllers "storefront/controllers/public"
	"storefront/database"
	"storefront/logger"
	"storefront/services"
)

var errMissingSlugColumn = errors.New("CSV header has no slug column")

// Primes the persistent query cache with the home page and the course pages listed in a CSV.
// Only useful with a database cache driver; the memory cache dies with this process.
func main() {
	path := flag.String("file", "catalog.csv", "CSV with a slug column")
	flag.Parse()

	config.LoadConfig()
	if err := logger.Init(config.AppConfig.LogMode); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Log.Sync()

	if config.AppConfig.CacheDriver == "memory" {
		log.Fatal("CACHE_DRIVER is memory; nothing would outlive this run")
	}
	if err := database.ConnectDb(config.AppConfig); err != nil {
		log.Fatalf("Failed to connect cache database: %v", err)
	}
	services.Init(config.AppConfig)

	file, err := os.Open(*path)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	slugs, err := readSlugs(file)
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}
	log.Printf("Total courses to warm: %d", len(slugs))

	ctx := context.Background()
	anonymous := apiclient.Session{}

	if _, err := services.API.Courses.List(ctx, anonymous, publicControllers.FeaturedQuery()); err != nil {
		log.Printf("Error warming home page: %v", err)
	}

	warmed, failed := 0, 0
	for i, slug := range slugs {
		if i%100 == 0 {
			log.Printf("Processing row %d...", i+1)
		}
		if _, err := services.API.Courses.BySlug(ctx, anonymous, slug); err != nil {
			log.Printf("Error warming course %s: %v", slug, err)
			failed++
			continue
		}
		warmed++
	}

	log.Printf("=== Warm-up Complete ===")
	log.Printf("Warmed: %d", warmed)
	log.Printf("Failed: %d", failed)
}

// readSlugs returns the non-empty values of the slug column, deduplicated in file order.
func readSlugs(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	col := -1
	for i, h := range records[0] {
		if strings.EqualFold(strings.TrimSpace(h), "slug") {
			col = i
		}
	}
	if col < 0 {
		return nil, errMissingSlugColumn
	}

	seen := make(map[string]bool)
	var slugs []string
	for _, row := range records[1:] {
		if col >= len(row) {
			continue
		}
		slug := strings.TrimSpace(row[col])
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		slugs = append(slugs, slug)
	}
	return slugs, nil
}
