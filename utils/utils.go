package utils

import (
	"fmt"
	"strings"
)

// ParseTags splits a comma separated tag list, dropping blanks and duplicates.
func ParseTags(raw string) []string {
	seen := make(map[string]bool)
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		tags = append(tags, t)
	}
	return tags
}

// FormatPrice renders an amount for display. Zero reads as Free.
func FormatPrice(amount float64) string {
	if amount == 0 {
		return "Free"
	}
	return fmt.Sprintf("$%.2f", amount)
}
