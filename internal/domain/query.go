package domain

import (
	"fmt"
	"strings"
)

// QueryMode selects the upstream endpoint family.
type QueryMode string

const (
	// ModeSearch hits the free-text search endpoint; category is carried
	// for article tagging only.
	ModeSearch QueryMode = "search"
	// ModeCategory hits the category-browse (top headlines) endpoint.
	ModeCategory QueryMode = "category"
)

const (
	// DefaultCategory is substituted for anything outside the allow-list.
	DefaultCategory = "general"
	// DefaultPageSize is used when the caller passes zero or a negative value.
	DefaultPageSize = 20
	// MaxPageSize is the provider's free-tier cap; larger values are
	// silently clamped, never rejected.
	MaxPageSize = 100
)

// providerCategories is the upstream category allow-list.
var providerCategories = map[string]bool{
	"business":      true,
	"entertainment": true,
	"general":       true,
	"health":        true,
	"science":       true,
	"sports":        true,
	"technology":    true,
}

// tabCategories maps UI tab names to provider categories. Tabs the provider
// has no equivalent for (World, Politics) fall back to general.
var tabCategories = map[string]string{
	"All":      "general",
	"Top":      "general",
	"World":    "general",
	"Politics": "general",
	"Business": "business",
	"Tech":     "technology",
}

// MapTabToCategory maps a UI tab name to a provider category. Total over
// all inputs: unknown tabs map to the default category.
func MapTabToCategory(tabName string) string {
	if c, ok := tabCategories[tabName]; ok {
		return c
	}
	return DefaultCategory
}

// ValidCategory reports whether c is in the provider allow-list,
// case-insensitively.
func ValidCategory(c string) bool {
	return providerCategories[strings.ToLower(c)]
}

// NewsQuery is the normalized upstream request. Equality is by Key(), which
// is also the cache key, so construction must go through Normalize.
type NewsQuery struct {
	Mode       QueryMode `json:"mode"`
	Category   string    `json:"category"`
	SearchTerm string    `json:"searchTerm,omitempty"`
	PageSize   int       `json:"pageSize"`
}

// Normalize builds a validated NewsQuery. The rules apply in order: a
// non-blank search term selects search mode, the category is substituted
// with the default when off the allow-list, and the page size is defaulted
// and clamped. Deterministic and idempotent for identical inputs.
func Normalize(category, searchTerm string, pageSize int) NewsQuery {
	mode := ModeCategory
	term := strings.TrimSpace(searchTerm)
	if term != "" {
		mode = ModeSearch
	}

	cat := strings.ToLower(category)
	if !providerCategories[cat] {
		cat = DefaultCategory
	}

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return NewsQuery{
		Mode:       mode,
		Category:   cat,
		SearchTerm: term,
		PageSize:   pageSize,
	}
}

// Key returns the serialized form used for cache keying and for stale
// response comparison.
func (q NewsQuery) Key() string {
	return fmt.Sprintf("%s|%s|%s|%d", q.Mode, q.Category, q.SearchTerm, q.PageSize)
}
