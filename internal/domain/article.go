package domain

import (
	"regexp"
	"strings"
)

// Source identifies the outlet that published an article.
type Source struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Article is the internal normalized article format. Every provider payload
// is mapped into this shape by an Adapter; nothing outside the adapter layer
// ever sees provider field names.
type Article struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Content     string  `json:"content,omitempty"`
	Author      string  `json:"author,omitempty"`
	Category    string  `json:"category,omitempty"`
	URL         string  `json:"url"`
	ImageURL    string  `json:"urlToImage,omitempty"`
	PublishedAt string  `json:"publishedAt"`
	Source      *Source `json:"source,omitempty"`
}

// NewsResult is the uniform response shape published to the presentation
// layer regardless of which provider produced it.
type NewsResult struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from s: lowercase, runs of
// non-alphanumeric characters collapsed to a single '-', trimmed of
// leading and trailing '-'.
func Slugify(s string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// EnsureID fills in a derived slug when the provider supplied no stable
// identifier. Falls back to the article URL when the title is empty too.
func (a *Article) EnsureID() {
	if a.ID != "" {
		return
	}
	if slug := Slugify(a.Title); slug != "" {
		a.ID = slug
		return
	}
	a.ID = Slugify(a.URL)
}
