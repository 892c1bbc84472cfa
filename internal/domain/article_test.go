package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, World!":                "hello-world",
		"  Breaking -- News  ":         "breaking-news",
		"Ünicode stripped":             "nicode-stripped",
		"already-a-slug":               "already-a-slug",
		"UPPER lower 123":              "upper-lower-123",
		"!!!":                          "",
		"multiple   spaces\tand tabs!": "multiple-spaces-and-tabs",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestEnsureID(t *testing.T) {
	a := Article{Title: "Markets Rally On Rate News"}
	a.EnsureID()
	assert.Equal(t, "markets-rally-on-rate-news", a.ID)

	// A provider-supplied ID is never replaced
	b := Article{ID: "provider-42", Title: "Some Title"}
	b.EnsureID()
	assert.Equal(t, "provider-42", b.ID)

	// No title falls back to the URL
	c := Article{URL: "https://example.com/story/99"}
	c.EnsureID()
	assert.Equal(t, "https-example-com-story-99", c.ID)
}
