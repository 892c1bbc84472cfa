package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapTabToCategory_AlwaysInAllowList(t *testing.T) {
	tabs := []string{"All", "Top", "World", "Politics", "Business", "Tech", "Bogus", ""}
	for _, tab := range tabs {
		got := MapTabToCategory(tab)
		assert.True(t, ValidCategory(got), "tab %q mapped to %q, outside the allow-list", tab, got)
	}
}

func TestMapTabToCategory_Mapping(t *testing.T) {
	assert.Equal(t, "business", MapTabToCategory("Business"))
	assert.Equal(t, "technology", MapTabToCategory("Tech"))
	// Politics has no provider equivalent and falls back to general
	assert.Equal(t, "general", MapTabToCategory("Politics"))
	assert.Equal(t, "general", MapTabToCategory("never-heard-of-it"))
}

func TestNormalize_SearchModeWinsOverCategory(t *testing.T) {
	q := Normalize("technology", "  quantum computing  ", 20)
	assert.Equal(t, ModeSearch, q.Mode)
	assert.Equal(t, "quantum computing", q.SearchTerm)
	// Category is still carried for downstream article tagging
	assert.Equal(t, "technology", q.Category)
}

func TestNormalize_BlankSearchIsCategoryBrowse(t *testing.T) {
	for _, term := range []string{"", "   ", "\t\n"} {
		q := Normalize("business", term, 20)
		assert.Equal(t, ModeCategory, q.Mode)
		assert.Empty(t, q.SearchTerm)
	}
}

func TestNormalize_CategoryAllowList(t *testing.T) {
	assert.Equal(t, "science", Normalize("Science", "", 20).Category)
	assert.Equal(t, "general", Normalize("politics", "", 20).Category)
	assert.Equal(t, "general", Normalize("", "", 20).Category)
}

func TestNormalize_PageSizeClamping(t *testing.T) {
	assert.Equal(t, DefaultPageSize, Normalize("general", "", 0).PageSize)
	assert.Equal(t, DefaultPageSize, Normalize("general", "", -5).PageSize)
	assert.Equal(t, MaxPageSize, Normalize("general", "", 5000).PageSize)
	assert.Equal(t, 42, Normalize("general", "", 42).PageSize)
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []struct {
		category string
		term     string
		pageSize int
	}{
		{"Tech", "golang", 20},
		{"BUSINESS", "", 0},
		{"unknown", "  spaced  ", 9000},
		{"health", "a", 1},
	}

	for _, in := range inputs {
		once := Normalize(in.category, in.term, in.pageSize)
		twice := Normalize(once.Category, once.SearchTerm, once.PageSize)
		assert.Equal(t, once, twice, "normalize(%v) not idempotent", in)
		assert.Equal(t, once.Key(), twice.Key())
	}
}

func TestKey_DistinguishesQueries(t *testing.T) {
	a := Normalize("business", "", 20)
	b := Normalize("technology", "", 20)
	c := Normalize("business", "deals", 20)
	assert.NotEqual(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}
