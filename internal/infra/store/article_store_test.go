package store

import (
	"testing"

	"github.com/raymondjoseph02/news-today/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleStore_RoundTrip(t *testing.T) {
	s := NewArticleStore(NewMemory())

	article := domain.Article{
		Title:       "Markets Rally On Rate News",
		URL:         "https://example.com/markets",
		Category:    "business",
		PublishedAt: "2026-08-01T10:00:00Z",
	}

	slug, err := s.Put(article)
	require.NoError(t, err)
	assert.Equal(t, "markets-rally-on-rate-news", slug)

	got, err := s.Get(slug)
	require.NoError(t, err)
	assert.Equal(t, article.Title, got.Title)
	assert.Equal(t, article.URL, got.URL)
	assert.Equal(t, slug, got.ID)
}

func TestArticleStore_MissingIsNotFound(t *testing.T) {
	s := NewArticleStore(NewMemory())
	_, err := s.Get("never-stored")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArticleStore_CollisionsDisambiguated(t *testing.T) {
	s := NewArticleStore(NewMemory())

	first := domain.Article{Title: "Breaking News", URL: "https://a.example.com/1"}
	second := domain.Article{Title: "Breaking News", URL: "https://b.example.com/2"}

	slugA, err := s.Put(first)
	require.NoError(t, err)
	slugB, err := s.Put(second)
	require.NoError(t, err)

	assert.Equal(t, "breaking-news", slugA)
	assert.Equal(t, "breaking-news-2", slugB)

	gotA, err := s.Get(slugA)
	require.NoError(t, err)
	gotB, err := s.Get(slugB)
	require.NoError(t, err)
	assert.Equal(t, first.URL, gotA.URL)
	assert.Equal(t, second.URL, gotB.URL)
}

func TestArticleStore_SameArticleOverwritesInPlace(t *testing.T) {
	s := NewArticleStore(NewMemory())

	article := domain.Article{Title: "Breaking News", URL: "https://a.example.com/1"}

	slugA, err := s.Put(article)
	require.NoError(t, err)

	article.Description = "updated on re-selection"
	slugB, err := s.Put(article)
	require.NoError(t, err)

	assert.Equal(t, slugA, slugB)
	got, err := s.Get(slugA)
	require.NoError(t, err)
	assert.Equal(t, "updated on re-selection", got.Description)
}

func TestArticleStore_RejectsUnidentifiableArticle(t *testing.T) {
	s := NewArticleStore(NewMemory())
	_, err := s.Put(domain.Article{})
	assert.Error(t, err)
}
