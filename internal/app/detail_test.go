package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/raymondjoseph02/news-today/internal/domain"
	"github.com/raymondjoseph02/news-today/internal/domain/mocks"
	"github.com/raymondjoseph02/news-today/internal/infra/cache"
	"github.com/raymondjoseph02/news-today/internal/infra/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDetailFixture(fetcher domain.Fetcher) (*DetailService, *store.ArticleStore) {
	articles := store.NewArticleStore(store.NewMemory())
	news := NewNewsService(fetcher, cache.New(time.Minute))
	return NewDetailService(articles, news), articles
}

func TestDetailService_StoreHitSkipsProvider(t *testing.T) {
	fetcher := new(mocks.MockFetcher)
	detail, articles := newDetailFixture(fetcher)

	slug, err := articles.Put(domain.Article{Title: "Stored Story", URL: "https://example.com/s"})
	require.NoError(t, err)

	got, err := detail.ArticleBySlug(context.Background(), slug)
	require.NoError(t, err)
	assert.Equal(t, "Stored Story", got.Title)

	fetcher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestDetailService_StoreMissFallsBackToProviderLookup(t *testing.T) {
	fetcher := new(mocks.MockFetcher)
	detail, _ := newDetailFixture(fetcher)

	result := &domain.NewsResult{
		Status:       "ok",
		TotalResults: 2,
		Articles: []domain.Article{
			{ID: "other-story", Title: "Other Story", URL: "https://example.com/o"},
			{ID: "big-story", Title: "Big Story", URL: "https://example.com/b"},
		},
	}
	query := domain.Normalize(domain.DefaultCategory, "big story", domain.DefaultPageSize)
	fetcher.On("Fetch", mock.Anything, query).Return(result, nil).Once()

	got, err := detail.ArticleBySlug(context.Background(), "big-story")
	require.NoError(t, err)
	assert.Equal(t, "Big Story", got.Title)
	fetcher.AssertExpectations(t)
}

func TestDetailService_AbsentEverywhereIsNotFound(t *testing.T) {
	fetcher := new(mocks.MockFetcher)
	detail, _ := newDetailFixture(fetcher)

	fetcher.On("Fetch", mock.Anything, mock.Anything).
		Return(&domain.NewsResult{Status: "ok", Articles: []domain.Article{}}, nil)

	_, err := detail.ArticleBySlug(context.Background(), "ghost-story")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDetailService_RelatedExcludesCurrentAndLimitsToTwo(t *testing.T) {
	fetcher := new(mocks.MockFetcher)
	detail, _ := newDetailFixture(fetcher)

	current := &domain.Article{ID: "chip-news", Title: "Chip News", Category: "technology"}
	query := domain.Normalize("technology", "", relatedFetchSize)
	fetcher.On("Fetch", mock.Anything, query).Return(&domain.NewsResult{
		Status: "ok",
		Articles: []domain.Article{
			{Title: "Chip News"},
			{Title: "GPU Prices Drop"},
			{Title: "New Framework Released"},
			{Title: "Battery Breakthrough"},
		},
	}, nil).Once()

	related := detail.Related(context.Background(), current)
	require.Len(t, related, relatedLimit)
	assert.Equal(t, "GPU Prices Drop", related[0].Title)
	assert.Equal(t, "New Framework Released", related[1].Title)
}

func TestDetailService_RelatedDegradesOnFetchFailure(t *testing.T) {
	fetcher := new(mocks.MockFetcher)
	detail, _ := newDetailFixture(fetcher)

	fetcher.On("Fetch", mock.Anything, mock.Anything).Return(nil, errors.New("upstream down"))

	current := &domain.Article{ID: "chip-news", Title: "Chip News", Category: "technology"}
	related := detail.Related(context.Background(), current)
	assert.Empty(t, related, "a failed related fetch must not fail the primary render")
}

func TestDetailService_InvalidCategoryFallsBackToGeneral(t *testing.T) {
	fetcher := new(mocks.MockFetcher)
	detail, _ := newDetailFixture(fetcher)

	query := domain.Normalize(domain.DefaultCategory, "", relatedFetchSize)
	fetcher.On("Fetch", mock.Anything, query).
		Return(&domain.NewsResult{Status: "ok", Articles: []domain.Article{}}, nil).Once()

	current := &domain.Article{ID: "odd", Title: "Odd", Category: "politics"}
	detail.Related(context.Background(), current)
	fetcher.AssertExpectations(t)
}
