package app

import (
	"context"
	"log/slog"

	"github.com/raymondjoseph02/news-today/internal/domain"
	"github.com/raymondjoseph02/news-today/internal/infra/cache"
)

// NewsService is the normalize-cache-fetch pipeline. It is the only reader
// and writer of the result cache.
type NewsService struct {
	fetcher domain.Fetcher
	cache   *cache.ResultCache
}

func NewNewsService(fetcher domain.Fetcher, cache *cache.ResultCache) *NewsService {
	return &NewsService{fetcher: fetcher, cache: cache}
}

// Cached returns the cached result for query without touching the network.
func (s *NewsService) Cached(query domain.NewsQuery) (*domain.NewsResult, bool) {
	return s.cache.Get(query)
}

// Get returns the cached result when fresh, otherwise fetches and writes
// through the cache.
func (s *NewsService) Get(ctx context.Context, query domain.NewsQuery) (*domain.NewsResult, error) {
	if result, ok := s.cache.Get(query); ok {
		return result, nil
	}
	return s.Refresh(ctx, query)
}

// Refresh fetches unconditionally and writes through the cache.
func (s *NewsService) Refresh(ctx context.Context, query domain.NewsQuery) (*domain.NewsResult, error) {
	result, err := s.fetcher.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	s.cache.Put(query, result)
	return result, nil
}

// GetOrEmpty degrades a failed fetch to an empty result. Used where a
// secondary fetch must not fail the primary render.
func (s *NewsService) GetOrEmpty(ctx context.Context, query domain.NewsQuery) *domain.NewsResult {
	result, err := s.Get(ctx, query)
	if err != nil {
		slog.Warn("Degrading failed fetch to empty result", "query", query.Key(), "error", err)
		return &domain.NewsResult{Status: "error", Articles: []domain.Article{}}
	}
	return result
}
