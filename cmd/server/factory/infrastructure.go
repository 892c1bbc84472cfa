// Package factory provides dependency injection constructors for infrastructure components.
package factory

import (
	"errors"

	"github.com/raymondjoseph02/news-today/internal/domain"
	"github.com/raymondjoseph02/news-today/internal/infra/cache"
	"github.com/raymondjoseph02/news-today/internal/infra/store"
	"github.com/raymondjoseph02/news-today/pkg/config"
)

// NewResultCache creates the TTL result cache.
func NewResultCache(cfg *config.Config) (*cache.ResultCache, error) {
	if cfg.CacheTTL <= 0 {
		return nil, errors.New("cache TTL must be positive")
	}
	return cache.New(cfg.CacheTTL), nil
}

// NewSessionStore creates the session-scoped key/value store.
func NewSessionStore() domain.SessionStore {
	return store.NewMemory()
}

// NewArticleStore creates the cross-navigation article store.
func NewArticleStore(kv domain.SessionStore) (*store.ArticleStore, error) {
	if kv == nil {
		return nil, errors.New("session store is nil")
	}
	return store.NewArticleStore(kv), nil
}
