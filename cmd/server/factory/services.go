package factory

import (
	"errors"
	"fmt"
	"time"

	"github.com/raymondjoseph02/news-today/internal/app"
	"github.com/raymondjoseph02/news-today/internal/domain"
	"github.com/raymondjoseph02/news-today/internal/infra/cache"
	"github.com/raymondjoseph02/news-today/internal/infra/store"
	transport "github.com/raymondjoseph02/news-today/internal/transport/http"
	"github.com/raymondjoseph02/news-today/internal/uistate"
	"github.com/raymondjoseph02/news-today/pkg/config"
)

// NewUISession creates the process-wide UI state.
func NewUISession() *uistate.Session {
	return uistate.NewSession()
}

// NewNewsService creates the normalize-cache-fetch pipeline with validation.
func NewNewsService(fetcher domain.Fetcher, resultCache *cache.ResultCache) (*app.NewsService, error) {
	if fetcher == nil {
		return nil, errors.New("fetcher is nil")
	}
	if resultCache == nil {
		return nil, errors.New("result cache is nil")
	}
	return app.NewNewsService(fetcher, resultCache), nil
}

// NewController creates the debounced query controller.
func NewController(news *app.NewsService, session *uistate.Session, cfg *config.Config) (*app.Controller, error) {
	if cfg.DebounceDelay < 10*time.Millisecond || cfg.DebounceDelay > time.Minute {
		return nil, fmt.Errorf("invalid debounce delay: %s (must be 10ms-1m)", cfg.DebounceDelay)
	}
	if cfg.DefaultPageSize < 1 || cfg.DefaultPageSize > domain.MaxPageSize {
		return nil, fmt.Errorf("invalid default page size: %d (must be 1-%d)", cfg.DefaultPageSize, domain.MaxPageSize)
	}
	return app.NewController(news, session, cfg.DebounceDelay, cfg.DefaultPageSize, nil), nil
}

// NewDetailService creates the article detail service.
func NewDetailService(articles *store.ArticleStore, news *app.NewsService) (*app.DetailService, error) {
	if articles == nil {
		return nil, errors.New("article store is nil")
	}
	if news == nil {
		return nil, errors.New("news service is nil")
	}
	return app.NewDetailService(articles, news), nil
}

// NewHTTPHandler creates the transport handler.
func NewHTTPHandler(
	news *app.NewsService,
	detail *app.DetailService,
	controller *app.Controller,
	session *uistate.Session,
	articles *store.ArticleStore,
	cfg *config.Config,
) *transport.Handler {
	return transport.NewHandler(news, detail, controller, session, articles, cfg.DefaultPageSize)
}
