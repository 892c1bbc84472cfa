package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/raymondjoseph02/news-today/internal/domain"
	"github.com/raymondjoseph02/news-today/internal/infra/store"
)

const (
	relatedFetchSize = 6
	relatedLimit     = 2
)

// DetailService serves the article detail view: it reads the selected
// article back from the cross-navigation store, falls back to a direct
// provider lookup, and picks related articles.
type DetailService struct {
	articles *store.ArticleStore
	news     *NewsService
}

func NewDetailService(articles *store.ArticleStore, news *NewsService) *DetailService {
	return &DetailService{articles: articles, news: news}
}

// ArticleBySlug returns the article for slug. The cross-navigation store is
// consulted first; on a miss a direct provider search is attempted. Returns
// domain.ErrNotFound when both come up empty.
func (d *DetailService) ArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	article, err := d.articles.Get(slug)
	if err == nil {
		return article, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	// The provider has no detail-by-id endpoint; search the slug words and
	// match on the derived slug.
	term := strings.ReplaceAll(slug, "-", " ")
	query := domain.Normalize(domain.DefaultCategory, term, domain.DefaultPageSize)
	result, err := d.news.Get(ctx, query)
	if err != nil {
		return nil, err
	}
	for i := range result.Articles {
		a := result.Articles[i]
		if a.ID == slug || domain.Slugify(a.Title) == slug {
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Related returns up to two articles from the same category, excluding the
// current one. A failed fetch degrades to an empty list: related articles
// must never fail the primary render.
func (d *DetailService) Related(ctx context.Context, article *domain.Article) []domain.Article {
	category := article.Category
	if !domain.ValidCategory(category) {
		category = domain.DefaultCategory
	}

	query := domain.Normalize(category, "", relatedFetchSize)
	result, err := d.news.Get(ctx, query)
	if err != nil {
		slog.Warn("Related articles fetch failed", "slug", article.ID, "error", err)
		return []domain.Article{}
	}

	related := make([]domain.Article, 0, relatedLimit)
	for _, a := range result.Articles {
		if a.Title == article.Title {
			continue
		}
		related = append(related, a)
		if len(related) == relatedLimit {
			break
		}
	}
	return related
}
