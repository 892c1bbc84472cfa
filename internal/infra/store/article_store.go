package store

import (
	"encoding/json"
	"fmt"

	"github.com/raymondjoseph02/news-today/internal/domain"
	"github.com/raymondjoseph02/news-today/internal/infra/metrics"
)

const articleKeyPrefix = "article-"

// ArticleStore passes a full article record across a navigation boundary
// without a network round-trip. Keys are human-readable slugs under the
// "article-" prefix. Not a cache: entries live for the session lifetime.
type ArticleStore struct {
	kv domain.SessionStore
}

func NewArticleStore(kv domain.SessionStore) *ArticleStore {
	return &ArticleStore{kv: kv}
}

// Put stores the article and returns the key the caller must navigate with.
// When two distinct articles derive the same slug, the later one gets a
// numeric suffix instead of silently overwriting the first.
func (s *ArticleStore) Put(article domain.Article) (string, error) {
	article.EnsureID()
	slug := article.ID
	if slug == "" {
		return "", fmt.Errorf("article has no title or URL to derive a slug from")
	}

	key := slug
	for n := 2; ; n++ {
		raw, ok := s.kv.Get(articleKeyPrefix + key)
		if !ok {
			break
		}
		var existing domain.Article
		if err := json.Unmarshal([]byte(raw), &existing); err == nil && existing.URL == article.URL {
			// Same article re-selected: overwrite in place.
			break
		}
		metrics.ArticleStoreCollisions.Inc()
		key = fmt.Sprintf("%s-%d", slug, n)
	}

	article.ID = key
	payload, err := json.Marshal(article)
	if err != nil {
		return "", fmt.Errorf("failed to serialize article %s: %w", key, err)
	}
	s.kv.Set(articleKeyPrefix+key, string(payload))
	return key, nil
}

// Get reads an article back by its slug. Returns domain.ErrNotFound when
// no entry exists.
func (s *ArticleStore) Get(slug string) (*domain.Article, error) {
	raw, ok := s.kv.Get(articleKeyPrefix + slug)
	if !ok {
		return nil, domain.ErrNotFound
	}

	var article domain.Article
	if err := json.Unmarshal([]byte(raw), &article); err != nil {
		return nil, fmt.Errorf("failed to deserialize article %s: %w", slug, err)
	}
	return &article, nil
}
