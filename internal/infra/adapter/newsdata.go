package adapter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/raymondjoseph02/news-today/internal/domain"
)

const NewsDataName = "newsdata"

type newsDataArticle struct {
	ArticleID   string   `json:"article_id"`
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	PubDate     string   `json:"pubDate"`
	ImageURL    string   `json:"image_url"`
	SourceID    string   `json:"source_id"`
	SourceName  string   `json:"source_name"`
	Creator     []string `json:"creator"`
}

type newsDataEnvelope struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	// On error responses "results" is an object, not an array, so it is
	// decoded in a second pass.
	Results json.RawMessage `json:"results"`
}

type newsDataError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// NewsDataAdapter maps the NewsData.io response shape (top-level "results"
// array, multi-value "creator" field) into the internal result format.
type NewsDataAdapter struct{}

func NewNewsDataAdapter() *NewsDataAdapter {
	return &NewsDataAdapter{}
}

func (a *NewsDataAdapter) Adapt(reader io.Reader) (*domain.NewsResult, error) {
	var env newsDataEnvelope
	if err := json.NewDecoder(reader).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode newsdata response: %w", err)
	}

	if env.Status == "error" {
		var e newsDataError
		_ = json.Unmarshal(env.Results, &e)
		msg := e.Message
		if msg == "" {
			msg = e.Code
		}
		if msg == "" {
			msg = "unspecified provider error"
		}
		return nil, &domain.ProviderError{Message: msg}
	}

	var raw []newsDataArticle
	if len(env.Results) > 0 {
		if err := json.Unmarshal(env.Results, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode newsdata results: %w", err)
		}
	}

	articles := make([]domain.Article, 0, len(raw))
	for _, nd := range raw {
		articles = append(articles, a.normalize(nd))
	}

	total := env.TotalResults
	if total == 0 {
		total = len(articles)
	}

	return &domain.NewsResult{
		Status:       "ok",
		TotalResults: total,
		Articles:     articles,
	}, nil
}

func (a *NewsDataAdapter) normalize(nd newsDataArticle) domain.Article {
	art := domain.Article{
		ID:          nd.ArticleID,
		Title:       nd.Title,
		Description: nd.Description,
		Content:     nd.Content,
		// Multi-value authors join into one display string.
		Author:      strings.Join(nd.Creator, ", "),
		URL:         nd.Link,
		ImageURL:    nd.ImageURL,
		PublishedAt: nd.PubDate,
	}

	if art.Title == "" {
		art.Title = "Untitled"
	}

	if nd.SourceName != "" || nd.SourceID != "" {
		name := nd.SourceName
		if name == "" {
			name = nd.SourceID
		}
		art.Source = &domain.Source{ID: nd.SourceID, Name: name}
	}

	art.EnsureID()
	return art
}
