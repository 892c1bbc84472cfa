package adapter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/raymondjoseph02/news-today/internal/domain"
)

const NewsAPIName = "newsapi"

type newsAPISource struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

type newsAPIArticle struct {
	Source      newsAPISource `json:"source"`
	Author      string        `json:"author"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage"`
	PublishedAt string        `json:"publishedAt"`
	Content     string        `json:"content"`
}

type newsAPIEnvelope struct {
	Status       string           `json:"status"`
	Code         string           `json:"code"`
	Message      string           `json:"message"`
	TotalResults int              `json:"totalResults"`
	Articles     []newsAPIArticle `json:"articles"`
}

// NewsAPIAdapter maps the NewsAPI.org response shape (top-level "articles"
// array) into the internal result format.
type NewsAPIAdapter struct{}

func NewNewsAPIAdapter() *NewsAPIAdapter {
	return &NewsAPIAdapter{}
}

func (a *NewsAPIAdapter) Adapt(reader io.Reader) (*domain.NewsResult, error) {
	var env newsAPIEnvelope
	if err := json.NewDecoder(reader).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode newsapi response: %w", err)
	}

	if env.Status == "error" {
		msg := env.Message
		if msg == "" {
			msg = env.Code
		}
		if msg == "" {
			msg = "unspecified provider error"
		}
		return nil, &domain.ProviderError{Message: msg}
	}

	articles := make([]domain.Article, 0, len(env.Articles))
	for _, na := range env.Articles {
		articles = append(articles, a.normalize(na))
	}

	status := env.Status
	if status == "" {
		status = "ok"
	}
	total := env.TotalResults
	if total == 0 {
		total = len(articles)
	}

	return &domain.NewsResult{
		Status:       status,
		TotalResults: total,
		Articles:     articles,
	}, nil
}

func (a *NewsAPIAdapter) normalize(na newsAPIArticle) domain.Article {
	art := domain.Article{
		Title:       na.Title,
		Description: na.Description,
		Content:     na.Content,
		Author:      na.Author,
		URL:         na.URL,
		ImageURL:    na.URLToImage,
		PublishedAt: na.PublishedAt,
	}

	// Missing title renders as "Untitled" rather than dropping the entry.
	if art.Title == "" {
		art.Title = "Untitled"
	}

	if na.Source.Name != "" {
		src := &domain.Source{Name: na.Source.Name}
		if na.Source.ID != nil {
			src.ID = *na.Source.ID
		}
		art.Source = src
	}

	art.EnsureID()
	return art
}
