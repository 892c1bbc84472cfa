package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/raymondjoseph02/news-today/internal/domain"
	"github.com/raymondjoseph02/news-today/internal/infra/metrics"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const userAgent = "NewsToday/1.0"

// Client fetches news from one upstream provider. The header credential is
// tried first; a 401/403 triggers exactly one retry with the URL-embedded
// credential. Transient network failures propagate immediately, no retries.
type Client struct {
	name    string
	baseURL string
	country string
	apiKey  string
	client  *http.Client
	adapter domain.Adapter
	cb      *gobreaker.CircuitBreaker
}

func NewClient(name, baseURL, country, apiKey string, timeout time.Duration, adapter domain.Adapter) *Client {
	cbSettings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Trip if we have 3 consecutive failures
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("CircuitBreaker state changed", "name", name, "from", from, "to", to)
		},
	}

	return &Client{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		country: country,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
		adapter: adapter,
		cb:      gobreaker.NewCircuitBreaker(cbSettings),
	}
}

func (c *Client) GetName() string {
	return c.name
}

// Fetch performs one retrieval for the normalized query. With no credential
// configured it fails immediately without touching the network.
func (c *Client) Fetch(ctx context.Context, query domain.NewsQuery) (*domain.NewsResult, error) {
	if c.apiKey == "" {
		return nil, &domain.ConfigError{Reason: "news API key missing, set NEWS_API_KEY"}
	}

	tr := otel.Tracer("news-today")
	ctx, span := tr.Start(ctx, "provider.fetch")
	defer span.End()
	span.SetAttributes(
		attribute.String("provider", c.name),
		attribute.String("mode", string(query.Mode)),
	)

	start := time.Now()
	out, err := c.cb.Execute(func() (interface{}, error) {
		return c.fetchOnce(ctx, query)
	})
	metrics.FetchDuration.WithLabelValues(c.name).Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = &domain.ProviderError{Message: "news provider temporarily unavailable"}
		}
		span.RecordError(err)
		metrics.FetchesTotal.WithLabelValues(c.name, string(query.Mode), "error").Inc()
		return nil, err
	}

	metrics.FetchesTotal.WithLabelValues(c.name, string(query.Mode), "success").Inc()
	return out.(*domain.NewsResult), nil
}

func (c *Client) fetchOnce(ctx context.Context, query domain.NewsQuery) (*domain.NewsResult, error) {
	result, err := c.request(ctx, c.buildURL(query, false), true)

	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		// Header credential rejected; one retry with the key in the URL.
		// The fallback is never promoted to the preferred path.
		slog.Warn("Header credential rejected, retrying with URL credential",
			"provider", c.name, "status", authErr.Status)
		metrics.AuthFallbacks.WithLabelValues(c.name).Inc()
		result, err = c.request(ctx, c.buildURL(query, true), false)
	}
	if err != nil {
		return nil, err
	}

	c.tag(result, query)
	return result, nil
}

func (c *Client) request(ctx context.Context, rawURL string, useHeader bool) (*domain.NewsResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if useHeader {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.name, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("Failed to close response body", "error", err)
		}
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &domain.AuthError{Status: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &domain.HTTPError{Status: resp.StatusCode}
	}

	result, err := c.adapter.Adapt(resp.Body)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// buildURL selects the endpoint for the query mode. The credential is only
// embedded when the header scheme has already been rejected.
func (c *Client) buildURL(query domain.NewsQuery, withKey bool) string {
	v := url.Values{}
	var endpoint string

	switch query.Mode {
	case domain.ModeSearch:
		endpoint = c.baseURL + "/everything"
		v.Set("q", query.SearchTerm)
	default:
		endpoint = c.baseURL + "/top-headlines"
		v.Set("country", c.country)
		if query.Category != "" && query.Category != domain.DefaultCategory {
			v.Set("category", query.Category)
		}
	}

	v.Set("pageSize", strconv.Itoa(query.PageSize))
	if withKey {
		v.Set("apiKey", c.apiKey)
	}

	return endpoint + "?" + v.Encode()
}

// tag stamps the query category onto adapted articles that carry none, so
// the detail view can pick related articles later.
func (c *Client) tag(result *domain.NewsResult, query domain.NewsQuery) {
	for i := range result.Articles {
		if result.Articles[i].Category == "" {
			result.Articles[i].Category = query.Category
		}
	}
}
