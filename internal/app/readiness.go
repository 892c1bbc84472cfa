package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/raymondjoseph02/news-today/pkg/config"
)

// ReadinessProbe checks that the configured upstream sources answer at all.
// An unreachable provider is logged but never fatal: upstream being down is
// a runtime error state the UI degrades into, not a startup failure.
type ReadinessProbe struct {
	sources  []config.SourceConfig
	client   *http.Client
	attempts int
}

func NewReadinessProbe(sources []config.SourceConfig) *ReadinessProbe {
	return &ReadinessProbe{
		sources:  sources,
		client:   &http.Client{Timeout: 3 * time.Second},
		attempts: 3,
	}
}

func (p *ReadinessProbe) Check(ctx context.Context) {
	for _, src := range p.sources {
		if p.reachable(ctx, src.BaseURL) {
			slog.Info("Upstream source reachable", "source", src.Name)
			continue
		}
		slog.Warn("Upstream source unreachable, continuing anyway", "source", src.Name, "url", src.BaseURL)
	}
}

func (p *ReadinessProbe) reachable(ctx context.Context, baseURL string) bool {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for i := 0; i < p.attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, baseURL, nil)
		if err != nil {
			return false
		}
		resp, err := p.client.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			// Any HTTP answer counts: auth errors still mean the host is up.
			return true
		}

		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
	}
	return false
}
