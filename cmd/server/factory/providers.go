package factory

import (
	"errors"
	"log/slog"

	"github.com/raymondjoseph02/news-today/internal/domain"
	"github.com/raymondjoseph02/news-today/internal/infra/adapter"
	"github.com/raymondjoseph02/news-today/internal/infra/provider"
	"github.com/raymondjoseph02/news-today/pkg/config"
)

// NewFetcher builds the upstream fetch client from the first configured
// source with a known adapter. Sources with unknown adapter names are
// skipped with a warning.
func NewFetcher(cfg *config.Config) (domain.Fetcher, error) {
	if len(cfg.Sources) == 0 {
		return nil, errors.New("no sources configured")
	}

	for _, source := range cfg.Sources {
		ad, err := adapter.GetAdapter(source.Adapter)
		if err != nil {
			slog.Warn("Skipping source", "source", source.Name, "error", err)
			continue
		}

		client := provider.NewClient(source.Name, source.BaseURL, cfg.Country, cfg.APIKey, cfg.RequestTimeout, ad)
		slog.Info("Registered provider", "provider", source.Name, "adapter", source.Adapter)
		return client, nil
	}

	return nil, errors.New("no valid sources configured")
}
