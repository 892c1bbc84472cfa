package adapter

import (
	"fmt"

	"github.com/raymondjoseph02/news-today/internal/domain"
)

// GetAdapter returns the adapter for a provider shape by name.
// This acts as a factory/registry.
func GetAdapter(name string) (domain.Adapter, error) {
	switch name {
	case NewsAPIName:
		return NewNewsAPIAdapter(), nil
	case NewsDataName:
		return NewNewsDataAdapter(), nil
	default:
		return nil, fmt.Errorf("adapter not found: %s", name)
	}
}
