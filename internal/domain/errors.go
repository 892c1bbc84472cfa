package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an article is absent from both the
// cross-navigation store and a direct provider lookup.
var ErrNotFound = errors.New("article not found")

// ConfigError indicates a missing or unusable configuration value, most
// importantly an absent API credential. Fatal in the sense that no retry
// path exists; surfaced to the UI as an error state, never a crash.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// AuthError indicates the provider rejected the credential, after the
// header-then-URL fallback sequence has been exhausted.
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("provider rejected credential (status %d)", e.Status)
}

// HTTPError indicates a non-success transport result. Not retried.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("provider returned HTTP %d", e.Status)
}

// ProviderError indicates the payload itself encoded an error status.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return "provider error: " + e.Message
}
