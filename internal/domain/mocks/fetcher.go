package mocks

import (
	"context"

	"github.com/raymondjoseph02/news-today/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, query domain.NewsQuery) (*domain.NewsResult, error) {
	args := m.Called(ctx, query)

	// Handle nil result
	var result *domain.NewsResult
	if args.Get(0) != nil {
		result = args.Get(0).(*domain.NewsResult)
	}

	return result, args.Error(1)
}
