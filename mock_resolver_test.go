package gateway

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockResolver struct {
	mock.Mock
}

func NewMockResolver() *MockResolver {
	return &MockResolver{}
}

func (m *MockResolver) Resolve(ctx context.Context, offerID, providerAddress string) (*Configuration, error) {
	args := m.Called(ctx, offerID, providerAddress)

	if cfg := args.Get(0); cfg != nil {
		return cfg.(*Configuration), args.Error(1)
	}

	return nil, args.Error(1)
}
