package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"clienthub/internal/service"
)

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context) (*service.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Summary), args.Error(1)
}
