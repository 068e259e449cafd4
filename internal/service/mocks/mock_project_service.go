package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"clienthub/internal/model"
	"clienthub/internal/service"
)

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context, clientID string) ([]model.Project, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, id string, patch service.ProjectPatch) (*model.Project, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
