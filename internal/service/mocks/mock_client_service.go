package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"clienthub/internal/model"
	"clienthub/internal/service"
)

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) List(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockClientService) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientService) Update(ctx context.Context, id string, patch service.ClientPatch) (*model.Client, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientService) UploadLogo(ctx context.Context, id string, r io.Reader, filename, contentType string, size int64) (*model.Client, error) {
	args := m.Called(ctx, id, r, filename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientService) LogoURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockClientService) DeleteLogo(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
