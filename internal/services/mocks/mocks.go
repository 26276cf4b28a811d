package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"araltech.tech/portfolio/internal/models"
)

// Source is a mock for services.Source.
type Source struct {
	mock.Mock
}

// ListProjects returns the values configured with On("ListProjects").
func (m *Source) ListProjects(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]models.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListCategories returns the values configured with On("ListCategories").
func (m *Source) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]models.Category); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetProject returns the values configured with On("GetProject").
func (m *Source) GetProject(ctx context.Context, id int) (*models.Project, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*models.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
