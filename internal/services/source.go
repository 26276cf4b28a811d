package services

import (
	"context"

	"araltech.tech/portfolio/internal/models"
)

// Source provides portfolio data. portfolioapi.Client satisfies it.
type Source interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetProject(ctx context.Context, id int) (*models.Project, error)
}

// Status is the load phase of a view-model.
type Status int

const (
	// StatusLoading is the initial phase, before any fetch has settled.
	StatusLoading Status = iota
	// StatusReady means the data loaded and can be rendered.
	StatusReady
	// StatusFailed means a required fetch failed.
	StatusFailed
	// StatusNotFound means the requested project does not exist.
	StatusNotFound
)

// String returns the lowercase status name used in templates and JSON.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	case StatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status as its name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
