package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	apperrors "araltech.tech/portfolio/internal/errors"
	"araltech.tech/portfolio/internal/models"
)

const (
	// MessageProjectFailed is shown when the project fetch fails.
	MessageProjectFailed = "Error while fetching project"
	// MessageCategoriesFailed is appended when the category fetch fails too.
	MessageCategoriesFailed = "Error while fetching categories"
	// MessageProjectNotFound is shown when the project does not exist.
	MessageProjectNotFound = "Project not found"
)

// ParseProjectID parses a route identifier into a project id.
func ParseProjectID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Validation("parse project id", "project id must be a number", err)
	}
	if id <= 0 {
		return 0, apperrors.Validation("parse project id", "project id must be positive", nil)
	}
	return id, nil
}

// Detail drives a single project page. The project and the category list
// are fetched independently; a category failure alone only degrades the
// category label.
type Detail struct {
	status     Status
	message    string
	project    *models.Project
	categories []models.Category

	projectErr    error
	categoriesErr error
}

// NewDetail returns a detail view in the loading phase.
func NewDetail() *Detail {
	return &Detail{status: StatusLoading}
}

// Load fetches the project and the categories concurrently, then settles the
// status once both have been attempted.
func (d *Detail) Load(ctx context.Context, src Source, id int) error {
	if d.status != StatusLoading {
		return nil
	}

	var g errgroup.Group
	g.Go(func() error {
		d.project, d.projectErr = src.GetProject(ctx, id)
		return nil
	})
	g.Go(func() error {
		d.categories, d.categoriesErr = src.ListCategories(ctx)
		return nil
	})
	_ = g.Wait()

	switch {
	case d.projectErr != nil && !apperrors.Is(d.projectErr, apperrors.KindNotFound):
		d.status = StatusFailed
		d.message = MessageProjectFailed
		if d.categoriesErr != nil {
			d.message += "; " + MessageCategoriesFailed
		}
	case d.projectErr != nil || d.project == nil:
		d.status = StatusNotFound
		d.message = MessageProjectNotFound
		d.project = nil
	default:
		d.status = StatusReady
	}
	return d.Err()
}

// Status returns the current load phase.
func (d *Detail) Status() Status { return d.status }

// Message returns the user-facing message for failed and not-found states.
func (d *Detail) Message() string { return d.message }

// Project returns the loaded project, nil unless ready.
func (d *Detail) Project() *models.Project { return d.project }

// CategoriesFailed reports whether the category list could not be fetched.
func (d *Detail) CategoriesFailed() bool { return d.categoriesErr != nil }

// CategoryLabel returns the project's category name or "Unknown".
func (d *Detail) CategoryLabel() string {
	if d.project == nil {
		return models.UnknownCategoryLabel
	}
	return models.CategoryLabel(d.categories, d.project.Category)
}

// Failure returns the error that decided a failed or not-found state, typed
// so it maps onto a response status. It is nil while loading and when ready.
func (d *Detail) Failure() error {
	switch d.status {
	case StatusFailed:
		return &apperrors.Error{Kind: apperrors.KindFetch, Op: "load project", Message: d.message, Err: d.Err()}
	case StatusNotFound:
		return &apperrors.Error{Kind: apperrors.KindNotFound, Op: "load project", Message: d.message, Err: d.projectErr}
	default:
		return nil
	}
}

// Err joins the failures of both fetches.
func (d *Detail) Err() error {
	return errors.Join(d.projectErr, d.categoriesErr)
}
