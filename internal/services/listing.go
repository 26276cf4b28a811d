package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	apperrors "araltech.tech/portfolio/internal/errors"
	"araltech.tech/portfolio/internal/models"
)

// PlaceholderCount is the number of skeleton cards shown while loading.
const PlaceholderCount = 8

// MessageListingFailed is the only failure text the listing exposes.
const MessageListingFailed = "Error while getting projects"

// Card is a displayed project with its resolved category label.
type Card struct {
	Project       models.Project `json:"project"`
	CategoryLabel string         `json:"category_label"`
}

// Listing drives the project grid: it loads projects and categories,
// tracks the selected category, and derives the displayed projects.
type Listing struct {
	status     Status
	message    string
	err        error
	projects   []models.Project
	categories []models.Category

	selected    string
	hasSelected bool
}

// NewListing returns a listing in the loading phase with no category selected.
func NewListing() *Listing {
	return &Listing{status: StatusLoading}
}

// Load fetches projects and categories concurrently and leaves the loading
// phase once both have resolved or either has failed. It is a no-op once the
// listing has left the loading phase.
func (l *Listing) Load(ctx context.Context, src Source) error {
	if l.status != StatusLoading {
		return nil
	}

	var (
		projects   []models.Project
		categories []models.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = src.ListProjects(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = src.ListCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		l.status = StatusFailed
		l.message = MessageListingFailed
		l.err = err
		return err
	}

	l.projects = projects
	l.categories = categories
	l.status = StatusReady
	return nil
}

// Status returns the current load phase.
func (l *Listing) Status() Status { return l.status }

// Message returns the user-facing failure message, empty unless failed.
func (l *Listing) Message() string { return l.message }

// Err returns the underlying load failure.
func (l *Listing) Err() error { return l.err }

// Failure returns the load failure as a fetch error carrying the
// user-facing message, or nil unless the listing failed.
func (l *Listing) Failure() error {
	if l.status != StatusFailed {
		return nil
	}
	return &apperrors.Error{Kind: apperrors.KindFetch, Op: "load listing", Message: l.message, Err: l.err}
}

// Categories returns the fetched categories in source order.
func (l *Listing) Categories() []models.Category { return l.categories }

// Placeholders returns how many skeleton cards to render.
func (l *Listing) Placeholders() int {
	if l.status == StatusLoading {
		return PlaceholderCount
	}
	return 0
}

// Select filters the listing to one category. An empty id selects all.
func (l *Listing) Select(categoryID string) {
	if categoryID == "" {
		l.ClearSelection()
		return
	}
	l.selected = categoryID
	l.hasSelected = true
}

// ClearSelection shows every project again.
func (l *Listing) ClearSelection() {
	l.selected = ""
	l.hasSelected = false
}

// Selected returns the selected category id, if any.
func (l *Listing) Selected() (string, bool) {
	return l.selected, l.hasSelected
}

// Displayed returns the projects to show, in source order. It is derived
// on every call from the loaded projects and the current selection.
func (l *Listing) Displayed() []models.Project {
	if l.status != StatusReady {
		return nil
	}
	if !l.hasSelected {
		return l.projects
	}
	out := make([]models.Project, 0, len(l.projects))
	for _, p := range l.projects {
		if p.Category == l.selected {
			out = append(out, p)
		}
	}
	return out
}

// Empty reports a loaded listing whose filtered result has no projects.
func (l *Listing) Empty() bool {
	return l.status == StatusReady && len(l.Displayed()) == 0
}

// Cards pairs each displayed project with its category label.
func (l *Listing) Cards() []Card {
	displayed := l.Displayed()
	cards := make([]Card, 0, len(displayed))
	for _, p := range displayed {
		cards = append(cards, Card{
			Project:       p,
			CategoryLabel: models.CategoryLabel(l.categories, p.Category),
		})
	}
	return cards
}
