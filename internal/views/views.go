// Package views renders the portfolio pages as templ components.
//
// Components are written in the .templ files next to this one; run
// `templ generate` after editing them.
package views

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"araltech.tech/portfolio/internal/models"
	"araltech.tech/portfolio/internal/services"
	"araltech.tech/portfolio/internal/theme"
)

// FragmentPath serves the listing region for htmx swaps.
const FragmentPath = "/fragments/projects"

// Localizer provides translated strings for components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns the translation of key, or key itself when loc is nil.
func T(loc Localizer, key string) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key)
}

// Tf formats a translated format string.
func Tf(loc Localizer, format string, args ...any) string {
	if loc == nil {
		return fmt.Sprintf(format, args...)
	}
	return loc.Sprintf(format, args...)
}

// Page provides shared layout context for pages.
type Page struct {
	Title string
	Lang  string
	Theme theme.Theme
	Loc   Localizer
}

// ListingProps carries what the listing region needs to render.
type ListingProps struct {
	Listing  *services.Listing
	ImageURL func(string) string
	Loc      Localizer
}

// DetailProps carries what the project page needs to render.
type DetailProps struct {
	Detail   *services.Detail
	ImageURL func(string) string
	Loc      Localizer
}

// Detail renders a loaded project, or the notice for the other states.
func Detail(props DetailProps) templ.Component {
	d := props.Detail
	switch d.Status() {
	case services.StatusReady:
		return projectDetail(props, d.Project())
	case services.StatusLoading:
		return Notice(props.Loc, d.Status().String(), "Loading...")
	default:
		return Notice(props.Loc, d.Status().String(), d.Message())
	}
}

func pageLang(page Page) string {
	if page.Lang == "" {
		return "en"
	}
	return page.Lang
}

func pageTitle(page Page) string {
	title := T(page.Loc, "Portfolio")
	if page.Title != "" {
		return page.Title + " | " + title
	}
	return title
}

func imageSrc(resolve func(string) string, path string) string {
	if resolve == nil {
		return path
	}
	return resolve(path)
}

func projectPath(id int) string {
	return "/projects/" + strconv.Itoa(id)
}

// categoryLabel translates only the fallback label; names come from the API.
func categoryLabel(loc Localizer, label string) string {
	if label == models.UnknownCategoryLabel {
		return T(loc, label)
	}
	return label
}

func isSelected(l *services.Listing, categoryID string) bool {
	selected, ok := l.Selected()
	return ok && selected == categoryID
}

func hasSelection(l *services.Listing) bool {
	_, ok := l.Selected()
	return ok
}

func selectedCategory(l *services.Listing) string {
	selected, _ := l.Selected()
	return selected
}

// listingURL builds path with an optional category query.
func listingURL(path, categoryID string) string {
	if categoryID == "" {
		return path
	}
	return path + "?" + url.Values{"category": {categoryID}}.Encode()
}
