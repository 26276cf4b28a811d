package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	apperrors "araltech.tech/portfolio/internal/errors"
	"araltech.tech/portfolio/internal/i18n"
	"araltech.tech/portfolio/internal/services"
	"araltech.tech/portfolio/internal/theme"
	"araltech.tech/portfolio/internal/views"
)

const messageInvalidProjectID = "Invalid project id"

const (
	htmxRequestHeader        = "HX-Request"
	htmxHistoryRestoreHeader = "HX-History-Restore-Request"
)

// PageHandler serves the HTML pages
type PageHandler struct {
	backend Backend
	logger  *slog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(backend Backend, logger *slog.Logger) *PageHandler {
	return &PageHandler{backend: backend, logger: logger}
}

// Index handles GET / - renders the page shell with the listing still loading.
// htmx requests from the category buttons get the loaded region only.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Vary", htmxRequestHeader)
	if isHTMXRequest(r) && !isHistoryRestore(r) {
		h.ListingFragment(w, r)
		return
	}

	page := h.page(w, r, "")
	listing := services.NewListing()
	listing.Select(r.URL.Query().Get("category"))

	h.render(w, r, http.StatusOK, views.Layout(page, views.ListingRegion(views.ListingProps{
		Listing:  listing,
		ImageURL: h.backend.ImageURL,
		Loc:      page.Loc,
	})))
}

// ListingFragment handles GET /fragments/projects - the loaded listing region
func (h *PageHandler) ListingFragment(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r, "")
	listing := services.NewListing()
	if err := listing.Load(r.Context(), h.backend); err != nil {
		h.logger.WarnContext(r.Context(), "load listing", "error", err)
	}
	listing.Select(r.URL.Query().Get("category"))

	// Always 200: htmx only swaps successful responses, and the region
	// carries its own error state.
	h.render(w, r, http.StatusOK, views.ListingRegion(views.ListingProps{
		Listing:  listing,
		ImageURL: h.backend.ImageURL,
		Loc:      page.Loc,
	}))
}

// Project handles GET /projects/{id}
func (h *PageHandler) Project(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r, "")

	id, err := services.ParseProjectID(chi.URLParam(r, "id"))
	if err != nil {
		page.Title = views.T(page.Loc, messageInvalidProjectID)
		h.render(w, r, apperrors.HTTPStatus(err), views.Layout(page, views.Notice(page.Loc, "invalid", messageInvalidProjectID)))
		return
	}

	detail := services.NewDetail()
	if err := detail.Load(r.Context(), h.backend, id); err != nil {
		h.logger.WarnContext(r.Context(), "load project", "id", id, "status", detail.Status().String(), "error", err)
	}

	if detail.Status() == services.StatusReady {
		page.Title = detail.Project().Name
	} else {
		page.Title = views.T(page.Loc, detail.Message())
	}

	h.render(w, r, apperrors.HTTPStatus(detail.Failure()), views.Layout(page, views.Detail(views.DetailProps{
		Detail:   detail,
		ImageURL: h.backend.ImageURL,
		Loc:      page.Loc,
	})))
}

// ToggleTheme handles POST /theme - flips the theme cookie and goes back
func (h *PageHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	next := theme.FromRequest(r).Toggle()
	theme.SetCookie(w, next)
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

// page resolves language and theme for a request.
func (h *PageHandler) page(w http.ResponseWriter, r *http.Request, title string) views.Page {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return views.Page{
		Title: title,
		Lang:  tag.String(),
		Theme: theme.FromRequest(r),
		Loc:   i18n.Printer(tag),
	}
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			h.logger.ErrorContext(r.Context(), "render page", "path", r.URL.Path, "error", err)
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

// returnPath picks a same-site path from the Referer, defaulting to "/".
func returnPath(r *http.Request) string {
	ref := strings.TrimSpace(r.Referer())
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != r.Host) {
		return "/"
	}
	path := u.EscapedPath()
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return path
}

// isHTMXRequest reports whether the request was initiated by htmx.
func isHTMXRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(htmxRequestHeader), "true")
}

// isHistoryRestore reports an htmx history cache miss, which needs the full page.
func isHistoryRestore(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(htmxHistoryRestoreHeader), "true")
}
