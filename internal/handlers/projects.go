package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "araltech.tech/portfolio/internal/errors"
	"araltech.tech/portfolio/internal/models"
	"araltech.tech/portfolio/internal/services"
)

// ProjectHandler handles the JSON project endpoints
type ProjectHandler struct {
	backend Backend
	logger  *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(backend Backend, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{backend: backend, logger: logger}
}

type projectResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
	ImageURL      string `json:"image_url,omitempty"`
	Link          string `json:"link,omitempty"`
	DemoVideo     string `json:"demo_video,omitempty"`
	Description   string `json:"description,omitempty"`
}

type listingResponse struct {
	Status     services.Status   `json:"status"`
	Selected   string            `json:"selected,omitempty"`
	Empty      bool              `json:"empty"`
	Message    string            `json:"message,omitempty"`
	Categories []models.Category `json:"categories"`
	Projects   []projectResponse `json:"projects"`
}

type detailResponse struct {
	Status                services.Status `json:"status"`
	Project               projectResponse `json:"project"`
	CategoriesUnavailable bool            `json:"categories_unavailable,omitempty"`
}

func (h *ProjectHandler) newProjectResponse(p models.Project, label string) projectResponse {
	return projectResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		CategoryLabel: label,
		ImageURL:      h.backend.ImageURL(p.Image),
		Link:          p.Link,
		DemoVideo:     p.DemoVideo,
		Description:   p.Description,
	}
}

// ListProjects handles GET /api/projects?category={id}
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	listing := services.NewListing()
	if err := listing.Load(r.Context(), h.backend); err != nil {
		h.logger.WarnContext(r.Context(), "load listing", "error", err)
		respondJSON(w, apperrors.HTTPStatus(listing.Failure()), listingResponse{
			Status:     listing.Status(),
			Message:    listing.Message(),
			Categories: []models.Category{},
			Projects:   []projectResponse{},
		})
		return
	}
	listing.Select(r.URL.Query().Get("category"))

	selected, _ := listing.Selected()
	resp := listingResponse{
		Status:     listing.Status(),
		Selected:   selected,
		Empty:      listing.Empty(),
		Categories: listing.Categories(),
		Projects:   []projectResponse{},
	}
	if resp.Categories == nil {
		resp.Categories = []models.Category{}
	}
	for _, card := range listing.Cards() {
		resp.Projects = append(resp.Projects, h.newProjectResponse(card.Project, card.CategoryLabel))
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := services.ParseProjectID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperrors.HTTPStatus(err), messageInvalidProjectID)
		return
	}

	detail := services.NewDetail()
	if err := detail.Load(r.Context(), h.backend, id); err != nil {
		h.logger.WarnContext(r.Context(), "load project", "id", id, "error", err)
	}

	if failure := detail.Failure(); failure != nil {
		respondError(w, apperrors.HTTPStatus(failure), detail.Message())
		return
	}
	respondJSON(w, http.StatusOK, detailResponse{
		Status:                detail.Status(),
		Project:               h.newProjectResponse(*detail.Project(), detail.CategoryLabel()),
		CategoriesUnavailable: detail.CategoriesFailed(),
	})
}

// ListCategories handles GET /api/categories
func (h *ProjectHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.backend.ListCategories(r.Context())
	if err != nil {
		h.logger.WarnContext(r.Context(), "list categories", "error", err)
		failure := &apperrors.Error{Kind: apperrors.KindFetch, Op: "list categories", Message: services.MessageCategoriesFailed, Err: err}
		respondError(w, apperrors.HTTPStatus(failure), failure.Message)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	respondJSON(w, http.StatusOK, categories)
}
