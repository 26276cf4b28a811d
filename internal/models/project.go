package models

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	apperrors "araltech.tech/portfolio/internal/errors"
)

// UnknownCategoryLabel is shown when a project's category does not resolve.
const UnknownCategoryLabel = "Unknown"

// Project represents a portfolio project
type Project struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Link        string `json:"link"`
	DemoVideo   string `json:"demo_video"`
	Description string `json:"description,omitempty"`
}

// Category represents a named grouping of projects
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// projectPayload is the loose wire shape; every field is optional until parsed.
type projectPayload struct {
	ID          *int    `json:"id"`
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
	Link        *string `json:"link"`
	DemoVideo   *string `json:"demo_video"`
	Description *string `json:"description"`
}

// ParseProject parses one project entry from the API.
// Entries without a positive id or a name are rejected; malformed links are
// dropped instead of failing the whole entry.
func ParseProject(raw json.RawMessage) (Project, error) {
	var payload projectPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Project{}, apperrors.Validation("parse project", "malformed project", err)
	}
	if payload.ID == nil || *payload.ID <= 0 {
		return Project{}, apperrors.Validation("parse project", "missing or invalid id", nil)
	}
	name := strings.TrimSpace(deref(payload.Name))
	if name == "" {
		return Project{}, apperrors.Validation("parse project", fmt.Sprintf("project %d has no name", *payload.ID), nil)
	}

	return Project{
		ID:          *payload.ID,
		Name:        name,
		Category:    strings.TrimSpace(deref(payload.Category)),
		Image:       strings.TrimSpace(deref(payload.Image)),
		Link:        sanitizeURL(deref(payload.Link)),
		DemoVideo:   sanitizeURL(deref(payload.DemoVideo)),
		Description: deref(payload.Description),
	}, nil
}

// ParseCategory parses one category entry from the API.
func ParseCategory(raw json.RawMessage) (Category, error) {
	var payload struct {
		ID   *string `json:"id"`
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Category{}, apperrors.Validation("parse category", "malformed category", err)
	}
	id := strings.TrimSpace(deref(payload.ID))
	if id == "" {
		return Category{}, apperrors.Validation("parse category", "missing id", nil)
	}
	name := strings.TrimSpace(deref(payload.Name))
	if name == "" {
		name = id
	}
	return Category{ID: id, Name: name}, nil
}

// CategoryLabel returns the name of the category with the given id, or
// UnknownCategoryLabel when none matches.
func CategoryLabel(categories []Category, id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return UnknownCategoryLabel
}

// sanitizeURL keeps absolute http(s) URLs and blanks anything else.
func sanitizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return raw
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
