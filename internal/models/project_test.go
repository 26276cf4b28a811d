package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "araltech.tech/portfolio/internal/errors"
)

func TestParseProject(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 7,
		"name": "  Eco Tracker ",
		"category": "ai",
		"image": "media/eco.png",
		"link": "https://github.com/araltech/eco",
		"demo_video": "https://youtu.be/abc",
		"description": "Tracks things."
	}`)

	p, err := ParseProject(raw)
	require.NoError(t, err)
	require.Equal(t, Project{
		ID:          7,
		Name:        "Eco Tracker",
		Category:    "ai",
		Image:       "media/eco.png",
		Link:        "https://github.com/araltech/eco",
		DemoVideo:   "https://youtu.be/abc",
		Description: "Tracks things.",
	}, p)
}

func TestParseProjectRejectsMalformedEntries(t *testing.T) {
	cases := map[string]string{
		"not an object": `"hello"`,
		"string id":     `{"id": "7", "name": "x"}`,
		"missing id":    `{"name": "x"}`,
		"zero id":       `{"id": 0, "name": "x"}`,
		"blank name":    `{"id": 3, "name": "   "}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseProject(json.RawMessage(body))
			require.Error(t, err)
			require.True(t, apperrors.Is(err, apperrors.KindValidation), "want validation error, got %v", err)
		})
	}
}

func TestParseProjectDegradesBadLinks(t *testing.T) {
	p, err := ParseProject(json.RawMessage(`{"id": 1, "name": "x", "link": "not a url", "demo_video": "javascript:alert(1)"}`))
	require.NoError(t, err)
	require.Empty(t, p.Link)
	require.Empty(t, p.DemoVideo)
	require.Empty(t, p.Category)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(json.RawMessage(`{"id": "ai", "name": "AI"}`))
	require.NoError(t, err)
	require.Equal(t, Category{ID: "ai", Name: "AI"}, c)

	c, err = ParseCategory(json.RawMessage(`{"id": "web"}`))
	require.NoError(t, err)
	require.Equal(t, "web", c.Name)

	_, err = ParseCategory(json.RawMessage(`{"name": "Orphan"}`))
	require.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestCategoryLabel(t *testing.T) {
	categories := []Category{{ID: "ai", Name: "AI"}, {ID: "web", Name: "Web"}}

	require.Equal(t, "AI", CategoryLabel(categories, "ai"))
	require.Equal(t, UnknownCategoryLabel, CategoryLabel(categories, "mobile"))
	require.Equal(t, UnknownCategoryLabel, CategoryLabel(nil, "ai"))
}
