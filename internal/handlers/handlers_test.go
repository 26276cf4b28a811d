package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"araltech.tech/portfolio/internal/config"
	"araltech.tech/portfolio/internal/portfolioapi"
	"araltech.tech/portfolio/internal/theme"
)

const (
	projectsJSON = `[
		{"id": 1, "name": "Eco", "category": "ai", "image": "media/eco.png", "link": "https://github.com/a/eco", "demo_video": "https://youtu.be/1"},
		{"id": 2, "name": "Site", "category": "web", "image": "media/site.png", "link": "https://github.com/a/site", "demo_video": "https://youtu.be/2"},
		{"id": 3, "name": "Bot", "category": "ai", "image": "media/bot.png", "link": "https://github.com/a/bot", "demo_video": "https://youtu.be/3"}
	]`
	categoriesJSON = `[{"id": "ai", "name": "AI"}, {"id": "games", "name": "Games"}]`
	projectJSON    = `{"id": 2, "name": "Site", "category": "web", "image": "media/site.png", "link": "https://github.com/a/site", "demo_video": "https://youtu.be/2", "description": "A website."}`
)

// upstream fakes the remote portfolio API.
type upstream struct {
	hits           atomic.Int32
	projectsStatus int
	categoryStatus int
	projects       string
	project        string
}

func (u *upstream) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /portfolio/{$}", func(w http.ResponseWriter, r *http.Request) {
		u.hits.Add(1)
		if u.projectsStatus != 0 {
			http.Error(w, "boom", u.projectsStatus)
			return
		}
		body := u.projects
		if body == "" {
			body = projectsJSON
		}
		_, _ = io.WriteString(w, body)
	})
	mux.HandleFunc("GET /portfolio/categories/{$}", func(w http.ResponseWriter, r *http.Request) {
		u.hits.Add(1)
		if u.categoryStatus != 0 {
			http.Error(w, "boom", u.categoryStatus)
			return
		}
		_, _ = io.WriteString(w, categoriesJSON)
	})
	mux.HandleFunc("GET /portfolio/{id}/{$}", func(w http.ResponseWriter, r *http.Request) {
		u.hits.Add(1)
		if r.PathValue("id") != "2" {
			http.NotFound(w, r)
			return
		}
		if u.projectsStatus != 0 {
			http.Error(w, "boom", u.projectsStatus)
			return
		}
		body := u.project
		if body == "" {
			body = projectJSON
		}
		_, _ = io.WriteString(w, body)
	})
	return mux
}

func newTestServer(t *testing.T, up *upstream) *httptest.Server {
	t.Helper()
	api := httptest.NewServer(up.handler())
	t.Cleanup(api.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := portfolioapi.New(api.URL, api.Client(), logger)

	cfg := config.Default()
	cfg.StaticDir = t.TempDir()
	srv := httptest.NewServer(SetupRoutes(cfg, client, logger))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string, header map[string]string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	client := srv.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestIndexRendersLoadingShell(t *testing.T) {
	up := &upstream{}
	srv := newTestServer(t, up)

	resp, body := get(t, srv, "/?category=ai", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 8, strings.Count(body, `data-placeholder="true"`))
	assert.Contains(t, body, `hx-get="/fragments/projects?category=ai"`)
	assert.Contains(t, body, `data-status="loading"`)
	assert.Equal(t, int32(0), up.hits.Load(), "shell must not call upstream")
}

func TestListingFragment(t *testing.T) {
	srv := newTestServer(t, &upstream{})

	resp, body := get(t, srv, "/fragments/projects", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `data-status="ready"`)
	assert.NotContains(t, body, `data-placeholder`)
	assert.Equal(t, 3, strings.Count(body, `class="card"`))
	assert.Contains(t, body, `<span class="card-category">Unknown</span>`)

	_, body = get(t, srv, "/fragments/projects?category=ai", nil)
	assert.Equal(t, 2, strings.Count(body, `class="card"`))
	assert.Less(t, strings.Index(body, "Eco"), strings.Index(body, "Bot"))
	assert.NotContains(t, body, "Site")

	_, body = get(t, srv, "/fragments/projects?category=games", nil)
	assert.Contains(t, body, `data-empty="true"`)
	assert.NotContains(t, body, `data-error`)
}

func TestIndexServesRegionToHTMX(t *testing.T) {
	srv := newTestServer(t, &upstream{})

	resp, body := get(t, srv, "/?category=ai", map[string]string{"HX-Request": "true"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Values("Vary"), "HX-Request")
	assert.NotContains(t, body, "<html")
	assert.True(t, strings.HasPrefix(body, `<section id="listing"`), body)
	assert.Equal(t, 2, strings.Count(body, `class="card"`))

	_, body = get(t, srv, "/?category=ai", map[string]string{
		"HX-Request":                 "true",
		"HX-History-Restore-Request": "true",
	})
	assert.Contains(t, body, "<html")
	assert.Equal(t, 8, strings.Count(body, `data-placeholder="true"`))
}

func TestListingFragmentFailure(t *testing.T) {
	srv := newTestServer(t, &upstream{categoryStatus: http.StatusInternalServerError})

	resp, body := get(t, srv, "/fragments/projects", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `data-status="failed"`)
	assert.Contains(t, body, "Error: Error while getting projects")
	assert.NotContains(t, body, `class="card"`)
}

func TestListingFragmentTranslated(t *testing.T) {
	srv := newTestServer(t, &upstream{projects: `[]`})

	resp, body := get(t, srv, "/fragments/projects?lang=pt-BR", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Nenhum projeto encontrado")

	var langCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "portfolio_lang" {
			langCookie = c
		}
	}
	require.NotNil(t, langCookie)
	assert.Equal(t, "pt-BR", langCookie.Value)
}

func TestProjectPage(t *testing.T) {
	srv := newTestServer(t, &upstream{})

	resp, body := get(t, srv, "/projects/2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<title>Site | Portfolio</title>")
	assert.Contains(t, body, "A website.")
	assert.Contains(t, body, "Unknown")
	assert.Contains(t, body, `href="https://github.com/a/site"`)
}

func TestProjectPageCategoriesUnavailable(t *testing.T) {
	srv := newTestServer(t, &upstream{categoryStatus: http.StatusServiceUnavailable})

	resp, body := get(t, srv, "/projects/2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `data-status="ready"`)
	assert.Contains(t, body, "Unknown")
}

func TestProjectPageNotFound(t *testing.T) {
	srv := newTestServer(t, &upstream{})

	resp, body := get(t, srv, "/projects/99", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Project not found")
}

func TestProjectPageFailed(t *testing.T) {
	srv := newTestServer(t, &upstream{projectsStatus: http.StatusInternalServerError, categoryStatus: http.StatusInternalServerError})

	resp, body := get(t, srv, "/projects/2", nil)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, "Error while fetching project; Error while fetching categories")
}

func TestProjectPageInvalidID(t *testing.T) {
	up := &upstream{}
	srv := newTestServer(t, up)

	for _, path := range []string{"/projects/abc", "/projects/0", "/projects/-4"} {
		resp, body := get(t, srv, path, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Contains(t, body, "Invalid project id", path)
	}
	assert.Equal(t, int32(0), up.hits.Load(), "invalid ids must not reach upstream")
}

func TestToggleTheme(t *testing.T) {
	srv := newTestServer(t, &upstream{})
	client := srv.Client()
	client.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/theme", nil)
	require.NoError(t, err)
	req.Header.Set("Referer", srv.URL+"/projects/2?lang=en")
	req.AddCookie(&http.Cookie{Name: theme.CookieName, Value: string(theme.Light)})

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/projects/2?lang=en", resp.Header.Get("Location"))
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, theme.CookieName, cookies[0].Name)
	assert.Equal(t, string(theme.Dark), cookies[0].Value)

	_, body := get(t, srv, "/", map[string]string{"Cookie": theme.CookieName + "=dark"})
	assert.Contains(t, body, `data-theme="dark"`)
	assert.Contains(t, body, "Switch to light theme")
}

func TestReturnPath(t *testing.T) {
	tests := []struct {
		referer string
		want    string
	}{
		{"", "/"},
		{"http://example.com/projects/1", "/projects/1"},
		{"http://evil.test/steal", "/"},
		{"/projects/3?category=ai", "/projects/3?category=ai"},
		{"//evil.test/x", "/"},
		{"not a url%", "/"},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodPost, "http://example.com/theme", nil)
		if tt.referer != "" {
			r.Header.Set("Referer", tt.referer)
		}
		assert.Equal(t, tt.want, returnPath(r), "referer %q", tt.referer)
	}
}

func TestAPIListProjects(t *testing.T) {
	srv := newTestServer(t, &upstream{})

	resp, body := get(t, srv, "/api/projects?category=ai", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got struct {
		Selected   string            `json:"selected"`
		Empty      bool              `json:"empty"`
		Categories []json.RawMessage `json:"categories"`
		Projects   []projectResponse `json:"projects"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "ai", got.Selected)
	assert.False(t, got.Empty)
	require.Len(t, got.Projects, 2)
	assert.Equal(t, "Eco", got.Projects[0].Name)
	assert.Equal(t, "AI", got.Projects[0].CategoryLabel)
	assert.True(t, strings.HasSuffix(got.Projects[0].ImageURL, "/media/eco.png"))
	assert.Len(t, got.Categories, 2)
	assert.Contains(t, body, `"status":"ready"`)
}

func TestAPIListProjectsFailure(t *testing.T) {
	srv := newTestServer(t, &upstream{projectsStatus: http.StatusInternalServerError})

	resp, body := get(t, srv, "/api/projects", nil)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, `"status":"failed"`)
	assert.Contains(t, body, `"message":"Error while getting projects"`)
}

func TestAPIUpstreamPayloadErrorsAreBadGateway(t *testing.T) {
	srv := newTestServer(t, &upstream{projects: `{"results": []}`, project: `{"id": "two"}`})

	resp, body := get(t, srv, "/api/projects", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, `"message":"Error while getting projects"`)

	resp, body = get(t, srv, "/api/projects/2", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, "Error while fetching project")

	resp, _ = get(t, srv, "/projects/2", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestAPIGetProject(t *testing.T) {
	srv := newTestServer(t, &upstream{})

	resp, body := get(t, srv, "/api/projects/2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got struct {
		Project               projectResponse `json:"project"`
		CategoriesUnavailable bool            `json:"categories_unavailable"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "Site", got.Project.Name)
	assert.Equal(t, "Unknown", got.Project.CategoryLabel)
	assert.Equal(t, "A website.", got.Project.Description)
	assert.False(t, got.CategoriesUnavailable)

	resp, _ = get(t, srv, "/api/projects/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = get(t, srv, "/api/projects/x", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPICategoriesAndHealth(t *testing.T) {
	srv := newTestServer(t, &upstream{})

	resp, body := get(t, srv, "/api/categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, categoriesJSON, body)

	resp, body = get(t, srv, "/api/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	srv = newTestServer(t, &upstream{categoryStatus: http.StatusInternalServerError})
	resp, _ = get(t, srv, "/api/categories", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t, &upstream{})

	resp, _ := get(t, srv, "/api/health", map[string]string{"X-Request-ID": "abc-123"})
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}
