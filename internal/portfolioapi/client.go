// Package portfolioapi is the read-only client for the remote portfolio API.
//
// The client issues exactly one GET per call: no retries, no caching, and no
// client-side timeout. Cancellation comes from the caller's context.
package portfolioapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "araltech.tech/portfolio/internal/errors"
	"araltech.tech/portfolio/internal/models"
)

const tracerName = "araltech.tech/portfolio/internal/portfolioapi"

// Client calls the portfolio endpoints under a single base URL.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
	tracer  trace.Tracer
}

// New creates a Client. baseURL is normalized to end with a slash.
func New(baseURL string, client *http.Client, logger *slog.Logger) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ImageURL resolves a project image path against the base URL.
func (c *Client) ImageURL(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + strings.TrimPrefix(path, "/")
}

// ListProjects fetches every project. Entries that fail to parse are skipped.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	const op = "list projects"
	ctx, span := c.tracer.Start(ctx, "portfolioapi.ListProjects")
	defer span.End()

	entries, err := c.getList(ctx, span, op, "portfolio/")
	if err != nil {
		return nil, fail(span, err)
	}

	projects := make([]models.Project, 0, len(entries))
	for i, raw := range entries {
		p, err := models.ParseProject(raw)
		if err != nil {
			c.logger.WarnContext(ctx, "skipping malformed project", "index", i, "error", err)
			continue
		}
		projects = append(projects, p)
	}
	span.SetAttributes(attribute.Int("portfolio.projects", len(projects)))
	return projects, nil
}

// ListCategories fetches every category. Entries that fail to parse are skipped.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "list categories"
	ctx, span := c.tracer.Start(ctx, "portfolioapi.ListCategories")
	defer span.End()

	entries, err := c.getList(ctx, span, op, "portfolio/categories/")
	if err != nil {
		return nil, fail(span, err)
	}

	categories := make([]models.Category, 0, len(entries))
	for i, raw := range entries {
		cat, err := models.ParseCategory(raw)
		if err != nil {
			c.logger.WarnContext(ctx, "skipping malformed category", "index", i, "error", err)
			continue
		}
		categories = append(categories, cat)
	}
	span.SetAttributes(attribute.Int("portfolio.categories", len(categories)))
	return categories, nil
}

// GetProject fetches a single project, including its description.
// A 404 or an empty body yields a not-found error.
func (c *Client) GetProject(ctx context.Context, id int) (*models.Project, error) {
	const op = "get project"
	ctx, span := c.tracer.Start(ctx, "portfolioapi.GetProject",
		trace.WithAttributes(attribute.Int("portfolio.project_id", id)))
	defer span.End()

	body, err := c.get(ctx, span, op, "portfolio/"+strconv.Itoa(id)+"/")
	if err != nil {
		var appErr *apperrors.Error
		if errors.As(err, &appErr) && appErr.StatusCode == http.StatusNotFound {
			err = apperrors.NotFound(op, fmt.Sprintf("project %d not found", id))
		}
		return nil, fail(span, err)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) || bytes.Equal(body, []byte("{}")) {
		return nil, fail(span, apperrors.NotFound(op, fmt.Sprintf("project %d not found", id)))
	}

	p, err := models.ParseProject(body)
	if err != nil {
		return nil, fail(span, err)
	}
	return &p, nil
}

// getList fetches a JSON array and returns its raw entries.
func (c *Client) getList(ctx context.Context, span trace.Span, op, path string) ([]json.RawMessage, error) {
	body, err := c.get(ctx, span, op, path)
	if err != nil {
		return nil, err
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, apperrors.Validation(op, "decode response", err)
	}
	return entries, nil
}

// get issues one GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, span trace.Span, op, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, apperrors.Fetch(op, 0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.Fetch(op, 0, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, apperrors.Fetch(op, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Fetch(op, 0, fmt.Errorf("read body: %w", err))
	}
	return body, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
