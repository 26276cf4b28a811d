package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("connection refused")
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain error", err: cause, want: KindUnknown},
		{name: "fetch", err: Fetch("list projects", 0, cause), want: KindFetch},
		{name: "wrapped not found", err: fmt.Errorf("load: %w", NotFound("get project", "project 42 not found")), want: KindNotFound},
		{name: "validation", err: Validation("parse id", "not a number", nil), want: KindValidation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Fatalf("KindOf() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: http.StatusOK},
		{err: Validation("parse id", "bad", nil), want: http.StatusBadRequest},
		{err: NotFound("get project", "missing"), want: http.StatusNotFound},
		{err: Fetch("list projects", http.StatusInternalServerError, nil), want: http.StatusBadGateway},
		{err: stderrors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("dial tcp: timeout")
	err := Fetch("list categories", 0, cause)
	if got, want := err.Error(), "list categories: request failed: dial tcp: timeout"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(err, cause) {
		t.Fatalf("expected errors.Is to reach the cause")
	}

	status := Fetch("list projects", http.StatusServiceUnavailable, nil)
	if got, want := status.Error(), "list projects: unexpected status 503 Service Unavailable"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestIs(t *testing.T) {
	t.Parallel()

	if Is(nil, KindFetch) {
		t.Fatalf("Is(nil) = true, want false")
	}
	if !Is(NotFound("get project", "missing"), KindNotFound) {
		t.Fatalf("Is(NotFound, KindNotFound) = false, want true")
	}
	if Is(NotFound("get project", "missing"), KindFetch) {
		t.Fatalf("Is(NotFound, KindFetch) = true, want false")
	}
}
