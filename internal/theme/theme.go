// Package theme reads and persists the visitor's light/dark display flag.
package theme

import (
	"net/http"
	"strings"
	"time"
)

// CookieName stores the selected theme.
const CookieName = "portfolio_theme"

// Theme is a display-only color scheme.
type Theme string

const (
	// Light is the default theme.
	Light Theme = "light"
	// Dark is the dark color scheme.
	Dark Theme = "dark"
)

// Parse returns the theme named by value, defaulting to Light.
func Parse(value string) Theme {
	if strings.EqualFold(strings.TrimSpace(value), string(Dark)) {
		return Dark
	}
	return Light
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == Dark
}

// FromRequest reads the theme cookie.
func FromRequest(r *http.Request) Theme {
	if r == nil {
		return Light
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Light
	}
	return Parse(cookie.Value)
}

// SetCookie persists t on the response.
func SetCookie(w http.ResponseWriter, t Theme) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(t),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
