package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Run("query param wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=pt-BR", nil)
		req.Header.Set("Accept-Language", "en")
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})

		tag, persist := ResolveTag(req)
		if tag != language.BrazilianPortuguese {
			t.Fatalf("expected pt-BR, got %s", tag)
		}
		if !persist {
			t.Fatalf("expected persist to be true")
		}
	})

	t.Run("cookie wins over accept-language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Accept-Language", "pt-BR")
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})

		tag, persist := ResolveTag(req)
		if tag != language.English {
			t.Fatalf("expected en, got %s", tag)
		}
		if persist {
			t.Fatalf("expected persist to be false")
		}
	})

	t.Run("accept-language fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Accept-Language", "pt-BR, en;q=0.9")

		tag, _ := ResolveTag(req)
		if tag != language.BrazilianPortuguese {
			t.Fatalf("expected pt-BR, got %s", tag)
		}
	})

	t.Run("nothing set uses default", func(t *testing.T) {
		tag, persist := ResolveTag(httptest.NewRequest(http.MethodGet, "http://example.com/", nil))
		if tag != Default() || persist {
			t.Fatalf("got (%s, %t), want (%s, false)", tag, persist, Default())
		}
	})
}

func TestResolveTagInvalidQueryFallsBack(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=not-a-lang", nil)
	req.Header.Set("Accept-Language", "pt-BR")

	tag, persist := ResolveTag(req)
	if tag != language.BrazilianPortuguese {
		t.Fatalf("expected pt-BR, got %s", tag)
	}
	if persist {
		t.Fatalf("expected persist to be false")
	}
}

func TestSetLanguageCookie(t *testing.T) {
	SetLanguageCookie(nil, Default())

	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, language.BrazilianPortuguese)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	if cookies[0].Name != LangCookieName || cookies[0].Value != "pt-BR" {
		t.Fatalf("cookie = %s=%s, want %s=pt-BR", cookies[0].Name, cookies[0].Value, LangCookieName)
	}
}

func TestPrinterTranslates(t *testing.T) {
	if got := Printer(language.BrazilianPortuguese).Sprintf("No projects found"); got != "Nenhum projeto encontrado" {
		t.Fatalf("pt-BR = %q", got)
	}
	if got := Printer(language.English).Sprintf("No projects found"); got != "No projects found" {
		t.Fatalf("en = %q", got)
	}
	if got := Printer(language.English).Sprintf("Error: %s", "boom"); got != "Error: boom" {
		t.Fatalf("en with args = %q", got)
	}
}
