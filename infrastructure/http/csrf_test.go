package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"savor/infrastructure/session"
)

func csrfProtected(t *testing.T) (http.Handler, *bool) {
	t.Helper()
	reached := false
	s := &Server{}
	handler := s.CSRFMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))
	return handler, &reached
}

func TestCSRFMiddlewareLetsSafeMethodsThrough(t *testing.T) {
	handler, reached := csrfProtected(t)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if !*reached {
		t.Fatal("GET must pass without a token")
	}
	if len(w.Result().Cookies()) != 1 || w.Result().Cookies()[0].Name != session.CSRFCookieName {
		t.Fatal("a missing token cookie must be issued on the way through")
	}
}

func TestCSRFMiddlewareRejectsPostWithoutToken(t *testing.T) {
	handler, reached := csrfProtected(t)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	if *reached {
		t.Fatal("POST without token must not reach the handler")
	}
	if w.Code != http.StatusForbidden {
		t.Fatalf("status %d", w.Code)
	}
}

func TestCSRFMiddlewareAcceptsHeaderToken(t *testing.T) {
	for _, header := range []string{"X-CSRFToken", "X-CSRF-Token"} {
		handler, reached := csrfProtected(t)

		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.AddCookie(&http.Cookie{Name: session.CSRFCookieName, Value: "tok123"})
		r.Header.Set(header, "tok123")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		if !*reached {
			t.Fatalf("%s token must be accepted", header)
		}
	}
}

func TestCSRFMiddlewareAcceptsFormToken(t *testing.T) {
	handler, reached := csrfProtected(t)

	form := url.Values{"_csrf": {"tok123"}}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.AddCookie(&http.Cookie{Name: session.CSRFCookieName, Value: "tok123"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if !*reached {
		t.Fatal("_csrf form field must be accepted")
	}
}

func TestCSRFMiddlewareRejectsMismatchedToken(t *testing.T) {
	handler, reached := csrfProtected(t)

	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.AddCookie(&http.Cookie{Name: session.CSRFCookieName, Value: "tok123"})
	r.Header.Set("X-CSRFToken", "other")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if *reached {
		t.Fatal("mismatched token must not reach the handler")
	}
	if w.Code != http.StatusForbidden {
		t.Fatalf("status %d", w.Code)
	}
}
