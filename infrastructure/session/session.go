package session

import (
	"net/http"
	"time"

	"savor/backend"
)

const CookieName = "X-Session-Token"

const CSRFCookieName = "X-CSRF-Token"

// CredentialsFromRequest lifts the session and anti-forgery tokens off an
// incoming request so the backend adapter can forward them verbatim. The
// CSRF token is taken from the fetch header first, then the form field,
// then the cookie itself for plain navigations.
func CredentialsFromRequest(r *http.Request) backend.Credentials {
	creds := backend.Credentials{}
	if c, err := r.Cookie(CookieName); err == nil {
		creds.SessionToken = c.Value
	}
	if token := r.Header.Get("X-CSRFToken"); token != "" {
		creds.CSRFToken = token
	} else if token := r.PostFormValue("_csrf"); token != "" {
		creds.CSRFToken = token
	} else if c, err := r.Cookie(CSRFCookieName); err == nil {
		creds.CSRFToken = c.Value
	}
	return creds
}

func SessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	}
}

func DefaultExpiry() time.Time {
	return time.Now().Add(12 * time.Hour)
}
