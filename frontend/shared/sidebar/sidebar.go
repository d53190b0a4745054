package sidebar

import (
	"net/http"
	"strings"
)

// State of the collapsible sidebar. Persisted per browser, survives
// sessions, and is only ever mutated by the toggle control.
type State string

const (
	Expanded  State = "expanded"
	Minimized State = "minimized"
)

const cookieName = "sidebar_state"

// Store is the injected accessor for the persisted sidebar state.
type Store interface {
	Get(r *http.Request) State
	Set(w http.ResponseWriter, state State)
}

// CookieStore persists the state in a long-lived cookie.
type CookieStore struct{}

func (CookieStore) Get(r *http.Request) State {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return Expanded
	}
	if State(strings.TrimSpace(c.Value)) == Minimized {
		return Minimized
	}
	return Expanded
}

func (CookieStore) Set(w http.ResponseWriter, state State) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    string(state),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}

// ToggleHandler flips the persisted state. The browser-side class toggle
// happens immediately in app.js; this call just records the new state.
func ToggleHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next := Minimized
		if store.Get(r) == Minimized {
			next = Expanded
		}
		store.Set(w, next)
		w.WriteHeader(http.StatusNoContent)
	}
}
