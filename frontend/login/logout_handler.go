package login

import (
	"net/http"

	"savor/infrastructure/cache"
	sessioncookie "savor/infrastructure/session"
	"savor/infrastructure/sqlite"
)

// SearchStateForgetter drops per-session search state on logout.
type SearchStateForgetter interface {
	Forget(sessionID string)
}

// LogoutHandler removes session state and clears cookie.
func LogoutHandler(db *sqlite.DB, sessionCache *cache.UserSessionCache, searchState SearchStateForgetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessioncookie.CookieName)
		if err == nil && cookie.Value != "" {
			sessionCache.DeleteSessionBySessionToken(cookie.Value)
			searchState.Forget(cookie.Value)
			_ = DeleteSessionByToken(r.Context(), db, cookie.Value)
		}
		http.SetCookie(w, sessioncookie.SessionCookie("", -1))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
