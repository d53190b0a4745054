package suggest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"savor/backend"
	"savor/infrastructure/session"
)

// suggestionsResponse mirrors the backend's shape so page glue reads the
// same field either way.
type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// QueryHandler proxies autocomplete lookups for the product-name input.
// An empty query answers an empty list without touching the backend;
// failures also answer an empty list because a dead dropdown is better
// than an error toast mid-keystroke.
func QueryHandler(client *backend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("query"))
		if query == "" {
			writeJSON(w, suggestionsResponse{Suggestions: []string{}})
			return
		}

		res, err := client.Suggestions(r.Context(), session.CredentialsFromRequest(r), query)
		if err != nil {
			if errors.Is(err, backend.ErrUnauthenticated) {
				http.Error(w, "session expired", http.StatusUnauthorized)
				return
			}
			slog.Error("suggestions lookup failed", "error", err)
			writeJSON(w, suggestionsResponse{Suggestions: []string{}})
			return
		}

		suggestions := res.Suggestions
		if suggestions == nil {
			suggestions = []string{}
		}
		writeJSON(w, suggestionsResponse{Suggestions: suggestions})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
