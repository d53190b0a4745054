package recipes

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"savor/backend"
	"savor/frontend/shared/context"
	"savor/frontend/shared/html"
	"savor/frontend/shared/sidebar"
	"savor/infrastructure/audit"
	"savor/infrastructure/session"
	"savor/infrastructure/sqlite"
)

// RecipesPageQueryHandler renders the recipes screen from the backend's
// overview payload.
func RecipesPageQueryHandler(client *backend.Client, store sidebar.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := context.GetSessionFromContext(r.Context())

		data := PageData{}
		overview, err := client.RecipesOverview(r.Context(), session.CredentialsFromRequest(r))
		switch {
		case errors.Is(err, backend.ErrUnauthenticated):
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		case errors.Is(err, backend.ErrNetwork):
			data.NetworkError = true
		case err != nil:
			slog.Error("recipes load failed", "error", err)
			data.Alert = "Recipes could not be loaded."
			var serverErr *backend.ServerError
			if errors.As(err, &serverErr) {
				data.Alert = serverErr.Message
			}
		default:
			data.Overview = *overview
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := html.Layout(html.LayoutData{
			Title:     "Recipes",
			Sidebar:   store.Get(r),
			Username:  sess.User.Username,
			NavSearch: true,
		}, Page(data))
		if err := page.Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render recipes page", http.StatusInternalServerError)
		}
	}
}

type saveResponse struct {
	Message   string `json:"message"`
	SavedHTML string `json:"saved_html,omitempty"`
}

// SaveRecipeCommandHandler saves a suggested recipe and hands back a
// rendered entry for the saved section.
func SaveRecipeCommandHandler(db *sqlite.DB, client *backend.Client, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid recipe id", http.StatusBadRequest)
			return
		}

		sess, _ := context.GetSessionFromContext(r.Context())
		res, err := client.SaveRecipe(r.Context(), session.CredentialsFromRequest(r), recipeID)
		if err != nil {
			writeMutationError(w, err, "The recipe could not be saved.")
			return
		}
		auditSvc.Record(r.Context(), db, sess.UserID, "recipe.save", "recipe", strconv.FormatInt(recipeID, 10), nil)

		resp := saveResponse{Message: res.Message}
		if res.NewRecipe != nil {
			var b strings.Builder
			WriteRecipeCardHTML(&b, "saved", *res.NewRecipe, false)
			resp.SavedHTML = b.String()
		}
		writeJSON(w, resp)
	}
}

// DeleteRecipeCommandHandler deletes a saved recipe.
func DeleteRecipeCommandHandler(db *sqlite.DB, client *backend.Client, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid recipe id", http.StatusBadRequest)
			return
		}

		sess, _ := context.GetSessionFromContext(r.Context())
		res, err := client.DeleteRecipe(r.Context(), session.CredentialsFromRequest(r), recipeID)
		if err != nil {
			writeMutationError(w, err, "The recipe could not be deleted.")
			return
		}
		auditSvc.Record(r.Context(), db, sess.UserID, "recipe.delete", "recipe", strconv.FormatInt(recipeID, 10), nil)
		writeJSON(w, saveResponse{Message: res.Message})
	}
}

// MarkSeenCommandHandler reports a suggestion expanded for the first
// time. Failures are swallowed: the badge just reappears next render.
func MarkSeenCommandHandler(client *backend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid recipe id", http.StatusBadRequest)
			return
		}

		err = client.MarkRecipeSeen(r.Context(), session.CredentialsFromRequest(r), recipeID)
		if errors.Is(err, backend.ErrUnauthenticated) {
			http.Error(w, "session expired", http.StatusUnauthorized)
			return
		}
		if err != nil {
			slog.Error("mark seen failed", "error", err, "recipe_id", recipeID)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeMutationError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, backend.ErrUnauthenticated) {
		http.Error(w, "session expired", http.StatusUnauthorized)
		return
	}
	slog.Error("recipe mutation failed", "error", err)
	message := fallback
	if errors.Is(err, backend.ErrNetwork) {
		message = "A network error occurred. Please check your connection."
	}
	var serverErr *backend.ServerError
	if errors.As(err, &serverErr) {
		message = serverErr.Message
	}
	writeJSON(w, saveResponse{Message: message})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
