package pantry

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"savor/backend"
	"savor/frontend/shared/cards"
	"savor/frontend/shared/context"
	"savor/frontend/shared/html"
	"savor/frontend/shared/sidebar"
	"savor/infrastructure/audit"
	"savor/infrastructure/session"
	"savor/infrastructure/sqlite"
)

// PantryPageQueryHandler renders the pantry screen with the user's full
// item list.
func PantryPageQueryHandler(ctrl *Controller, store sidebar.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := context.GetSessionFromContext(r.Context())
		data := loadItems(r, ctrl, "")
		if data == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := html.Layout(html.LayoutData{
			Title:     "Pantry",
			Sidebar:   store.Get(r),
			Username:  sess.User.Username,
			NavSearch: true,
		}, Page(*data))
		if err := page.Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render pantry page", http.StatusInternalServerError)
		}
	}
}

// FilterCommandHandler narrows the pantry list by name and answers with
// the list fragment.
func FilterCommandHandler(ctrl *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		data := loadItems(r, ctrl, r.PostFormValue("query"))
		if data == nil {
			http.Error(w, "session expired", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, RenderItemsFragment(*data))
	}
}

// AddProductCommandHandler adds a quantity of a product to the pantry.
// The entered quantity arrives as text so validation happens here, not in
// page glue.
func AddProductCommandHandler(db *sqlite.DB, ctrl *Controller, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		productID, err := strconv.ParseInt(r.PostFormValue("product_id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid product id", http.StatusBadRequest)
			return
		}

		sess, _ := context.GetSessionFromContext(r.Context())
		outcome, err := ctrl.Add(r.Context(), session.CredentialsFromRequest(r), productID, r.PostFormValue("quantity"))
		if err != nil {
			writeMutationError(w, err, "The product could not be added.")
			return
		}
		if outcome.Success {
			auditSvc.Record(r.Context(), db, sess.UserID, "pantry.add", "product", strconv.FormatInt(productID, 10), outcome.Message)
		}
		writeJSON(w, outcome)
	}
}

// RemoveItemCommandHandler decrements or deletes a pantry item. The
// amount is forwarded as entered; the backend is authoritative on
// rejecting it.
func RemoveItemCommandHandler(db *sqlite.DB, ctrl *Controller, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		itemID := r.PostFormValue("itemId")
		if itemID == "" {
			http.Error(w, "missing item id", http.StatusBadRequest)
			return
		}

		sess, _ := context.GetSessionFromContext(r.Context())
		outcome, err := ctrl.Remove(r.Context(), session.CredentialsFromRequest(r), itemID, r.PostFormValue("quantity"))
		if err != nil {
			writeMutationError(w, err, "The item could not be removed.")
			return
		}
		auditSvc.Record(r.Context(), db, sess.UserID, "pantry.remove", "pantry_item", itemID, outcome)
		writeJSON(w, outcome)
	}
}

func loadItems(r *http.Request, ctrl *Controller, query string) *PageData {
	items, err := ctrl.List(r.Context(), session.CredentialsFromRequest(r), query)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthenticated) {
			return nil
		}
		slog.Error("pantry load failed", "error", err)
		if errors.Is(err, backend.ErrNetwork) {
			return &PageData{Query: query, NetworkError: true}
		}
		var serverErr *backend.ServerError
		if errors.As(err, &serverErr) {
			return &PageData{Query: query, Alert: serverErr.Message}
		}
		return &PageData{Query: query, Alert: "The pantry could not be loaded."}
	}

	data := &PageData{Query: query}
	for _, item := range items {
		data.Cards = append(data.Cards, cards.BuildPantryCard(item))
	}
	return data
}

func writeMutationError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, backend.ErrUnauthenticated) {
		http.Error(w, "session expired", http.StatusUnauthorized)
		return
	}
	slog.Error("pantry mutation failed", "error", err)
	message := fallback
	if errors.Is(err, backend.ErrNetwork) {
		message = "A network error occurred. Please check your connection."
	}
	var serverErr *backend.ServerError
	if errors.As(err, &serverErr) {
		message = serverErr.Message
	}
	writeJSON(w, AddOutcome{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
