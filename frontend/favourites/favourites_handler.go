package favourites

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"savor/backend"
	"savor/frontend/shared/cards"
	"savor/frontend/shared/context"
	"savor/infrastructure/audit"
	"savor/infrastructure/session"
	"savor/infrastructure/sqlite"
)

// toggleResponse is what page glue needs to patch the toggle button and
// the favourites area: the authoritative state plus a pre-rendered card
// for insertion when the product became a favourite.
type toggleResponse struct {
	IsFavourited bool   `json:"is_favourited"`
	ProductID    int64  `json:"product_id"`
	CardHTML     string `json:"card_html,omitempty"`
	Message      string `json:"message,omitempty"`
}

// ToggleCommandHandler flips a product's favourite state. The intent
// field names what the user pressed; the backend's answer wins either way.
func ToggleCommandHandler(db *sqlite.DB, ctrl *Controller, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid product id", http.StatusBadRequest)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		sess, _ := context.GetSessionFromContext(r.Context())
		creds := session.CredentialsFromRequest(r)

		var res *backend.FavouriteResult
		if r.PostFormValue("intent") == "unfavourite" {
			res, err = ctrl.Unfavourite(r.Context(), creds, productID)
		} else {
			res, err = ctrl.Favourite(r.Context(), creds, productID)
		}
		if err != nil {
			writeToggleError(w, err)
			return
		}

		action := "favourite.remove"
		if res.IsFavourited {
			action = "favourite.add"
		}
		auditSvc.Record(r.Context(), db, sess.UserID, action, "product", strconv.FormatInt(productID, 10), nil)

		resp := toggleResponse{IsFavourited: res.IsFavourited, ProductID: productID}
		if res.IsFavourited {
			card := cards.BuildProductCard(res.Product)
			card.IsFavourited = true
			var b strings.Builder
			cards.WriteProductCardHTML(&b, card)
			resp.CardHTML = b.String()
		}
		writeJSON(w, resp)
	}
}

func writeToggleError(w http.ResponseWriter, err error) {
	if errors.Is(err, backend.ErrUnauthenticated) {
		http.Error(w, "session expired", http.StatusUnauthorized)
		return
	}
	slog.Error("favourite toggle failed", "error", err)
	message := "The favourite could not be updated."
	if errors.Is(err, backend.ErrNetwork) {
		message = "A network error occurred. Please check your connection."
	}
	var serverErr *backend.ServerError
	if errors.As(err, &serverErr) {
		message = serverErr.Message
	}
	writeJSON(w, toggleResponse{Message: message})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
