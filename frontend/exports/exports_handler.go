package exports

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"savor/backend"
	"savor/frontend/shared/context"
	"savor/infrastructure/session"
)

// PantryPDFQueryHandler streams the pantry inventory as a printable PDF.
func PantryPDFQueryHandler(client *backend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, ok := loadItems(w, r, client)
		if !ok {
			return
		}
		sess, _ := context.GetSessionFromContext(r.Context())
		pdfBytes, err := renderPantryPDF(items, sess.User.Username, time.Now())
		if err != nil {
			slog.Error("pantry pdf render failed", "error", err)
			http.Error(w, "failed to render pdf", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="pantry.pdf"`)
		w.Write(pdfBytes)
	}
}

// PantryXLSXQueryHandler streams the pantry inventory as a spreadsheet.
func PantryXLSXQueryHandler(client *backend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, ok := loadItems(w, r, client)
		if !ok {
			return
		}
		xlsxBytes, err := renderPantryXLSX(items)
		if err != nil {
			slog.Error("pantry xlsx render failed", "error", err)
			http.Error(w, "failed to render spreadsheet", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="pantry.xlsx"`)
		w.Write(xlsxBytes)
	}
}

// BarcodePNGQueryHandler renders a product code as a standalone Code 128
// image, used by the pantry cards' print links.
func BarcodePNGQueryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := strings.TrimSpace(chi.URLParam(r, "code"))
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}
		pngBytes, err := renderCode128PNG(code, 600, 130)
		if err != nil {
			http.Error(w, "invalid code", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes)
	}
}

func loadItems(w http.ResponseWriter, r *http.Request, client *backend.Client) ([]backend.PantryItem, bool) {
	res, err := client.SearchPantry(r.Context(), session.CredentialsFromRequest(r), "")
	if err != nil {
		if errors.Is(err, backend.ErrUnauthenticated) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return nil, false
		}
		slog.Error("pantry export load failed", "error", err)
		http.Error(w, "failed to load pantry", http.StatusBadGateway)
		return nil, false
	}
	return res.FoundItems, true
}
