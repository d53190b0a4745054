package search

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"savor/backend"
	"savor/frontend/shared/cards"
	"savor/frontend/shared/context"
	"savor/frontend/shared/html"
	"savor/frontend/shared/sidebar"
	"savor/infrastructure/cache"
	"savor/infrastructure/session"
	"savor/infrastructure/sqlite"
)

// IndexPageQueryHandler renders the search screen: the forms, the
// advanced-search dropdowns, the favourites section, and — when a search
// was stored from another page — the replayed results.
func IndexPageQueryHandler(db *sqlite.DB, ctrl *Controller, client *backend.Client, criteria *cache.CriteriaCache, store sidebar.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := context.GetSessionFromContext(r.Context())
		creds := session.CredentialsFromRequest(r)

		data := IndexPageData{}
		data.Criteria, data.CriteriaError = loadCriteria(r, client, criteria, creds)

		favs, err := client.ListFavourites(r.Context(), creds)
		switch {
		case errors.Is(err, backend.ErrUnauthenticated):
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		case err != nil:
			slog.Error("favourites load failed", "error", err)
			data.FavouritesNote = "Favourites could not be loaded right now."
		default:
			for _, p := range favs.Products {
				card := cards.BuildProductCard(p)
				card.IsFavourited = true
				data.Favourites = append(data.Favourites, card)
			}
		}

		pending, found, err := TakePendingSearch(r.Context(), db, sess.ID)
		if err != nil {
			slog.Error("pending search lookup failed", "error", err)
		}
		if found {
			data.ReplayedBarcode = pending.Barcode
			data.ReplayedName = pending.ProductName
			view, err := ctrl.Submit(r.Context(), sess.ID, creds, pending)
			if errors.Is(err, backend.ErrUnauthenticated) {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			data.InitialResults = RenderResultsFragment(view)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := html.Layout(html.LayoutData{
			Title:    "Search",
			Sidebar:  store.Get(r),
			Username: sess.User.Username,
		}, IndexPage(data))
		if err := page.Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render search page", http.StatusInternalServerError)
		}
	}
}

// SearchCommandHandler runs a simple search and answers with the results
// fragment. A submission flagged navigate=1 comes from a page without the
// results container: the query is stored and the browser is sent to the
// search screen, which replays it once.
func SearchCommandHandler(db *sqlite.DB, ctrl *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		sess, _ := context.GetSessionFromContext(r.Context())
		q := Query{
			Barcode:     strings.TrimSpace(r.PostFormValue("barcode")),
			ProductName: strings.TrimSpace(r.PostFormValue("product_name")),
			Page:        1,
			WasScanned:  r.PostFormValue("was_scanned") == "1",
		}

		if r.PostFormValue("navigate") == "1" {
			if !q.Empty() {
				if err := SavePendingSearch(r.Context(), db, sess.ID, q); err != nil {
					slog.Error("pending search save failed", "error", err)
				}
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		view, err := ctrl.Submit(r.Context(), sess.ID, session.CredentialsFromRequest(r), q)
		writeFragment(w, view, err)
	}
}

// AdvancedSearchCommandHandler runs a dropdown-filtered search.
func AdvancedSearchCommandHandler(ctrl *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		sess, _ := context.GetSessionFromContext(r.Context())
		q := Query{
			Page: 1,
			Advanced: &AdvancedFilters{
				SearchTerm: strings.TrimSpace(r.PostFormValue("product_name")),
				Country:    r.PostFormValue("countries_tags"),
				Category:   r.PostFormValue("categories_tags"),
				Brand:      r.PostFormValue("brands_tags"),
			},
		}
		view, err := ctrl.Submit(r.Context(), sess.ID, session.CredentialsFromRequest(r), q)
		writeFragment(w, view, err)
	}
}

// PageChangeCommandHandler re-issues the session's current search for
// another page. 204 means nothing changed and the container keeps its
// content.
func PageChangeCommandHandler(ctrl *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		page, err := strconv.Atoi(r.PostFormValue("page"))
		if err != nil {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		sess, _ := context.GetSessionFromContext(r.Context())
		view, changed, err := ctrl.ChangePage(r.Context(), sess.ID, session.CredentialsFromRequest(r), page)
		if err != nil {
			writeFragment(w, ResultsView{}, err)
			return
		}
		if !changed {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeFragment(w, view, nil)
	}
}

func writeFragment(w http.ResponseWriter, view ResultsView, err error) {
	if errors.Is(err, backend.ErrUnauthenticated) {
		http.Error(w, "session expired", http.StatusUnauthorized)
		return
	}
	if err != nil {
		slog.Error("search failed", "error", err)
		view = ResultsView{Alert: "The search could not be completed."}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, RenderResultsFragment(view))
}

func loadCriteria(r *http.Request, client *backend.Client, criteriaCache *cache.CriteriaCache, creds backend.Credentials) (cache.SearchCriteria, bool) {
	if cached, ok := criteriaCache.Get(); ok {
		return cached, false
	}
	res, err := client.PopulateCriteria(r.Context(), creds)
	if err != nil {
		slog.Error("criteria load failed", "error", err)
		return cache.SearchCriteria{}, true
	}
	criteria := cache.SearchCriteria{
		Categories: res.Categories,
		Brands:     res.Brands,
		Countries:  res.Countries,
	}
	criteriaCache.Set(criteria)
	return criteria, false
}
