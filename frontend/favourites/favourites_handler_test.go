package favourites

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"

	"savor/backend"
	sharedcontext "savor/frontend/shared/context"
	"savor/models"
)

type fakeToggleBackend struct {
	calls    int
	lastPath string
	reply    backend.FavouriteResult
	status   int
}

func (f *fakeToggleBackend) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls++
		f.lastPath = r.URL.Path
		if f.status != 0 {
			http.Error(w, `{"error":"nope"}`, f.status)
			return
		}
		_ = json.NewEncoder(w).Encode(f.reply)
	}))
}

func postToggle(t *testing.T, handler http.HandlerFunc, productID, intent string) *httptest.ResponseRecorder {
	t.Helper()
	router := chi.NewRouter()
	router.Post("/favourite_product/{productID}", handler)

	form := url.Values{"intent": {intent}}
	r := httptest.NewRequest(http.MethodPost, "/favourite_product/"+productID, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	sess := models.Session{ID: "tok", UserID: 3, User: models.User{ID: 3, Username: "casper"}}
	r = r.WithContext(sharedcontext.NewContextWithSession(r.Context(), sess))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestToggleFavouriteReturnsCardForNewFavourite(t *testing.T) {
	fake := &fakeToggleBackend{reply: backend.FavouriteResult{
		IsFavourited: true,
		Product:      backend.ProductRecord{ID: 9, ProductName: "Oat Milk"},
	}}
	srv := fake.server()
	defer srv.Close()
	handler := ToggleCommandHandler(nil, NewController(backend.New(srv.URL, srv.Client())), nil)

	w := postToggle(t, handler, "9", "favourite")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if fake.lastPath != "/favourite_product/9" {
		t.Fatalf("unexpected backend path %q", fake.lastPath)
	}

	var resp toggleResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.IsFavourited || resp.ProductID != 9 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.CardHTML))
	if err != nil {
		t.Fatalf("parse card: %v", err)
	}
	button := doc.Find(`button[data-action="toggle-favourite"]`)
	if button.Length() != 1 {
		t.Fatal("card must carry a toggle button")
	}
	if v, _ := button.Attr("data-favourited"); v != "1" {
		t.Fatalf("card button must render as favourited, got %q", v)
	}
}

func TestToggleFavouriteOmitsCardWhenRemoved(t *testing.T) {
	fake := &fakeToggleBackend{reply: backend.FavouriteResult{IsFavourited: false}}
	srv := fake.server()
	defer srv.Close()
	handler := ToggleCommandHandler(nil, NewController(backend.New(srv.URL, srv.Client())), nil)

	w := postToggle(t, handler, "9", "unfavourite")
	var resp toggleResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.IsFavourited || resp.CardHTML != "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestToggleFavouriteTrustsBackendOverIntent(t *testing.T) {
	// Two rapid presses can race; the wire answer decides the final state.
	fake := &fakeToggleBackend{reply: backend.FavouriteResult{IsFavourited: false}}
	srv := fake.server()
	defer srv.Close()
	handler := ToggleCommandHandler(nil, NewController(backend.New(srv.URL, srv.Client())), nil)

	w := postToggle(t, handler, "9", "favourite")
	var resp toggleResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.IsFavourited {
		t.Fatal("the backend said not favourited; the intent must not override it")
	}
}

func TestToggleFavouriteRejectsBadProductID(t *testing.T) {
	handler := ToggleCommandHandler(nil, NewController(backend.New("http://127.0.0.1:0", nil)), nil)
	w := postToggle(t, handler, "soup", "favourite")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d", w.Code)
	}
}

func TestToggleFavouriteAnswers401OnExpiredSession(t *testing.T) {
	fake := &fakeToggleBackend{status: http.StatusUnauthorized}
	srv := fake.server()
	defer srv.Close()
	handler := ToggleCommandHandler(nil, NewController(backend.New(srv.URL, srv.Client())), nil)

	w := postToggle(t, handler, "9", "favourite")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d", w.Code)
	}
}
