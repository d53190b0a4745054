package pantry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"savor/backend"
	sharedcontext "savor/frontend/shared/context"
	"savor/models"
)

func sessionRequest(t *testing.T, method, target string, form url.Values) *http.Request {
	t.Helper()
	var r *http.Request
	if form != nil {
		r = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	sess := models.Session{ID: "tok", UserID: 7, User: models.User{ID: 7, Username: "casper"}}
	return r.WithContext(sharedcontext.NewContextWithSession(r.Context(), sess))
}

func TestAddProductCommandHandlerReturnsServerVerdict(t *testing.T) {
	fake := &fakePantryBackend{}
	srv := fake.server()
	defer srv.Close()
	handler := AddProductCommandHandler(nil, NewController(backend.New(srv.URL, srv.Client())), nil)

	w := httptest.NewRecorder()
	handler(w, sessionRequest(t, http.MethodPost, "/pantry/add_product", url.Values{
		"product_id": {"5"},
		"quantity":   {"2"},
	}))

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var outcome AddOutcome
	if err := json.NewDecoder(w.Body).Decode(&outcome); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !outcome.Success || outcome.Message != "added" {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
}

func TestAddProductCommandHandlerRejectsBadQuantityLocally(t *testing.T) {
	fake := &fakePantryBackend{}
	srv := fake.server()
	defer srv.Close()
	handler := AddProductCommandHandler(nil, NewController(backend.New(srv.URL, srv.Client())), nil)

	w := httptest.NewRecorder()
	handler(w, sessionRequest(t, http.MethodPost, "/pantry/add_product", url.Values{
		"product_id": {"5"},
		"quantity":   {"minus one"},
	}))

	var outcome AddOutcome
	if err := json.NewDecoder(w.Body).Decode(&outcome); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !outcome.Validation || outcome.Success {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if fake.addCalls != 0 {
		t.Fatalf("validation failures must not reach the backend, got %d calls", fake.addCalls)
	}
}

func TestAddProductCommandHandlerRejectsBadProductID(t *testing.T) {
	handler := AddProductCommandHandler(nil, NewController(backend.New("http://127.0.0.1:0", nil)), nil)

	w := httptest.NewRecorder()
	handler(w, sessionRequest(t, http.MethodPost, "/pantry/add_product", url.Values{
		"product_id": {"soup"},
		"quantity":   {"1"},
	}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d", w.Code)
	}
}

func TestRemoveItemCommandHandlerReportsQuantityLeft(t *testing.T) {
	fake := &fakePantryBackend{removeReply: backend.RemoveItemResult{QuantityLeft: 0, Message: "gone"}}
	srv := fake.server()
	defer srv.Close()
	handler := RemoveItemCommandHandler(nil, NewController(backend.New(srv.URL, srv.Client())), nil)

	w := httptest.NewRecorder()
	handler(w, sessionRequest(t, http.MethodPost, "/pantry/remove_pantryitem", url.Values{
		"itemId":   {"42"},
		"quantity": {"3"},
	}))

	var outcome RemoveOutcome
	if err := json.NewDecoder(w.Body).Decode(&outcome); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !outcome.Removed || outcome.QuantityLeft != 0 {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
}

func TestMutationsAnswer401OnExpiredSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"no session"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()
	ctrl := NewController(backend.New(srv.URL, srv.Client()))

	w := httptest.NewRecorder()
	AddProductCommandHandler(nil, ctrl, nil)(w, sessionRequest(t, http.MethodPost, "/pantry/add_product", url.Values{
		"product_id": {"5"},
		"quantity":   {"1"},
	}))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("add status %d", w.Code)
	}

	w = httptest.NewRecorder()
	RemoveItemCommandHandler(nil, ctrl, nil)(w, sessionRequest(t, http.MethodPost, "/pantry/remove_pantryitem", url.Values{
		"itemId":   {"42"},
		"quantity": {"1"},
	}))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("remove status %d", w.Code)
	}
}

func TestFilterCommandHandlerRendersItemFragment(t *testing.T) {
	fake := &fakePantryBackend{}
	srv := fake.server()
	defer srv.Close()
	handler := FilterCommandHandler(NewController(backend.New(srv.URL, srv.Client())))

	w := httptest.NewRecorder()
	handler(w, sessionRequest(t, http.MethodPost, "/search_pantry/", url.Values{"query": {"rice"}}))

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	if doc.Find("[data-pantry-item]").Length() != 1 {
		t.Fatal("expected one pantry card in the fragment")
	}
	if doc.Find(`button[data-action="remove-item"]`).Length() != 1 {
		t.Fatal("expected a remove button on the card")
	}
}
