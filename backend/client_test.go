package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchForwardsCredentials(t *testing.T) {
	var gotCSRF, gotAuth string
	var gotBody SearchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCSRF = r.Header.Get("X-CSRFToken")
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(SearchResult{Count: 1, PageSize: 10, PageCount: 1})
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client())
	creds := Credentials{SessionToken: "sess-token", CSRFToken: "csrf-token"}
	res, err := client.Search(context.Background(), creds, SearchRequest{Barcode: "123", Page: 1})

	require.NoError(t, err)
	assert.Equal(t, "csrf-token", gotCSRF)
	assert.Equal(t, "Bearer sess-token", gotAuth)
	assert.Equal(t, "123", gotBody.Barcode)
	assert.Equal(t, 1, res.Count)
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client())
	_, err := client.Search(context.Background(), Credentials{}, SearchRequest{Barcode: "1"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestTransportFailureMapsToNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := New(srv.URL, nil)
	_, err := client.Search(context.Background(), Credentials{}, SearchRequest{Barcode: "1"})
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestNonOKParsesErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error": "barcode too short"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client())
	_, err := client.Search(context.Background(), Credentials{}, SearchRequest{Barcode: "1"})

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusUnprocessableEntity, serverErr.StatusCode)
	assert.Equal(t, "barcode too short", serverErr.Message)
}

func TestNonOKWithUnparsableBodySynthesizesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client())
	_, err := client.Search(context.Background(), Credentials{}, SearchRequest{Barcode: "1"})

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "The server could not process the request.", serverErr.Message)
}

func TestOKWithUnparsableBodyMapsToNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client())
	_, err := client.Search(context.Background(), Credentials{}, SearchRequest{Barcode: "1"})
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestBusinessErrorInsideOKBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"products": [], "error": "Invalid input."}`))
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client())
	res, err := client.Search(context.Background(), Credentials{}, SearchRequest{Barcode: "1"})

	require.NoError(t, err)
	assert.Equal(t, "Invalid input.", res.BusinessError())
}

func TestToggleFavouriteHitsProductPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(FavouriteResult{IsFavourited: true})
	}))
	defer srv.Close()

	client := New(srv.URL, srv.Client())
	res, err := client.ToggleFavourite(context.Background(), Credentials{}, 42)

	require.NoError(t, err)
	assert.Equal(t, "/favourite_product/42", gotPath)
	assert.True(t, res.IsFavourited)
}
