package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"savor/infrastructure/metrics"
)

// Sentinel outcomes for failed backend calls. Anything else a call returns
// is either a usable payload or a *ServerError carrying the backend's own
// message.
var (
	// ErrNetwork marks a request that never completed, or a response body
	// that could not be parsed. Callers render a generic "check your
	// connection" message; the user retries by resubmitting.
	ErrNetwork = errors.New("backend request did not complete")

	// ErrUnauthenticated marks an HTTP 401. Callers redirect to the login
	// page and suppress any further error rendering for that call.
	ErrUnauthenticated = errors.New("backend session unauthenticated")
)

// ServerError is a non-2xx response with the backend's error text.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// Credentials carries what the adapter attaches to every request: the
// user's session token and the anti-forgery token read from the page's
// embedded form token field, forwarded verbatim.
type Credentials struct {
	SessionToken string
	CSRFToken    string
}

// Client is the HTTP adapter for the pantry/product backend. It owns no
// business logic: it normalizes transport failures, 401s, and error bodies
// into typed outcomes, and decodes 2xx payloads into the caller's struct.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		// No request timeout is imposed beyond this: the frontend relies on
		// the backend's responsiveness, matching the page behaviour.
		httpClient = &http.Client{Timeout: 0}
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// do issues one JSON request. endpoint is the logical route template used
// for metrics; path is the concrete request path.
func (c *Client) do(ctx context.Context, creds Credentials, method, endpoint, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if creds.CSRFToken != "" {
		req.Header.Set("X-CSRFToken", creds.CSRFToken)
	}
	if creds.SessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+creds.SessionToken)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.BackendDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequests.WithLabelValues(endpoint, metrics.OutcomeNetworkError).Inc()
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		metrics.BackendRequests.WithLabelValues(endpoint, metrics.OutcomeUnauthenticated).Inc()
		return ErrUnauthenticated
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.BackendRequests.WithLabelValues(endpoint, metrics.OutcomeNetworkError).Inc()
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.BackendRequests.WithLabelValues(endpoint, metrics.OutcomeServerError).Inc()
		var errBody struct {
			Error string `json:"error"`
		}
		message := "The server could not process the request."
		if err := json.Unmarshal(raw, &errBody); err == nil && errBody.Error != "" {
			message = errBody.Error
		}
		return &ServerError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			// An unreadable success body is indistinguishable from a broken
			// connection as far as the user is concerned.
			metrics.BackendRequests.WithLabelValues(endpoint, metrics.OutcomeNetworkError).Inc()
			return fmt.Errorf("%w: decode response: %v", ErrNetwork, err)
		}
	}
	metrics.BackendRequests.WithLabelValues(endpoint, metrics.OutcomeOK).Inc()
	return nil
}

// Search runs a barcode/name search.
func (c *Client) Search(ctx context.Context, creds Credentials, req SearchRequest) (*SearchResult, error) {
	var result SearchResult
	if err := c.do(ctx, creds, http.MethodPost, "/product/search/", "/product/search/", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AdvancedSearch runs a filter-based search.
func (c *Client) AdvancedSearch(ctx context.Context, creds Credentials, req AdvancedSearchRequest) (*SearchResult, error) {
	var result SearchResult
	if err := c.do(ctx, creds, http.MethodPost, "/product/adv_search", "/product/adv_search", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PopulateCriteria fetches the advanced-search dropdown data.
func (c *Client) PopulateCriteria(ctx context.Context, creds Credentials) (*CriteriaResult, error) {
	var result CriteriaResult
	if err := c.do(ctx, creds, http.MethodGet, "/adv_search/populate_criteria", "/adv_search/populate_criteria", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AddProduct adds a quantity of a product to the user's pantry.
func (c *Client) AddProduct(ctx context.Context, creds Credentials, req AddProductRequest) (*AddProductResult, error) {
	var result AddProductResult
	if err := c.do(ctx, creds, http.MethodPost, "/pantry/add_product", "/pantry/add_product", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RemovePantryItem decrements or deletes a pantry item.
func (c *Client) RemovePantryItem(ctx context.Context, creds Credentials, req RemoveItemRequest) (*RemoveItemResult, error) {
	var result RemoveItemResult
	if err := c.do(ctx, creds, http.MethodPost, "/pantry/remove_pantryitem", "/pantry/remove_pantryitem", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchPantry lists the user's pantry items, filtered by query. An empty
// query returns the full pantry.
func (c *Client) SearchPantry(ctx context.Context, creds Credentials, query string) (*PantrySearchResult, error) {
	body := struct {
		Query string `json:"query"`
	}{Query: query}
	var result PantrySearchResult
	if err := c.do(ctx, creds, http.MethodPost, "/search_pantry/", "/search_pantry/", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ToggleFavourite flips a product's favourite state. Toggle semantics live
// on the wire; client code expresses favourite/unfavourite intents on top.
func (c *Client) ToggleFavourite(ctx context.Context, creds Credentials, productID int64) (*FavouriteResult, error) {
	var result FavouriteResult
	path := "/favourite_product/" + strconv.FormatInt(productID, 10)
	if err := c.do(ctx, creds, http.MethodPost, "/favourite_product/{id}", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListFavourites fetches the user's favourited products.
func (c *Client) ListFavourites(ctx context.Context, creds Credentials) (*FavouritesResult, error) {
	var result FavouritesResult
	if err := c.do(ctx, creds, http.MethodGet, "/favourite_products/", "/favourite_products/", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Suggestions fetches autocomplete entries for a partial product name.
func (c *Client) Suggestions(ctx context.Context, creds Credentials, query string) (*SuggestionsResult, error) {
	var result SuggestionsResult
	path := "/suggestions/?query=" + url.QueryEscape(query)
	if err := c.do(ctx, creds, http.MethodGet, "/suggestions/", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RecipesOverview loads the recipes page data.
func (c *Client) RecipesOverview(ctx context.Context, creds Credentials) (*RecipesOverview, error) {
	var result RecipesOverview
	if err := c.do(ctx, creds, http.MethodGet, "/recipes/", "/recipes/", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SaveRecipe promotes a suggested recipe to the saved list.
func (c *Client) SaveRecipe(ctx context.Context, creds Credentials, recipeID int64) (*SaveRecipeResult, error) {
	var result SaveRecipeResult
	path := "/recipes/save_recipe/" + strconv.FormatInt(recipeID, 10)
	if err := c.do(ctx, creds, http.MethodPost, "/recipes/save_recipe/{id}", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteRecipe removes a saved recipe.
func (c *Client) DeleteRecipe(ctx context.Context, creds Credentials, recipeID int64) (*DeleteRecipeResult, error) {
	var result DeleteRecipeResult
	path := "/recipes/delete_recipe/" + strconv.FormatInt(recipeID, 10)
	if err := c.do(ctx, creds, http.MethodPost, "/recipes/delete_recipe/{id}", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MarkRecipeSeen marks a suggested recipe as viewed.
func (c *Client) MarkRecipeSeen(ctx context.Context, creds Credentials, recipeID int64) error {
	path := "/recipes/mark_as_seen/" + strconv.FormatInt(recipeID, 10) + "/"
	return c.do(ctx, creds, http.MethodPost, "/recipes/mark_as_seen/{id}/", path, nil, nil)
}
