package search

import (
	"context"
	"errors"
	"sync"

	"savor/backend"
)

// Controller owns the search session state: one mutable Query per session,
// overwritten on each new submission and re-issued on pagination. All
// failures except unauthenticated ones are folded into the returned view so
// the results container always has something to render; ErrUnauthenticated
// surfaces so the handler can redirect to login without a duplicate toast.
type Controller struct {
	client *backend.Client

	mu      sync.RWMutex
	current map[string]Query
}

func NewController(client *backend.Client) *Controller {
	return &Controller{client: client, current: make(map[string]Query)}
}

// Submit runs a new search for the session. An empty query short-circuits
// with a warning and never touches the network.
func (c *Controller) Submit(ctx context.Context, sessionID string, creds backend.Credentials, q Query) (ResultsView, error) {
	if q.Empty() {
		return ResultsView{Warning: "Please enter a barcode or product name to search."}, nil
	}
	if q.Page < 1 {
		q.Page = 1
	}

	res, err := c.search(ctx, creds, q)
	if err != nil {
		return viewFromError(err)
	}
	if msg := res.BusinessError(); msg != "" {
		return ResultsView{Alert: msg}, nil
	}

	c.mu.Lock()
	c.current[sessionID] = q
	c.mu.Unlock()

	view := BuildResults(res)

	// Scan-to-add fast path: the backend told us this scan should land in
	// the pantry without a manual confirmation step.
	if q.WasScanned && res.ScanToAdd {
		notices, err := c.addAll(ctx, creds, res.Products)
		if err != nil {
			return ResultsView{}, err
		}
		view.Notices = notices
	}
	return view, nil
}

// ChangePage re-issues the session's current query for a different page.
// The bool result is false when nothing was done: no current query, or the
// target equals the page already displayed.
func (c *Controller) ChangePage(ctx context.Context, sessionID string, creds backend.Credentials, page int) (ResultsView, bool, error) {
	c.mu.RLock()
	q, ok := c.current[sessionID]
	c.mu.RUnlock()
	if !ok || page < 1 || page == q.Page {
		return ResultsView{}, false, nil
	}

	q.Page = page
	view, err := c.Submit(ctx, sessionID, creds, q)
	if err != nil {
		return ResultsView{}, false, err
	}
	return view, true, nil
}

// Forget drops the session's search state, typically on logout.
func (c *Controller) Forget(sessionID string) {
	c.mu.Lock()
	delete(c.current, sessionID)
	c.mu.Unlock()
}

func (c *Controller) search(ctx context.Context, creds backend.Credentials, q Query) (*backend.SearchResult, error) {
	if !q.Advanced.empty() {
		return c.client.AdvancedSearch(ctx, creds, backend.AdvancedSearchRequest{
			SearchTerm: q.Advanced.SearchTerm,
			Country:    q.Advanced.Country,
			Category:   q.Advanced.Category,
			Brand:      q.Advanced.Brand,
			Page:       q.Page,
		})
	}
	return c.client.Search(ctx, creds, backend.SearchRequest{
		Barcode:     q.Barcode,
		ProductName: q.ProductName,
		Page:        q.Page,
		WasScanned:  q.WasScanned,
	})
}

func (c *Controller) addAll(ctx context.Context, creds backend.Credentials, products []backend.ProductRecord) ([]Notice, error) {
	notices := make([]Notice, 0, len(products))
	for _, p := range products {
		res, err := c.client.AddProduct(ctx, creds, backend.AddProductRequest{ProductID: p.ID, QuantityToAdd: 1})
		if err != nil {
			if errors.Is(err, backend.ErrUnauthenticated) {
				return nil, err
			}
			notices = append(notices, Notice{Message: "A network error occurred adding " + p.ProductName + "."})
			continue
		}
		notices = append(notices, Notice{Success: res.Success, Message: res.Message})
	}
	return notices, nil
}

func viewFromError(err error) (ResultsView, error) {
	if errors.Is(err, backend.ErrUnauthenticated) {
		return ResultsView{}, err
	}
	if errors.Is(err, backend.ErrNetwork) {
		return ResultsView{NetworkError: true}, nil
	}
	var serverErr *backend.ServerError
	if errors.As(err, &serverErr) {
		return ResultsView{Alert: serverErr.Message}, nil
	}
	return ResultsView{Alert: "The search could not be completed."}, nil
}
