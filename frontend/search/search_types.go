package search

import "savor/frontend/shared/cards"

// AdvancedFilters are the dropdown criteria of the advanced search form.
type AdvancedFilters struct {
	SearchTerm string
	Country    string
	Category   string
	Brand      string
}

func (f *AdvancedFilters) empty() bool {
	if f == nil {
		return true
	}
	return f.SearchTerm == "" && f.Country == "" && f.Category == "" && f.Brand == ""
}

// Query is the session's current search. A new submission overwrites it
// wholesale; pagination re-issues it with a different page.
type Query struct {
	Barcode     string
	ProductName string
	Page        int
	WasScanned  bool
	Advanced    *AdvancedFilters
}

// Empty reports whether the query would match nothing the user asked for,
// in which case no network call is made at all.
func (q Query) Empty() bool {
	return q.Barcode == "" && q.ProductName == "" && q.Advanced.empty()
}

// PageLink is one entry of the pagination descriptor.
type PageLink struct {
	Page     int
	Label    string
	Active   bool
	Disabled bool
	Ellipsis bool
}

// Pagination is derived fresh on every render and never persisted.
type Pagination struct {
	Previous PageLink
	Pages    []PageLink
	Next     PageLink
	Current  int
	Total    int
}

// Notice is a per-product outcome from the scan-to-add fast path.
type Notice struct {
	Success bool
	Message string
}

// ResultsView is everything the results container needs for one render.
// Exactly one of Warning/Alert/NetworkError/(Cards or Empty) drives the
// fragment; Notices ride along with cards.
type ResultsView struct {
	Cards      []cards.ProductCard
	Pagination *Pagination
	Empty      bool

	// Warning means validation stopped the search before any network call.
	Warning string
	// Alert carries the backend's literal business-error text.
	Alert string
	// NetworkError asks for the generic "check your connection" message.
	NetworkError bool

	Notices []Notice
}
