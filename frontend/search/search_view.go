package search

import (
	"context"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"savor/frontend/shared/cards"
	"savor/infrastructure/cache"
)

// RenderResultsFragment renders the results container's inner HTML for one
// ResultsView. The same fragment serves full page loads and fetch swaps.
func RenderResultsFragment(view ResultsView) string {
	var b strings.Builder

	switch {
	case view.Warning != "":
		writeAlert(&b, "warning", view.Warning)
		return b.String()
	case view.NetworkError:
		writeAlert(&b, "danger", "A network error occurred. Please check your connection.")
		return b.String()
	case view.Alert != "":
		writeAlert(&b, "danger", "Error: "+view.Alert)
		return b.String()
	case view.Empty:
		writeAlert(&b, "info", "No products found. Try a different search term.")
		return b.String()
	}

	for _, notice := range view.Notices {
		severity := "danger"
		if notice.Success {
			severity = "success"
		}
		writeAlert(&b, severity, notice.Message)
	}

	b.WriteString(`<div class="row">`)
	for _, card := range view.Cards {
		cards.WriteProductCardHTML(&b, card)
	}
	b.WriteString(`</div>`)

	writePagination(&b, view.Pagination)
	return b.String()
}

func writeAlert(b *strings.Builder, severity, text string) {
	b.WriteString(`<div class="alert alert-`)
	b.WriteString(severity)
	b.WriteString(` text-center mt-3" role="alert">`)
	b.WriteString(html.EscapeString(text))
	b.WriteString(`</div>`)
}

// writePagination renders the page-link window. The active page is a plain
// span, not a link; disabled Previous/Next never navigate.
func writePagination(b *strings.Builder, p *Pagination) {
	if p == nil {
		return
	}
	b.WriteString(`<nav aria-label="Page navigation"><ul class="pagination justify-content-center">`)

	writeEdgeLink(b, p.Previous)
	for _, link := range p.Pages {
		switch {
		case link.Ellipsis:
			b.WriteString(`<li class="page-item disabled"><span class="page-link">...</span></li>`)
		case link.Active:
			b.WriteString(`<li class="page-item active"><span class="page-link">`)
			b.WriteString(html.EscapeString(link.Label))
			b.WriteString(`</span></li>`)
		default:
			b.WriteString(`<li class="page-item"><a class="page-link" href="#" data-page="`)
			b.WriteString(strconv.Itoa(link.Page))
			b.WriteString(`">`)
			b.WriteString(html.EscapeString(link.Label))
			b.WriteString(`</a></li>`)
		}
	}
	writeEdgeLink(b, p.Next)

	b.WriteString(`</ul></nav>`)
}

func writeEdgeLink(b *strings.Builder, link PageLink) {
	if link.Disabled {
		b.WriteString(`<li class="page-item disabled"><span class="page-link">`)
		b.WriteString(html.EscapeString(link.Label))
		b.WriteString(`</span></li>`)
		return
	}
	b.WriteString(`<li class="page-item"><a class="page-link" href="#" data-page="`)
	b.WriteString(strconv.Itoa(link.Page))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(link.Label))
	b.WriteString(`</a></li>`)
}

// IndexPageData backs the search screen.
type IndexPageData struct {
	Criteria       cache.SearchCriteria
	CriteriaError  bool
	Favourites     []cards.ProductCard
	FavouritesNote string
	// Initial results come from an at-most-once replay of a search
	// submitted on another page; empty otherwise.
	InitialResults  string
	ReplayedBarcode string
	ReplayedName    string
}

// IndexPage renders the search screen body.
func IndexPage(data IndexPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<h1 class="h3 mb-3">Product Search</h1>`)
		b.WriteString(`<form id="search-form" class="row g-2 align-items-end mb-2"><div class="col-md-4"><label class="form-label" for="barcode_input">Barcode</label><input id="barcode_input" name="barcode" class="form-control" inputmode="numeric" value="`)
		b.WriteString(html.EscapeString(data.ReplayedBarcode))
		b.WriteString(`"></div><div class="col-md-5 position-relative"><label class="form-label" for="product_name_input">Product name</label><input id="product_name_input" name="product_name" class="form-control" autocomplete="off" value="`)
		b.WriteString(html.EscapeString(data.ReplayedName))
		b.WriteString(`"><div id="autocomplete-suggestions" class="list-group position-absolute w-100"></div></div><div class="col-md-3 d-flex gap-2"><button class="btn btn-primary" type="submit">Search</button><button id="scan-button" class="btn btn-outline-secondary" type="button">Scan</button></div></form>`)

		writeAdvancedSearchForm(&b, data)

		b.WriteString(`<div id="searched-product-section" class="mt-3">`)
		b.WriteString(data.InitialResults)
		b.WriteString(`</div>`)

		b.WriteString(`<h2 class="h4 mt-5 mb-3">Favourites</h2><div class="product-cards-wrapper row" id="favourites-section">`)
		if data.FavouritesNote != "" {
			b.WriteString(`<p class="text-muted">`)
			b.WriteString(html.EscapeString(data.FavouritesNote))
			b.WriteString(`</p>`)
		} else if len(data.Favourites) == 0 {
			b.WriteString(`<p class="text-muted">No favourites yet.</p>`)
		}
		for _, card := range data.Favourites {
			cards.WriteProductCardHTML(&b, card)
		}
		b.WriteString(`</div>`)

		b.WriteString(renderScanModalAssets())

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeAdvancedSearchForm(b *strings.Builder, data IndexPageData) {
	b.WriteString(`<details class="mb-3"><summary class="text-muted small">Advanced search</summary><form id="advSearchForm" class="row g-2 align-items-end mt-1"><div class="col-md-3"><label class="form-label" for="adv_product_name">Search term</label><input id="adv_product_name" name="product_name" class="form-control"></div>`)
	writeCriteriaSelect(b, "countries_tags", "Country", data.Criteria.Countries)
	writeCriteriaSelect(b, "categories_tags", "Category", data.Criteria.Categories)
	writeCriteriaSelect(b, "brands_tags", "Brand", data.Criteria.Brands)
	b.WriteString(`<div class="col-md-1"><button class="btn btn-primary" type="submit">Go</button></div>`)
	if data.CriteriaError {
		b.WriteString(`<div class="col-12"><span class="small text-danger">Filter options could not be loaded. Free-text search still works.</span></div>`)
	}
	b.WriteString(`</form></details>`)
}

func writeCriteriaSelect(b *strings.Builder, name, label string, options []string) {
	b.WriteString(`<div class="col-md-2"><label class="form-label" for="`)
	b.WriteString(name)
	b.WriteString(`">`)
	b.WriteString(label)
	b.WriteString(`</label><select id="`)
	b.WriteString(name)
	b.WriteString(`" name="`)
	b.WriteString(name)
	b.WriteString(`" class="form-select"><option value="">Any</option>`)
	for _, option := range options {
		b.WriteString(`<option value="`)
		b.WriteString(html.EscapeString(option))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(option))
		b.WriteString(`</option>`)
	}
	b.WriteString(`</select></div>`)
}
