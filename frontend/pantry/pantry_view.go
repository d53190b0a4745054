package pantry

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"savor/frontend/shared/cards"
)

// RenderItemsFragment renders the pantry list's inner HTML, shared by the
// full page and the filter fragment swap.
func RenderItemsFragment(data PageData) string {
	var b strings.Builder

	switch {
	case data.NetworkError:
		b.WriteString(`<div class="alert alert-danger text-center mt-3" role="alert">A network error occurred. Please check your connection.</div>`)
		return b.String()
	case data.Alert != "":
		b.WriteString(`<div class="alert alert-danger text-center mt-3" role="alert">Error: `)
		b.WriteString(html.EscapeString(data.Alert))
		b.WriteString(`</div>`)
		return b.String()
	case len(data.Cards) == 0 && data.Query != "":
		b.WriteString(`<div class="alert alert-info text-center mt-3" role="alert">No pantry items match your search.</div>`)
		return b.String()
	case len(data.Cards) == 0:
		b.WriteString(`<div class="alert alert-info text-center mt-3" role="alert">Your pantry is empty. Search for products to add some.</div>`)
		return b.String()
	}

	b.WriteString(`<div class="row">`)
	for _, card := range data.Cards {
		cards.WritePantryCardHTML(&b, card)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// Page renders the pantry screen body.
func Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<h1 class="h3 mb-3">My Pantry</h1>`)
		b.WriteString(`<div class="d-flex flex-wrap gap-2 align-items-end mb-3"><form id="pantry-search-form" class="d-flex gap-2 flex-grow-1"><input name="query" class="form-control" placeholder="Filter pantry items" value="`)
		b.WriteString(html.EscapeString(data.Query))
		b.WriteString(`"><button class="btn btn-primary" type="submit">Filter</button></form>`)
		b.WriteString(`<a class="btn btn-outline-secondary" href="/pantry/export.pdf">PDF</a><a class="btn btn-outline-secondary" href="/pantry/export.xlsx">Spreadsheet</a></div>`)

		b.WriteString(`<div id="pantry-items">`)
		b.WriteString(RenderItemsFragment(data))
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
