package html

import (
	"context"
	stdhtml "html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"savor/frontend/shared/sidebar"
)

// LayoutData is what every page hands the shell. Pages without their own
// results container set NavSearch so the shell renders a search form that
// stores the query and navigates to the search screen for replay.
type LayoutData struct {
	Title     string
	Sidebar   sidebar.State
	Username  string
	NavSearch bool
}

// Layout wraps a page body in the app shell: head with bundled assets,
// the collapsible sidebar, and the CSRF form script. Sidebar state is
// whatever the caller's accessor read; the layout only renders it.
func Layout(data LayoutData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!doctype html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		b.WriteString(stdhtml.EscapeString(data.Title))
		b.WriteString(` - Savor</title><link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"><link rel="stylesheet" href="/assets/app.css"><script src="/assets/app.js" defer></script></head><body`)
		if data.Sidebar == sidebar.Minimized {
			b.WriteString(` class="sidebar-minimized"`)
		}
		b.WriteString(`><nav id="sidebar" class="sidebar d-flex flex-column p-3"><div class="d-flex align-items-center mb-3"><span class="fs-4 sidebar-brand">Savor</span><button id="sidebarToggle" class="btn btn-sm btn-outline-secondary ms-auto" type="button" aria-label="Toggle sidebar">&#9776;</button></div><ul class="nav nav-pills flex-column mb-auto"><li class="nav-item"><a class="nav-link" href="/"><span class="nav-label">Search</span></a></li><li class="nav-item"><a class="nav-link" href="/pantry/"><span class="nav-label">Pantry</span></a></li><li class="nav-item"><a class="nav-link" href="/recipes/"><span class="nav-label">Recipes</span></a></li></ul>`)
		if data.Username != "" {
			b.WriteString(`<div class="sidebar-footer mt-3"><span class="small text-muted d-block mb-2">`)
			b.WriteString(stdhtml.EscapeString(data.Username))
			b.WriteString(`</span><form method="POST" action="/logout"><button class="btn btn-sm btn-outline-secondary" type="submit">Logout</button></form></div>`)
		}
		b.WriteString(`</nav><main class="content container-fluid py-3">`)
		if data.NavSearch {
			b.WriteString(`<form id="nav-search-form" method="POST" action="/product/search/" class="mb-3"><input type="hidden" name="navigate" value="1"><div class="input-group input-group-sm" style="max-width: 24rem;"><input class="form-control" type="text" name="product_name" placeholder="Search products" aria-label="Search products"><button class="btn btn-outline-secondary" type="submit">Search</button></div></form>`)
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</main>`+CSRFFormScript()+`</body></html>`)
		return err
	})
}
