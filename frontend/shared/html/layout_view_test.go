package html

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"savor/frontend/shared/sidebar"
)

func renderLayout(t *testing.T, data LayoutData) *goquery.Document {
	t.Helper()
	var out strings.Builder
	if err := Layout(data, nil).Render(context.Background(), &out); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out.String()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestLayoutRendersNavAndLogout(t *testing.T) {
	doc := renderLayout(t, LayoutData{Title: "Pantry", Username: "casper"})

	for _, href := range []string{"/", "/pantry/", "/recipes/"} {
		if doc.Find(`.nav-link[href="`+href+`"]`).Length() != 1 {
			t.Fatalf("missing nav link %s", href)
		}
	}
	if doc.Find(`form[action="/logout"]`).Length() != 1 {
		t.Fatal("missing logout form")
	}
	if doc.Find("body.sidebar-minimized").Length() != 0 {
		t.Fatal("expanded sidebar must not carry the minimized class")
	}
}

func TestLayoutMinimizedSidebarClass(t *testing.T) {
	doc := renderLayout(t, LayoutData{Title: "Pantry", Sidebar: sidebar.Minimized})
	if doc.Find("body.sidebar-minimized").Length() != 1 {
		t.Fatal("minimized state must set the body class")
	}
}

func TestLayoutNavSearchFormStoresAndNavigates(t *testing.T) {
	doc := renderLayout(t, LayoutData{Title: "Pantry", NavSearch: true})

	form := doc.Find(`#nav-search-form`)
	if form.Length() != 1 {
		t.Fatal("missing nav search form")
	}
	if action, _ := form.Attr("action"); action != "/product/search/" {
		t.Fatalf("form action %q", action)
	}
	flag := form.Find(`input[name="navigate"]`)
	if v, _ := flag.Attr("value"); v != "1" {
		t.Fatalf("navigate flag %q", v)
	}
	if form.Find(`input[name="product_name"]`).Length() != 1 {
		t.Fatal("missing product name input")
	}
}

func TestLayoutOmitsNavSearchOnSearchScreen(t *testing.T) {
	doc := renderLayout(t, LayoutData{Title: "Search"})
	if doc.Find(`#nav-search-form`).Length() != 0 {
		t.Fatal("the search screen has its own form; the shell must not add one")
	}
}
