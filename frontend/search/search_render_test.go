package search

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"savor/backend"
)

func TestBuildPaginationWindow(t *testing.T) {
	// 47 results at 10 per page is 5 pages.
	p := buildPagination(47, 10, 3)
	if p == nil {
		t.Fatal("expected pagination")
	}
	if p.Total != 5 {
		t.Fatalf("expected 5 total pages, got %d", p.Total)
	}
	if len(p.Pages) != 5 {
		t.Fatalf("expected 5 page links, got %d", len(p.Pages))
	}
	active := 0
	for _, link := range p.Pages {
		if link.Active {
			active++
			if link.Page != 3 {
				t.Fatalf("expected page 3 active, got %d", link.Page)
			}
		}
	}
	if active != 1 {
		t.Fatalf("expected exactly one active link, got %d", active)
	}
	if p.Previous.Disabled || p.Next.Disabled {
		t.Fatal("interior page must have both edges enabled")
	}
}

func TestBuildPaginationEdges(t *testing.T) {
	p := buildPagination(47, 10, 1)
	if !p.Previous.Disabled {
		t.Fatal("Previous must be disabled on page 1")
	}
	if p.Next.Disabled {
		t.Fatal("Next must be enabled on page 1")
	}

	p = buildPagination(47, 10, 5)
	if p.Previous.Disabled {
		t.Fatal("Previous must be enabled on the last page")
	}
	if !p.Next.Disabled {
		t.Fatal("Next must be disabled on the last page")
	}
}

func TestBuildPaginationClampsOutOfRangePage(t *testing.T) {
	p := buildPagination(47, 10, 99)
	if p.Current != 5 {
		t.Fatalf("expected current clamped to 5, got %d", p.Current)
	}
	p = buildPagination(47, 10, 0)
	if p.Current != 1 {
		t.Fatalf("expected current clamped to 1, got %d", p.Current)
	}
}

func TestBuildPaginationSinglePageIsNil(t *testing.T) {
	if buildPagination(7, 10, 1) != nil {
		t.Fatal("one page of results must not paginate")
	}
	if buildPagination(0, 10, 1) != nil {
		t.Fatal("zero results must not paginate")
	}
	if buildPagination(47, 0, 1) != nil {
		t.Fatal("zero page size must not paginate")
	}
}

func TestBuildPaginationEllipsis(t *testing.T) {
	// Page 10 of 20: window is 8..12, both edges collapsed to ellipsis.
	p := buildPagination(200, 10, 10)
	labels := make([]string, 0, len(p.Pages))
	for _, link := range p.Pages {
		labels = append(labels, link.Label)
	}
	joined := strings.Join(labels, " ")
	want := "1 ... 8 9 10 11 12 ... 20"
	if joined != want {
		t.Fatalf("expected %q, got %q", want, joined)
	}
}

func TestBuildResultsEmpty(t *testing.T) {
	view := BuildResults(&backend.SearchResult{Count: 0})
	if !view.Empty {
		t.Fatal("expected empty view")
	}
	view = BuildResults(nil)
	if !view.Empty {
		t.Fatal("nil result must render as empty")
	}
}

func TestRenderResultsFragmentActivePageIsNotALink(t *testing.T) {
	res := &backend.SearchResult{
		Products:  []backend.ProductRecord{{ID: 1, ProductName: "Oat Milk"}},
		Count:     47,
		PageSize:  10,
		PageCount: 3,
	}
	doc := parseFragment(t, RenderResultsFragment(BuildResults(res)))

	if n := doc.Find(`li.page-item.active a`).Length(); n != 0 {
		t.Fatalf("active page must not be an anchor, found %d", n)
	}
	if doc.Find(`li.page-item.active span`).Text() != "3" {
		t.Fatalf("expected active page 3, got %q", doc.Find(`li.page-item.active span`).Text())
	}
	if n := doc.Find(`a[data-page]`).Length(); n == 0 {
		t.Fatal("expected navigable page links")
	}
}

func TestRenderResultsFragmentSafetyBanners(t *testing.T) {
	res := &backend.SearchResult{
		Products: []backend.ProductRecord{{
			ID:                   7,
			ProductName:          "Trail Mix",
			HasAllergenConflict:  true,
			ConflictingAllergens: []string{"peanuts", "tree_nuts"},
			HasDietaryMismatch:   true,
			MissingDietaryTags:   []string{"vegan"},
		}},
		Count:     1,
		PageSize:  10,
		PageCount: 1,
	}
	html := RenderResultsFragment(BuildResults(res))
	doc := parseFragment(t, html)

	danger := doc.Find(".alert-danger").Text()
	if !strings.Contains(danger, "PEANUTS") || !strings.Contains(danger, "TREE NUTS") {
		t.Fatalf("expected humanized allergen tokens, got %q", danger)
	}
	if !strings.Contains(doc.Find(".alert-warning").Text(), "VEGAN") {
		t.Fatal("expected dietary mismatch banner")
	}
	if doc.Find(".card.border-danger").Length() != 1 {
		t.Fatal("allergen conflict must elevate the card style")
	}
}

func TestRenderResultsFragmentOutcomeAlerts(t *testing.T) {
	cases := []struct {
		name string
		view ResultsView
		want string
	}{
		{"warning", ResultsView{Warning: "Please enter a barcode or product name to search."}, "alert-warning"},
		{"network", ResultsView{NetworkError: true}, "alert-danger"},
		{"business", ResultsView{Alert: "Invalid input."}, "alert-danger"},
		{"empty", ResultsView{Empty: true}, "alert-info"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := parseFragment(t, RenderResultsFragment(tc.view))
			if doc.Find("."+tc.want).Length() != 1 {
				t.Fatalf("expected one %s alert", tc.want)
			}
			if doc.Find(".product-card-wrapper").Length() != 0 {
				t.Fatal("alert views must not render cards")
			}
		})
	}
}

func parseFragment(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	return doc
}
