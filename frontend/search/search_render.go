package search

import (
	"strconv"

	"savor/backend"
	"savor/frontend/shared/cards"
)

// maxPageLinks is the width of the pagination window.
const maxPageLinks = 5

// BuildResults turns one backend result page into display records plus a
// pagination descriptor. Pure: no state is read or written.
func BuildResults(res *backend.SearchResult) ResultsView {
	if res == nil || len(res.Products) == 0 {
		return ResultsView{Empty: true}
	}

	view := ResultsView{Cards: make([]cards.ProductCard, 0, len(res.Products))}
	for _, p := range res.Products {
		view.Cards = append(view.Cards, cards.BuildProductCard(p))
	}
	view.Pagination = buildPagination(res.Count, res.PageSize, res.PageCount)
	return view
}

// buildPagination derives the page-link window: at most maxPageLinks links
// centered on the current page, clamped to [1, totalPages], with ellipsis
// markers when the window does not touch either end. Returns nil when a
// single page holds everything.
func buildPagination(totalCount, pageSize, currentPage int) *Pagination {
	if pageSize <= 0 {
		return nil
	}
	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages <= 1 {
		return nil
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	start := currentPage - maxPageLinks/2
	if start < 1 {
		start = 1
	}
	end := start + maxPageLinks - 1
	if end > totalPages {
		end = totalPages
	}
	if end-start+1 < maxPageLinks {
		start = end - maxPageLinks + 1
		if start < 1 {
			start = 1
		}
	}

	p := &Pagination{
		Current:  currentPage,
		Total:    totalPages,
		Previous: PageLink{Page: currentPage - 1, Label: "Previous", Disabled: currentPage == 1},
		Next:     PageLink{Page: currentPage + 1, Label: "Next", Disabled: currentPage == totalPages},
	}

	if start > 1 {
		p.Pages = append(p.Pages, PageLink{Page: 1, Label: "1"})
		if start > 2 {
			p.Pages = append(p.Pages, PageLink{Ellipsis: true, Label: "...", Disabled: true})
		}
	}
	for i := start; i <= end; i++ {
		p.Pages = append(p.Pages, PageLink{Page: i, Label: strconv.Itoa(i), Active: i == currentPage})
	}
	if end < totalPages {
		if end < totalPages-1 {
			p.Pages = append(p.Pages, PageLink{Ellipsis: true, Label: "...", Disabled: true})
		}
		p.Pages = append(p.Pages, PageLink{Page: totalPages, Label: strconv.Itoa(totalPages)})
	}

	return p
}
