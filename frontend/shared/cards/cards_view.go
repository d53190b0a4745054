package cards

import (
	"html"
	"strconv"
	"strings"
)

// The fragment writers build the same delegated-event markup everywhere a
// card appears: buttons carry data-action plus the stable product/item id,
// and a single document-level listener in app.js dispatches on those.
// No per-card listeners are ever attached.

func writeBannerHTML(b *strings.Builder, banner *Banner) {
	if banner == nil {
		return
	}
	b.WriteString(`<div class="alert alert-`)
	b.WriteString(banner.Severity)
	b.WriteString(` p-1 mb-2 small" role="alert"><strong>`)
	b.WriteString(html.EscapeString(banner.Label))
	b.WriteString(`:</strong> `)
	for i, tag := range banner.Tags {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("<code>")
		b.WriteString(html.EscapeString(tag))
		b.WriteString("</code>")
	}
	b.WriteString(`</div>`)
}

func cardClass(elevated bool) string {
	if elevated {
		return "card h-100 shadow-lg border-danger border-3"
	}
	return "card h-100 border-0 shadow-sm"
}

// WriteProductCardHTML renders one search/favourites result card.
func WriteProductCardHTML(b *strings.Builder, card ProductCard) {
	id := strconv.FormatInt(card.ID, 10)

	b.WriteString(`<div class="col-12 col-sm-6 col-md-4 mb-4 product-card-wrapper" data-product-card="`)
	b.WriteString(id)
	b.WriteString(`"><div class="`)
	b.WriteString(cardClass(card.Elevated))
	b.WriteString(`"><img src="`)
	b.WriteString(html.EscapeString(card.ImageURL))
	b.WriteString(`" alt="`)
	b.WriteString(html.EscapeString(card.Name))
	b.WriteString(`" class="card-img-top img-fluid rounded-top" style="max-height: 150px; object-fit: cover;" onerror="this.onerror=null;this.src='`)
	b.WriteString(PlaceholderImage)
	b.WriteString(`';"><div class="card-body d-flex flex-column justify-content-between">`)

	b.WriteString(`<h3 class="card-title h5 mb-2 text-dark">`)
	b.WriteString(html.EscapeString(card.Name))
	b.WriteString(`</h3>`)

	writeBannerHTML(b, card.AllergenBanner)
	writeBannerHTML(b, card.DietaryBanner)

	b.WriteString(`<p class="card-text text-muted mb-1 small"><strong>Brands:</strong> `)
	b.WriteString(html.EscapeString(card.Brands))
	b.WriteString(`</p><p class="card-text text-muted mb-3 small"><strong>Code:</strong> `)
	b.WriteString(html.EscapeString(card.Code))
	b.WriteString(`</p>`)

	b.WriteString(`<div class="d-flex align-items-center mb-3"><input class="product-quantity-input form-control me-2" type="number" min="0.01" step="0.01" value="1"><span class="text-secondary me-1">`)
	b.WriteString(html.EscapeString(card.Quantity))
	b.WriteString(`</span><span class="text-muted small">`)
	b.WriteString(html.EscapeString(card.Unit))
	b.WriteString(`</span></div>`)

	b.WriteString(`<div class="mt-auto d-flex flex-column"><button class="btn btn-outline-primary btn-sm mb-2" data-action="add-product" data-product-id="`)
	b.WriteString(id)
	b.WriteString(`">Add to Pantry</button><button class="btn btn-sm `)
	if card.IsFavourited {
		b.WriteString(`btn-outline-danger" data-action="toggle-favourite" data-favourited="1"`)
	} else {
		b.WriteString(`btn-outline-primary" data-action="toggle-favourite" data-favourited="0"`)
	}
	b.WriteString(` data-product-id="`)
	b.WriteString(id)
	b.WriteString(`">`)
	if card.IsFavourited {
		b.WriteString("Remove Favourite")
	} else {
		b.WriteString("Favourite")
	}
	b.WriteString(`</button></div><div class="message-container mt-2"></div></div></div></div>`)
}

// WritePantryCardHTML renders one pantry item card.
func WritePantryCardHTML(b *strings.Builder, card PantryCard) {
	id := strconv.FormatInt(card.ItemID, 10)

	b.WriteString(`<div class="col-12 col-sm-6 col-md-4 mb-4 pantry-item-col" data-pantry-item="`)
	b.WriteString(id)
	b.WriteString(`"><div class="`)
	b.WriteString(cardClass(card.Elevated))
	b.WriteString(` pantry-item"><img src="`)
	b.WriteString(html.EscapeString(card.ImageURL))
	b.WriteString(`" alt="`)
	b.WriteString(html.EscapeString(card.Name))
	b.WriteString(`" class="card-img-top img-fluid rounded-top" style="max-height: 150px; object-fit: cover;" onerror="this.onerror=null;this.src='`)
	b.WriteString(PlaceholderImage)
	b.WriteString(`';"><div class="card-body d-flex flex-column justify-content-between">`)

	b.WriteString(`<h3 class="card-title h5 mb-2 text-dark">`)
	b.WriteString(html.EscapeString(card.Name))
	b.WriteString(`</h3>`)

	writeBannerHTML(b, card.AllergenBanner)
	writeBannerHTML(b, card.DietaryBanner)

	b.WriteString(`<p class="card-text text-muted mb-1 small"><strong>Quantity:</strong> <span class="pantry-quantity-count">`)
	b.WriteString(strconv.FormatFloat(card.Quantity, 'f', -1, 64))
	b.WriteString(`</span></p><p class="card-text text-muted mb-1 small"><strong>Product Size:</strong> `)
	b.WriteString(html.EscapeString(strings.TrimSpace(card.ProductSize + " " + card.Unit)))
	b.WriteString(`</p>`)

	if card.Code != "" {
		b.WriteString(`<p class="card-text mb-1 small"><a href="/pantry/items/`)
		b.WriteString(html.EscapeString(card.Code))
		b.WriteString(`/barcode.png" target="_blank">Barcode</a></p>`)
	}

	b.WriteString(`<div class="mt-auto d-flex align-items-center justify-content-left"><input class="remove-quantity-input form-control me-2" type="number" min="1.00" step="1.00" value="1" style="max-width: 80px;"><button class="btn btn-outline-danger btn-sm" data-action="remove-item" data-item-id="`)
	b.WriteString(id)
	b.WriteString(`">Remove</button></div><div class="message-container mt-2"></div></div></div></div>`)
}
