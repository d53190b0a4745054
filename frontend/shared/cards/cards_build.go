package cards

import (
	"strconv"
	"strings"

	"savor/backend"
)

// PlaceholderImage is served for products without an image, and is also
// the client-side fallback when a product image URL fails to load.
const PlaceholderImage = "/assets/placeholder.svg"

// HumanizeTag turns a backend taxonomy tag into display form:
// underscores become spaces and the result is upper-cased, so
// "tree_nuts" renders as "TREE NUTS".
func HumanizeTag(tag string) string {
	return strings.ToUpper(strings.ReplaceAll(tag, "_", " "))
}

func humanizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, HumanizeTag(tag))
	}
	return out
}

func allergenBanner(tags []string) *Banner {
	return &Banner{Severity: "danger", Label: "WARNING: Contains user-specified allergens", Tags: humanizeTags(tags)}
}

func dietaryBanner(tags []string) *Banner {
	return &Banner{Severity: "warning", Label: "POSSIBLE MISMATCH: Missing dietary requirements", Tags: humanizeTags(tags)}
}

// BuildProductCard derives the display record for a product result.
func BuildProductCard(p backend.ProductRecord) ProductCard {
	card := ProductCard{
		ID:           p.ID,
		Name:         fallback(p.ProductName, "No Name"),
		Brands:       fallback(p.Brands, "N/A"),
		Code:         fallback(p.Code, "N/A"),
		ImageURL:     fallback(p.ImageURL, PlaceholderImage),
		Quantity:     formatQuantity(p.ProductQuantity),
		Unit:         fallback(p.ProductQuantityUnit, "item"),
		IsFavourited: p.IsFavourited,
	}
	if p.HasAllergenConflict {
		card.AllergenBanner = allergenBanner(p.ConflictingAllergens)
		card.Elevated = true
	}
	if p.HasDietaryMismatch {
		card.DietaryBanner = dietaryBanner(p.MissingDietaryTags)
	}
	return card
}

// BuildPantryCard derives the display record for a stored pantry item.
func BuildPantryCard(item backend.PantryItem) PantryCard {
	card := PantryCard{
		ItemID:      item.ID,
		Name:        fallback(item.ProductName, "No Name"),
		ImageURL:    fallback(item.ImageURL, PlaceholderImage),
		Quantity:    item.Quantity,
		ProductSize: formatQuantity(item.ProductQuantity),
		Unit:        fallback(item.ProductQuantityUnit, "item"),
		Code:        strings.TrimSpace(item.Code),
	}
	if item.HasAllergenConflict {
		card.AllergenBanner = allergenBanner(item.ConflictingAllergens)
		card.Elevated = true
	}
	if item.HasDietaryMismatch {
		card.DietaryBanner = dietaryBanner(item.MissingDietaryTags)
	}
	return card
}

func fallback(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func formatQuantity(q *float64) string {
	if q == nil {
		return ""
	}
	return strconv.FormatFloat(*q, 'f', -1, 64)
}
