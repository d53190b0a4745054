package cards

// Banner is a safety callout rendered at the top of a product card.
type Banner struct {
	// Severity is a bootstrap alert level: "danger" for allergen
	// conflicts, "warning" for dietary mismatches.
	Severity string
	Label    string
	Tags     []string
}

// ProductCard is the display record for one search or favourites result.
// It is derived from a backend ProductRecord and owns no state of its own.
type ProductCard struct {
	ID           int64
	Name         string
	Brands       string
	Code         string
	ImageURL     string
	Quantity     string
	Unit         string
	IsFavourited bool

	AllergenBanner *Banner
	DietaryBanner  *Banner
	// Elevated applies the high-severity card style. Only an allergen
	// conflict elevates; a dietary mismatch alone never does.
	Elevated bool
}

// PantryCard is the display record for one stored pantry item. Quantity
// mirrors the backend's authoritative value and is patched in place after
// each successful removal.
type PantryCard struct {
	ItemID      int64
	Name        string
	ImageURL    string
	Quantity    float64
	ProductSize string
	Unit        string
	Code        string

	AllergenBanner *Banner
	DietaryBanner  *Banner
	Elevated       bool
}
