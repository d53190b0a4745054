package backend

import (
	"encoding/json"
	"strings"
)

// ProductRecord is a catalog entry as served by the backend, including the
// per-user safety annotations. The frontend never mutates one; after a
// mutation it replaces its copy with whatever the backend returned.
type ProductRecord struct {
	ID                   int64    `json:"id"`
	ProductName          string   `json:"product_name"`
	Brands               string   `json:"brands"`
	Code                 string   `json:"code"`
	ImageURL             string   `json:"image_url"`
	ProductQuantity      *float64 `json:"product_quantity"`
	ProductQuantityUnit  string   `json:"product_quantity_unit"`
	IsFavourited         bool     `json:"is_favourited"`
	HasAllergenConflict  bool     `json:"has_allergen_conflict"`
	ConflictingAllergens []string `json:"conflicting_allergens"`
	HasDietaryMismatch   bool     `json:"has_dietary_mismatch"`
	MissingDietaryTags   []string `json:"missing_dietary_tags"`
}

// SearchRequest is the body for /product/search/.
type SearchRequest struct {
	Barcode     string `json:"barcode"`
	ProductName string `json:"product_name"`
	Page        int    `json:"page"`
	WasScanned  bool   `json:"wasScanned"`
}

// AdvancedSearchRequest is the body for /product/adv_search.
type AdvancedSearchRequest struct {
	SearchTerm string `json:"search_term"`
	Country    string `json:"country"`
	Category   string `json:"category"`
	Brand      string `json:"brand"`
	Page       int    `json:"page"`
}

// SearchResult is a page of products. page_count carries the page this
// result was served for, not the number of pages.
type SearchResult struct {
	Products  []ProductRecord `json:"products"`
	Count     int             `json:"count"`
	PageSize  int             `json:"page_size"`
	PageCount int             `json:"page_count"`
	ScanToAdd bool            `json:"scan_to_add"`

	Err  string          `json:"error"`
	Errs json.RawMessage `json:"errors"`
}

// BusinessError returns the server-reported error text carried inside an
// otherwise successful response, or "" when the result is usable.
func (r *SearchResult) BusinessError() string {
	if r == nil {
		return ""
	}
	if strings.TrimSpace(r.Err) != "" {
		return r.Err
	}
	if len(r.Errs) > 0 && string(r.Errs) != "null" && string(r.Errs) != `""` {
		return "Invalid input."
	}
	return ""
}

// PantryItem is one stored quantity of a product in the user's pantry.
type PantryItem struct {
	ID                   int64    `json:"id"`
	ProductName          string   `json:"product_name"`
	ImageURL             string   `json:"image_url"`
	Quantity             float64  `json:"quantity"`
	ProductQuantity      *float64 `json:"product_quantity"`
	ProductQuantityUnit  string   `json:"product_quantity_unit"`
	Code                 string   `json:"code"`
	HasAllergenConflict  bool     `json:"has_allergen_conflict"`
	ConflictingAllergens []string `json:"conflicting_allergens"`
	HasDietaryMismatch   bool     `json:"has_dietary_mismatch"`
	MissingDietaryTags   []string `json:"missing_dietary_tags"`
}

// PantrySearchResult is the body returned by /search_pantry/.
type PantrySearchResult struct {
	FoundItems []PantryItem `json:"found_items"`
}

// AddProductRequest is the body for /pantry/add_product. The backend, not
// this frontend, decides whether the add ultimately succeeds.
type AddProductRequest struct {
	ProductID     int64   `json:"product_id"`
	QuantityToAdd float64 `json:"quantityToAdd"`
}

type AddProductResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RemoveItemRequest is the body for /pantry/remove_pantryitem. Quantities
// are forwarded as entered; the backend rejects invalid removals itself.
type RemoveItemRequest struct {
	ItemID           string  `json:"itemId"`
	QuantityToRemove float64 `json:"quantityToRemove"`
}

type RemoveItemResult struct {
	QuantityLeft float64 `json:"quantity_left"`
	Message      string  `json:"message"`
}

// FavouriteResult is returned by the toggle endpoint, carrying the new
// state plus the full product record for rebuilding the favourites view.
type FavouriteResult struct {
	IsFavourited bool          `json:"is_favourited"`
	Product      ProductRecord `json:"product"`
}

// FavouritesResult lists the user's favourited products for the
// secondary favourites view area.
type FavouritesResult struct {
	Products []ProductRecord `json:"products"`
}

type SuggestionsResult struct {
	Suggestions []string `json:"suggestions"`
}

type CriteriaResult struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	Countries  []string `json:"countries"`
}

// RecipeIngredient mirrors one line of a suggested or saved recipe.
type RecipeIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type Recipe struct {
	ID           int64              `json:"id"`
	Title        string             `json:"title"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	IsSeen       bool               `json:"is_seen"`
	Status       string             `json:"status"`
}

// RecipesOverview backs the recipes page.
type RecipesOverview struct {
	LatestSuggestions []Recipe `json:"latest_suggestions"`
	RecentlySuggested []Recipe `json:"recently_suggested"`
	SavedRecipes      []Recipe `json:"saved_recipes"`
}

type SaveRecipeResult struct {
	Message   string  `json:"message"`
	NewRecipe *Recipe `json:"new_recipe"`
}

type DeleteRecipeResult struct {
	Message string `json:"message"`
}
