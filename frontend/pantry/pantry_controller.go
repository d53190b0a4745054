package pantry

import (
	"context"
	"math"
	"strconv"
	"strings"

	"savor/backend"
)

// Controller issues pantry mutations and reconciles quantities with the
// backend's authoritative answers. Adds are validated locally; removals
// are forwarded as entered because the backend owns rejection of invalid
// amounts.
type Controller struct {
	client *backend.Client
}

func NewController(client *backend.Client) *Controller {
	return &Controller{client: client}
}

// Add validates the entered quantity and, when it holds, asks the backend
// to add the product. An invalid quantity produces a validation outcome
// without any network call.
func (c *Controller) Add(ctx context.Context, creds backend.Credentials, productID int64, quantityText string) (AddOutcome, error) {
	qty, ok := parseAddQuantity(quantityText)
	if !ok {
		return AddOutcome{
			Validation: true,
			Message:    "Enter a quantity greater than zero.",
		}, nil
	}

	res, err := c.client.AddProduct(ctx, creds, backend.AddProductRequest{
		ProductID:     productID,
		QuantityToAdd: qty,
	})
	if err != nil {
		return AddOutcome{}, err
	}
	return AddOutcome{Success: res.Success, Message: res.Message}, nil
}

// Remove forwards the entered amount unchecked and patches the card from
// quantity_left. Removed is set once the backend reports nothing left.
func (c *Controller) Remove(ctx context.Context, creds backend.Credentials, itemID, quantityText string) (RemoveOutcome, error) {
	qty, err := strconv.ParseFloat(strings.TrimSpace(quantityText), 64)
	if err != nil {
		qty = 0
	}

	res, err := c.client.RemovePantryItem(ctx, creds, backend.RemoveItemRequest{
		ItemID:           itemID,
		QuantityToRemove: qty,
	})
	if err != nil {
		return RemoveOutcome{}, err
	}
	return RemoveOutcome{
		QuantityLeft: res.QuantityLeft,
		Removed:      res.QuantityLeft <= 0,
		Message:      res.Message,
	}, nil
}

// List fetches the user's stored items, optionally narrowed by a name
// query. An empty query returns the whole pantry.
func (c *Controller) List(ctx context.Context, creds backend.Credentials, query string) ([]backend.PantryItem, error) {
	res, err := c.client.SearchPantry(ctx, creds, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	return res.FoundItems, nil
}

func parseAddQuantity(text string) (float64, bool) {
	qty, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(qty) || math.IsInf(qty, 0) || qty <= 0 {
		return 0, false
	}
	return qty, true
}
