package favourites

import (
	"context"

	"savor/backend"
)

// Controller exposes the two user intents over the backend's single
// toggle endpoint. The backend flips state regardless of which intent the
// caller believed it had; the returned is_favourited is authoritative and
// the UI is rebuilt from it, never from the intent.
type Controller struct {
	client *backend.Client
}

func NewController(client *backend.Client) *Controller {
	return &Controller{client: client}
}

func (c *Controller) Favourite(ctx context.Context, creds backend.Credentials, productID int64) (*backend.FavouriteResult, error) {
	return c.client.ToggleFavourite(ctx, creds, productID)
}

func (c *Controller) Unfavourite(ctx context.Context, creds backend.Credentials, productID int64) (*backend.FavouriteResult, error) {
	return c.client.ToggleFavourite(ctx, creds, productID)
}
