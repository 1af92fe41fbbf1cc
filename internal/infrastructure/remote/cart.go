package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/bexiiiii/euroline-sub001/internal/domain/cart"
)

const endpointCartAdd = "cart.add"

type addItemBody struct {
	OEM      string      `json:"oem"`
	Name     string      `json:"name"`
	Brand    string      `json:"brand"`
	Quantity int         `json:"quantity"`
	Price    json.Number `json:"price"`
	ImageURL string      `json:"imageUrl"`
}

// AddItem posts one line to the shopper's cart.
func (c *Client) AddItem(ctx context.Context, req cart.AddRequest) error {
	body := addItemBody{
		OEM:      req.OEM,
		Name:     req.Name,
		Brand:    req.Brand,
		Quantity: req.Quantity,
		Price:    json.Number(req.Price.String()),
		ImageURL: req.ImageURL,
	}
	return c.do(ctx, endpointCartAdd, http.MethodPost, c.url(c.paths.Cart), body, nil)
}
