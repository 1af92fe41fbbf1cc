package httppresentation

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	appcart "github.com/bexiiiii/euroline-sub001/internal/application/cart"
	domcart "github.com/bexiiiii/euroline-sub001/internal/domain/cart"
	"github.com/bexiiiii/euroline-sub001/internal/domain/catalog"
	"github.com/bexiiiii/euroline-sub001/internal/infrastructure/credentials"
)

// Item stays raw so the search row can be echoed back with fields this
// gateway does not model.
type addToCartRequest struct {
	Item     json.RawMessage  `json:"item"`
	Brand    string           `json:"brand" validate:"max=100"`
	Quantity int              `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
	ImageURL string           `json:"imageUrl" validate:"omitempty,max=2048"`
}

type addToCartResponse struct {
	Outcome  domcart.Outcome `json:"outcome"`
	Notice   domcart.Notice  `json:"notice"`
	Quantity int             `json:"quantity"`
}

func (h *Handler) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, err)
		return
	}

	var item catalog.Item
	if err := decodeEmbedded(req.Item, &item); err != nil {
		writeDomainError(w, err)
		return
	}

	token, _ := credentials.FromContext(r.Context())
	res, err := h.cart.Execute(r.Context(), appcart.AddToCartInput{
		Item:     item,
		Brand:    req.Brand,
		Quantity: req.Quantity,
		Price:    req.Price,
		ImageURL: req.ImageURL,
		Subject:  credentials.Subject(token),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, cartStatus(res.Outcome), addToCartResponse{
		Outcome:  res.Outcome,
		Notice:   res.Notice,
		Quantity: res.Quantity,
	})
}

func cartStatus(o domcart.Outcome) int {
	switch o {
	case domcart.OutcomeAdded:
		return http.StatusOK
	case domcart.OutcomeOutOfStock, domcart.OutcomeInFlight:
		return http.StatusConflict
	case domcart.OutcomeFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
