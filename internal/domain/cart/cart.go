package cart

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bexiiiii/euroline-sub001/internal/domain/catalog"
)

var (
	ErrOutOfStock         = errors.New("cart: out of stock")
	ErrSubmissionInFlight = errors.New("cart: add already in progress")
	ErrOEMRequired        = errors.New("cart: oem is required")
	ErrInvalidQuantity    = errors.New("cart: quantity must be greater than zero")
	ErrInvalidPrice       = errors.New("cart: price must be zero or greater")
)

// Notice messages shown to the shopper.
const (
	MessageAdded        = "Added to cart"
	MessageOutOfStock   = "Out of stock"
	MessageInFlight     = "Adding to cart, please wait"
	MessageGenericError = "Failed to add item to cart"
)

// Outcome is the result of one add-to-cart click.
type Outcome string

const (
	OutcomeAdded      Outcome = "added"
	OutcomeOutOfStock Outcome = "out_of_stock"
	OutcomeInFlight   Outcome = "in_flight"
	OutcomeFailed     Outcome = "failed"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeWarning NoticeKind = "warning"
	NoticeError   NoticeKind = "error"
)

// Notice is the transient message surfaced after an attempt.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// AddRequest is the call shape sent to the cart collaborator. It is built per
// click and discarded once the call settles.
type AddRequest struct {
	OEM      string          `json:"oem"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl"`
}

// NewAddRequest builds the request for item. An empty brand falls back to the
// item's brand and then to catalog.UnknownBrand.
func NewAddRequest(item catalog.Item, brand string, quantity int, price decimal.Decimal, imageURL string) (AddRequest, error) {
	oem := strings.TrimSpace(item.OEM)
	if oem == "" {
		return AddRequest{}, ErrOEMRequired
	}
	if quantity <= 0 {
		return AddRequest{}, ErrInvalidQuantity
	}
	if price.IsNegative() {
		return AddRequest{}, ErrInvalidPrice
	}

	brand = strings.TrimSpace(brand)
	if brand == "" {
		brand = item.BrandOr(catalog.UnknownBrand)
	}

	return AddRequest{
		OEM:      oem,
		Name:     item.Name,
		Brand:    brand,
		Quantity: quantity,
		Price:    price,
		ImageURL: imageURL,
	}, nil
}

// SubmissionKey identifies one shopper's in-flight add for one part.
func SubmissionKey(subject, oem, brand string) string {
	return strings.Join([]string{subject, strings.ToUpper(oem), strings.ToUpper(brand)}, "|")
}
