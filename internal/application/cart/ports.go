package cart

import (
	"context"

	domcart "github.com/bexiiiii/euroline-sub001/internal/domain/cart"
)

type IDGenerator interface {
	NewID() string
}

// CartPort is the remote cart collaborator.
type CartPort interface {
	AddItem(ctx context.Context, req domcart.AddRequest) error
}

// userMessage is implemented by collaborator errors that carry a message
// meant for the shopper.
type userMessage interface {
	UserMessage() string
}
