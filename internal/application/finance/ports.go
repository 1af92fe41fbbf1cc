package finance

import (
	"context"

	"github.com/shopspring/decimal"

	domfinance "github.com/bexiiiii/euroline-sub001/internal/domain/finance"
)

// FinancePort is the remote customer finance collaborator.
type FinancePort interface {
	Finance(ctx context.Context, customerID string) (domfinance.Snapshot, error)
	UpdateCreditLimit(ctx context.Context, customerID string, limit decimal.Decimal) error
}
