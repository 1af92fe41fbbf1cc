package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/bexiiiii/euroline-sub001/internal/domain/finance"
)

const (
	endpointFinanceGet    = "finance.get"
	endpointFinanceUpdate = "finance.update_credit_limit"
)

// Finance loads the customer's credit snapshot.
func (c *Client) Finance(ctx context.Context, customerID string) (finance.Snapshot, error) {
	var snap finance.Snapshot
	u := c.url(c.paths.Finance) + "/" + url.PathEscape(customerID)
	if err := c.do(ctx, endpointFinanceGet, http.MethodGet, u, nil, &snap); err != nil {
		return finance.Snapshot{}, err
	}
	if snap.CustomerID == "" {
		snap.CustomerID = customerID
	}
	return snap, nil
}

// UpdateCreditLimit replaces the customer's credit limit.
func (c *Client) UpdateCreditLimit(ctx context.Context, customerID string, limit decimal.Decimal) error {
	body := struct {
		CreditLimit json.Number `json:"creditLimit"`
	}{CreditLimit: json.Number(limit.String())}
	u := c.url(c.paths.Finance) + "/" + url.PathEscape(customerID) + "/credit-limit"
	return c.do(ctx, endpointFinanceUpdate, http.MethodPut, u, body, nil)
}
