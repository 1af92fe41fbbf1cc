package finance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrCustomerRequired = errors.New("finance: customer id is required")
	ErrNegativeLimit    = errors.New("finance: credit limit must not be negative")
	ErrLimitBelowUsed   = errors.New("finance: credit limit is below used credit")
)

// Snapshot is the customer's current credit position as reported upstream.
type Snapshot struct {
	CustomerID  string          `json:"customerId"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
	UsedCredit  decimal.Decimal `json:"usedCredit"`
}

// Remaining is the unused part of the limit; it never goes below zero.
func (s Snapshot) Remaining() decimal.Decimal {
	r := s.CreditLimit.Sub(s.UsedCredit)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// ValidateCreditLimit checks a new limit against what the customer already owes.
func ValidateCreditLimit(limit, used decimal.Decimal) error {
	if limit.IsNegative() {
		return ErrNegativeLimit
	}
	if limit.LessThan(used) {
		return fmt.Errorf("%w: limit %s, used %s", ErrLimitBelowUsed, limit.StringFixed(2), used.StringFixed(2))
	}
	return nil
}

func ValidateCustomerID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrCustomerRequired
	}
	return nil
}
