package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreditLimit(t *testing.T) {
	t.Parallel()

	d := decimal.RequireFromString

	tests := []struct {
		name    string
		limit   decimal.Decimal
		used    decimal.Decimal
		wantErr error
	}{
		{name: "above used", limit: d("500000"), used: d("120000.50")},
		{name: "equal to used", limit: d("100"), used: d("100")},
		{name: "zero with nothing used", limit: decimal.Zero, used: decimal.Zero},
		{name: "negative", limit: d("-1"), used: decimal.Zero, wantErr: ErrNegativeLimit},
		{name: "below used", limit: d("99.99"), used: d("100"), wantErr: ErrLimitBelowUsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateCreditLimit(tt.limit, tt.used)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSnapshotRemaining(t *testing.T) {
	t.Parallel()

	s := Snapshot{CreditLimit: decimal.NewFromInt(100), UsedCredit: decimal.NewFromInt(40)}
	assert.True(t, s.Remaining().Equal(decimal.NewFromInt(60)))

	s.UsedCredit = decimal.NewFromInt(150)
	assert.True(t, s.Remaining().IsZero())
}

func TestValidateCustomerID(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, ValidateCustomerID("  "), ErrCustomerRequired)
	require.NoError(t, ValidateCustomerID("c-1"))
}
