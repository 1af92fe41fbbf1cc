package finance

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domfinance "github.com/bexiiiii/euroline-sub001/internal/domain/finance"
)

type MockFinancePort struct {
	mock.Mock
}

func (m *MockFinancePort) Finance(ctx context.Context, customerID string) (domfinance.Snapshot, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(domfinance.Snapshot), args.Error(1)
}

func (m *MockFinancePort) UpdateCreditLimit(ctx context.Context, customerID string, limit decimal.Decimal) error {
	args := m.Called(ctx, customerID, limit)
	return args.Error(0)
}

func TestUpdateCreditLimitUseCase(t *testing.T) {
	t.Parallel()

	customerID := gofakeit.UUID()
	used := decimal.NewFromInt(40000)
	snapshot := domfinance.Snapshot{CustomerID: customerID, CreditLimit: decimal.NewFromInt(50000), UsedCredit: used}

	tests := []struct {
		name    string
		input   UpdateCreditLimitInput
		setup   func(m *MockFinancePort)
		wantErr error
	}{
		{
			name:  "raises limit",
			input: UpdateCreditLimitInput{CustomerID: customerID, CreditLimit: decimal.NewFromInt(80000)},
			setup: func(m *MockFinancePort) {
				m.On("Finance", mock.Anything, customerID).Return(snapshot, nil).Once()
				m.On("UpdateCreditLimit", mock.Anything, customerID, decimal.NewFromInt(80000)).Return(nil).Once()
			},
		},
		{
			name:    "blank customer",
			input:   UpdateCreditLimitInput{CustomerID: " ", CreditLimit: decimal.NewFromInt(1)},
			setup:   func(*MockFinancePort) {},
			wantErr: domfinance.ErrCustomerRequired,
		},
		{
			name:    "negative limit never reaches upstream",
			input:   UpdateCreditLimitInput{CustomerID: customerID, CreditLimit: decimal.NewFromInt(-5)},
			setup:   func(*MockFinancePort) {},
			wantErr: domfinance.ErrNegativeLimit,
		},
		{
			name:  "limit below used credit",
			input: UpdateCreditLimitInput{CustomerID: customerID, CreditLimit: decimal.NewFromInt(30000)},
			setup: func(m *MockFinancePort) {
				m.On("Finance", mock.Anything, customerID).Return(snapshot, nil).Once()
			},
			wantErr: domfinance.ErrLimitBelowUsed,
		},
		{
			name:  "snapshot load fails",
			input: UpdateCreditLimitInput{CustomerID: customerID, CreditLimit: decimal.NewFromInt(80000)},
			setup: func(m *MockFinancePort) {
				m.On("Finance", mock.Anything, customerID).Return(domfinance.Snapshot{}, errors.New("timeout")).Once()
			},
			wantErr: ErrUpstream,
		},
		{
			name:  "update fails",
			input: UpdateCreditLimitInput{CustomerID: customerID, CreditLimit: decimal.NewFromInt(80000)},
			setup: func(m *MockFinancePort) {
				m.On("Finance", mock.Anything, customerID).Return(snapshot, nil).Once()
				m.On("UpdateCreditLimit", mock.Anything, customerID, mock.Anything).Return(errors.New("status 500")).Once()
			},
			wantErr: ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port := &MockFinancePort{}
			tt.setup(port)

			uc := NewUpdateCreditLimitUseCase(port, nil)
			res, err := uc.Execute(context.Background(), tt.input)
			port.AssertExpectations(t)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.True(t, res.Snapshot.CreditLimit.Equal(tt.input.CreditLimit))
			assert.True(t, res.Snapshot.UsedCredit.Equal(used))
		})
	}
}
