package cart

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bexiiiii/euroline-sub001/internal/domain/catalog"
)

func TestNewAddRequest(t *testing.T) {
	t.Parallel()

	brand := "VOLVO"
	name := gofakeit.ProductName()
	price := decimal.RequireFromString("15400.50")

	tests := []struct {
		name      string
		item      catalog.Item
		brand     string
		quantity  int
		price     decimal.Decimal
		wantBrand string
		wantErr   error
	}{
		{
			name:      "explicit brand wins",
			item:      catalog.Item{OEM: "21707132", Name: name, Brand: &brand},
			brand:     "Volvo Trucks",
			quantity:  2,
			price:     price,
			wantBrand: "Volvo Trucks",
		},
		{
			name:      "falls back to item brand",
			item:      catalog.Item{OEM: "21707132", Name: name, Brand: &brand},
			quantity:  1,
			price:     price,
			wantBrand: "VOLVO",
		},
		{
			name:      "unknown brand",
			item:      catalog.Item{OEM: "21707132", Name: name},
			brand:     "  ",
			quantity:  1,
			price:     price,
			wantBrand: catalog.UnknownBrand,
		},
		{
			name:     "missing oem",
			item:     catalog.Item{OEM: " "},
			quantity: 1,
			wantErr:  ErrOEMRequired,
		},
		{
			name:     "zero quantity",
			item:     catalog.Item{OEM: "1"},
			quantity: 0,
			wantErr:  ErrInvalidQuantity,
		},
		{
			name:     "negative price",
			item:     catalog.Item{OEM: "1"},
			quantity: 1,
			price:    decimal.NewFromInt(-1),
			wantErr:  ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := NewAddRequest(tt.item, tt.brand, tt.quantity, tt.price, "https://cdn/x.jpg")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "21707132", req.OEM)
			assert.Equal(t, tt.wantBrand, req.Brand)
			assert.Equal(t, name, req.Name)
			assert.Equal(t, tt.quantity, req.Quantity)
			assert.True(t, tt.price.Equal(req.Price))
			assert.Equal(t, "https://cdn/x.jpg", req.ImageURL)
		})
	}
}

func TestSubmissionKeyIsCaseInsensitiveOnPart(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SubmissionKey("u1", "abc", "volvo"), SubmissionKey("u1", "ABC", "VOLVO"))
	assert.NotEqual(t, SubmissionKey("u1", "abc", "volvo"), SubmissionKey("u2", "abc", "volvo"))
}
