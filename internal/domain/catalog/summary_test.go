package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func warehouses(n int, qty int) []WarehouseStock {
	out := make([]WarehouseStock, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, WarehouseStock{
			Code: fmt.Sprintf("W%d", i+1),
			Name: strPtr(fmt.Sprintf("Warehouse %d", i+1)),
			Qty:  NewNumber(qty),
		})
	}
	return out
}

func TestSummarizeLimitsRowsPerLayout(t *testing.T) {
	t.Parallel()

	item := Item{OEM: "21707132", Warehouses: warehouses(5, 2)}

	desktop := Summarize(item, LayoutDesktop)
	assert.Len(t, desktop.Lines, 3)
	assert.Equal(t, 2, desktop.Hidden)
	assert.Equal(t, "and 2 more warehouse(s)", desktop.More)
	assert.Equal(t, "Available: 10 pcs", desktop.Label)
	assert.True(t, desktop.InStock)

	mobile := Summarize(item, LayoutMobile)
	assert.Len(t, mobile.Lines, 2)
	assert.Equal(t, 3, mobile.Hidden)
	assert.Equal(t, "Warehouse 1", mobile.Lines[0].Label)
}

func TestSummarizeTotalGatesAvailability(t *testing.T) {
	t.Parallel()

	// Stale per-warehouse rows but an authoritative zero total.
	item := Item{OEM: "1", Quantity: NewNumber(0), Warehouses: warehouses(2, 4)}

	s := Summarize(item, LayoutDesktop)
	assert.Equal(t, "Out of stock", s.Label)
	assert.False(t, s.InStock)
	assert.Len(t, s.Lines, 2)
	assert.Empty(t, s.More)
}

func TestSummarizeFallsBackToCode(t *testing.T) {
	t.Parallel()

	item := Item{OEM: "1", Warehouses: []WarehouseStock{{Code: "ALM-01", Qty: NewNumber(1)}}}

	s := Summarize(item, LayoutMobile)
	assert.Equal(t, []SummaryLine{{Code: "ALM-01", Label: "ALM-01", Quantity: 1}}, s.Lines)
	assert.Zero(t, s.Hidden)
}

func TestParseLayout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LayoutMobile, ParseLayout("mobile"))
	assert.Equal(t, LayoutDesktop, ParseLayout(""))
	assert.Equal(t, LayoutDesktop, ParseLayout("tablet"))
}
