package catalog

import (
	"math"

	"github.com/samber/lo"
)

// AvailableQuantity is the single figure that gates cart admission.
//
// A pre-aggregated Quantity is authoritative and skips the warehouse breakdown.
// Otherwise warehouse quantities are summed, missing ones counting as zero. The
// result is never negative.
func AvailableQuantity(item Item) int {
	if q, ok := item.Quantity.Int(); ok {
		return max(q, 0)
	}
	if len(item.Warehouses) == 0 {
		return 0
	}
	total := lo.Reduce(item.Warehouses, func(acc int, w WarehouseStock, _ int) int {
		q, _ := w.Qty.Int()
		return addSaturating(acc, q)
	}, 0)
	return max(total, 0)
}

func addSaturating(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}
