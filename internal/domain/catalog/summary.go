package catalog

import (
	"fmt"

	"github.com/samber/lo"
)

// Layout selects how many warehouse rows a storefront shell has room for.
type Layout string

const (
	LayoutDesktop Layout = "desktop"
	LayoutMobile  Layout = "mobile"
)

// ParseLayout maps a query value onto a layout, defaulting to desktop.
func ParseLayout(s string) Layout {
	if Layout(s) == LayoutMobile {
		return LayoutMobile
	}
	return LayoutDesktop
}

// VisibleWarehouses is the number of warehouse rows the layout renders.
func (l Layout) VisibleWarehouses() int {
	if l == LayoutMobile {
		return 2
	}
	return 3
}

// SummaryLine is one rendered warehouse row.
type SummaryLine struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
}

// Summary is the human readable stock block shown next to a result.
type Summary struct {
	Available int           `json:"available"`
	InStock   bool          `json:"inStock"`
	Label     string        `json:"label"`
	Lines     []SummaryLine `json:"lines"`
	Hidden    int           `json:"hidden"`
	More      string        `json:"more,omitempty"`
}

// Summarize renders the stock block for a layout. The aggregated total decides
// between "Available" and "Out of stock" even if stale warehouse rows say otherwise.
func Summarize(item Item, layout Layout) Summary {
	available := AvailableQuantity(item)
	s := Summary{
		Available: available,
		InStock:   available > 0,
		Lines:     []SummaryLine{},
	}
	if available > 0 {
		s.Label = fmt.Sprintf("Available: %d pcs", available)
	} else {
		s.Label = "Out of stock"
	}

	limit := layout.VisibleWarehouses()
	shown := item.Warehouses
	if len(shown) > limit {
		shown = shown[:limit]
	}
	s.Lines = lo.Map(shown, func(w WarehouseStock, _ int) SummaryLine {
		q, _ := w.Qty.Int()
		return SummaryLine{Code: w.Code, Label: warehouseLabel(w), Quantity: q}
	})
	s.Hidden = len(item.Warehouses) - len(shown)
	if s.Hidden > 0 {
		s.More = fmt.Sprintf("and %d more warehouse(s)", s.Hidden)
	}
	return s
}

func warehouseLabel(w WarehouseStock) string {
	if w.Name != nil && *w.Name != "" {
		return *w.Name
	}
	return w.Code
}
