package search

import (
	"github.com/shopspring/decimal"

	"github.com/bexiiiii/euroline-sub001/internal/domain/catalog"
	"github.com/bexiiiii/euroline-sub001/internal/domain/selector"
)

// Row is one result prepared for a storefront shell.
type Row struct {
	Item      catalog.Item     `json:"item"`
	Brand     string           `json:"brand"`
	Analog    bool             `json:"analog"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Currency  string           `json:"currency,omitempty"`
	ImageURL  string           `json:"imageUrl,omitempty"`
	Available int              `json:"available"`
	Summary   catalog.Summary  `json:"summary"`
	Selector  selector.State   `json:"selector"`
}

func newRow(item catalog.Item, layout catalog.Layout, imageOrigin string) Row {
	summary := catalog.Summarize(item, layout)

	row := Row{
		Item:      item,
		Brand:     item.BrandOr(""),
		Analog:    item.IsAnalog(),
		Available: summary.Available,
		Summary:   summary,
		Selector:  selector.New(summary.Available),
	}
	if p, ok := item.Price.Decimal(); ok {
		row.Price = &p
	}
	if item.Currency != nil {
		row.Currency = *item.Currency
	}
	if item.ImageURL != nil {
		row.ImageURL = catalog.ResolveImageURL(imageOrigin, *item.ImageURL)
	}
	return row
}
