package catalog

import (
	"strings"

	"github.com/samber/lo"
)

// Split separates primary hits from analog substitutes, keeping input order.
func Split(items []Item) (primary, analogs []Item) {
	analogs, primary = lo.FilterReject(items, func(it Item, _ int) bool {
		return it.IsAnalog()
	})
	return primary, analogs
}

// FilterAnalogsByBrand narrows analog items to those whose brand contains
// brand, case-insensitively. Primary items are never filtered out.
func FilterAnalogsByBrand(items []Item, brand string) []Item {
	needle := strings.ToLower(strings.TrimSpace(brand))
	if needle == "" {
		return items
	}
	return lo.Filter(items, func(it Item, _ int) bool {
		if !it.IsAnalog() {
			return true
		}
		return strings.Contains(strings.ToLower(it.BrandOr("")), needle)
	})
}
