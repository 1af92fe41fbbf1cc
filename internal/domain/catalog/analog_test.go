package catalog

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestFilterAnalogsByBrandOnlyTouchesAnalogs(t *testing.T) {
	t.Parallel()

	items := []Item{
		{OEM: "1", Brand: strPtr("VOLVO"), Catalog: "PRIMARY"},
		{OEM: "2", Brand: strPtr("Febi Bilstein"), Catalog: AnalogCatalog},
		{OEM: "3", Brand: strPtr("MANN-FILTER"), Catalog: AnalogCatalog},
		{OEM: "4", Brand: strPtr("Bosch"), Catalog: ""},
		{OEM: "5", Catalog: AnalogCatalog},
	}

	got := FilterAnalogsByBrand(items, "  BILST ")

	oems := lo.Map(got, func(it Item, _ int) string { return it.OEM })
	assert.Equal(t, []string{"1", "2", "4"}, oems)
}

func TestFilterAnalogsByBrandEmptyIsIdentity(t *testing.T) {
	t.Parallel()

	items := []Item{{OEM: "1", Catalog: AnalogCatalog}, {OEM: "2"}}
	assert.Equal(t, items, FilterAnalogsByBrand(items, ""))
}

func TestSplit(t *testing.T) {
	t.Parallel()

	items := []Item{
		{OEM: "1"},
		{OEM: "2", Catalog: AnalogCatalog},
		{OEM: "3", Catalog: "OEM"},
	}

	primary, analogs := Split(items)
	assert.Equal(t, []string{"1", "3"}, lo.Map(primary, func(it Item, _ int) string { return it.OEM }))
	assert.Equal(t, []string{"2"}, lo.Map(analogs, func(it Item, _ int) string { return it.OEM }))
}

func TestItemBrandOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, UnknownBrand, Item{}.BrandOr(UnknownBrand))
	assert.Equal(t, UnknownBrand, Item{Brand: strPtr("")}.BrandOr(UnknownBrand))
	assert.Equal(t, "VOLVO", Item{Brand: strPtr("VOLVO")}.BrandOr(UnknownBrand))
}
