package catalog

// AnalogCatalog tags substitute parts returned by the secondary catalog source.
const AnalogCatalog = "UMAPI_ANALOG"

// UnknownBrand is sent to the cart when a result carries no brand.
const UnknownBrand = "UNKNOWN"

// WarehouseStock is the stock of one part at one physical location.
type WarehouseStock struct {
	Code    string  `json:"code"`
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Qty     Number  `json:"qty"`
}

// Item is a single search hit. OEM together with Brand identifies the part.
type Item struct {
	OEM        string           `json:"oem"`
	Name       string           `json:"name"`
	Brand      *string          `json:"brand,omitempty"`
	Catalog    string           `json:"catalog"`
	Price      Number           `json:"price"`
	Currency   *string          `json:"currency,omitempty"`
	Quantity   Number           `json:"quantity"`
	Warehouses []WarehouseStock `json:"warehouses,omitempty"`
	ImageURL   *string          `json:"imageUrl,omitempty"`
}

// IsAnalog reports whether the item came from the analog catalog.
func (i Item) IsAnalog() bool { return i.Catalog == AnalogCatalog }

// BrandOr returns the brand, or def when the item has none.
func (i Item) BrandOr(def string) string {
	if i.Brand == nil || *i.Brand == "" {
		return def
	}
	return *i.Brand
}

// CatalogLabel is a low-cardinality label for metrics.
func (i Item) CatalogLabel() string {
	if i.IsAnalog() {
		return "analog"
	}
	return "primary"
}

// Page is the advisory pagination block that accompanies a result list.
type Page struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// ResultSet is what the search collaborator returns for one query.
type ResultSet struct {
	Items []Item
	Page  Page
}
