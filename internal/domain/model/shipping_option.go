package model

// PackagingConfig controls how shippable order lines are split into
// physical packages.
type PackagingConfig struct {
	// GroupByManufacturer groups lines into one package run per
	// manufacturer. When set, MaxItemsPerPackage is ignored.
	GroupByManufacturer bool `json:"group_by_manufacturer"`
	// MaxItemsPerPackage caps the item count per package. Zero or a
	// negative value means no cap.
	MaxItemsPerPackage int `json:"max_items_per_package"`
}

// Unbounded reports whether the effective per-package item cap is
// unlimited.
func (c PackagingConfig) Unbounded() bool {
	return c.GroupByManufacturer || c.MaxItemsPerPackage <= 0
}

// ShippingOption is one configured carrier/service combination. Its ID
// is the stable key used for rate caching and cycle deduplication.
type ShippingOption struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`

	// Carrier service selection codes.
	ServiceCode            string `json:"service_code"`
	PickupType             string `json:"pickup_type,omitempty"`
	ContainerType          string `json:"container_type,omitempty"`
	CustomerClassification string `json:"customer_classification,omitempty"`

	Packaging PackagingConfig `json:"packaging"`
}

// CarrierQuote is the normalized outcome of a carrier rating call.
type CarrierQuote struct {
	Rate     float64
	Currency string
	Warnings []string
}
