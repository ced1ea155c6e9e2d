// Package model defines the core domain entities for the rate service.
package model

// LineKind identifies the kind of an order line.
type LineKind string

const (
	// LineKindProduct is a regular product line.
	LineKindProduct LineKind = "product"
	// LineKindPointProduct is a product line paid with loyalty points.
	LineKindPointProduct LineKind = "point_product"
	// LineKindFixed is a fixed-price product line.
	LineKindFixed LineKind = "fixed"
	// LineKindDiscount is a discount line; it never ships.
	LineKindDiscount LineKind = "discount"
	// LineKindTax is a tax line; it never ships.
	LineKindTax LineKind = "tax"
	// LineKindFee is a fee line; it never ships.
	LineKindFee LineKind = "fee"
)

// Shippable reports whether lines of this kind contribute weight and
// quantity to physical packages.
func (k LineKind) Shippable() bool {
	return k == LineKindProduct || k == LineKindPointProduct || k == LineKindFixed
}

// Product carries the physical attributes of a purchasable item.
type Product struct {
	// Weight is the unit weight, in the configured weight unit.
	Weight float64 `json:"weight"`
	// ManufacturerID identifies the manufacturer; may be empty.
	ManufacturerID string `json:"manufacturer_id,omitempty"`
}

// OrderLine is a single line on an order. Lines without a Product
// reference are excluded from packaging entirely.
type OrderLine struct {
	Kind     LineKind `json:"kind"`
	Quantity float64  `json:"quantity"`
	Product  *Product `json:"product,omitempty"`
}

// Address holds the address fields consumed by the carrier request.
type Address struct {
	Company     string `json:"company,omitempty"`
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Cell        string `json:"cell,omitempty"`
	Street      string `json:"street,omitempty"`
	Street2     string `json:"street2,omitempty"`
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	Zip         string `json:"zip,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

// Order owns an ordered sequence of lines plus the warning and error
// lists the rate pipeline appends to. Delivery fields take precedence
// over customer fields when the delivery zip is filled.
type Order struct {
	ID           string      `json:"id,omitempty"`
	SessionID    string      `json:"session_id,omitempty"`
	CurrencyCode string      `json:"currency_code,omitempty"`
	Delivery     Address     `json:"delivery"`
	Customer     Address     `json:"customer"`
	Lines        []OrderLine `json:"lines"`

	// ProviderWarnings and ProviderErrors accumulate carrier messages
	// for the current calculation attempt.
	ProviderWarnings []string `json:"provider_warnings,omitempty"`
	ProviderErrors   []string `json:"provider_errors,omitempty"`
}

// ClearProviderMessages resets the accumulated warnings and errors.
// The pipeline calls this at the start of every calculation attempt.
func (o *Order) ClearProviderMessages() {
	o.ProviderWarnings = nil
	o.ProviderErrors = nil
}

// AddProviderWarnings appends carrier warnings to the order.
func (o *Order) AddProviderWarnings(warnings ...string) {
	o.ProviderWarnings = append(o.ProviderWarnings, warnings...)
}

// AddProviderErrors appends carrier errors to the order.
func (o *Order) AddProviderErrors(errs ...string) {
	o.ProviderErrors = append(o.ProviderErrors, errs...)
}

// DestinationZip returns the delivery zip, falling back to the
// customer zip when delivery fields are not filled.
func (o *Order) DestinationZip() string {
	if o.Delivery.Zip != "" {
		return o.Delivery.Zip
	}
	return o.Customer.Zip
}

// DestinationCountry returns the delivery country code, falling back
// to the customer country code when unset.
func (o *Order) DestinationCountry() string {
	if o.Delivery.CountryCode != "" {
		return o.Delivery.CountryCode
	}
	return o.Customer.CountryCode
}

// ShipTo returns the address the shipment is rated against: the
// delivery address when its zip is filled, otherwise the customer
// address.
func (o *Order) ShipTo() Address {
	if o.Delivery.Zip != "" {
		return o.Delivery
	}
	return o.Customer
}

// Price is a rated shipping price.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}
