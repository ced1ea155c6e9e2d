// Package ups implements rating against the UPS Rating API
// (RatingServiceSelectionRequest, XML over HTTPS).
package ups

// Config holds the UPS account credentials and the shipper's
// origination details. Every rating request embeds the credentials, so
// changing them also changes the request fingerprint.
type Config struct {
	// Endpoint is the rating service URL. Defaults to the UPS customer
	// integration environment.
	Endpoint string

	AccessKey     string
	UserID        string
	Password      string
	ShipperNumber string

	CompanyName   string
	AttentionName string
	PhoneNumber   string
	FaxNumber     string

	StreetAddress     string
	StreetAddress2    string
	City              string
	StateProvinceCode string
	PostalCode        string

	// WeightUnit is LBS or KGS, DimensionsUnit IN or CM.
	WeightUnit     string
	DimensionsUnit string

	// Default package dimensions, sent verbatim.
	Length string
	Width  string
	Height string
}

// DefaultEndpoint is the UPS customer integration (test) environment.
const DefaultEndpoint = "https://wwwcie.ups.com/ups.app/xml/Rate"

// withDefaults fills unset fields with the values UPS expects.
func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.WeightUnit == "" {
		c.WeightUnit = "LBS"
	}
	if c.DimensionsUnit == "" {
		c.DimensionsUnit = "IN"
	}
	if c.Length == "" {
		c.Length = "10"
	}
	if c.Width == "" {
		c.Width = "10"
	}
	if c.Height == "" {
		c.Height = "10"
	}
	return c
}
