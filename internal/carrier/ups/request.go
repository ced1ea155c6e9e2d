package ups

import (
	"encoding/xml"
	"strconv"

	"github.com/pkg/errors"

	"github.com/guttosm/rate-service/internal/domain/model"
)

// accessRequest is the credential preamble UPS expects ahead of the
// rating body in the same HTTP payload.
type accessRequest struct {
	XMLName   xml.Name `xml:"AccessRequest"`
	UserID    string   `xml:"UserId"`
	Password  string   `xml:"Password"`
	AccessKey string   `xml:"AccessLicenseNumber"`
}

type codeElement struct {
	Code string `xml:"Code"`
}

type transactionReference struct {
	CustomerContext string `xml:"CustomerContext"`
	XpciVersion     string `xml:"XpciVersion"`
}

type requestElement struct {
	TransactionReference transactionReference `xml:"TransactionReference"`
	RequestAction        string               `xml:"RequestAction"`
	RequestOption        string               `xml:"RequestOption"`
}

type addressElement struct {
	AddressLine1      string `xml:"AddressLine1"`
	AddressLine2      string `xml:"AddressLine2"`
	City              string `xml:"City"`
	StateProvinceCode string `xml:"StateProvinceCode"`
	PostalCode        string `xml:"PostalCode"`
	CountryCode       string `xml:"CountryCode"`
}

type shipperElement struct {
	Name          string         `xml:"Name"`
	ShipperNumber string         `xml:"ShipperNumber"`
	Address       addressElement `xml:"Address"`
}

type shipToElement struct {
	CompanyName   string         `xml:"CompanyName"`
	AttentionName string         `xml:"AttentionName"`
	PhoneNumber   string         `xml:"PhoneNumber"`
	Address       addressElement `xml:"Address"`
}

type shipFromElement struct {
	CompanyName   string         `xml:"CompanyName"`
	AttentionName string         `xml:"AttentionName"`
	PhoneNumber   string         `xml:"PhoneNumber"`
	FaxNumber     string         `xml:"FaxNumber"`
	Address       addressElement `xml:"Address"`
}

type dimensionsElement struct {
	UnitOfMeasurement codeElement `xml:"UnitOfMeasurement"`
	Length            string      `xml:"Length"`
	Width             string      `xml:"Width"`
	Height            string      `xml:"Height"`
}

type packageWeightElement struct {
	UnitOfMeasurement codeElement `xml:"UnitOfMeasurement"`
	Weight            string      `xml:"Weight"`
}

type packageElement struct {
	PackagingType codeElement          `xml:"PackagingType"`
	Description   string               `xml:"Description"`
	Dimensions    dimensionsElement    `xml:"Dimensions"`
	PackageWeight packageWeightElement `xml:"PackageWeight"`
}

type shipmentElement struct {
	Description string           `xml:"Description"`
	Shipper     shipperElement   `xml:"Shipper"`
	ShipTo      shipToElement    `xml:"ShipTo"`
	ShipFrom    shipFromElement  `xml:"ShipFrom"`
	Service     codeElement      `xml:"Service"`
	Packages    []packageElement `xml:"Package"`
}

type ratingRequest struct {
	XMLName                xml.Name        `xml:"RatingServiceSelectionRequest"`
	Request                requestElement  `xml:"Request"`
	PickupType             codeElement     `xml:"PickupType"`
	CustomerClassification codeElement     `xml:"CustomerClassification"`
	Shipment               shipmentElement `xml:"Shipment"`
}

// Builder serializes orders into UPS rating payloads.
type Builder struct {
	cfg Config
}

// NewBuilder creates a Builder for the given account configuration.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg.withDefaults()}
}

// Build produces the full request payload: access request followed by
// the rating body, exactly as UPS consumes it on the wire. The same
// string serves as the cache fingerprint, so the output is
// deterministic for identical input.
func (b *Builder) Build(order *model.Order, packages []float64, opt model.ShippingOption) (string, error) {
	access := accessRequest{
		UserID:    b.cfg.UserID,
		Password:  b.cfg.Password,
		AccessKey: b.cfg.AccessKey,
	}

	shipTo := order.ShipTo()
	phone := shipTo.Cell
	if phone == "" {
		phone = shipTo.Phone
	}

	rating := ratingRequest{
		Request: requestElement{
			TransactionReference: transactionReference{
				CustomerContext: "Rating and Service",
				XpciVersion:     "1.0",
			},
			RequestAction: "Rate",
			RequestOption: "Rate",
		},
		PickupType:             codeElement{Code: pickupCode(opt.PickupType)},
		CustomerClassification: codeElement{Code: classificationCode(opt.PickupType, opt.CustomerClassification)},
		Shipment: shipmentElement{
			Description: "Rate Shopping - Domestic",
			Shipper: shipperElement{
				Name:          b.cfg.CompanyName,
				ShipperNumber: b.cfg.ShipperNumber,
				Address:       b.originAddress(),
			},
			ShipTo: shipToElement{
				CompanyName:   shipTo.Company,
				AttentionName: shipTo.Name,
				PhoneNumber:   phone,
				Address: addressElement{
					AddressLine1:      shipTo.Street,
					AddressLine2:      shipTo.Street2,
					City:              shipTo.City,
					StateProvinceCode: shipTo.Region,
					PostalCode:        shipTo.Zip,
					CountryCode:       "US",
				},
			},
			ShipFrom: shipFromElement{
				CompanyName:   b.cfg.CompanyName,
				AttentionName: b.cfg.AttentionName,
				PhoneNumber:   b.cfg.PhoneNumber,
				FaxNumber:     b.cfg.FaxNumber,
				Address:       b.originAddress(),
			},
			Service:  codeElement{Code: opt.ServiceCode},
			Packages: b.buildPackages(packages, opt),
		},
	}

	accessXML, err := xml.Marshal(access)
	if err != nil {
		return "", errors.Wrap(err, "marshal access request")
	}
	ratingXML, err := xml.Marshal(rating)
	if err != nil {
		return "", errors.Wrap(err, "marshal rating request")
	}
	return string(accessXML) + string(ratingXML), nil
}

func (b *Builder) originAddress() addressElement {
	return addressElement{
		AddressLine1:      b.cfg.StreetAddress,
		AddressLine2:      b.cfg.StreetAddress2,
		City:              b.cfg.City,
		StateProvinceCode: b.cfg.StateProvinceCode,
		PostalCode:        b.cfg.PostalCode,
		CountryCode:       "US",
	}
}

func (b *Builder) buildPackages(weights []float64, opt model.ShippingOption) []packageElement {
	packages := make([]packageElement, 0, len(weights))
	for _, w := range weights {
		packages = append(packages, packageElement{
			PackagingType: codeElement{Code: opt.ContainerType},
			Description:   "Rate",
			Dimensions: dimensionsElement{
				UnitOfMeasurement: codeElement{Code: b.cfg.DimensionsUnit},
				Length:            b.cfg.Length,
				Width:             b.cfg.Width,
				Height:            b.cfg.Height,
			},
			PackageWeight: packageWeightElement{
				UnitOfMeasurement: codeElement{Code: b.cfg.WeightUnit},
				Weight:            strconv.FormatFloat(w, 'f', -1, 64),
			},
		})
	}
	return packages
}

// pickupCode defaults an unset pickup type to daily pickup.
func pickupCode(pickup string) string {
	if pickup == "" {
		return "01"
	}
	return pickup
}

// classificationCode resolves the customer classification. When unset
// it follows the pickup type: daily pickup maps to daily rates, every
// other pickup except customer counter maps to retail rates, and
// customer counter sends an empty code.
func classificationCode(pickup, classification string) string {
	if classification != "" {
		return classification
	}
	if pickup == "" || pickup == "01" {
		return "01"
	}
	if pickup != "03" {
		return "04"
	}
	return ""
}
