package ups

import (
	"encoding/xml"
	"strconv"

	"github.com/pkg/errors"

	"github.com/guttosm/rate-service/internal/domain/model"
)

type responseError struct {
	ErrorCode        string `xml:"ErrorCode"`
	ErrorDescription string `xml:"ErrorDescription"`
}

type responseStatus struct {
	ResponseStatusCode string        `xml:"ResponseStatusCode"`
	Error              responseError `xml:"Error"`
}

type totalCharges struct {
	CurrencyCode  string `xml:"CurrencyCode"`
	MonetaryValue string `xml:"MonetaryValue"`
}

type ratedShipment struct {
	TotalCharges totalCharges `xml:"TotalCharges"`
	Warnings     []string     `xml:"RatedShipmentWarning"`
}

type ratingResponse struct {
	XMLName       xml.Name       `xml:"RatingServiceSelectionResponse"`
	Response      responseStatus `xml:"Response"`
	RatedShipment ratedShipment  `xml:"RatedShipment"`
}

// ParseResponse decodes a UPS rating response. A response status code
// of "0" means the request was rejected; the carrier's error
// description becomes the returned error. A total charge that fails to
// parse yields a zero rate, not an error.
func ParseResponse(data []byte) (model.CarrierQuote, error) {
	var resp ratingResponse
	if err := xml.Unmarshal(data, &resp); err != nil {
		return model.CarrierQuote{}, errors.Wrap(err, "decode rating response")
	}

	if resp.Response.ResponseStatusCode == "0" {
		return model.CarrierQuote{}, errors.New(resp.Response.Error.ErrorDescription)
	}

	rate, err := strconv.ParseFloat(resp.RatedShipment.TotalCharges.MonetaryValue, 64)
	if err != nil {
		rate = 0
	}

	return model.CarrierQuote{
		Rate:     rate,
		Currency: resp.RatedShipment.TotalCharges.CurrencyCode,
		Warnings: resp.RatedShipment.Warnings,
	}, nil
}
