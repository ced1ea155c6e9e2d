package ups

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/rate-service/internal/domain/model"
)

func testConfig() Config {
	return Config{
		AccessKey:         "ACCESSKEY",
		UserID:            "shipper-user",
		Password:          "secret",
		ShipperNumber:     "1V3333",
		CompanyName:       "Acme Fulfillment",
		AttentionName:     "Shipping Desk",
		PhoneNumber:       "555-0100",
		FaxNumber:         "555-0101",
		StreetAddress:     "1 Warehouse Way",
		City:              "Atlanta",
		StateProvinceCode: "GA",
		PostalCode:        "30301",
	}
}

func testOrder() *model.Order {
	return &model.Order{
		SessionID:    "session-1",
		CurrencyCode: "USD",
		Customer: model.Address{
			Company:     "Buyer Inc",
			Name:        "Pat Buyer",
			Phone:       "555-0200",
			Street:      "2 Main St",
			City:        "New York",
			Region:      "NY",
			Zip:         "10001",
			CountryCode: "US",
		},
	}
}

// TestBuilder_Build tests payload structure and determinism.
func TestBuilder_Build(t *testing.T) {
	builder := NewBuilder(testConfig())
	opt := model.ShippingOption{ID: "ups-ground", ServiceCode: "03", ContainerType: "02"}

	payload, err := builder.Build(testOrder(), []float64{7.5, 10}, opt)
	require.NoError(t, err)

	// Credentials preamble first, rating body second.
	assert.True(t, strings.HasPrefix(payload, "<AccessRequest>"))
	assert.Contains(t, payload, "<UserId>shipper-user</UserId>")
	assert.Contains(t, payload, "<Password>secret</Password>")
	assert.Contains(t, payload, "<AccessLicenseNumber>ACCESSKEY</AccessLicenseNumber>")
	assert.Contains(t, payload, "</AccessRequest><RatingServiceSelectionRequest>")

	assert.Contains(t, payload, "<CustomerContext>Rating and Service</CustomerContext>")
	assert.Contains(t, payload, "<XpciVersion>1.0</XpciVersion>")
	assert.Contains(t, payload, "<RequestAction>Rate</RequestAction>")
	assert.Contains(t, payload, "<RequestOption>Rate</RequestOption>")
	assert.Contains(t, payload, "<Description>Rate Shopping - Domestic</Description>")
	assert.Contains(t, payload, "<ShipperNumber>1V3333</ShipperNumber>")
	assert.Contains(t, payload, "<Service><Code>03</Code></Service>")

	// One Package element per weight, formatted without trailing zeros.
	assert.Equal(t, 2, strings.Count(payload, "<Description>Rate</Description>"))
	assert.Contains(t, payload, "<Weight>7.5</Weight>")
	assert.Contains(t, payload, "<Weight>10</Weight>")

	// Defaults fill the dimension fields.
	assert.Contains(t, payload, "<Length>10</Length>")
	assert.Contains(t, payload, "<UnitOfMeasurement><Code>LBS</Code></UnitOfMeasurement>")

	again, err := builder.Build(testOrder(), []float64{7.5, 10}, opt)
	require.NoError(t, err)
	assert.Equal(t, payload, again, "identical input must produce an identical fingerprint")
}

// TestBuilder_Build_ShipToSelection tests the delivery/customer address
// precedence and the phone fallback.
func TestBuilder_Build_ShipToSelection(t *testing.T) {
	builder := NewBuilder(testConfig())
	opt := model.ShippingOption{ServiceCode: "03"}

	t.Run("customer address when delivery zip is empty", func(t *testing.T) {
		payload, err := builder.Build(testOrder(), []float64{1}, opt)
		require.NoError(t, err)
		assert.Contains(t, payload, "<PostalCode>10001</PostalCode>")
		assert.Contains(t, payload, "<AttentionName>Pat Buyer</AttentionName>")
		assert.Contains(t, payload, "<PhoneNumber>555-0200</PhoneNumber>")
	})

	t.Run("delivery address wins when its zip is filled", func(t *testing.T) {
		order := testOrder()
		order.Delivery = model.Address{
			Name:        "Recipient",
			Cell:        "555-0300",
			Phone:       "555-0400",
			City:        "Chicago",
			Region:      "IL",
			Zip:         "60601",
			CountryCode: "US",
		}
		payload, err := builder.Build(order, []float64{1}, opt)
		require.NoError(t, err)
		assert.Contains(t, payload, "<PostalCode>60601</PostalCode>")
		assert.NotContains(t, payload, "<PostalCode>10001</PostalCode>")
		// Cell number takes precedence over the land line.
		assert.Contains(t, payload, "<PhoneNumber>555-0300</PhoneNumber>")
	})
}

// TestPickupCode tests the pickup type default.
func TestPickupCode(t *testing.T) {
	assert.Equal(t, "01", pickupCode(""))
	assert.Equal(t, "03", pickupCode("03"))
	assert.Equal(t, "20", pickupCode("20"))
}

// TestClassificationCode tests classification defaulting by pickup type.
func TestClassificationCode(t *testing.T) {
	tests := []struct {
		name           string
		pickup         string
		classification string
		expected       string
	}{
		{"explicit classification wins", "03", "53", "53"},
		{"empty pickup defaults to daily rates", "", "", "01"},
		{"daily pickup defaults to daily rates", "01", "", "01"},
		{"one time pickup defaults to retail rates", "06", "", "04"},
		{"air service center defaults to retail rates", "20", "", "04"},
		{"customer counter sends no classification", "03", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classificationCode(tt.pickup, tt.classification))
		})
	}
}
