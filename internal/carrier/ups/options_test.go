package ups

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParameterOptions tests the static parameter menus.
func TestParameterOptions(t *testing.T) {
	tests := []struct {
		name     string
		expected int
	}{
		{ParamDeliveryService, 7},
		{ParamPickupType, 6},
		{ParamContainerType, 12},
		{ParamCustomerClassification, 4},
		{ParamDimensionsUnit, 2},
		{ParamWeightUnit, 2},
		{ParamOriginationState, 51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := ParameterOptions(tt.name)
			require.NotNil(t, options)
			assert.Len(t, options, tt.expected)
		})
	}

	assert.Nil(t, ParameterOptions("no_such_parameter"))
	assert.Nil(t, ParameterOptions(""))
}

// TestParameterOptions_Codes spot-checks carrier code values.
func TestParameterOptions_Codes(t *testing.T) {
	services := ParameterOptions(ParamDeliveryService)
	assert.Contains(t, services, ParameterOption{Label: "Ground (1-5 Business Days)", Value: "03"})
	assert.Contains(t, services, ParameterOption{Label: "Next Day Air", Value: "01"})

	containers := ParameterOptions(ParamContainerType)
	assert.Contains(t, containers, ParameterOption{Label: "Small Express Box", Value: "2a"})

	states := ParameterOptions(ParamOriginationState)
	assert.Contains(t, states, ParameterOption{Label: "District of Columbia", Value: "DC"})
}

// TestParameterNames tests that every listed name resolves to a menu.
func TestParameterNames(t *testing.T) {
	names := ParameterNames()
	require.Len(t, names, 7)
	for _, name := range names {
		assert.NotNil(t, ParameterOptions(name), name)
	}
}
