package ups

// ParameterOption is one selectable value for a configuration
// parameter, as shown to operators configuring shipping options.
type ParameterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Parameter menu names accepted by ParameterOptions.
const (
	ParamDeliveryService        = "delivery_service"
	ParamPickupType             = "pickup_type"
	ParamContainerType          = "container_type"
	ParamCustomerClassification = "customer_classification"
	ParamDimensionsUnit         = "dimensions_unit"
	ParamWeightUnit             = "weight_unit"
	ParamOriginationState       = "origination_state"
)

// ParameterOptions returns the selectable values for the named
// parameter, or nil for an unknown name. The codes are fixed by the
// UPS Rating API.
func ParameterOptions(name string) []ParameterOption {
	switch name {
	case ParamDeliveryService:
		return []ParameterOption{
			{"Next Day Air", "01"},
			{"Next Day Air Early AM", "14"},
			{"Next Day Air Saver", "13"},
			{"2nd Day Air AM", "59"},
			{"2nd Day Air", "02"},
			{"3 Day Select", "12"},
			{"Ground (1-5 Business Days)", "03"},
		}
	case ParamPickupType:
		return []ParameterOption{
			{"RDP - Daily Pickup", "01"},
			{"CC - Customer Counter", "03"},
			{"OTP - One Time Pickup", "06"},
			{"OCA - On Call Air", "07"},
			{"LC - Letter Center", "19"},
			{"ASC - Air Service Center", "20"},
		}
	case ParamContainerType:
		return []ParameterOption{
			{"UNKNOWN", "00"},
			{"UPS Letter", "01"},
			{"Package", "02"},
			{"Tube", "03"},
			{"Pak", "04"},
			{"Express Box", "21"},
			{"25KG Box", "24"},
			{"10KG Box", "25"},
			{"Pallet", "30"},
			{"Small Express Box", "2a"},
			{"Medium Express Box", "2b"},
			{"Large Express Box", "2c"},
		}
	case ParamCustomerClassification:
		return []ParameterOption{
			{"Rates Associated with Shipper Number", "00"},
			{"Daily Rates", "01"},
			{"Retail Rates", "04"},
			{"Standard List Rates", "53"},
		}
	case ParamDimensionsUnit:
		return []ParameterOption{
			{"Inches", "IN"},
			{"Centimeters", "CM"},
		}
	case ParamWeightUnit:
		return []ParameterOption{
			{"Pounds", "LBS"},
			{"Kilograms", "KGS"},
		}
	case ParamOriginationState:
		return usStates
	}
	return nil
}

// ParameterNames lists the parameter menus in a stable order.
func ParameterNames() []string {
	return []string{
		ParamDeliveryService,
		ParamPickupType,
		ParamContainerType,
		ParamCustomerClassification,
		ParamDimensionsUnit,
		ParamWeightUnit,
		ParamOriginationState,
	}
}

var usStates = []ParameterOption{
	{"Alabama", "AL"},
	{"Alaska", "AK"},
	{"Arizona", "AZ"},
	{"Arkansas", "AR"},
	{"California", "CA"},
	{"Colorado", "CO"},
	{"Connecticut", "CT"},
	{"Delaware", "DE"},
	{"District of Columbia", "DC"},
	{"Florida", "FL"},
	{"Georgia", "GA"},
	{"Hawaii", "HI"},
	{"Idaho", "ID"},
	{"Illinois", "IL"},
	{"Indiana", "IN"},
	{"Iowa", "IA"},
	{"Kansas", "KS"},
	{"Kentucky", "KY"},
	{"Louisiana", "LA"},
	{"Maine", "ME"},
	{"Maryland", "MD"},
	{"Massachusetts", "MA"},
	{"Michigan", "MI"},
	{"Minnesota", "MN"},
	{"Mississippi", "MS"},
	{"Missouri", "MO"},
	{"Montana", "MT"},
	{"Nebraska", "NE"},
	{"Nevada", "NV"},
	{"New Hampshire", "NH"},
	{"New Jersey", "NJ"},
	{"New Mexico", "NM"},
	{"New York", "NY"},
	{"North Carolina", "NC"},
	{"North Dakota", "ND"},
	{"Ohio", "OH"},
	{"Oklahoma", "OK"},
	{"Oregon", "OR"},
	{"Pennsylvania", "PA"},
	{"Rhode Island", "RI"},
	{"South Carolina", "SC"},
	{"South Dakota", "SD"},
	{"Tennessee", "TN"},
	{"Texas", "TX"},
	{"Utah", "UT"},
	{"Vermont", "VT"},
	{"Virginia", "VA"},
	{"Washington", "WA"},
	{"West Virginia", "WV"},
	{"Wisconsin", "WI"},
	{"Wyoming", "WY"},
}
