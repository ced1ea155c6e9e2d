// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/guttosm/rate-service/internal/domain/model"
	"github.com/guttosm/rate-service/internal/repository"
)

// CalculateRateRequest represents the JSON request body for the rate
// calculation endpoint. One request equals one calculation cycle:
// every listed option gets at most one carrier call.
//
// @Description Request to calculate shipping fees for an order
type CalculateRateRequest struct {
	// Order is the order to rate. Its session id scopes rate caching.
	Order model.Order `json:"order" binding:"required"`
	// OptionIDs lists the shipping options to quote. Must not be empty.
	OptionIDs []string `json:"option_ids" binding:"required,min=1"`
} // @name CalculateRateRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrMissingSessionID is returned when the order has no session id.
	ErrMissingSessionID = &ValidationError{
		Field:   "order.session_id",
		Message: "must not be empty",
	}
	// ErrNoOptionIDs is returned when no shipping options are listed.
	ErrNoOptionIDs = &ValidationError{
		Field:   "option_ids",
		Message: "must list at least one shipping option",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *CalculateRateRequest) Validate() error {
	if r.Order.SessionID == "" {
		return ErrMissingSessionID
	}
	if len(r.OptionIDs) == 0 {
		return ErrNoOptionIDs
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ShippingOptionRequest represents the JSON request body for creating
// or updating a shipping option.
type ShippingOptionRequest struct {
	// OptionID is the stable identifier; required on create, ignored
	// on update.
	OptionID string `json:"option_id"`
	Name     string `json:"name,omitempty"`
	// ServiceCode is the carrier delivery service code.
	ServiceCode            string `json:"service_code" binding:"required"`
	PickupType             string `json:"pickup_type,omitempty"`
	ContainerType          string `json:"container_type,omitempty"`
	CustomerClassification string `json:"customer_classification,omitempty"`
	GroupByManufacturer    bool   `json:"group_by_manufacturer"`
	MaxItemsPerPackage     int    `json:"max_items_per_package"`
} // @name ShippingOptionRequest

// ToDocument converts the request into a repository document.
func (r *ShippingOptionRequest) ToDocument() *repository.ShippingOptionDocument {
	return &repository.ShippingOptionDocument{
		OptionID:               r.OptionID,
		Name:                   r.Name,
		ServiceCode:            r.ServiceCode,
		PickupType:             r.PickupType,
		ContainerType:          r.ContainerType,
		CustomerClassification: r.CustomerClassification,
		GroupByManufacturer:    r.GroupByManufacturer,
		MaxItemsPerPackage:     r.MaxItemsPerPackage,
	}
}
