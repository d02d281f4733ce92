package domain

import (
	"strings"
	"time"

	"shipfront/internal/apperr"
)

// ShipmentDraft is the form state collected for a create-shipment submission.
type ShipmentDraft struct {
	PickupLocation    string     `json:"pickup_location"`
	DeliveryLocation  string     `json:"delivery_location"`
	CargoType         *string    `json:"cargo_type"`
	Weight            *float64   `json:"weight"`
	Dimensions        *string    `json:"dimensions"`
	IsHomePickup      bool       `json:"is_home_pickup"`
	IsHomeDelivery    bool       `json:"is_home_delivery"`
	IsCOD             bool       `json:"is_cod"`
	CODAmount         *float64   `json:"cod_amount"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
}

// Validate blocks invalid drafts locally so no request is issued for them.
func (d *ShipmentDraft) Validate() error {
	if d == nil {
		return apperr.Validation
	}
	if strings.TrimSpace(d.PickupLocation) == "" {
		return apperr.WithDetail(apperr.Validation, "Pickup location is required")
	}
	if strings.TrimSpace(d.DeliveryLocation) == "" {
		return apperr.WithDetail(apperr.Validation, "Delivery location is required")
	}
	if d.Weight != nil && *d.Weight <= 0 {
		return apperr.WithDetail(apperr.Validation, "Weight must be greater than zero")
	}
	if d.IsCOD && (d.CODAmount == nil || *d.CODAmount <= 0) {
		return apperr.WithDetail(apperr.Validation, "Please enter a valid COD amount")
	}
	if !d.IsCOD {
		d.CODAmount = nil
	}
	return nil
}
