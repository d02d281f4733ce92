package domain

import "time"

// Shipment is the backend-owned projection rendered by both portals.
// The client never mutates fields directly; all changes go through
// named transition actions.
type Shipment struct {
	ID                int64           `json:"id"`
	ShipmentNumber    string          `json:"shipment_number"`
	Status            ShipmentStatus  `json:"status"`
	PickupLocation    string          `json:"pickup_location"`
	DeliveryLocation  string          `json:"delivery_location"`
	CargoType         string          `json:"cargo_type,omitempty"`
	Weight            float64         `json:"weight,omitempty"`
	Dimensions        string          `json:"dimensions,omitempty"`
	IsCOD             bool            `json:"is_cod"`
	CODAmount         float64         `json:"cod_amount,omitempty"`
	CODStatus         string          `json:"cod_status,omitempty"`
	TotalPrice        float64         `json:"total_price,omitempty"`
	CustomerName      string          `json:"customer_name,omitempty"`
	CustomerPhone     string          `json:"customer_phone,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	TrackingHistory   []TrackingEvent `json:"tracking_history,omitempty"`
}

// AvailableActions returns the transition actions a driver may plausibly
// take next on this shipment.
func (s *Shipment) AvailableActions() []TransitionAction {
	return NextActions(s.Status, s.IsCOD)
}

// TrackingEvent is one append-only entry of a shipment's timeline.
// The two portals' backends name the status field differently; both are kept.
type TrackingEvent struct {
	Status       ShipmentStatus `json:"status,omitempty"`
	StatusUpdate ShipmentStatus `json:"status_update,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
	LocationName string         `json:"location_name,omitempty"`
}

// EffectiveStatus returns status_update when the backend sent it, else status.
func (e TrackingEvent) EffectiveStatus() ShipmentStatus {
	if e.StatusUpdate != "" {
		return e.StatusUpdate
	}
	return e.Status
}
