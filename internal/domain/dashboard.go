package domain

import "time"

// DriverDashboard is the driver backend's dashboard payload.
type DriverDashboard struct {
	TotalDeliveriesToday int       `json:"total_deliveries_today"`
	PendingShipments     int       `json:"pending_shipments"`
	CompletedShipments   int       `json:"completed_shipments"`
	FailedShipments      int       `json:"failed_shipments"`
	CurrentShipment      *Shipment `json:"current_shipment,omitempty"`
	LastKnownLocation    *Location `json:"last_known_location,omitempty"`
}

// Location is a driver's last reported position.
type Location struct {
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	LocationName string    `json:"location_name,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
