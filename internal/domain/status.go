package domain

// ShipmentStatus is the raw status enumeration owned by the backend.
type ShipmentStatus string

// List of shipment statuses the backend is known to send.
const (
	StatusPending        ShipmentStatus = "PENDING"
	StatusAssigned       ShipmentStatus = "ASSIGNED"
	StatusPickedUp       ShipmentStatus = "PICKED_UP"
	StatusInTransit      ShipmentStatus = "IN_TRANSIT"
	StatusOutForDelivery ShipmentStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      ShipmentStatus = "DELIVERED"
	StatusFailed         ShipmentStatus = "FAILED"
	StatusCancelled      ShipmentStatus = "CANCELLED"
)

var knownStatuses = [...]ShipmentStatus{
	StatusPending, StatusAssigned, StatusPickedUp, StatusInTransit,
	StatusOutForDelivery, StatusDelivered, StatusFailed, StatusCancelled,
}

// Known reports whether the status is one of the enumerated backend values.
// Unknown values are still rendered (with a fallback category), never rejected.
func (s ShipmentStatus) Known() bool {
	for _, v := range knownStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are offered for the status.
func (s ShipmentStatus) Terminal() bool {
	switch s {
	case StatusDelivered, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// InTransitLike reports whether the status counts as "in transit" on the
// customer dashboard counters.
func (s ShipmentStatus) InTransitLike() bool {
	switch s {
	case StatusPickedUp, StatusInTransit, StatusOutForDelivery:
		return true
	default:
		return false
	}
}
