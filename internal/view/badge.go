package view

import "shipfront/internal/domain"

// Badge is the display category derived from a raw backend status: text and
// the CSS class both portals use for status pills.
type Badge struct {
	Text  string
	Class string
}

var badges = map[domain.ShipmentStatus]Badge{
	domain.StatusPending:        {Text: "Pending", Class: "badge-pending"},
	domain.StatusAssigned:       {Text: "Assigned", Class: "badge-assigned"},
	domain.StatusPickedUp:       {Text: "In Transit", Class: "badge-in-transit"},
	domain.StatusInTransit:      {Text: "In Transit", Class: "badge-in-transit"},
	domain.StatusOutForDelivery: {Text: "Out for Delivery", Class: "badge-out-for-delivery"},
	domain.StatusDelivered:      {Text: "Delivered", Class: "badge-delivered"},
	domain.StatusFailed:         {Text: "Failed", Class: "badge-failed"},
	domain.StatusCancelled:      {Text: "Cancelled", Class: "badge-cancelled"},
}

// BadgeFor maps a raw status to its display category. Unrecognized values
// fall back to a default category carrying the raw string, never an error.
func BadgeFor(status domain.ShipmentStatus) Badge {
	if b, ok := badges[status]; ok {
		return b
	}
	return Badge{Text: string(status), Class: "badge-pending"}
}
