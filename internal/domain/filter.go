package domain

// FilterByStatus partitions an already-fetched shipment list by raw status
// value, preserving order. It never triggers a fetch; filter tabs operate on
// the result set the page already holds.
func FilterByStatus(list []Shipment, status ShipmentStatus) []Shipment {
	if status == "" {
		return list
	}
	filtered := make([]Shipment, 0, len(list))
	for _, s := range list {
		if s.Status == status {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// Stats holds the customer dashboard counters.
type Stats struct {
	Pending   int
	InTransit int
	Delivered int
	Total     int
}

// CollectStats buckets a shipment list into dashboard counters.
// PICKED_UP and OUT_FOR_DELIVERY count as in transit.
func CollectStats(list []Shipment) Stats {
	st := Stats{Total: len(list)}
	for _, s := range list {
		switch {
		case s.Status == StatusPending:
			st.Pending++
		case s.Status.InTransitLike():
			st.InTransit++
		case s.Status == StatusDelivered:
			st.Delivered++
		}
	}
	return st
}
