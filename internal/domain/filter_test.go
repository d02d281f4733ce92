package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterByStatus_PreservesOrder(t *testing.T) {
	t.Parallel()

	list := []Shipment{
		{ID: 1, Status: StatusPending},
		{ID: 2, Status: StatusInTransit},
		{ID: 3, Status: StatusDelivered},
		{ID: 4, Status: StatusPending},
	}

	got := FilterByStatus(list, StatusPending)
	require.Len(t, got, 2)
	require.Equal(t, int64(1), got[0].ID)
	require.Equal(t, int64(4), got[1].ID)
}

func TestFilterByStatus_EmptyStatusReturnsAll(t *testing.T) {
	t.Parallel()

	list := []Shipment{{ID: 1, Status: StatusPending}, {ID: 2, Status: StatusFailed}}
	require.Equal(t, list, FilterByStatus(list, ""))
}

func TestFilterByStatus_NoMatches(t *testing.T) {
	t.Parallel()

	list := []Shipment{{ID: 1, Status: StatusPending}}
	require.Empty(t, FilterByStatus(list, StatusCancelled))
}

func TestCollectStats_Buckets(t *testing.T) {
	t.Parallel()

	list := []Shipment{
		{Status: StatusPending},
		{Status: StatusPickedUp},
		{Status: StatusInTransit},
		{Status: StatusOutForDelivery},
		{Status: StatusDelivered},
		{Status: StatusFailed},
		{Status: StatusPending},
	}

	st := CollectStats(list)
	require.Equal(t, Stats{Pending: 2, InTransit: 3, Delivered: 1, Total: 7}, st)
}

func TestCollectStats_Empty(t *testing.T) {
	t.Parallel()

	require.Equal(t, Stats{}, CollectStats(nil))
}
