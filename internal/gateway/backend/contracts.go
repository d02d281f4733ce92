package backend

import (
	"context"

	"shipfront/internal/domain"
)

// Gateway is the portal's sole entry point to the backend REST API.
// Every domain view fetches and mutates through it; the only calls that
// bypass the shared request path are the two token-issuance bootstraps.
type Gateway interface {
	Me(ctx context.Context) (*domain.Profile, error)
	ListShipments(ctx context.Context) ([]domain.Shipment, error)
	GetShipment(ctx context.Context, id int64) (*domain.Shipment, error)
	Tracking(ctx context.Context, id int64) ([]domain.TrackingEvent, error)
	CreateShipment(ctx context.Context, draft *domain.ShipmentDraft) (*domain.Shipment, error)
	Transition(ctx context.Context, req domain.TransitionRequest) error
	DriverDashboard(ctx context.Context) (*domain.DriverDashboard, error)
}

type counter interface {
	Inc()
}
