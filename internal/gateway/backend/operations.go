package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"shipfront/internal/apperr"
	"shipfront/internal/domain"
)

// Me fetches the current account profile.
func (c *Client) Me(ctx context.Context) (*domain.Profile, error) {
	p, err := decode[domain.Profile](c.Request(ctx, http.MethodGet, "/me", nil))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListShipments fetches the account's shipments.
func (c *Client) ListShipments(ctx context.Context) ([]domain.Shipment, error) {
	list, err := decode[[]domain.Shipment](c.Request(ctx, http.MethodGet, "/shipments", nil))
	if errors.Is(err, apperr.NoData) {
		return nil, nil
	}
	return list, err
}

// GetShipment fetches one shipment by id.
func (c *Client) GetShipment(ctx context.Context, id int64) (*domain.Shipment, error) {
	s, err := decode[domain.Shipment](c.Request(ctx, http.MethodGet, fmt.Sprintf("/shipments/%d", id), nil))
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Tracking fetches a shipment's timeline, oldest-first as the server sends it.
// A 204 means the shipment simply has no updates yet.
func (c *Client) Tracking(ctx context.Context, id int64) ([]domain.TrackingEvent, error) {
	events, err := decode[[]domain.TrackingEvent](c.Request(ctx, http.MethodGet, fmt.Sprintf("/shipments/%d/tracking", id), nil))
	if errors.Is(err, apperr.NoData) {
		return nil, nil
	}
	return events, err
}

// CreateShipment validates the draft locally and submits it. An invalid draft
// never reaches the network.
func (c *Client) CreateShipment(ctx context.Context, draft *domain.ShipmentDraft) (*domain.Shipment, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	s, err := decode[domain.Shipment](c.Request(ctx, http.MethodPost, "/shipments", draft))
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Transition submits a status-transition action. Fire-and-confirm: callers
// re-fetch after success instead of mutating local state.
func (c *Client) Transition(ctx context.Context, req domain.TransitionRequest) error {
	if !req.Action.Valid() {
		return apperr.WithDetail(apperr.Validation, "Unknown action")
	}
	if req.ShipmentID <= 0 {
		return apperr.WithDetail(apperr.Validation, "Invalid shipment id")
	}
	_, err := c.Request(ctx, http.MethodPost, "/shipments/"+string(req.Action), req)
	return err
}

// DriverDashboard fetches the driver dashboard payload.
func (c *Client) DriverDashboard(ctx context.Context) (*domain.DriverDashboard, error) {
	d, err := decode[domain.DriverDashboard](c.Request(ctx, http.MethodGet, "/dashboard", nil))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

var _ Gateway = (*Client)(nil)
