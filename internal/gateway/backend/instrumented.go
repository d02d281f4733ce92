package backend

import (
	"context"
	"time"

	"shipfront/internal/domain"
	"shipfront/internal/logx"
)

// InstrumentedGateway decorates a Gateway with per-operation logging and
// request counters. It performs no retries: every failure is surfaced to the
// user, and all retries are user-initiated.
type InstrumentedGateway struct {
	next        Gateway
	logger      logx.Logger
	requests    counter
	transitions counter
	now         func() time.Time
}

// NewInstrumentedGateway wraps next with logging and metrics.
func NewInstrumentedGateway(next Gateway, logger logx.Logger, requests, transitions counter) *InstrumentedGateway {
	if next == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &InstrumentedGateway{
		next:        next,
		logger:      logger,
		requests:    requests,
		transitions: transitions,
		now:         time.Now,
	}
}

func (g *InstrumentedGateway) observe(op string, start time.Time, err error, fields ...logx.Field) {
	if g.requests != nil {
		g.requests.Inc()
	}
	fields = append(fields,
		logx.String("op", op),
		logx.Duration("duration", g.now().Sub(start)),
	)
	if err != nil {
		g.logger.Warn("backend call failed", append(fields, logx.Err(err))...)
		return
	}
	g.logger.Debug("backend call", fields...)
}

// Me fetches the current account profile.
func (g *InstrumentedGateway) Me(ctx context.Context) (*domain.Profile, error) {
	start := g.now()
	p, err := g.next.Me(ctx)
	g.observe("me", start, err)
	return p, err
}

// ListShipments fetches the account's shipments.
func (g *InstrumentedGateway) ListShipments(ctx context.Context) ([]domain.Shipment, error) {
	start := g.now()
	list, err := g.next.ListShipments(ctx)
	g.observe("list_shipments", start, err, logx.Int("count", len(list)))
	return list, err
}

// GetShipment fetches one shipment by id.
func (g *InstrumentedGateway) GetShipment(ctx context.Context, id int64) (*domain.Shipment, error) {
	start := g.now()
	s, err := g.next.GetShipment(ctx, id)
	g.observe("get_shipment", start, err, logx.Int64("shipment_id", id))
	return s, err
}

// Tracking fetches a shipment's timeline.
func (g *InstrumentedGateway) Tracking(ctx context.Context, id int64) ([]domain.TrackingEvent, error) {
	start := g.now()
	events, err := g.next.Tracking(ctx, id)
	g.observe("tracking", start, err, logx.Int64("shipment_id", id))
	return events, err
}

// CreateShipment validates and submits a new shipment.
func (g *InstrumentedGateway) CreateShipment(ctx context.Context, draft *domain.ShipmentDraft) (*domain.Shipment, error) {
	start := g.now()
	s, err := g.next.CreateShipment(ctx, draft)
	g.observe("create_shipment", start, err)
	return s, err
}

// Transition submits a status-transition action.
func (g *InstrumentedGateway) Transition(ctx context.Context, req domain.TransitionRequest) error {
	start := g.now()
	err := g.next.Transition(ctx, req)
	if g.transitions != nil {
		g.transitions.Inc()
	}
	g.observe("transition", start, err,
		logx.String("action", string(req.Action)),
		logx.Int64("shipment_id", req.ShipmentID),
	)
	return err
}

// DriverDashboard fetches the driver dashboard payload.
func (g *InstrumentedGateway) DriverDashboard(ctx context.Context) (*domain.DriverDashboard, error) {
	start := g.now()
	d, err := g.next.DriverDashboard(ctx)
	g.observe("driver_dashboard", start, err)
	return d, err
}

var _ Gateway = (*InstrumentedGateway)(nil)
