package handlers

import (
	"context"

	"shipfront/internal/apperr"
	"shipfront/internal/domain"
	"shipfront/internal/gateway/backend"
)

// fakeGateway implements backend.Gateway with overridable funcs.
// Unset operations answer a generic server error so tests fail loudly when a
// handler touches something it should not.
type fakeGateway struct {
	me         func(ctx context.Context) (*domain.Profile, error)
	list       func(ctx context.Context) ([]domain.Shipment, error)
	get        func(ctx context.Context, id int64) (*domain.Shipment, error)
	tracking   func(ctx context.Context, id int64) ([]domain.TrackingEvent, error)
	create     func(ctx context.Context, draft *domain.ShipmentDraft) (*domain.Shipment, error)
	transition func(ctx context.Context, req domain.TransitionRequest) error
	dashboard  func(ctx context.Context) (*domain.DriverDashboard, error)
}

func (f *fakeGateway) Me(ctx context.Context) (*domain.Profile, error) {
	if f.me == nil {
		return nil, apperr.Server
	}
	return f.me(ctx)
}

func (f *fakeGateway) ListShipments(ctx context.Context) ([]domain.Shipment, error) {
	if f.list == nil {
		return nil, apperr.Server
	}
	return f.list(ctx)
}

func (f *fakeGateway) GetShipment(ctx context.Context, id int64) (*domain.Shipment, error) {
	if f.get == nil {
		return nil, apperr.Server
	}
	return f.get(ctx, id)
}

func (f *fakeGateway) Tracking(ctx context.Context, id int64) ([]domain.TrackingEvent, error) {
	if f.tracking == nil {
		return nil, apperr.Server
	}
	return f.tracking(ctx, id)
}

func (f *fakeGateway) CreateShipment(ctx context.Context, draft *domain.ShipmentDraft) (*domain.Shipment, error) {
	if f.create == nil {
		return nil, apperr.Server
	}
	return f.create(ctx, draft)
}

func (f *fakeGateway) Transition(ctx context.Context, req domain.TransitionRequest) error {
	if f.transition == nil {
		return apperr.Server
	}
	return f.transition(ctx, req)
}

func (f *fakeGateway) DriverDashboard(ctx context.Context) (*domain.DriverDashboard, error) {
	if f.dashboard == nil {
		return nil, apperr.Server
	}
	return f.dashboard(ctx)
}

var _ backend.Gateway = (*fakeGateway)(nil)

// fakeAuth implements authGateway with overridable funcs.
type fakeAuth struct {
	passwordToken    func(ctx context.Context, email, password string) (*backend.TokenResponse, error)
	credentialsLogin func(ctx context.Context, email, password string) (*backend.TokenResponse, error)
	register         func(ctx context.Context, reg backend.Registration) error
	logout           func() error
}

func (f *fakeAuth) PasswordToken(ctx context.Context, email, password string) (*backend.TokenResponse, error) {
	if f.passwordToken == nil {
		return nil, apperr.Server
	}
	return f.passwordToken(ctx, email, password)
}

func (f *fakeAuth) CredentialsLogin(ctx context.Context, email, password string) (*backend.TokenResponse, error) {
	if f.credentialsLogin == nil {
		return nil, apperr.Server
	}
	return f.credentialsLogin(ctx, email, password)
}

func (f *fakeAuth) Register(ctx context.Context, reg backend.Registration) error {
	if f.register == nil {
		return apperr.Server
	}
	return f.register(ctx, reg)
}

func (f *fakeAuth) Logout() error {
	if f.logout == nil {
		return nil
	}
	return f.logout()
}
