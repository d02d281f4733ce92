package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"shipfront/internal/config"
	"shipfront/internal/gateway/backend"
	"shipfront/internal/http/handlers"
	"shipfront/internal/http/middleware/ratelimit"
	"shipfront/internal/http/router"
	"shipfront/internal/logx"
	"shipfront/internal/metrics"
	"shipfront/internal/scene"
	"shipfront/internal/session"
)

// Portal selects which of the two binaries is being assembled.
type Portal int

// The two portal flavours.
const (
	PortalCustomer Portal = iota
	PortalDriver
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	portal    Portal
	openStore func(path string) (session.Store, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder(portal Portal) *ContainerBuilder {
	return &ContainerBuilder{
		portal: portal,
		openStore: func(path string) (session.Store, error) {
			return session.NewFileStore(path)
		},
		logFatalf: log.Fatalf,
	}
}

// WithSessionStore sets the session store opener.
func (b *ContainerBuilder) WithSessionStore(fn func(path string) (session.Store, error)) *ContainerBuilder {
	if fn != nil {
		b.openStore = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := b.registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := b.registerSession(container); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if err := b.registerGateway(container); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	if err := b.registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container.
func MustBuildContainer(ctx context.Context, portal Portal) *dig.Container {
	return NewContainerBuilder(portal).MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func (b *ContainerBuilder) registerCore(container *dig.Container, ctx context.Context) error {
	defaults := config.CustomerDefaults()
	if b.portal == PortalDriver {
		defaults = config.DriverDefaults()
	}
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		func() (*config.Config, error) { return config.Load(defaults) },
	)
}

func (b *ContainerBuilder) registerSession(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) (session.Store, error) {
			return b.openStore(cfg.Session.FilePath)
		},
	)
}

// registerCounter swallows duplicate registration so that rebuilding a
// container inside one process reuses the existing collector.
func registerCounter(c prometheus.Counter) prometheus.Counter {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(prometheus.Counter)
		}
		panic(err)
	}
	return c
}

func (b *ContainerBuilder) registerGateway(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, sessions session.Store, logger logx.Logger) *backend.Client {
			authFailures := registerCounter(metrics.NewAuthFailuresTotal())
			return backend.New(
				backend.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout},
				sessions,
				logger,
				authFailures,
				func() { logger.Warn("session invalidated by backend") },
			)
		},
		func(client *backend.Client, logger logx.Logger) backend.Gateway {
			requests := registerCounter(metrics.NewBackendRequestsTotal())
			transitions := registerCounter(metrics.NewTransitionsTotal())
			return backend.NewInstrumentedGateway(client, logger, requests, transitions)
		},
	)
}

func (b *ContainerBuilder) registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	limiterProvider := func(cfg *config.Config, logger logx.Logger) *ratelimit.Middleware {
		limited := registerCounter(metrics.NewRateLimitedTotal())
		limiter := ratelimit.NewTokenBucketPerWindow(
			nil, cfg.RateLimit.LoginPerMinute, time.Minute, 10*time.Minute, 100000,
		)
		return ratelimit.New(logger, limited, limiter)
	}

	common := []any{
		handlers.New,
		func() scene.Surface {
			return scene.StaticImage{Src: "/static/scene.svg", Alt: "Delivery routes"}
		},
		limiterProvider,
		serverProvider,
	}
	if err := provideAll(container, common...); err != nil {
		return err
	}

	if b.portal == PortalDriver {
		return provideAll(container,
			func(gw backend.Gateway, client *backend.Client, sessions session.Store, surface scene.Surface, logger logx.Logger) *handlers.DriverHandler {
				return handlers.NewDriverHandler(gw, client, sessions, surface, logger)
			},
			func(h *handlers.Handlers, d *handlers.DriverHandler, sessions session.Store, limiter *ratelimit.Middleware, logger logx.Logger) http.Handler {
				return router.NewDriver(h, d, sessions, limiter, logger)
			},
		)
	}
	return provideAll(container,
		func(gw backend.Gateway, client *backend.Client, sessions session.Store, surface scene.Surface, logger logx.Logger) *handlers.CustomerHandler {
			return handlers.NewCustomerHandler(gw, client, sessions, surface, logger)
		},
		func(h *handlers.Handlers, c *handlers.CustomerHandler, sessions session.Store, limiter *ratelimit.Middleware, logger logx.Logger) http.Handler {
			return router.NewCustomer(h, c, sessions, limiter, logger)
		},
	)
}
