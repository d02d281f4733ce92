package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"shipfront/internal/config"
	"shipfront/internal/gateway/backend"
	"shipfront/internal/http/handlers"
	"shipfront/internal/logx"
	"shipfront/internal/session"
)

func testConfig() *config.Config {
	return &config.Config{
		Port: 8080,
		API: config.API{
			BaseURL: "http://127.0.0.1:9",
			Timeout: time.Second,
		},
		Session:   config.Session{FilePath: "unused"},
		RateLimit: config.RateLimit{LoginPerMinute: 10},
	}
}

func setupTestContainer(t *testing.T, portal Portal) *dig.Container {
	t.Helper()

	b := NewContainerBuilder(portal)
	c := dig.New()

	providers := []struct {
		name     string
		provider any
	}{
		{"context", func() context.Context { return context.Background() }},
		{"logger", func() logx.Logger { return logx.Nop() }},
		{"config", testConfig},
		{"session", func() session.Store { return session.NewMemStore() }},
	}
	for _, p := range providers {
		err := c.Provide(p.provider)
		require.NoErrorf(t, err, "provide %s", p.name)
	}

	require.NoError(t, b.registerGateway(c))
	require.NoError(t, b.registerHTTP(c))

	return c
}

func verifyServer(t *testing.T, srv *http.Server) {
	t.Helper()

	require.NotNil(t, srv, "http.Server is nil")
	require.Equal(t, ":8080", srv.Addr)
	require.Greater(t, srv.ReadHeaderTimeout, time.Duration(0))
	require.Greater(t, srv.ReadTimeout, time.Duration(0))
	require.Greater(t, srv.WriteTimeout, time.Duration(0))
	require.Greater(t, srv.IdleTimeout, time.Duration(0))
}

func TestContainer_CustomerWiring(t *testing.T) {
	t.Parallel()

	c := setupTestContainer(t, PortalCustomer)

	err := c.Invoke(func(
		srv *http.Server,
		gw backend.Gateway,
		base *handlers.Handlers,
		customer *handlers.CustomerHandler,
	) {
		verifyServer(t, srv)
		require.NotNil(t, gw)
		require.NotNil(t, base)
		require.NotNil(t, customer)
	})
	require.NoError(t, err)
}

func TestContainer_DriverWiring(t *testing.T) {
	t.Parallel()

	c := setupTestContainer(t, PortalDriver)

	err := c.Invoke(func(
		srv *http.Server,
		gw backend.Gateway,
		base *handlers.Handlers,
		driver *handlers.DriverHandler,
	) {
		verifyServer(t, srv)
		require.NotNil(t, gw)
		require.NotNil(t, base)
		require.NotNil(t, driver)
	})
	require.NoError(t, err)
}

func TestProvideAll_Success(t *testing.T) {
	t.Parallel()

	c := dig.New()

	err := provideAll(c,
		func() context.Context { return context.Background() },
		func() time.Duration { return 3 * time.Second },
	)
	require.NoError(t, err)

	err = c.Invoke(func(ctx context.Context, d time.Duration) {
		require.NotNil(t, ctx)
		require.Equal(t, 3*time.Second, d)
	})
	require.NoError(t, err)
}

func TestProvideAll_InvalidProvider(t *testing.T) {
	t.Parallel()

	c := dig.New()

	type bad struct{}
	err := provideAll(c, bad{})
	require.Error(t, err)
}

func TestMustBuildContainer_ProvidersAreLazy(t *testing.T) {
	t.Parallel()

	fatals := 0
	b := NewContainerBuilder(PortalCustomer).
		WithLogFatalf(func(string, ...interface{}) { fatals++ })

	c := b.MustBuild(context.Background())
	require.NotNil(t, c)
	require.Zero(t, fatals)
}
