package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipfront/internal/http/handlers"
	"shipfront/internal/http/middleware/ratelimit"
	"shipfront/internal/http/router"
	"shipfront/internal/logx"
	"shipfront/internal/session"
)

func newRouters(t *testing.T, sessions session.Store) (http.Handler, http.Handler) {
	t.Helper()
	h := handlers.New(logx.Nop())
	limiter := ratelimit.New(logx.Nop(), nil, ratelimit.NewNopLimiter())

	customer := router.NewCustomer(h, &handlers.CustomerHandler{}, sessions, limiter, logx.Nop())
	driver := router.NewDriver(h, &handlers.DriverHandler{}, sessions, limiter, logx.Nop())
	return customer, driver
}

func TestRouterServiceEndpoints(t *testing.T) {
	t.Parallel()

	customer, _ := newRouters(t, session.NewMemStore())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	customer.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pong")

	req = httptest.NewRequest(http.MethodHead, "/healthcheck", nil)
	rec = httptest.NewRecorder()
	customer.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	customer.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterGuardsProtectedPages(t *testing.T) {
	t.Parallel()

	customer, driver := newRouters(t, session.NewMemStore())

	for _, path := range []string{"/dashboard", "/profile", "/shipments/1"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		customer.ServeHTTP(rec, req)
		require.Equal(t, http.StatusFound, rec.Code, "customer %s", path)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	}

	req := httptest.NewRequest(http.MethodGet, "/shipments", nil)
	rec := httptest.NewRecorder()
	driver.ServeHTTP(rec, req)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRouterBouncesAuthenticatedOffLogin(t *testing.T) {
	t.Parallel()

	sessions := session.NewMemStore()
	require.NoError(t, sessions.SetSession("tok", nil))
	customer, _ := newRouters(t, sessions)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	customer.ServeHTTP(rec, req)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}
