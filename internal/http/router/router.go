package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shipfront/internal/guard"
	"shipfront/internal/http/handlers"
	"shipfront/internal/http/middleware"
	"shipfront/internal/http/middleware/ratelimit"
	"shipfront/internal/http/static"
	"shipfront/internal/logx"
	"shipfront/internal/session"
)

var nav = guard.Navigator{LoginPath: "/login", HomePath: "/dashboard"}

// base assembles the middleware chain and service routes shared by both portals.
func base(h *handlers.Handlers, logger logx.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Observability(logger))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", static.Handler())
	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}

// NewCustomer constructs the customer portal routes.
func NewCustomer(h *handlers.Handlers, c *handlers.CustomerHandler, sessions session.Store, limiter *ratelimit.Middleware, logger logx.Logger) http.Handler {
	r := base(h, logger)

	r.Get("/", c.Index)

	r.Group(func(r chi.Router) {
		r.Use(guard.RedirectIfAuthenticated(sessions, nav))
		r.Get("/login", c.LoginPage)
		r.Get("/register", c.RegisterPage)
	})

	r.Group(func(r chi.Router) {
		r.Use(limiter.Handler())
		r.Post("/login", c.Login)
		r.Post("/register", c.Register)
	})

	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAuthenticated(sessions, nav))
		r.Post("/logout", c.Logout)
		r.Get("/dashboard", c.Dashboard)
		r.Get("/shipments/new", c.NewShipmentPage)
		r.Post("/shipments", c.CreateShipment)
		r.Get("/shipments/{id}", c.Tracking)
		r.Get("/profile", c.Profile)
	})

	return r
}

// NewDriver constructs the driver portal routes.
func NewDriver(h *handlers.Handlers, d *handlers.DriverHandler, sessions session.Store, limiter *ratelimit.Middleware, logger logx.Logger) http.Handler {
	r := base(h, logger)

	r.Get("/", d.Index)

	r.Group(func(r chi.Router) {
		r.Use(guard.RedirectIfAuthenticated(sessions, nav))
		r.Get("/login", d.LoginPage)
		r.Get("/register", d.RegisterPage)
	})

	r.Group(func(r chi.Router) {
		r.Use(limiter.Handler())
		r.Post("/login", d.Login)
		r.Post("/register", d.Register)
	})

	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAuthenticated(sessions, nav))
		r.Post("/logout", d.Logout)
		r.Get("/dashboard", d.Dashboard)
		r.Get("/shipments", d.Shipments)
		r.Get("/shipments/{id}", d.Detail)
		r.Post("/shipments/{id}/action", d.Action)
		r.Get("/profile", d.Profile)
	})

	return r
}
