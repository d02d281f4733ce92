package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"shipfront/internal/apperr"
	"shipfront/internal/domain"
	"shipfront/internal/gateway/backend"
	"shipfront/internal/logx"
	"shipfront/internal/scene"
	"shipfront/internal/session"
	"shipfront/internal/view"
)

// CustomerHandler serves the customer portal pages.
type CustomerHandler struct {
	gw       backend.Gateway
	auth     authGateway
	sessions session.Store
	surface  scene.Surface
	logger   logx.Logger
}

// NewCustomerHandler wires the customer portal views.
func NewCustomerHandler(gw backend.Gateway, auth authGateway, sessions session.Store, surface scene.Surface, logger logx.Logger) *CustomerHandler {
	return &CustomerHandler{gw: gw, auth: auth, sessions: sessions, surface: surface, logger: logger}
}

// Index routes the landing page by session presence.
func (h *CustomerHandler) Index(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Token(); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

type authPage struct {
	Title string
	Error string
	Email string
	Scene any
}

// LoginPage handles GET /login.
func (h *CustomerHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	render(h.logger, w, r, "login", authPage{Title: "Sign in", Scene: h.surface.Mount("loginScene")})
}

// Login handles POST /login: the form-encoded OAuth2 password flow.
func (h *CustomerHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := formString(r, "email")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		render(h.logger, w, r, "login", authPage{Title: "Sign in", Error: "Please enter both email and password.", Email: email})
		return
	}

	tok, err := h.auth.PasswordToken(r.Context(), email, password)
	if err != nil {
		render(h.logger, w, r, "login", authPage{Title: "Sign in", Error: apperr.Detail(err), Email: email})
		return
	}

	// Best-effort profile cache; login proceeds either way.
	if profile, err := h.gw.Me(r.Context()); err == nil {
		if err := h.sessions.SetSession(tok.AccessToken, profile); err != nil {
			h.logger.Warn("profile cache failed", logx.Err(err))
		}
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// RegisterPage handles GET /register.
func (h *CustomerHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	render(h.logger, w, r, "register", authPage{Title: "Create account"})
}

// Register handles POST /register with local validation, then auto-login.
func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	fullName := formString(r, "full_name")
	email := formString(r, "email")
	phone := formString(r, "phone")
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm_password")

	fail := func(msg string) {
		render(h.logger, w, r, "register", authPage{Title: "Create account", Error: msg, Email: email})
	}
	if fullName == "" || email == "" {
		fail("Please fill in your name and email.")
		return
	}
	if password != confirm {
		fail("Passwords do not match")
		return
	}
	if len(password) < 8 {
		fail("Password must be at least 8 characters long")
		return
	}

	err := h.auth.Register(r.Context(), backend.Registration{
		FullName: fullName,
		Email:    email,
		Phone:    phone,
		Password: password,
	})
	if err != nil {
		fail(apperr.Detail(err))
		return
	}

	// Registration succeeded; a failed auto-login just lands on the login page.
	if _, err := h.auth.PasswordToken(r.Context(), email, password); err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout handles POST /logout.
func (h *CustomerHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(); err != nil {
		h.logger.Error("logout failed", logx.Err(err))
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

type dashboardPage struct {
	Title     string
	Welcome   string
	Stats     domain.Stats
	Filter    string
	Shipments []domain.Shipment
	Empty     bool
	Error     string
}

// Dashboard handles GET /dashboard: one fetch, pure client-side filtering.
func (h *CustomerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	page := view.Load(r.Context(), h.gw.ListShipments, view.SliceEmpty[domain.Shipment])
	if page.Unauthorized {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	data := dashboardPage{
		Title:   "Dashboard",
		Welcome: h.welcome(r),
		Empty:   page.Empty,
		Error:   page.Error,
	}
	if page.Error == "" {
		filter := domain.ShipmentStatus(r.URL.Query().Get("filter"))
		data.Stats = domain.CollectStats(page.Data)
		data.Filter = string(filter)
		data.Shipments = domain.FilterByStatus(page.Data, filter)
	}
	render(h.logger, w, r, "dashboard", data)
}

// welcome resolves the greeting name: cached profile first, then the backend.
func (h *CustomerHandler) welcome(r *http.Request) string {
	if p, ok := h.sessions.Profile(); ok {
		return fmt.Sprintf("Welcome back, %s", p.DisplayName())
	}
	p, err := h.gw.Me(r.Context())
	if err != nil {
		h.logger.Warn("profile fetch failed", logx.Err(err))
		return "Welcome back"
	}
	return fmt.Sprintf("Welcome back, %s", p.DisplayName())
}

type createShipmentPage struct {
	Title    string
	Draft    domain.ShipmentDraft
	Estimate domain.PriceEstimate
	Error    string
}

// NewShipmentPage handles GET /shipments/new.
func (h *CustomerHandler) NewShipmentPage(w http.ResponseWriter, r *http.Request) {
	render(h.logger, w, r, "create_shipment", createShipmentPage{Title: "New shipment"})
}

// CreateShipment handles POST /shipments. Local validation failures re-render
// the form without touching the network.
func (h *CustomerHandler) CreateShipment(w http.ResponseWriter, r *http.Request) {
	draft, parseErr := draftFromForm(r)

	data := createShipmentPage{Title: "New shipment", Draft: draft}
	if draft.Weight != nil {
		data.Estimate = domain.EstimatePrice(*draft.Weight)
	}
	if parseErr != "" {
		data.Error = parseErr
		render(h.logger, w, r, "create_shipment", data)
		return
	}

	created, err := h.gw.CreateShipment(r.Context(), &draft)
	switch {
	case err == nil:
		http.Redirect(w, r, fmt.Sprintf("/shipments/%d", created.ID), http.StatusSeeOther)
	case errors.Is(err, apperr.Unauthorized):
		http.Redirect(w, r, "/login", http.StatusFound)
	default:
		data.Error = apperr.Detail(err)
		render(h.logger, w, r, "create_shipment", data)
	}
}

func draftFromForm(r *http.Request) (domain.ShipmentDraft, string) {
	draft := domain.ShipmentDraft{
		PickupLocation:   formString(r, "pickup_location"),
		DeliveryLocation: formString(r, "delivery_location"),
		IsHomePickup:     formBool(r, "is_home_pickup"),
		IsHomeDelivery:   formBool(r, "is_home_delivery"),
		IsCOD:            formBool(r, "is_cod"),
	}
	if v := formString(r, "cargo_type"); v != "" {
		draft.CargoType = &v
	}
	if v := formString(r, "dimensions"); v != "" {
		draft.Dimensions = &v
	}

	weight, ok := formFloat(r, "weight")
	if !ok {
		return draft, "Weight must be a number"
	}
	draft.Weight = weight

	codAmount, ok := formFloat(r, "cod_amount")
	if !ok {
		return draft, "COD amount must be a number"
	}
	draft.CODAmount = codAmount

	if v := formString(r, "estimated_delivery"); v != "" {
		t, err := time.Parse("2006-01-02T15:04", v)
		if err != nil {
			return draft, "Estimated delivery must be a valid date"
		}
		draft.EstimatedDelivery = &t
	}
	return draft, ""
}

type trackingPage struct {
	Title    string
	Shipment *domain.Shipment
	Timeline []view.TimelineItem
	Badge    view.Badge
	Error    string
}

// Tracking handles GET /shipments/{id}: detail plus timeline.
func (h *CustomerHandler) Tracking(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	shipment, err := h.gw.GetShipment(r.Context(), id)
	switch {
	case errors.Is(err, apperr.Unauthorized):
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	case err != nil:
		render(h.logger, w, r, "tracking", trackingPage{Title: "Tracking", Error: apperr.Detail(err)})
		return
	}

	// Tracking history is best-effort: a shipment may have no updates yet.
	events, err := h.gw.Tracking(r.Context(), id)
	if err != nil {
		h.logger.Warn("tracking fetch failed", logx.Int64("shipment_id", id), logx.Err(err))
		events = nil
	}

	render(h.logger, w, r, "tracking", trackingPage{
		Title:    "Tracking " + shipment.ShipmentNumber,
		Shipment: shipment,
		Timeline: view.Timeline(events),
		Badge:    view.BadgeFor(shipment.Status),
	})
}

type profilePage struct {
	Title   string
	Profile *domain.Profile
	Error   string
}

// Profile handles GET /profile: cached profile first, then the backend.
func (h *CustomerHandler) Profile(w http.ResponseWriter, r *http.Request) {
	if p, ok := h.sessions.Profile(); ok {
		render(h.logger, w, r, "profile", profilePage{Title: "Profile", Profile: p})
		return
	}

	p, err := h.gw.Me(r.Context())
	switch {
	case errors.Is(err, apperr.Unauthorized):
		http.Redirect(w, r, "/login", http.StatusFound)
	case err != nil:
		render(h.logger, w, r, "profile", profilePage{Title: "Profile", Error: apperr.Detail(err)})
	default:
		render(h.logger, w, r, "profile", profilePage{Title: "Profile", Profile: p})
	}
}
