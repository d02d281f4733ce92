package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"shipfront/internal/apperr"
	"shipfront/internal/domain"
	"shipfront/internal/gateway/backend"
	"shipfront/internal/logx"
	"shipfront/internal/scene"
	"shipfront/internal/session"
	"shipfront/internal/view"
)

// DriverHandler serves the driver portal pages.
type DriverHandler struct {
	gw       backend.Gateway
	auth     authGateway
	sessions session.Store
	surface  scene.Surface
	logger   logx.Logger
}

// NewDriverHandler wires the driver portal views.
func NewDriverHandler(gw backend.Gateway, auth authGateway, sessions session.Store, surface scene.Surface, logger logx.Logger) *DriverHandler {
	return &DriverHandler{gw: gw, auth: auth, sessions: sessions, surface: surface, logger: logger}
}

// Index routes the landing page by session presence.
func (h *DriverHandler) Index(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Token(); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

// LoginPage handles GET /login.
func (h *DriverHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	render(h.logger, w, r, "login", authPage{Title: "Driver sign in", Scene: h.surface.Mount("loginScene")})
}

// Login handles POST /login: JSON credentials against the driver backend.
func (h *DriverHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := formString(r, "email")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		render(h.logger, w, r, "login", authPage{Title: "Driver sign in", Error: "Please enter both email and password.", Email: email})
		return
	}

	if _, err := h.auth.CredentialsLogin(r.Context(), email, password); err != nil {
		render(h.logger, w, r, "login", authPage{Title: "Driver sign in", Error: apperr.Detail(err), Email: email})
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// RegisterPage handles GET /register.
func (h *DriverHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	render(h.logger, w, r, "register", authPage{Title: "Driver registration"})
}

// Register handles POST /register. Drivers land on the login page afterwards;
// there is no auto-login on this portal.
func (h *DriverHandler) Register(w http.ResponseWriter, r *http.Request) {
	fullName := formString(r, "full_name")
	email := formString(r, "email")
	phone := formString(r, "phone")
	password := r.PostFormValue("password")

	fail := func(msg string) {
		render(h.logger, w, r, "register", authPage{Title: "Driver registration", Error: msg, Email: email})
	}
	if fullName == "" || email == "" || password == "" {
		fail("Please fill in name, email and password.")
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
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout handles POST /logout.
func (h *DriverHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(); err != nil {
		h.logger.Error("logout failed", logx.Err(err))
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

type driverDashboardPage struct {
	Title  string
	Driver string
	Dash   *domain.DriverDashboard
	Error  string
}

// Dashboard handles GET /dashboard with today's delivery metrics.
func (h *DriverHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := driverDashboardPage{Title: "Driver dashboard", Driver: h.driverName()}

	dash, err := h.gw.DriverDashboard(r.Context())
	switch {
	case errors.Is(err, apperr.Unauthorized):
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	case err != nil:
		data.Error = apperr.Detail(err)
	default:
		data.Dash = dash
	}
	render(h.logger, w, r, "driver_dashboard", data)
}

// driverName reads the cached driver profile; a corrupt cache means "Driver".
func (h *DriverHandler) driverName() string {
	if p, ok := h.sessions.Profile(); ok {
		return p.FullName
	}
	return "Driver"
}

type shipmentsPage struct {
	Title     string
	Shipments []domain.Shipment
	Empty     bool
	Error     string
}

// Shipments handles GET /shipments.
func (h *DriverHandler) Shipments(w http.ResponseWriter, r *http.Request) {
	page := view.Load(r.Context(), h.gw.ListShipments, view.SliceEmpty[domain.Shipment])
	if page.Unauthorized {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	render(h.logger, w, r, "shipments", shipmentsPage{
		Title:     "Assigned shipments",
		Shipments: page.Data,
		Empty:     page.Empty,
		Error:     page.Error,
	})
}

type shipmentDetailPage struct {
	Title    string
	Shipment *domain.Shipment
	Badge    view.Badge
	Timeline []view.TimelineItem
	Actions  []domain.TransitionAction
	Error    string
	Notice   string
}

// Detail handles GET /shipments/{id}: full detail, timeline and the action
// buttons plausible for the current status.
func (h *DriverHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		http.Redirect(w, r, "/shipments", http.StatusSeeOther)
		return
	}
	if err := h.sessions.SetSelectedShipment(id); err != nil {
		h.logger.Warn("selected shipment not persisted", logx.Err(err))
	}

	h.renderDetail(w, r, id, r.URL.Query().Get("err"), r.URL.Query().Get("ok") != "")
}

func (h *DriverHandler) renderDetail(w http.ResponseWriter, r *http.Request, id int64, errMsg string, done bool) {
	shipment, err := h.gw.GetShipment(r.Context(), id)
	switch {
	case errors.Is(err, apperr.Unauthorized):
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	case err != nil:
		render(h.logger, w, r, "shipment_detail", shipmentDetailPage{
			Title: "Shipment", Error: apperr.Detail(err),
		})
		return
	}

	data := shipmentDetailPage{
		Title:    "Shipment " + shipment.ShipmentNumber,
		Shipment: shipment,
		Badge:    view.BadgeFor(shipment.Status),
		Timeline: view.Timeline(shipment.TrackingHistory),
		Actions:  shipment.AvailableActions(),
		Error:    errMsg,
	}
	if done {
		data.Notice = "Action completed successfully."
	}
	render(h.logger, w, r, "shipment_detail", data)
}

// Action handles POST /shipments/{id}/action: fire-and-confirm. On success
// the driver is redirected back to a fresh detail fetch; displayed state is
// always server truth. On failure the prior state stays on screen with the
// backend's detail message.
func (h *DriverHandler) Action(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		http.Redirect(w, r, "/shipments", http.StatusSeeOther)
		return
	}

	req, parseErr := transitionFromForm(r, id)
	if parseErr != "" {
		h.renderDetail(w, r, id, parseErr, false)
		return
	}

	err = h.gw.Transition(r.Context(), req)
	switch {
	case err == nil:
		http.Redirect(w, r, fmt.Sprintf("/shipments/%d?ok=1", id), http.StatusSeeOther)
	case errors.Is(err, apperr.Unauthorized):
		http.Redirect(w, r, "/login", http.StatusFound)
	default:
		h.renderDetail(w, r, id, apperr.Detail(err), false)
	}
}

func transitionFromForm(r *http.Request, id int64) (domain.TransitionRequest, string) {
	req := domain.TransitionRequest{
		Action:     domain.TransitionAction(formString(r, "action")),
		ShipmentID: id,
	}
	if !req.Action.Valid() {
		return req, "Unknown action"
	}
	if notes := formString(r, "notes"); notes != "" {
		req.Notes = &notes
	}

	switch req.Action {
	case domain.ActionFail:
		if req.Notes == nil {
			return req, "Please enter a failure reason"
		}
		req.FailureReason = domain.FailureReasonOther
	case domain.ActionReportDelay:
		if req.Notes == nil {
			return req, "Please enter a delay reason"
		}
		req.DelayReason = domain.DelayReasonOther
	case domain.ActionCollectCOD:
		amount, ok := formFloat(r, "amount_collected")
		if !ok || amount == nil || *amount <= 0 {
			return req, "Invalid amount."
		}
		req.AmountCollected = amount
	case domain.ActionDeliver:
		if sig := formString(r, "signature"); sig != "" {
			req.Signature = &sig
		}
		if photo := formString(r, "photo_proof"); photo != "" {
			req.PhotoProof = &photo
		}
	}
	return req, ""
}

// Profile handles GET /profile from the cached driver record. A missing or
// corrupt cache sends the driver back through login, same as a missing token.
func (h *DriverHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.sessions.Profile()
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	render(h.logger, w, r, "profile", profilePage{Title: "Driver profile", Profile: p})
}
