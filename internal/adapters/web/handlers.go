// Package web is the HTTP adapter: a chi router over the application
// service, JSON in and out.
package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"clearview-wipers/internal/app"
	"clearview-wipers/internal/core"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20 // 1 MiB

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	svc       app.ApplicationService
	log       *zap.Logger
	jwtSecret string
	adminPIN  string
}

// Options configures the HTTP surface.
type Options struct {
	JWTSecret      string
	AdminPIN       string
	AllowedOrigins string
}

// NewHandler builds the full route tree. Everything under /api requires a
// session except health and unlock; the admin-only group covers customers,
// inventory, expenses, analytics, survey, and geocoding.
func NewHandler(svc app.ApplicationService, log *zap.Logger, opts Options) http.Handler {
	h := &Handler{
		svc:       svc,
		log:       log,
		jwtSecret: opts.JWTSecret,
		adminPIN:  opts.AdminPIN,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(log))
	r.Use(Recoverer(log))
	r.Use(CORS(opts.AllowedOrigins))
	r.Use(RequestBodyLimit(maxRequestBody))

	r.Get("/api/health", h.health)
	r.Post("/api/auth/unlock", h.unlock)
	r.Post("/api/auth/lock", h.lock)

	r.Route("/api", func(r chi.Router) {
		r.Use(h.RequireAuth)

		r.Get("/auth/me", h.me)
		r.Get("/dashboard", h.dashboard)

		r.Get("/makes", h.listMakes)
		r.Get("/makes/{make}/models", h.suggestModels)
		r.Post("/vehicles/resolve", h.resolveVehicle)
		r.Post("/vehicles/identify", h.identifyVehicle)

		r.Get("/jobs", h.listJobs)
		r.Post("/jobs", h.createJob)
		r.Get("/jobs/{id}", h.getJob)
		r.Post("/jobs/{id}/schedule", h.scheduleJob)
		r.Post("/jobs/{id}/complete", h.completeJob)

		r.Group(func(r chi.Router) {
			r.Use(h.RequireAdmin)

			r.Get("/customers", h.listCustomers)
			r.Post("/customers", h.createCustomer)
			r.Get("/customers/{id}", h.getCustomer)
			r.Put("/customers/{id}", h.updateCustomer)

			r.Get("/inventory", h.inventory)
			r.Get("/inventory/needed", h.bladesNeeded)
			r.Post("/inventory/{size}/adjust", h.adjustStock)
			r.Put("/inventory/{size}", h.setStock)
			r.Post("/survey/estimate", h.surveyEstimate)

			r.Get("/expenses", h.listExpenses)
			r.Post("/expenses", h.addExpense)
			r.Get("/metrics", h.metrics)

			r.Get("/geocode", h.geocode)
			r.Get("/geocode/suggest", h.geocodeSuggest)
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// ── Vehicles & resolver ─────────────────────────────────────────────────────

func (h *Handler) listMakes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{"makes": h.svc.Makes(), "years": core.Years()})
}

func (h *Handler) suggestModels(w http.ResponseWriter, r *http.Request) {
	makeName := pathParam(r, "make")
	models := h.svc.SuggestModels(makeName, r.URL.Query().Get("q"))
	writeJSON(w, map[string]any{"models": models})
}

// pathParam returns a decoded URL path parameter. Blade sizes carry a quote
// character, which arrives percent-encoded.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func (h *Handler) resolveVehicle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Make  string `json:"make"`
		Model string `json:"model"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	// a nil entry means unknown, which is a valid answer
	writeJSON(w, map[string]any{"wiperSizes": h.svc.ResolveVehicle(req.Make, req.Model)})
}

func (h *Handler) identifyVehicle(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.IdentifyVehicle(r.Context())
	if err != nil {
		writeError(w, r, "photo identification failed", "UPSTREAM_ERROR", http.StatusBadGateway)
		return
	}
	writeJSON(w, result)
}

// ── Customers ───────────────────────────────────────────────────────────────

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"customers": h.svc.ListCustomers(r.Context())})
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req app.CreateCustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	customer, err := h.svc.CreateCustomer(r.Context(), req)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, customer)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.svc.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err.Error(), "NOT_FOUND", http.StatusNotFound)
		return
	}
	writeJSON(w, customer)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var req app.CreateCustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	customer, err := h.svc.UpdateCustomer(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, customer)
}

// ── Jobs ────────────────────────────────────────────────────────────────────

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"jobs": h.svc.ListJobs(r.Context(), r.URL.Query().Get("status"))})
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID   string `json:"customerId"`
		VehicleIndex int    `json:"vehicleIndex"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	job, err := h.svc.CreateJob(r.Context(), req.CustomerID, req.VehicleIndex)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, job)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.svc.GetJob(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err.Error(), "NOT_FOUND", http.StatusNotFound)
		return
	}
	writeJSON(w, job)
}

func (h *Handler) scheduleJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	job, err := h.svc.ScheduleJob(r.Context(), chi.URLParam(r, "id"), req.Date)
	if err != nil {
		h.writeJobError(w, r, err)
		return
	}
	writeJSON(w, job)
}

func (h *Handler) completeJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date  string `json:"date"`
		Price string `json:"price"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	job, err := h.svc.CompleteJob(r.Context(), chi.URLParam(r, "id"), req.Date, req.Price)
	if err != nil {
		h.writeJobError(w, r, err)
		return
	}
	writeJSON(w, job)
}

// writeJobError maps state machine rejections onto 409s so the client can
// tell them apart from malformed requests.
func (h *Handler) writeJobError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrJobCompleted):
		writeError(w, r, err.Error(), "JOB_COMPLETED", http.StatusConflict)
	case errors.Is(err, core.ErrNotScheduled):
		writeError(w, r, err.Error(), "NOT_SCHEDULED", http.StatusConflict)
	case errors.Is(err, core.ErrInsufficientStock):
		writeError(w, r, err.Error(), "INSUFFICIENT_STOCK", http.StatusConflict)
	default:
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
	}
}

// ── Inventory ───────────────────────────────────────────────────────────────

func (h *Handler) inventory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.Inventory(r.Context()))
}

func (h *Handler) bladesNeeded(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"lines": h.svc.BladesNeeded(r.Context())})
}

func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Delta int `json:"delta"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	qty, err := h.svc.AdjustStock(r.Context(), pathParam(r, "size"), req.Delta)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]int{"qty": qty})
}

func (h *Handler) setStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Qty string `json:"qty"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	qty, err := strconv.Atoi(req.Qty)
	if err != nil || qty < 0 {
		writeError(w, r, "quantity must be a non-negative number", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	newQty, err := h.svc.SetStock(r.Context(), pathParam(r, "size"), qty)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]int{"qty": newQty})
}

func (h *Handler) surveyEstimate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Vehicles []app.SurveyVehicle `json:"vehicles"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, h.svc.SurveyEstimate(r.Context(), req.Vehicles))
}

// ── Expenses & analytics ────────────────────────────────────────────────────

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"expenses": h.svc.ListExpenses(r.Context())})
}

func (h *Handler) addExpense(w http.ResponseWriter, r *http.Request) {
	var req app.AddExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	expense, err := h.svc.AddExpense(r.Context(), req)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, expense)
}

func (h *Handler) metrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Metrics(r.Context(), r.URL.Query().Get("range"))
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, m)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.DashboardSummary(r.Context()))
}

// ── Geocoding ───────────────────────────────────────────────────────────────

func (h *Handler) geocode(w http.ResponseWriter, r *http.Request) {
	place, err := h.svc.VerifyAddress(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, "could not verify address", "UPSTREAM_ERROR", http.StatusBadGateway)
		return
	}
	writeJSON(w, map[string]any{"place": place})
}

func (h *Handler) geocodeSuggest(w http.ResponseWriter, r *http.Request) {
	places, err := h.svc.SuggestAddresses(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, "could not load address suggestions", "UPSTREAM_ERROR", http.StatusBadGateway)
		return
	}
	writeJSON(w, map[string]any{"places": places})
}
