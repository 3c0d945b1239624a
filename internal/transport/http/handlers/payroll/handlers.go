package payrollhandler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/directory"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/payroll"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/api"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/middleware"
)

type Handler struct {
	Service *payroll.Service
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.RequireActor)
		r.Get("/payslip", h.handlePayslip)
		r.Get("/history", h.handleHistory)
		r.Get("/report", h.handleReport)
	})
}

func failPayroll(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, directory.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "forbidden", "you do not have permission for this action", requestID)
	case errors.Is(err, directory.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "payroll_failed", "payroll computation failed", requestID)
	}
}

func monthParams(r *http.Request, now time.Time) (int, time.Month) {
	year := now.Year()
	month := now.Month()
	if raw := r.URL.Query().Get("year"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			year = v
		}
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 && v <= 12 {
			month = time.Month(v)
		}
	}
	return year, month
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	year, month := monthParams(r, time.Now())
	slip, err := h.Service.Payslip(r.Context(), actor, year, month)
	if err != nil {
		failPayroll(w, err, requestID)
		return
	}
	api.Success(w, slip, requestID)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	slips, err := h.Service.History(r.Context(), actor, time.Now())
	if err != nil {
		failPayroll(w, err, requestID)
		return
	}
	api.Success(w, slips, requestID)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	slips, err := h.Service.Report(r.Context(), actor, time.Now(),
		r.URL.Query().Get("search"), r.URL.Query().Get("role"))
	if err != nil {
		failPayroll(w, err, requestID)
		return
	}
	api.Success(w, slips, requestID)
}
