package reportshandler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/directory"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/reports"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/api"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireActor).Get("/reports/dashboard", h.handleDashboard)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	stats, err := h.Service.Dashboard(r.Context(), actor, time.Now())
	if err != nil {
		if errors.Is(err, directory.ErrForbidden) {
			api.Fail(w, http.StatusForbidden, "forbidden", "you do not have permission for this action", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to load dashboard stats", requestID)
		return
	}
	api.Success(w, stats, requestID)
}
