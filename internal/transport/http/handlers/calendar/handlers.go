package calendarhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/calendar"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/api"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/middleware"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/shared"
)

type Handler struct {
	Service *calendar.Service
}

func NewHandler(service *calendar.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireActor).Get("/calendar/events", h.handleEvents)
}

func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	v := shared.NewValidator()
	start, _ := v.Date("start", r.URL.Query().Get("start"))
	end, _ := v.Date("end", r.URL.Query().Get("end"))
	v.DateOrder("start", start, "end", end)
	if v.Reject(w, requestID) {
		return
	}

	events, err := h.Service.Feed(r.Context(), actor, calendar.Window{Start: start, End: end})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "calendar_failed", "failed to build calendar feed", requestID)
		return
	}
	if events == nil {
		events = []calendar.Event{}
	}
	api.Success(w, events, requestID)
}
