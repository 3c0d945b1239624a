package announcementhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/announcement"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/api"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/middleware"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/shared"
)

type Handler struct {
	Service *announcement.Service
}

func NewHandler(service *announcement.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/announcements", func(r chi.Router) {
		r.Use(middleware.RequireActor)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	limit := 3
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 50 {
			limit = v
		}
	}
	announcements, err := h.Service.Latest(r.Context(), limit)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "announcements_failed", "failed to list announcements", requestID)
		return
	}
	api.Success(w, announcements, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("content", payload.Content, "content is required")
	if v.Reject(w, requestID) {
		return
	}

	created, err := h.Service.Create(r.Context(), actor, payload.Content)
	if err != nil {
		if errors.Is(err, announcement.ErrForbidden) {
			api.Fail(w, http.StatusForbidden, "forbidden", "you do not have permission for this action", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "announcement_failed", "failed to create announcement", requestID)
		return
	}
	api.Created(w, created, requestID)
}
