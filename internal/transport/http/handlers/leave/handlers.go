package leavehandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/leave"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/api"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/middleware"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
}

func NewHandler(service *leave.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.Use(middleware.RequireActor)
		r.Post("/requests", h.handleSubmit)
		r.Get("/requests", h.handleOwn)
		r.Get("/requests/pending", h.handlePending)
		r.Post("/requests/{requestID}/approve", h.handleApprove)
		r.Post("/requests/{requestID}/decline", h.handleDecline)
		r.Get("/requests/{requestID}/letter", h.handleLetter)
		r.Get("/holidays", h.handleListHolidays)
		r.With(middleware.RequireRole(auth.RoleHR)).Post("/holidays", h.handleAddHoliday)
		r.With(middleware.RequireRole(auth.RoleHR)).Delete("/holidays/{holidayID}", h.handleDeleteHoliday)
	})
	r.With(middleware.RequireActor).Post("/tasks", h.handleAddTask)
}

func failLeave(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, leave.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "forbidden", "you do not have permission for this action", requestID)
	case errors.Is(err, leave.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", requestID)
	case errors.Is(err, leave.ErrInvalidState):
		api.Fail(w, http.StatusConflict, "already_decided", "leave request already decided", requestID)
	case errors.Is(err, leave.ErrInvalidRange):
		api.Fail(w, http.StatusBadRequest, "invalid_range", "end date must be on or after start date", requestID)
	case errors.Is(err, leave.ErrDuplicateDay):
		api.Fail(w, http.StatusConflict, "duplicate_holiday", "holiday already exists for that date", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "leave_failed", "leave operation failed", requestID)
	}
}

type submitPayload struct {
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	Reason           string `json:"reason"`
	LeaveType        string `json:"leaveType"`
	Team             string `json:"team"`
	Project          string `json:"project"`
	TeamLeaderName   string `json:"teamLeaderName"`
	TeamLeaderMobile string `json:"teamLeaderMobile"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload submitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	start, _ := v.Date("startDate", payload.StartDate)
	end, _ := v.Date("endDate", payload.EndDate)
	v.DateOrder("startDate", start, "endDate", end)
	if v.Reject(w, requestID) {
		return
	}

	request, err := h.Service.Submit(r.Context(), actor, leave.SubmitInput{
		StartDate:        start,
		EndDate:          end,
		Reason:           payload.Reason,
		LeaveType:        payload.LeaveType,
		Team:             payload.Team,
		Project:          payload.Project,
		TeamLeaderName:   payload.TeamLeaderName,
		TeamLeaderMobile: payload.TeamLeaderMobile,
	})
	if err != nil {
		failLeave(w, err, requestID)
		return
	}
	api.Created(w, request, requestID)
}

func (h *Handler) handleOwn(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	requests, err := h.Service.Own(r.Context(), actor, limit)
	if err != nil {
		failLeave(w, err, requestID)
		return
	}
	api.Success(w, requests, requestID)
}

func (h *Handler) handlePending(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	requests, err := h.Service.Pending(r.Context(), actor)
	if err != nil {
		failLeave(w, err, requestID)
		return
	}
	api.Success(w, requests, requestID)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, decision string) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	request, err := h.Service.Respond(r.Context(), actor, chi.URLParam(r, "requestID"), decision)
	if err != nil {
		failLeave(w, err, requestID)
		return
	}
	api.Success(w, request, requestID)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, leave.DecisionApprove)
}

func (h *Handler) handleDecline(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, leave.DecisionDecline)
}

func (h *Handler) handleLetter(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	request, err := h.Service.Letter(r.Context(), actor, chi.URLParam(r, "requestID"))
	if err != nil {
		failLeave(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment;filename=leave_request_%s.pdf", request.EmployeeNumber))
	if err := leave.WriteLetterPDF(w, request, time.Now()); err != nil {
		api.Fail(w, http.StatusInternalServerError, "letter_failed", "failed to render leave letter", requestID)
	}
}

func (h *Handler) handleListHolidays(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	holidays, err := h.Service.Store.UpcomingHolidays(r.Context(), time.Now())
	if err != nil {
		failLeave(w, err, requestID)
		return
	}
	api.Success(w, holidays, requestID)
}

type holidayPayload struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func (h *Handler) handleAddHoliday(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload holidayPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	date, _ := v.Date("date", payload.Date)
	if v.Reject(w, requestID) {
		return
	}

	holiday, err := h.Service.AddHoliday(r.Context(), actor, date, payload.Name, payload.Type)
	if err != nil {
		failLeave(w, err, requestID)
		return
	}
	api.Created(w, holiday, requestID)
}

func (h *Handler) handleDeleteHoliday(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	if err := h.Service.RemoveHoliday(r.Context(), actor, chi.URLParam(r, "holidayID")); err != nil {
		failLeave(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

type taskPayload struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (h *Handler) handleAddTask(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload taskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("description", payload.Description, "task description is required")
	date, _ := v.Date("date", payload.Date)
	if v.Reject(w, requestID) {
		return
	}

	task, err := h.Service.AddTask(r.Context(), actor, date, payload.Description)
	if err != nil {
		failLeave(w, err, requestID)
		return
	}
	api.Created(w, task, requestID)
}
