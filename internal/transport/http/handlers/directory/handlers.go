package directoryhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/directory"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/api"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/middleware"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/shared"
)

type Handler struct {
	Service *directory.Service
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequireActor)
		r.Get("/", h.handleList)
		r.Post("/", h.handleRegister)
		r.Get("/supervisors", h.handleSupervisors)
		r.Get("/{employeeID}", h.handleGet)
		r.Put("/{employeeID}", h.handleUpdate)
		r.Delete("/{employeeID}", h.handleRemove)
	})
	r.With(middleware.RequireActor).Post("/profile/password", h.handleChangePassword)
}

func failDirectory(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, directory.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "forbidden", "you do not have permission for this action", requestID)
	case errors.Is(err, directory.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	case errors.Is(err, directory.ErrDuplicate):
		api.Fail(w, http.StatusConflict, "duplicate", "employee number or email already exists", requestID)
	case errors.Is(err, directory.ErrInvalidSupervisor):
		api.Fail(w, http.StatusBadRequest, "invalid_supervisor", "supervisor must be a user with the supervisor role", requestID)
	case errors.Is(err, directory.ErrSelfRemoval):
		api.Fail(w, http.StatusBadRequest, "self_removal", "cannot remove own account", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "directory_failed", "directory operation failed", requestID)
	}
}

// handleList: HR and root browse everyone with search and role filters; a
// supervisor sees their direct reports.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	if actor.IsHR() || actor.Root {
		employees, err := h.Service.Store.List(r.Context(), r.URL.Query().Get("search"), r.URL.Query().Get("role"))
		if err != nil {
			failDirectory(w, err, requestID)
			return
		}
		api.Success(w, employees, requestID)
		return
	}
	if actor.IsSupervisor() {
		reports, err := h.Service.Store.DirectReports(r.Context(), actor.UserID)
		if err != nil {
			failDirectory(w, err, requestID)
			return
		}
		api.Success(w, reports, requestID)
		return
	}
	failDirectory(w, directory.ErrForbidden, requestID)
}

type registerPayload struct {
	EmployeeNumber string  `json:"employeeNumber"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	JoinedOn       string  `json:"joinedOn"`
	Password       string  `json:"password"`
	Role           string  `json:"role"`
	Salary         float64 `json:"salary"`
	SupervisorID   string  `json:"supervisorId"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload registerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeNumber", payload.EmployeeNumber, "employee number is required")
	v.Required("name", payload.Name, "name is required")
	v.Required("email", payload.Email, "email is required")
	v.Required("password", payload.Password, "password is required")
	v.Enum("role", payload.Role, auth.AllRoles, "role must be employee, supervisor, or hr")
	joinedOn, _ := v.Date("joinedOn", payload.JoinedOn)
	if v.Reject(w, requestID) {
		return
	}

	employee, err := h.Service.Register(r.Context(), actor, directory.RegisterInput{
		Number:       payload.EmployeeNumber,
		Name:         payload.Name,
		Email:        payload.Email,
		Phone:        payload.Phone,
		Address:      payload.Address,
		JoinedOn:     joinedOn,
		Password:     payload.Password,
		Role:         payload.Role,
		Salary:       payload.Salary,
		SupervisorID: payload.SupervisorID,
	})
	if err != nil {
		failDirectory(w, err, requestID)
		return
	}
	api.Created(w, employee, requestID)
}

func (h *Handler) handleSupervisors(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	if !directory.CanRegister(actor) {
		failDirectory(w, directory.ErrForbidden, requestID)
		return
	}
	supervisors, err := h.Service.Store.Supervisors(r.Context())
	if err != nil {
		failDirectory(w, err, requestID)
		return
	}
	api.Success(w, supervisors, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	targetID := chi.URLParam(r, "employeeID")

	target, err := h.Service.Store.ByID(r.Context(), targetID)
	if err != nil {
		failDirectory(w, err, requestID)
		return
	}
	if target.ID != actor.UserID && !directory.CanEdit(actor, target) {
		failDirectory(w, directory.ErrForbidden, requestID)
		return
	}
	api.Success(w, target, requestID)
}

type updatePayload struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	Salary       float64 `json:"salary"`
	Role         string  `json:"role"`
	SupervisorID string  `json:"supervisorId"`
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload updatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("email", payload.Email, "email is required")
	v.Enum("role", payload.Role, auth.AllRoles, "role must be employee, supervisor, or hr")
	if v.Reject(w, requestID) {
		return
	}

	employee, err := h.Service.Update(r.Context(), actor, chi.URLParam(r, "employeeID"), directory.UpdateInput{
		Name:         payload.Name,
		Email:        payload.Email,
		Phone:        payload.Phone,
		Address:      payload.Address,
		Salary:       payload.Salary,
		Role:         payload.Role,
		SupervisorID: payload.SupervisorID,
	})
	if err != nil {
		failDirectory(w, err, requestID)
		return
	}
	api.Success(w, employee, requestID)
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	if err := h.Service.Remove(r.Context(), actor, chi.URLParam(r, "employeeID")); err != nil {
		failDirectory(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"status": "removed"}, requestID)
}

type changePasswordPayload struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload changePasswordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("currentPassword", payload.CurrentPassword, "current password is required")
	v.Required("newPassword", payload.NewPassword, "new password is required")
	if payload.NewPassword != payload.ConfirmPassword {
		v.Add("confirmPassword", "new passwords do not match")
	}
	if v.Reject(w, requestID) {
		return
	}

	if err := h.Service.ChangePassword(r.Context(), actor, payload.CurrentPassword, payload.NewPassword); err != nil {
		api.Fail(w, http.StatusBadRequest, "password_change_failed", err.Error(), requestID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, requestID)
}
