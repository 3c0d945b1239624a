package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"
	"github.com/dharanesh-official/hr-payroll-app/internal/domain/directory"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/api"
	"github.com/dharanesh-official/hr-payroll-app/internal/transport/http/middleware"
)

type Handler struct {
	Directory  *directory.Store
	Secret     string
	TokenTTL   time.Duration
	RootNumber string
}

func NewHandler(store *directory.Store, secret string, ttl time.Duration, rootNumber string) *Handler {
	return &Handler{Directory: store, Secret: secret, TokenTTL: ttl, RootNumber: rootNumber}
}

type loginRequest struct {
	EmployeeNumber string `json:"employeeNumber"`
	Password       string `json:"password"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	employee, err := h.Directory.ByNumber(r.Context(), payload.EmployeeNumber)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) || errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid employee number or password", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "login_failed", "login failed", requestID)
		return
	}
	if err := auth.CheckPassword(employee.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid employee number or password", requestID)
		return
	}

	claims := auth.Claims{
		UserID:         employee.ID,
		EmployeeNumber: employee.Number,
		Name:           employee.Name,
		RoleName:       employee.Role,
		Root:           employee.Number == h.RootNumber,
	}
	token, err := auth.GenerateToken(h.Secret, claims, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login_failed", "login failed", requestID)
		return
	}

	api.Success(w, map[string]any{"token": token, "user": employee}, requestID)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}
	employee, err := h.Directory.ByID(r.Context(), actor.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "profile_failed", "failed to load profile", requestID)
		return
	}
	api.Success(w, employee, requestID)
}
