package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dharanesh-official/hr-payroll-app/internal/domain/auth"
)

const testSecret = "test-secret"

func actorEcho(t *testing.T, want string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActor(r.Context())
		if want == "" {
			if ok {
				t.Fatalf("expected no actor, got %+v", actor)
			}
			return
		}
		if !ok || actor.UserID != want {
			t.Fatalf("expected actor %q, got %+v (ok=%v)", want, actor, ok)
		}
	})
}

func TestAuthPassThroughWithoutToken(t *testing.T) {
	handler := Auth(testSecret)(actorEcho(t, ""))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestAuthAttachesActor(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, auth.Claims{UserID: "u-1", RoleName: auth.RoleEmployee}, time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	handler := Auth(testSecret)(actorEcho(t, "u-1"))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestAuthIgnoresBadToken(t *testing.T) {
	handler := Auth(testSecret)(actorEcho(t, ""))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestRequireActor(t *testing.T) {
	handler := RequireActor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without actor, got %d", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, auth.Claims{UserID: "u-1", RoleName: auth.RoleEmployee}, time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	var reached bool
	handler := Auth(testSecret)(RequireRole(auth.RoleHR)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if reached || rec.Code != http.StatusForbidden {
		t.Fatalf("employee passed hr gate, code %d", rec.Code)
	}
}
