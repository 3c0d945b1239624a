package shared

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestValidatorRequiredAndEnum(t *testing.T) {
	v := NewValidator()
	v.Required("name", "  ", "name is required")
	v.Enum("role", "chief", []string{"employee", "supervisor", "hr"}, "unknown role")
	v.Enum("role", "HR", []string{"employee", "supervisor", "hr"}, "unknown role")

	issues := v.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %v", issues)
	}
	if issues[0].Field != "name" || issues[1].Field != "role" {
		t.Fatalf("issues not sorted by field: %v", issues)
	}
}

func TestValidatorDate(t *testing.T) {
	v := NewValidator()

	parsed, ok := v.Date("joinedOn", "2026-03-02")
	if !ok || parsed != time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("valid date rejected: %v ok=%v", parsed, ok)
	}
	if _, ok := v.Date("startDate", "02/03/2026"); ok {
		t.Fatal("slash date accepted")
	}
	if _, ok := v.Date("endDate", ""); ok {
		t.Fatal("empty date accepted")
	}
	if len(v.Issues()) != 2 {
		t.Fatalf("expected 2 issues, got %v", v.Issues())
	}
}

func TestValidatorDateOrder(t *testing.T) {
	v := NewValidator()
	start := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	v.DateOrder("startDate", start, "endDate", start.AddDate(0, 0, -1))
	if !v.HasIssues() {
		t.Fatal("reversed range passed")
	}
}

func TestValidatorReject(t *testing.T) {
	v := NewValidator()
	rec := httptest.NewRecorder()
	if v.Reject(rec, "req-1") {
		t.Fatal("clean validator rejected the request")
	}

	v.Add("name", "name is required")
	rec = httptest.NewRecorder()
	if !v.Reject(rec, "req-1") {
		t.Fatal("dirty validator did not reject")
	}
	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
