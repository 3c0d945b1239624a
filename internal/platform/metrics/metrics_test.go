package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewCollectorsAreIndependent(t *testing.T) {
	first := New()
	second := New()

	first.Record(http.MethodGet, 200, 5*time.Millisecond)
	second.Record(http.MethodPost, 503, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	first.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `http_requests_total{method="GET",status="2xx"} 1`) {
		t.Fatalf("first collector missing its own sample:\n%s", body)
	}
	if strings.Contains(body, `status="5xx"`) {
		t.Fatal("first collector picked up the second collector's sample")
	}
}

func TestStatusLabel(t *testing.T) {
	cases := map[int]string{200: "2xx", 302: "3xx", 404: "4xx", 500: "5xx"}
	for status, want := range cases {
		if got := statusLabel(status); got != want {
			t.Fatalf("statusLabel(%d) = %q", status, got)
		}
	}
}
