package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nerdwave-nick/pokewrap/internal/api/health"
)

func TestRouterServesHealthWithCORS(t *testing.T) {
	router := MakeRouter(http.NewServeMux(), []Controller{
		health.MakeController(func() map[string]int { return map[string]int{"pokemon": 3} }),
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected CORS header *, got %q", got)
	}
	var body struct {
		Status  string         `json:"status"`
		Records map[string]int `json:"records"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" || body.Records["pokemon"] != 3 {
		t.Errorf("unexpected body %+v", body)
	}
}
