package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRateLimitExhaustsBurst(t *testing.T) {
	e := echo.New()
	mw := RateLimit(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 2})
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	do := func() (int, http.Header) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.1.2.3:1234"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		err := handler(c)
		if err != nil {
			he, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("unexpected error: %v", err)
			}
			return he.Code, rec.Header()
		}
		return rec.Code, rec.Header()
	}

	for i := 0; i < 2; i++ {
		if code, _ := do(); code != http.StatusOK {
			t.Fatalf("request %d: code = %d, want 200", i+1, code)
		}
	}
	code, header := do()
	if code != http.StatusTooManyRequests {
		t.Fatalf("third request: code = %d, want 429", code)
	}
	if header.Get("Retry-After") == "" {
		t.Error("expected Retry-After header on 429")
	}
}

func TestRateLimitSeparateClients(t *testing.T) {
	e := echo.New()
	mw := RateLimit(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1})
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	do := func(addr string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		return handler(e.NewContext(req, rec))
	}

	if err := do("10.0.0.1:1"); err != nil {
		t.Fatalf("first client: %v", err)
	}
	if err := do("10.0.0.2:1"); err != nil {
		t.Fatalf("second client should have its own bucket: %v", err)
	}
	if err := do("10.0.0.1:1"); err == nil {
		t.Fatal("first client should be limited on its second request")
	}
}
