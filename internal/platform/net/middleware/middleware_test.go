package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "github.com/kentzhang-geek/zoekt.nvim/internal/platform/errors"
	phttp "github.com/kentzhang-geek/zoekt.nvim/internal/platform/net/http"
	kit "github.com/kentzhang-geek/zoekt.nvim/internal/platform/testkit"
)

func TestRecoverJSONWritesEnvelope(t *testing.T) {
	h := RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/search", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var env phttp.Envelope
	kit.MustNoErr(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if env.StatusCode != http.StatusInternalServerError || env.Code != perr.ErrorCodePanic {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestHeartbeat(t *testing.T) {
	h := Heartbeat("/healthz")(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("must not reach downstream")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAccessLogCapturesStatus(t *testing.T) {
	var saw int
	h := AccessLog(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	saw = rec.Code
	if saw != http.StatusTeapot {
		t.Fatalf("status not propagated, got %d", saw)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := CORS(CORSOptions{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/search", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin = %q", got)
	}
}

func TestRequestIDPropagates(t *testing.T) {
	var got string
	inner := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
	})
	h := RequestID()(inner)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "upstream-1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if got != "upstream-1" {
		t.Fatalf("request id = %q", got)
	}
}
