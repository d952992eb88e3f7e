package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "github.com/kentzhang-geek/zoekt.nvim/internal/platform/errors"
	pnet "github.com/kentzhang-geek/zoekt.nvim/internal/platform/net"
	kit "github.com/kentzhang-geek/zoekt.nvim/internal/platform/testkit"
)

func TestJSONWritesContentType(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	JSON(rec, stdhttp.StatusOK, map[string]int{"n": 1})
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
	kit.MustContain(t, rec.Body.String(), `"n":1`)
}

func TestRespondErrorEnvelope(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/search", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "req-9"))
	rec := httptest.NewRecorder()

	RespondError(rec, req, perr.JSONErrf("invalid JSON"))

	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var env Envelope
	kit.MustNoErr(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if env.Code != perr.ErrorCodeJSON || env.RequestID != "req-9" {
		t.Fatalf("envelope = %+v", env)
	}
}
