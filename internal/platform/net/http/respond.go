// Package http provides the chi server wrapper and JSON response helpers
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "github.com/kentzhang-geek/zoekt.nvim/internal/platform/errors"
	pnet "github.com/kentzhang-geek/zoekt.nvim/internal/platform/net"
)

// Envelope is the body written for error responses
// Successful search responses are raw zoekt-shaped JSON, not enveloped,
// so the client sees exactly what a real zoekt webserver would send
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	reqID := pnet.RequestID(r.Context())
	status, wr := perr.HTTP(err)
	JSON(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		Code:       wr.Code,
		Error:      wr.Message,
		RequestID:  reqID,
	})
}
