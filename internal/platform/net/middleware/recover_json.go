package middleware

import (
	stdhttp "net/http"
	"runtime/debug"
	"strings"

	perr "github.com/kentzhang-geek/zoekt.nvim/internal/platform/errors"
	"github.com/kentzhang-geek/zoekt.nvim/internal/platform/logger"
	pnet "github.com/kentzhang-geek/zoekt.nvim/internal/platform/net"
	phttp "github.com/kentzhang-geek/zoekt.nvim/internal/platform/net/http"
)

// RecoverJSON converts panics into a JSON 500 envelope and logs the stack
// with the request id
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			if v := recover(); v != nil {
				reqID := pnet.RequestID(r.Context())

				raw := debug.Stack()
				lines := strings.Split(string(raw), "\n")
				stack := strings.Join(lines, "\n\t")

				log := logger.C(r.Context())
				log.Error().
					Str("request_id", reqID).
					Interface("panic", v).
					Msgf("panic recovered\n%s", stack)

				// mirror id in response header
				if reqID != "" {
					w.Header().Set("X-Request-ID", reqID)
				}

				phttp.RespondError(w, r, perr.PanicErrf("panic recovered"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
