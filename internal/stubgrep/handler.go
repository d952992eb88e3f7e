package stubgrep

import (
	stdhttp "net/http"

	"github.com/kentzhang-geek/zoekt.nvim/internal/platform/logger"
	phttp "github.com/kentzhang-geek/zoekt.nvim/internal/platform/net/http"
	"github.com/kentzhang-geek/zoekt.nvim/internal/platform/net/http/bind"
	"github.com/kentzhang-geek/zoekt.nvim/internal/search/wire"
)

// Handler serves the zoekt-shaped search API over a Corpus
type Handler struct {
	corpus *Corpus
}

// NewHandler builds a handler over corpus
func NewHandler(corpus *Corpus) *Handler {
	return &Handler{corpus: corpus}
}

// Mount registers the stub routes on r; health checks come from the
// Heartbeat middleware, not a route here
func (h *Handler) Mount(r phttp.Router) {
	r.Post("/api/search", h.search)
}

// search decodes the request, scans the corpus, and replies with the same
// body shape a zoekt webserver would produce. Errors use the platform
// envelope; a real zoekt replies with plain text, but the client only looks
// at the status code on non-200 so the difference is harmless here
func (h *Handler) search(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	req, err := bind.ParseJSON[wire.Request](r)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}

	resp := h.corpus.Search(req.Q, req.Opts.ShardMaxMatchCount)
	logger.C(r.Context()).Debug().
		Str("query", req.Q).
		Int("files", len(resp.Result.Files)).
		Msg("stub search")
	phttp.JSON(w, stdhttp.StatusOK, resp)
}
