// Command zoekt-nvim-search is the helper binary the editor plugin shells
// out to. It reads one JSON request from stdin, runs the search, and writes
// one JSON response to stdout. Logs go to stderr; stdout carries only the
// protocol
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/kentzhang-geek/zoekt.nvim/internal/platform/config"
	perr "github.com/kentzhang-geek/zoekt.nvim/internal/platform/errors"
	"github.com/kentzhang-geek/zoekt.nvim/internal/platform/logger"
	"github.com/kentzhang-geek/zoekt.nvim/internal/search/domain"
	"github.com/kentzhang-geek/zoekt.nvim/internal/search/module"
)

// configOverride is domain.Config plus a JSON-friendly transport timeout
// (milliseconds; a time.Duration would not survive the wire)
type configOverride struct {
	domain.Config
	HTTPTimeoutMS int `json:"http_timeout_ms,omitempty"`
}

// request is the stdin protocol. Config fields override the ZOEKT_* env
// defaults field by field; absent fields keep the env value
type request struct {
	Action string         `json:"action"`
	Query  string         `json:"query"`
	Config configOverride `json:"config"`
}

// response is the stdout protocol. Records stays present (possibly empty)
// on success so the plugin never branches on a missing key
type response struct {
	OK         bool                 `json:"ok"`
	Records    []domain.MatchRecord `json:"records"`
	MatchCount int                  `json:"match_count"`
	FileCount  int                  `json:"file_count"`
	Error      *perr.Wire           `json:"error,omitempty"`
}

func writeOut(v response) {
	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		logger.Get().Error().Err(err).Msg("failed to write response")
	}
}

func fail(err error) {
	logger.Get().Error().Err(err).Msg("search failed")
	wr := perr.WireFrom(err)
	writeOut(response{OK: false, Error: &wr})
	os.Exit(1)
}

func main() {
	timeout := flag.Duration("timeout", 0, "overall deadline (0 = transport timeout only)")
	flag.Parse()

	logger.Init(logger.FromEnv())

	root := config.New()
	zcfg := root.Prefix("ZOEKT_")

	var req request
	dec := json.NewDecoder(os.Stdin)
	if err := dec.Decode(&req); err != nil {
		fail(perr.JSONErrf("invalid request: %v", err))
	}
	if req.Action != "" && req.Action != "search" {
		fail(perr.InvalidArgf("unknown action %q", req.Action))
	}

	// env defaults, then per-invocation overrides from the request
	cfg := module.ConfigFromEnv(zcfg).Merge(req.Config.Config)
	if req.Config.HTTPTimeoutMS > 0 {
		cfg.HTTPTimeout = time.Duration(req.Config.HTTPTimeoutMS) * time.Millisecond
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	start := time.Now()
	m := module.New(zcfg)
	res, err := m.Service().Search(ctx, req.Query, cfg)
	if err != nil {
		fail(err)
	}
	logger.Get().Info().
		Int("matches", res.MatchCount).
		Int("files", res.FileCount).
		Dur("elapsed", time.Since(start)).
		Msg("search done")

	writeOut(response{
		OK:         true,
		Records:    res.Records,
		MatchCount: res.MatchCount,
		FileCount:  res.FileCount,
	})
}
