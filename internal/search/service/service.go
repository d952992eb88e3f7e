// Package service wires query building, dispatch, and normalization into
// the search operation the editor layer calls
package service

import (
	"context"

	perr "github.com/kentzhang-geek/zoekt.nvim/internal/platform/errors"
	"github.com/kentzhang-geek/zoekt.nvim/internal/platform/logger"
	"github.com/kentzhang-geek/zoekt.nvim/internal/platform/net/http/bind"
	"github.com/kentzhang-geek/zoekt.nvim/internal/search/client"
	dom "github.com/kentzhang-geek/zoekt.nvim/internal/search/domain"
	"github.com/kentzhang-geek/zoekt.nvim/internal/search/normalize"
	"github.com/kentzhang-geek/zoekt.nvim/internal/search/query"
	"github.com/kentzhang-geek/zoekt.nvim/internal/search/wire"
)

// Service implements dom.SearcherPort
type Service struct {
	client *client.Client
}

// New constructs the search service around a transport client
func New(c *client.Client) *Service {
	return &Service{client: c}
}

// snapshot freezes the editor-owned config for one search: defaults
// applied, fields validated. The returned copy is never written again, so
// concurrent edits by the editor cannot touch an in-flight search
func snapshot(cfg dom.Config) (dom.Config, error) {
	cfg = cfg.WithDefaults()
	if err := bind.Struct(cfg); err != nil {
		return dom.Config{}, err
	}
	return cfg, nil
}

// build turns raw editor input plus a config snapshot into the wire request
func build(rawQuery string, cfg dom.Config) wire.Request {
	return wire.NewRequest(query.Build(rawQuery, cfg.QueryPrefix), cfg)
}

// Search runs one search synchronously: Build -> Dispatch -> Normalize.
// Transport and top-level parse failures come back as errors; per-record
// decode problems are absorbed into placeholder records.
// snap.HTTPTimeout bounds the round trip via a context deadline; the
// client's own transport timeout is the process ceiling, so the tighter of
// the two wins
func (s *Service) Search(ctx context.Context, rawQuery string, cfg dom.Config) (dom.Result, error) {
	if rawQuery == "" {
		return dom.Result{}, perr.InvalidArgf("empty query")
	}
	snap, err := snapshot(cfg)
	if err != nil {
		return dom.Result{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, snap.HTTPTimeout)
	defer cancel()

	req := build(rawQuery, snap)
	logger.C(ctx).Debug().Str("query", req.Q).Str("server", snap.ServerURL).Msg("search start")

	body, err := s.client.Search(ctx, snap.ServerURL, req)
	if err != nil {
		return dom.Result{}, err
	}

	res, err := normalize.Flatten(body)
	if err != nil {
		return dom.Result{}, err
	}
	logger.C(ctx).Debug().Int("matches", res.MatchCount).Int("files", res.FileCount).Msg("search done")
	return res, nil
}

// SearchAsync dispatches the search without blocking and delivers the
// normalized outcome to onComplete exactly once, on exec when supplied.
// Normalization runs on whichever goroutine the completion arrives on; it
// is pure and never blocks. snap.HTTPTimeout bounds the dispatch the same
// way the synchronous path does
func (s *Service) SearchAsync(
	ctx context.Context,
	rawQuery string,
	cfg dom.Config,
	exec client.Executor,
	onComplete func(dom.Result, error),
) (*client.Handle, error) {
	if rawQuery == "" {
		return nil, perr.InvalidArgf("empty query")
	}
	snap, err := snapshot(cfg)
	if err != nil {
		return nil, err
	}

	req := build(rawQuery, snap)
	dctx, cancel := context.WithTimeout(ctx, snap.HTTPTimeout)
	h := s.client.Dispatch(dctx, snap.ServerURL, req, exec, func(body []byte, err error) {
		defer cancel()
		if err != nil {
			onComplete(dom.Result{}, err)
			return
		}
		onComplete(normalize.Flatten(body))
	})
	return h, nil
}
