package client

import (
	"context"
	"sync"

	"github.com/kentzhang-geek/zoekt.nvim/internal/platform/logger"
	"github.com/kentzhang-geek/zoekt.nvim/internal/search/wire"

	"github.com/google/uuid"
)

// Executor marshals a completion callback onto a scheduling context that is
// safe for the embedder (e.g. the goroutine draining the plugin's RPC
// channel). A nil Executor runs the callback on the request goroutine,
// which is fine for channel-based callers
type Executor func(func())

// Handle tracks one in-flight search. At most one request ever runs per
// Handle; independent searches get independent handles and share nothing
// mutable
type Handle struct {
	id   uuid.UUID
	done chan struct{}
	once sync.Once
}

// ID returns the handle's correlation id
func (h *Handle) ID() string { return h.id.String() }

// Done is closed after the completion callback has run
func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blocks until completion or ctx cancellation
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dispatch runs Search on its own goroutine and delivers the outcome to
// onComplete exactly once, via exec when one is supplied. Dispatch returns
// immediately; completion order across independent dispatches is not
// defined
func (c *Client) Dispatch(
	ctx context.Context,
	serverURL string,
	req wire.Request,
	exec Executor,
	onComplete func(body []byte, err error),
) *Handle {
	h := &Handle{id: uuid.New(), done: make(chan struct{})}
	ctx = logger.WithSearch(ctx, "", h.ID())

	go func() {
		body, err := c.Search(ctx, serverURL, req)
		h.once.Do(func() {
			deliver := func() {
				onComplete(body, err)
				close(h.done)
			}
			if exec != nil {
				exec(deliver)
				return
			}
			deliver()
		})
	}()
	return h
}
