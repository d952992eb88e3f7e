// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keySearchID ctxKey = "search_id"

// WithRequest annotates context with the transport request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// WithSearchID annotates context with the id of an in-flight search handle
func WithSearchID(ctx context.Context, searchID string) context.Context {
	if searchID != "" {
		ctx = context.WithValue(ctx, keySearchID, searchID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// SearchID returns the search handle id on the context if present
func SearchID(ctx context.Context) string {
	if v, ok := ctx.Value(keySearchID).(string); ok {
		return v
	}
	return ""
}
