package net

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := RequestID(ctx); got != "" {
		t.Fatalf("RequestID on empty ctx = %q", got)
	}
	ctx = WithRequest(ctx, "req-42")
	if got := RequestID(ctx); got != "req-42" {
		t.Fatalf("RequestID = %q, want req-42", got)
	}
	// empty id is a no-op
	ctx2 := WithRequest(context.Background(), "")
	if got := RequestID(ctx2); got != "" {
		t.Fatalf("empty WithRequest should not set an id, got %q", got)
	}
}

func TestSearchIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithSearchID(context.Background(), "srch-7")
	if got := SearchID(ctx); got != "srch-7" {
		t.Fatalf("SearchID = %q, want srch-7", got)
	}
	if got := SearchID(context.Background()); got != "" {
		t.Fatalf("SearchID on empty ctx = %q", got)
	}
}
