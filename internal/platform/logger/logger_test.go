package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "github.com/kentzhang-geek/zoekt.nvim/internal/platform/testkit"
)

// Init is sync.Once-guarded, so every test shares one root logger writing
// into logBuf; tests reset the buffer instead of re-initializing
var logBuf bytes.Buffer

func initTestLogger() {
	Init(Options{Level: "debug", Format: "json", Writer: &logBuf, Service: "zoekt-nvim"})
	logBuf.Reset()
}

func TestInitAndNamed(t *testing.T) {
	initTestLogger()

	Named("client").Info().Msg("dispatching")
	out := logBuf.String()
	kit.MustContain(t, out, `"component":"client"`)
	kit.MustContain(t, out, `"service":"zoekt-nvim"`)
	kit.MustContain(t, out, "dispatching")
}

func TestContextEnrichment(t *testing.T) {
	initTestLogger()

	ctx := WithSearch(context.Background(), "req-1", "srch-9")
	C(ctx).Info().Msg("normalized")
	out := logBuf.String()
	kit.MustContain(t, out, `"request_id":"req-1"`)
	kit.MustContain(t, out, `"search_id":"srch-9"`)
}

func TestContextEmptyIsNoop(t *testing.T) {
	initTestLogger()

	C(context.Background()).Info().Msg("plain")
	out := logBuf.String()
	if strings.Contains(out, "request_id") {
		t.Fatalf("unexpected request_id in %q", out)
	}
}

func TestParseLevelFallback(t *testing.T) {
	if parseLevel("nonsense") != parseLevel("debug") {
		t.Fatalf("unknown level should fall back to debug")
	}
	if parseLevel(" WARN ") != parseLevel("warning") {
		t.Fatalf("warn aliases should agree")
	}
}
