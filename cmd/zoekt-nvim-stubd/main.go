// Command zoekt-nvim-stubd serves a zoekt-shaped search API over an
// in-memory corpus. Development only: substring scan, no index, no ranking
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/kentzhang-geek/zoekt.nvim/internal/platform/config"
	"github.com/kentzhang-geek/zoekt.nvim/internal/platform/logger"
	phttp "github.com/kentzhang-geek/zoekt.nvim/internal/platform/net/http"
	"github.com/kentzhang-geek/zoekt.nvim/internal/platform/net/middleware"
	"github.com/kentzhang-geek/zoekt.nvim/internal/stubgrep"
)

// builtinCorpus serves when no -corpus dir is given, enough to smoke-test
// the plugin end to end
func builtinCorpus() *stubgrep.Corpus {
	return stubgrep.NewCorpus([]stubgrep.File{
		{Name: "hello/main.go", Lines: []string{
			"package main",
			"",
			"import \"fmt\"",
			"",
			"func main() {",
			"\tfmt.Println(\"hello\")",
			"}",
		}},
		{Name: "hello/README.md", Lines: []string{
			"# hello",
			"",
			"A sample corpus file for the stub search server.",
		}},
	})
}

func main() {
	corpusDir := flag.String("corpus", "", "directory to load as the search corpus (empty = builtin sample)")
	flag.Parse()

	logger.Init(logger.FromEnv())
	l := logger.Get()

	// server-scoped config (ZOEKT_STUB_ADDR etc)
	root := config.New()
	stubCfg := root.Prefix("ZOEKT_STUB_")

	corpus := builtinCorpus()
	if *corpusDir != "" {
		c, err := stubgrep.FromDir(*corpusDir)
		if err != nil {
			l.Panic().Err(err).Str("dir", *corpusDir).Msg("corpus load failed")
		}
		corpus = c
	}
	l.Info().Int("files", corpus.Len()).Msg("corpus ready")

	srv := phttp.NewServer(stubCfg)
	r := srv.Router()
	r.Use(middleware.Defaults()...)
	r.Use(middleware.Heartbeat("/healthz"))
	r.Use(middleware.CORS(middleware.CORSOptions{}))
	r.Use(middleware.AccessLog)
	r.Use(middleware.RecoverJSON)

	stubgrep.NewHandler(corpus).Mount(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			l.Error().Err(err).Msg("shutdown failed")
		}
	}()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
