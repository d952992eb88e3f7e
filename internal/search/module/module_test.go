package module

import (
	"testing"
	"time"

	"github.com/kentzhang-geek/zoekt.nvim/internal/platform/config"
	"github.com/kentzhang-geek/zoekt.nvim/internal/search/domain"
)

func TestNewExposesSearcherPort(t *testing.T) {
	m := New(config.New().Prefix("ZOEKT_"))
	if m.Name() != "search" {
		t.Fatalf("name = %q", m.Name())
	}
	if m.Ports().Searcher == nil {
		t.Fatalf("searcher port not wired")
	}
	if m.Service() == nil {
		t.Fatalf("service not exposed")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ZOEKT_QUERY_PREFIX", "lang:go")
	t.Setenv("ZOEKT_SERVER_URL", "http://zoekt:6070")
	t.Setenv("ZOEKT_SHARD_MAX_MATCH_COUNT", "25")
	t.Setenv("ZOEKT_MAX_WALL_TIME_MS", "500")
	t.Setenv("ZOEKT_HTTP_TIMEOUT", "2s")

	cfg := ConfigFromEnv(config.New().Prefix("ZOEKT_"))
	want := domain.Config{
		QueryPrefix:        "lang:go",
		ServerURL:          "http://zoekt:6070",
		ShardMaxMatchCount: 25,
		MaxWallTimeMS:      500,
		HTTPTimeout:        2 * time.Second,
	}
	if cfg != want {
		t.Fatalf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg := ConfigFromEnv(config.New().Prefix("ZOEKTTEST_UNSET_"))
	if cfg.ServerURL != domain.DefaultServerURL {
		t.Fatalf("default server url = %q", cfg.ServerURL)
	}
	if cfg.ShardMaxMatchCount != domain.DefaultShardMaxMatchCount {
		t.Fatalf("default shard max = %d", cfg.ShardMaxMatchCount)
	}
}
