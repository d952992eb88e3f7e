package domain

import (
	"testing"
	"time"
)

func TestWithDefaults(t *testing.T) {
	t.Parallel()

	c := Config{}.WithDefaults()
	if c.ServerURL != DefaultServerURL {
		t.Fatalf("ServerURL = %q", c.ServerURL)
	}
	if c.ShardMaxMatchCount != DefaultShardMaxMatchCount || c.MaxWallTimeMS != DefaultMaxWallTimeMS {
		t.Fatalf("limits = %d/%d", c.ShardMaxMatchCount, c.MaxWallTimeMS)
	}
	if c.HTTPTimeout != DefaultHTTPTimeout {
		t.Fatalf("HTTPTimeout = %v", c.HTTPTimeout)
	}

	// set fields survive
	c2 := Config{ServerURL: "http://zoekt:6070", ShardMaxMatchCount: 5}.WithDefaults()
	if c2.ServerURL != "http://zoekt:6070" || c2.ShardMaxMatchCount != 5 {
		t.Fatalf("set fields clobbered: %+v", c2)
	}
}

func TestMergeFieldByField(t *testing.T) {
	t.Parallel()

	base := Config{
		QueryPrefix:        "lang:go",
		ServerURL:          "http://localhost:6070",
		ShardMaxMatchCount: 50,
		MaxWallTimeMS:      10000,
		HTTPTimeout:        10 * time.Second,
	}
	got := base.Merge(Config{ServerURL: "http://other:6070", MaxWallTimeMS: 500})
	if got.ServerURL != "http://other:6070" || got.MaxWallTimeMS != 500 {
		t.Fatalf("override lost: %+v", got)
	}
	if got.QueryPrefix != "lang:go" || got.ShardMaxMatchCount != 50 || got.HTTPTimeout != 10*time.Second {
		t.Fatalf("untouched fields changed: %+v", got)
	}

	// zero override leaves base intact
	if got := base.Merge(Config{}); got != base {
		t.Fatalf("empty merge changed config: %+v", got)
	}
}
