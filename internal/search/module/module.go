// Package module bundles the search service behind its port for embedders
package module

import (
	"time"

	"github.com/kentzhang-geek/zoekt.nvim/internal/platform/config"
	"github.com/kentzhang-geek/zoekt.nvim/internal/search/client"
	"github.com/kentzhang-geek/zoekt.nvim/internal/search/domain"
	"github.com/kentzhang-geek/zoekt.nvim/internal/search/service"
)

// Ports exposed by the search module
type Ports struct {
	Searcher domain.SearcherPort
}

// Module owns the transport client and the service built on it
type Module struct {
	svc   *service.Service
	ports Ports
}

// New constructs the search module; cfg is the module-scoped env view
// (ZOEKT_ prefix by convention)
func New(cfg config.Conf) *Module {
	c := client.New(client.Options{
		Timeout: cfg.MayDuration("HTTP_TIMEOUT", domain.DefaultHTTPTimeout),
	})
	svc := service.New(c)
	return &Module{
		svc:   svc,
		ports: Ports{Searcher: svc},
	}
}

// Name satisfies the module naming convention
func (m *Module) Name() string { return "search" }

// Ports returns the module's port set
func (m *Module) Ports() Ports { return m.ports }

// Service exposes the concrete service for callers that need the async path
func (m *Module) Service() *service.Service { return m.svc }

// ConfigFromEnv builds the editor-facing default Config from the env view
func ConfigFromEnv(cfg config.Conf) domain.Config {
	return domain.Config{
		QueryPrefix:        cfg.MayString("QUERY_PREFIX", ""),
		ServerURL:          cfg.MayString("SERVER_URL", domain.DefaultServerURL),
		ShardMaxMatchCount: cfg.MayInt("SHARD_MAX_MATCH_COUNT", domain.DefaultShardMaxMatchCount),
		MaxWallTimeMS:      cfg.MayInt("MAX_WALL_TIME_MS", domain.DefaultMaxWallTimeMS),
		HTTPTimeout:        cfg.MayDuration("HTTP_TIMEOUT", 10*time.Second),
	}
}
