// Package domain defines the types and interfaces for the search core
package domain

import "time"

// Defaults for Config fields left zero by the editor layer
const (
	DefaultServerURL          = "http://localhost:6070"
	DefaultShardMaxMatchCount = 50
	DefaultMaxWallTimeMS      = 10000
	DefaultHTTPTimeout        = 10 * time.Second
)

// Config is the editor-owned search configuration. The editor layer may
// replace any field at any time; the core never mutates it and copies a
// snapshot (plain value copy) when a search is built, so concurrent edits
// cannot corrupt an in-flight search
type Config struct {
	// QueryPrefix is prepended to every raw query ("lang:go" style atoms)
	QueryPrefix string `json:"query_prefix,omitempty"`

	// ServerURL is the zoekt webserver base URL
	ServerURL string `json:"server_url,omitempty" validate:"omitempty,url"`

	// ShardMaxMatchCount bounds matches returned per index shard
	ShardMaxMatchCount int `json:"shard_max_match_count,omitempty" validate:"min=0"`

	// MaxWallTimeMS is the server-side search deadline in milliseconds
	MaxWallTimeMS int `json:"max_wall_time_ms,omitempty" validate:"min=0"`

	// HTTPTimeout bounds the local transport; distinct from MaxWallTimeMS,
	// which the server enforces
	HTTPTimeout time.Duration `json:"-"`
}

// WithDefaults returns a copy with zero fields replaced by defaults
func (c Config) WithDefaults() Config {
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	if c.ShardMaxMatchCount == 0 {
		c.ShardMaxMatchCount = DefaultShardMaxMatchCount
	}
	if c.MaxWallTimeMS == 0 {
		c.MaxWallTimeMS = DefaultMaxWallTimeMS
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}
	return c
}

// Merge returns a copy of c with non-zero fields of o replacing c's
// (field-by-field replace, never a deep overlay)
func (c Config) Merge(o Config) Config {
	if o.QueryPrefix != "" {
		c.QueryPrefix = o.QueryPrefix
	}
	if o.ServerURL != "" {
		c.ServerURL = o.ServerURL
	}
	if o.ShardMaxMatchCount != 0 {
		c.ShardMaxMatchCount = o.ShardMaxMatchCount
	}
	if o.MaxWallTimeMS != 0 {
		c.MaxWallTimeMS = o.MaxWallTimeMS
	}
	if o.HTTPTimeout != 0 {
		c.HTTPTimeout = o.HTTPTimeout
	}
	return c
}

// MatchRecord is the flattened output unit: one line match, detached from
// its file's position in the server response
type MatchRecord struct {
	Filename   string `json:"filename"`
	LineNumber int    `json:"line_number"`
	Content    string `json:"content"`
}

// Result is a completed, normalized search
// Zero records is a valid success ("no results"), not an error
type Result struct {
	Records    []MatchRecord `json:"records"`
	MatchCount int           `json:"match_count"`
	FileCount  int           `json:"file_count"`
}
