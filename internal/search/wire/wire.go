// Package wire holds the JSON shapes exchanged with the zoekt webserver
package wire

import "github.com/kentzhang-geek/zoekt.nvim/internal/search/domain"

// Request is the POST /api/search body
// Field names are fixed by the server; do not rename
type Request struct {
	Q    string  `json:"Q" validate:"required"`
	Opts Options `json:"Opts"`
}

// Options carries the per-request limits
type Options struct {
	ShardMaxMatchCount int `json:"ShardMaxMatchCount" validate:"min=0"`
	MaxWallTime        int `json:"MaxWallTime" validate:"min=0"`
}

// NewRequest maps an effective query plus a config snapshot onto the wire
// shape. No client-side range validation: out-of-range limits are the
// server's concern
func NewRequest(effectiveQuery string, cfg domain.Config) Request {
	return Request{
		Q: effectiveQuery,
		Opts: Options{
			ShardMaxMatchCount: cfg.ShardMaxMatchCount,
			MaxWallTime:        cfg.MaxWallTimeMS,
		},
	}
}

// Response is the success body. Everything outside Result.Files is opaque
// to the client and ignored during decoding
type Response struct {
	Result *Result `json:"Result"`
}

// Result nests the matched files
type Result struct {
	Files []File `json:"Files"`
}

// File is one matched file with its line matches in server order
type File struct {
	FileName    string      `json:"FileName"`
	LineMatches []LineMatch `json:"LineMatches"`
}

// LineMatch is one matching line; Line is base64-encoded content
type LineMatch struct {
	LineNumber int    `json:"LineNumber"`
	Line       string `json:"Line"`
}
