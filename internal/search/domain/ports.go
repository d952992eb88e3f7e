package domain

import "context"

// SearcherPort runs one search end to end: build, dispatch, normalize
// rawQuery must be non-empty; the editor layer filters empty input before
// calling in
type SearcherPort interface {
	Search(ctx context.Context, rawQuery string, cfg Config) (Result, error)
}
