// Package normalize flattens the server's nested file/match structure into
// the ordered MatchRecord sequence the editor renders
// Pipeline per line match
// 1 base64 decode (failure degrades to a placeholder, never aborts)
// 2 UTF-8 repair drop invalid bytes
// 3 Remove zero-width and other format chars so one glyph column = one rune
// 4 Strip the trailing newline run
// 5 Replace internal newline runs with a visible separator
package normalize

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"sync"
	"unicode"

	perr "github.com/kentzhang-geek/zoekt.nvim/internal/platform/errors"
	"github.com/kentzhang-geek/zoekt.nvim/internal/search/domain"
	"github.com/kentzhang-geek/zoekt.nvim/internal/search/wire"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	// Separator replaces internal newline runs so a record is one display line
	Separator = " … "

	// DecodePlaceholder is emitted as content when base64 decoding fails
	DecodePlaceholder = "<undecodable line>"

	// UnknownLine marks a match whose line number was absent
	// (zoekt numbers lines from 1, so 0 is unambiguous)
	UnknownLine = 0
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
		)
	},
}

// Flatten parses a raw /api/search response body and emits one MatchRecord
// per line match, in server order. Only a top-level parse failure is fatal;
// a missing or empty Files list is a successful empty result, and
// per-record decode problems degrade to placeholder values
func Flatten(raw []byte) (domain.Result, error) {
	var resp wire.Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return domain.Result{}, perr.Wrapf(err, perr.ErrorCodeMalformed, "search response parse failed")
	}

	if resp.Result == nil || len(resp.Result.Files) == 0 {
		return domain.Result{Records: []domain.MatchRecord{}}, nil
	}

	files := resp.Result.Files
	out := domain.Result{Records: make([]domain.MatchRecord, 0, len(files)), FileCount: len(files)}
	for _, f := range files {
		for _, m := range f.LineMatches {
			out.Records = append(out.Records, domain.MatchRecord{
				Filename:   f.FileName,
				LineNumber: m.LineNumber,
				Content:    CleanLine(m.Line),
			})
		}
	}
	out.MatchCount = len(out.Records)
	return out, nil
}

// CleanLine decodes one base64 line and makes it a single display line.
// An empty input stays empty; undecodable input becomes DecodePlaceholder
func CleanLine(encoded string) string {
	if encoded == "" {
		return ""
	}
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return DecodePlaceholder
	}

	s := strings.ToValidUTF8(string(b), "")

	tr := chainPool.Get().(transform.Transformer)
	s, _, _ = transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	s = strings.TrimRight(s, "\r\n")
	return collapseNewlines(s)
}

// collapseNewlines converts every internal run of CR/LF characters to the
// Separator; all other characters pass through untouched
func collapseNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if r == '\r' || r == '\n' {
			inRun = true
			continue
		}
		if inRun {
			b.WriteString(Separator)
			inRun = false
		}
		b.WriteRune(r)
	}
	// a trailing run has already been trimmed by the caller; if one slips
	// through, dropping it keeps the record single-line
	return b.String()
}
