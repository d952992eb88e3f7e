// Package stubgrep is a development stand-in for a zoekt webserver.
// It serves /api/search over a small in-memory corpus with naive substring
// matching: no index, no ranking, results in corpus order. It exists so the
// editor plugin and the client tests can run without a zoekt deployment
package stubgrep

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	"github.com/kentzhang-geek/zoekt.nvim/internal/search/query"
	"github.com/kentzhang-geek/zoekt.nvim/internal/search/wire"
)

// maxFileBytes guards against accidentally loading huge fixtures
const maxFileBytes = 1 << 20

// File is one corpus document
type File struct {
	Name  string
	Lines []string
}

// Corpus holds the fixture documents in serving order
type Corpus struct {
	files []File
}

// NewCorpus builds a corpus from files, preserving order
func NewCorpus(files []File) *Corpus {
	return &Corpus{files: files}
}

// FromDir loads every regular file under dir (recursively) as a document,
// keyed by its dir-relative path. Unreadable and oversized files are
// skipped, not fatal
func FromDir(dir string) (*Corpus, error) {
	var files []File
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		info, err := d.Info()
		if err != nil || info.Size() > maxFileBytes {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		files = append(files, File{
			Name:  filepath.ToSlash(rel),
			Lines: strings.Split(strings.TrimRight(string(b), "\n"), "\n"),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewCorpus(files), nil
}

// Len returns the number of documents
func (c *Corpus) Len() int { return len(c.files) }

// needle extracts the literal part of an effective query: "field:value"
// atoms are dropped (the stub has no metadata to match them against) and
// the client's backslash doubling is undone
func needle(q string) string {
	var kept []string
	for _, tok := range strings.Fields(q) {
		if strings.Contains(tok, ":") {
			continue
		}
		kept = append(kept, tok)
	}
	return query.Unescape(strings.Join(kept, " "))
}

// Search runs a substring scan and shapes the result like a zoekt response.
// maxMatches caps total emitted line matches (the corpus is one "shard");
// 0 means unlimited
func (c *Corpus) Search(q string, maxMatches int) wire.Response {
	sub := needle(q)
	total := 0
	var out []wire.File

	for _, f := range c.files {
		if maxMatches > 0 && total >= maxMatches {
			break
		}
		var matches []wire.LineMatch
		for i, line := range f.Lines {
			if maxMatches > 0 && total >= maxMatches {
				break
			}
			if sub != "" && !strings.Contains(line, sub) {
				continue
			}
			matches = append(matches, wire.LineMatch{
				// line numbers are 1-based on the wire
				LineNumber: i + 1,
				Line:       base64.StdEncoding.EncodeToString([]byte(line + "\n")),
			})
			total++
		}
		if len(matches) > 0 {
			out = append(out, wire.File{FileName: f.Name, LineMatches: matches})
		}
	}
	return wire.Response{Result: &wire.Result{Files: out}}
}
