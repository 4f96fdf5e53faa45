package recorded

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/recarchiver/internal/logging"
)

// readBatch is the number of directory entries read per ReadDir call.
const readBatch = 256

// Searcher scans a fixed, ordered set of storage roots.
type Searcher struct {
	roots  []string
	raw    bool
	logger logging.Logger
}

// NewSearcher returns a Searcher over roots. With rawPatterns set titles
// are treated as regular expressions.
func NewSearcher(roots []string, rawPatterns bool, logger logging.Logger) *Searcher {
	return &Searcher{roots: roots, raw: rawPatterns, logger: logger}
}

// Search yields the full path of every immediate child of each root whose
// path matches title. Roots are visited in order; entries within a root
// come in directory order, which is not sorted.
//
// The sequence is lazy and single-pass: it lists directories while being
// ranged over, and a second range lists them again. A root that does not
// exist contributes nothing. Any other error is yielded once with an empty
// path and ends the sequence.
func (s *Searcher) Search(ctx context.Context, title string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		m, err := NewMatcher(title, s.raw)
		if err != nil {
			yield("", err)
			return
		}

		s.logger.Debug(ctx, "searching", "title", title, "pattern", m.String())

		for _, root := range s.roots {
			more, err := s.scanRoot(ctx, root, m, yield)
			if err != nil {
				yield("", err)
				return
			}
			if !more {
				return
			}
		}
	}
}

// scanRoot yields matches from one root. It returns false when the
// consumer stopped ranging.
func (s *Searcher) scanRoot(ctx context.Context, root string, m *Matcher, yield func(string, error) bool) (bool, error) {
	dir, err := os.Open(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug(ctx, "root does not exist, skipping", "root", root)
			return true, nil
		}
		return false, err
	}
	defer dir.Close()

	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		entries, err := dir.ReadDir(readBatch)
		for _, e := range entries {
			path := filepath.Join(root, e.Name())
			if !m.Match(path) {
				continue
			}
			if !yield(path, nil) {
				return false, nil
			}
		}

		if errors.Is(err, io.EOF) {
			return true, nil
		}
		if err != nil {
			return false, err
		}
	}
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq iter.Seq2[string, error]) ([]string, error) {
	var paths []string
	for p, err := range seq {
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
