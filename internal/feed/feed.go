// Package feed loads already-fetched content from JSONL files, one record
// per line.
package feed

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cognicore/insightful/pkg/insight/enrich"
	"github.com/cognicore/insightful/pkg/insight/internalerr"
)

// maxLine bounds a single JSONL record.
const maxLine = 4 << 20

// Read decodes records from r. Malformed lines are logged and skipped; an
// input without any valid record is an error.
func Read[T any](r io.Reader, name string, logger *zap.Logger) ([]T, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var items []T
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		var item T
		if err := json.Unmarshal([]byte(text), &item); err != nil {
			logger.Warn("skipping malformed JSON line",
				zap.String("input", name),
				zap.Int("line", line),
				zap.Error(err))
			continue
		}
		items = append(items, item)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no valid items found in %s", internalerr.ErrInvalidInput, name)
	}
	return items, nil
}

// Source resolves input paths for the loaders. The path "-" reads Stdin
// (os.Stdin when nil).
type Source struct {
	Stdin  io.Reader
	Logger *zap.Logger
}

// Load reads records from a JSONL file, or from the source's stdin for "-".
func Load[T any](src Source, path string) ([]T, error) {
	if path == "-" {
		in := src.Stdin
		if in == nil {
			in = os.Stdin
		}
		return Read[T](in, "stdin", src.Logger)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Read[T](f, path, src.Logger)
}

// Reviews loads reviews, one per line.
func (s Source) Reviews(path string) ([]enrich.Review, error) {
	return Load[enrich.Review](s, path)
}

// Products loads products with their reviews, one product per line.
func (s Source) Products(path string) ([]enrich.ProductReviews, error) {
	return Load[enrich.ProductReviews](s, path)
}

// Posts loads video or image posts, one per line.
func (s Source) Posts(path string) ([]enrich.Post, error) {
	return Load[enrich.Post](s, path)
}

// Threads loads forum threads, one per line.
func (s Source) Threads(path string) ([]enrich.Thread, error) {
	return Load[enrich.Thread](s, path)
}
