package recorded

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/recarchiver/internal/logging"
)

// freeBytes is a test seam for the platform free-space query.
var freeBytes = diskFree

// DiskReporter prints the free space of each storage root.
type DiskReporter struct {
	roots  []string
	logger logging.Logger
}

func NewDiskReporter(roots []string, logger logging.Logger) *DiskReporter {
	return &DiskReporter{roots: roots, logger: logger}
}

// Report writes "<root>: <free> GB" for each root in order. The first
// root that cannot be queried aborts the report.
func (d *DiskReporter) Report(ctx context.Context, w io.Writer) error {
	for _, root := range d.roots {
		free, err := freeBytes(root)
		if err != nil {
			return fmt.Errorf("disk usage %s: %w", root, err)
		}
		d.logger.Debug(ctx, "free space", "root", root, "bytes", free)

		if _, err := fmt.Fprintf(w, "%s: %.1f GB\n", root, ToGB(free)); err != nil {
			return err
		}
	}
	return nil
}
