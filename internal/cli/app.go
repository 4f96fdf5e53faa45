package cli

import (
	"bufio"
	"context"
	"io"
	"iter"

	"github.com/dmitrijs2005/recarchiver/internal/archive"
	"github.com/dmitrijs2005/recarchiver/internal/config"
	"github.com/dmitrijs2005/recarchiver/internal/logging"
	"github.com/dmitrijs2005/recarchiver/internal/recorded"
)

type searcher interface {
	Search(ctx context.Context, title string) iter.Seq2[string, error]
}

type reporter interface {
	Report(ctx context.Context, w io.Writer) error
}

type uploader interface {
	Upload(ctx context.Context, localPath, prefix string) (string, error)
}

// App wires the menu commands to the recorded-file operations.
type App struct {
	reader   *bufio.Reader
	out      io.Writer
	logger   logging.Logger
	searcher searcher
	reporter reporter

	// newUploader is called only by the upload command, so a missing
	// bucket does not affect the other commands.
	newUploader func(ctx context.Context) (uploader, error)
}

// NewApp builds an App reading answers from in and writing reports to out.
func NewApp(cfg *config.Config, in io.Reader, out io.Writer, logger logging.Logger) *App {
	return &App{
		reader:   bufio.NewReader(in),
		out:      out,
		logger:   logger,
		searcher: recorded.NewSearcher(cfg.Roots, cfg.RegexTitle, logger),
		reporter: recorded.NewDiskReporter(cfg.Roots, logger),
		newUploader: func(ctx context.Context) (uploader, error) {
			return archive.New(ctx, cfg, out, logger)
		},
	}
}
