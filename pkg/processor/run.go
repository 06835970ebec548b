package processor

import (
	"io"
	"os"
	"time"

	"github.com/arthur-debert/gccleaner/pkg/errors"
	"github.com/arthur-debert/gccleaner/pkg/logging"
)

// RunSettings are the file-level settings of a run.
type RunSettings struct {
	FileNamePostFix string
	// TrailingExtensionOnly selects TrailingDestinationPath over DestinationPath.
	TrailingExtensionOnly bool
}

// Destination returns the output path for source under these settings.
func (s RunSettings) Destination(source string) string {
	postfix := s.FileNamePostFix
	if postfix == "" {
		postfix = DefaultFileNamePostFix
	}
	if s.TrailingExtensionOnly {
		return TrailingDestinationPath(source, postfix)
	}
	return DestinationPath(source, postfix)
}

// Run rewrites the file at sourcePath into its destination and returns the
// run's statistics. Both files are closed on every path; a destination that
// was partially written when an error occurred is left as is.
func Run(sourcePath string, e *Engine, settings RunSettings, opts Options) (stats Stats, err error) {
	logger := logging.GetLogger("processor")
	done := logging.LogOperationStart(logger, "run")
	defer done()

	dest := settings.Destination(sourcePath)

	src, err := os.Open(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return Stats{}, errors.Wrapf(err, errors.ErrFileNotFound, "file %s not found", sourcePath)
		}
		return Stats{}, errors.Wrapf(err, errors.ErrIO, "failed to open %s", sourcePath)
	}
	defer src.Close()

	var out io.Writer = io.Discard
	if !opts.DryRun {
		f, createErr := os.Create(dest)
		if createErr != nil {
			return Stats{}, errors.Wrapf(createErr, errors.ErrIO, "failed to create %s", dest)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = errors.Wrapf(cerr, errors.ErrIO, "failed to close %s", dest)
			}
		}()
		out = f
	}

	logger.Info().
		Str("source", sourcePath).
		Str("destination", dest).
		Bool("dryRun", opts.DryRun).
		Int("ruleCount", len(e.rules)).
		Msg("Processing file")

	start := time.Now()
	stats, err = Process(src, out, e, opts)
	stats.Duration = time.Since(start)
	stats.Source = sourcePath
	stats.Destination = dest
	if err != nil {
		logger.Error().Err(err).Int("line", stats.Lines).Msg("Processing stopped")
		return stats, err
	}

	logger.Info().
		Int("lines", stats.Lines).
		Int("matches", stats.Matches).
		Dur("duration", stats.Duration).
		Msg("File processed")
	return stats, nil
}
