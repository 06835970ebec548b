package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/gccleaner/pkg/config"
	"github.com/arthur-debert/gccleaner/pkg/errors"
	"github.com/arthur-debert/gccleaner/pkg/logging"
)

// GenConfigOptions holds options for the example-config command
type GenConfigOptions struct {
	// Dir is where the file is written. Empty means the working directory.
	Dir    string
	Format string
	Write  bool
}

// GenConfigResult is the rendered example and, in write mode, what was written.
type GenConfigResult struct {
	Format        string
	ConfigContent string
	FilesWritten  []string
	FilesSkipped  []string
}

// GenConfig outputs or writes an example settings file
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	format := opts.Format
	if format == "" {
		format = config.FormatJSON
	}
	content, err := config.ExampleConfig(format)
	if err != nil {
		return nil, err
	}

	result := &GenConfigResult{
		Format:        format,
		ConfigContent: content,
		FilesWritten:  []string{},
		FilesSkipped:  []string{},
	}

	if !opts.Write {
		logger.Debug().Str("format", format).Msg("Outputting example config to stdout")
		return result, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrIO, "failed to create directory %s", dir)
	}

	targetPath := filepath.Join(dir, config.ExampleFileName(format))
	if _, err := os.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Settings file already exists, skipping")
		result.FilesSkipped = append(result.FilesSkipped, targetPath)
		return result, nil
	}

	if err := os.WriteFile(targetPath, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrIO, "failed to write example config to %s", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written example config")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
