// Package keypress pauses until the user hits a key.
package keypress

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/arthur-debert/gccleaner/pkg/logging"
)

// Prompt is printed before waiting.
const Prompt = "Hit a key to continue"

// IsInteractive reports whether f is a terminal a user can type into.
func IsInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Wait prints Prompt to out and reads a single key from in. A terminal is
// switched to raw mode for the read so that any key returns immediately
// and restored afterwards. Any other reader is read one byte; end of input
// counts as a key.
func Wait(in io.Reader, out io.Writer) error {
	logger := logging.GetLogger("keypress")

	if _, err := fmt.Fprintln(out, Prompt); err != nil {
		return err
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("failed to switch terminal to raw mode: %w", err)
		}
		defer func() {
			if err := term.Restore(fd, state); err != nil {
				logger.Warn().Err(err).Msg("Failed to restore terminal")
			}
		}()
	}

	buf := make([]byte, 1)
	if _, err := in.Read(buf); err != nil && err != io.EOF {
		return fmt.Errorf("failed to read key: %w", err)
	}
	logger.Debug().Msg("Key received")
	return nil
}
