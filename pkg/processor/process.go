package processor

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/gccleaner/pkg/errors"
	"github.com/arthur-debert/gccleaner/pkg/rules"
)

const (
	// DefaultLineEnding is written after every output line when none is configured.
	DefaultLineEnding = "\n"

	// maxLineSize bounds a single line. Slicers embed base64 thumbnails, so
	// lines can be far longer than bufio's 64KiB default.
	maxLineSize = 16 * 1024 * 1024

	byteOrderMark = "\uFEFF"
)

// Change describes one line a rule hit.
type Change struct {
	LineNumber int
	Original   string
	Result     rules.Result
}

// Options tunes a processing run.
type Options struct {
	// LineEnding is appended to every written line. Defaults to "\n".
	LineEnding string
	// DryRun processes the input without creating the destination file.
	// Only Run honors it; Process always writes to its writer.
	DryRun bool
	// OnChange is called for every hit, in input order.
	OnChange func(Change)
}

// Stats are the counters of one run.
type Stats struct {
	Source      string
	Destination string
	Lines       int
	Matches     int
	Deleted     int
	Replaced    int
	// RuleHits counts hits per rule, indexed like the engine's rules.
	RuleHits []int
	Duration time.Duration
}

// scanLines is bufio.ScanLines that also ends a line at a lone CR.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		// A CR at the end of the buffer may be the first half of CRLF.
		if !atEOF {
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Process reads lines from r, applies e and writes the result to w.
// Lines are split on LF, CRLF and CR, and a leading UTF-8 byte order mark is
// dropped. Output lines end with opts.LineEnding.
func Process(r io.Reader, w io.Writer, e *Engine, opts Options) (Stats, error) {
	lineEnding := opts.LineEnding
	if lineEnding == "" {
		lineEnding = DefaultLineEnding
	}

	stats := Stats{RuleHits: make([]int, len(e.rules))}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanLines)
	bw := bufio.NewWriter(w)

	for scanner.Scan() {
		line := scanner.Text()
		stats.Lines++
		if stats.Lines == 1 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}

		res, err := e.ProcessLine(line)
		if err != nil {
			return stats, err
		}

		var out string
		switch res.Kind {
		case rules.MatchAndDelete:
			stats.Matches++
			stats.Deleted++
			stats.RuleHits[res.RuleIndex]++
		case rules.MatchAndReplace:
			stats.Matches++
			stats.Replaced++
			stats.RuleHits[res.RuleIndex]++
			out = res.Text + lineEnding
		default:
			out = line + lineEnding
		}

		if res.IsHit() && opts.OnChange != nil {
			opts.OnChange(Change{LineNumber: stats.Lines, Original: line, Result: res})
		}

		if out == "" {
			continue
		}
		if _, err := bw.WriteString(out); err != nil {
			return stats, errors.Wrapf(err, errors.ErrIO, "failed to write line %d", stats.Lines)
		}
	}

	if err := scanner.Err(); err != nil {
		return stats, errors.Wrapf(err, errors.ErrIO, "failed to read line %d", stats.Lines+1)
	}
	if err := bw.Flush(); err != nil {
		return stats, errors.Wrap(err, errors.ErrIO, "failed to flush output")
	}
	return stats, nil
}
