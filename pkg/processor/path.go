package processor

import (
	"path/filepath"
	"strings"
)

// DefaultFileNamePostFix is inserted before the extension when none is configured.
const DefaultFileNamePostFix = "_GC"

// DestinationPath inserts postfix before the extension of source by replacing
// the first occurrence of the extension text anywhere in the path, as the
// original tool did. "test.gcode.gcode" becomes "test_GC.gcode.gcode", and a
// directory containing the extension text (e.g. "prints.gcode/a.gcode") is
// rewritten instead of the file name. Use TrailingDestinationPath to touch
// only the trailing extension. A path without extension, or ending in a bare
// dot, gets postfix appended.
func DestinationPath(source, postfix string) string {
	ext := extension(source)
	if ext == "" {
		return source + postfix
	}
	return strings.Replace(source, ext, postfix+ext, 1)
}

// TrailingDestinationPath inserts postfix before the trailing extension only.
func TrailingDestinationPath(source, postfix string) string {
	ext := extension(source)
	return strings.TrimSuffix(source, ext) + postfix + ext
}

// extension is filepath.Ext, except that a trailing dot is no extension.
func extension(path string) string {
	ext := filepath.Ext(path)
	if ext == "." {
		return ""
	}
	return ext
}
