// Package processor drives the line-by-line rewrite of a G-code file.
//
// An Engine holds an ordered list of compiled rules. For every line the rules
// are consulted in order and the first hit decides the line's fate; later
// rules are not evaluated. Lines no rule touches pass through unchanged.
//
// Process applies an Engine to a reader/writer pair. Run does the same for a
// source file, writing the result next to it under a derived name (see
// DestinationPath).
package processor
