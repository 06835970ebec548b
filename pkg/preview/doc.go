// Package preview shows the changes a run would make before anything is
// written. The changes are collected by a dry run, rendered as a markdown
// table with glamour and shown in a scrollable bubbletea viewport where the
// user decides to apply, skip or quit.
package preview
