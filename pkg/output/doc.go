// Package output renders gccleaner's user-facing messages: the progress
// dots, the run summary and the diagnostics printed when a run is aborted.
//
// Text comes from Go templates embedded under templates/. A template calls
// {{style "Name" text}} to apply a style from the styles registry; in
// no-color mode the call returns the text unchanged. Example configuration
// blocks are rendered as fenced markdown with glamour when color is enabled.
package output
