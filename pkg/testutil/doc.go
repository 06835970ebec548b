// Package testutil provides helpers for gccleaner tests: an isolated
// environment per test and small file helpers that fail the test instead of
// returning errors.
package testutil
