// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Isolate tests from the user's settings, logs and terminal

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment is a temporary working area with the XDG directories and
// GCCLEANER_* variables of the process pointed away from the user's own.
type TestEnvironment struct {
	Dir        string
	ConfigHome string
	StateHome  string

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	dir := t.TempDir()
	env := &TestEnvironment{
		Dir:        filepath.Join(dir, "work"),
		ConfigHome: filepath.Join(dir, "config"),
		StateHome:  filepath.Join(dir, "state"),
		t:          t,
	}
	for _, d := range []string{env.Dir, env.ConfigHome, env.StateHome} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", d, err)
		}
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "1")
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "GCCLEANER_") {
			t.Setenv(key, "")
			_ = os.Unsetenv(key)
		}
	}

	return env
}

// Path returns the absolute path of name inside the environment.
func (env *TestEnvironment) Path(name string) string {
	return filepath.Join(env.Dir, name)
}

// WriteFile creates name inside the environment and returns its path.
func (env *TestEnvironment) WriteFile(name, content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.Dir, name, content)
}

// Chdir makes the environment the working directory until the test ends.
func (env *TestEnvironment) Chdir() {
	env.t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		env.t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(env.Dir); err != nil {
		env.t.Fatalf("Failed to change to %s: %v", env.Dir, err)
	}
	env.t.Cleanup(func() { _ = os.Chdir(wd) })
}
