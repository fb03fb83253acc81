package main

// NOTE: Tests in this package mutate package-level globals (lookupEnv,
// defaultPaths, isTerminal, newUI). Do not use t.Parallel(). Each test must
// restore globals via t.Cleanup().

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/conn-castle/template-wizard/internal/config"
)

// isolate points config resolution at an empty temp dir and hides the
// process environment.
func isolate(t *testing.T, env map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	origLookup, origPaths := lookupEnv, defaultPaths
	t.Cleanup(func() { lookupEnv, defaultPaths = origLookup, origPaths })
	lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	defaultPaths = func() (config.Paths, error) {
		return config.PathsFor(filepath.Join(dir, "config.toml")), nil
	}
	return dir
}

func runTW(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := execute(append([]string{"tw"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}
