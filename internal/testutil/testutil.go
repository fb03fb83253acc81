// Package testutil holds fixtures shared by command and package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MinimalCatalog is a catalog with one project type, one framework and a
// single licensed page.
const MinimalCatalog = `
[[project_types]]
name = "Console"
display_name = "Console app"

[[frameworks]]
name = "Plain"
display_name = "Plain"
project_types = ["Console"]

[[templates]]
id = "proj.console"
name = "Console"
kind = "project"
project_types = ["Console"]

[[templates]]
id = "page.report"
name = "Report"
display_name = "Report page"
kind = "page"
default_name = "Report"

  [[templates.licenses]]
  url = "https://example.com/report/LICENSE"
  text = "Report Kit"
`

// WriteFile writes content to dir/name, creating parent directories, and
// returns the full path.
func WriteFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteCatalog writes MinimalCatalog into dir and returns its path.
func WriteCatalog(t *testing.T, dir string) string {
	t.Helper()
	return WriteFile(t, dir, "catalog.toml", MinimalCatalog)
}
