// Package templates embeds the default catalog and config files shipped with tw.
package templates

import "embed"

//go:embed catalog.toml config.toml
var files embed.FS

// Read returns the embedded file with the given name.
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}
