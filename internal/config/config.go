// Package config loads the tw configuration file and its environment overrides.
package config

// Config is the user configuration for tw.
type Config struct {
	Catalog  CatalogConfig  `toml:"catalog"`
	Defaults DefaultsConfig `toml:"defaults"`
	Output   OutputConfig   `toml:"output"`
	Log      LogConfig      `toml:"log"`
}

// CatalogConfig selects the template catalog.
type CatalogConfig struct {
	// Path to a catalog TOML file. Empty uses the embedded catalog.
	Path string `toml:"path"`
}

// DefaultsConfig preselects setup choices in the interactive wizard.
type DefaultsConfig struct {
	ProjectType string `toml:"project_type"`
	Framework   string `toml:"framework"`
	HomeName    string `toml:"home_name"`
}

// OutputConfig controls how the final selection is written.
type OutputConfig struct {
	Format string `toml:"format"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `toml:"level"`
}
