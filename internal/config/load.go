package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/template-wizard/internal/envfile"
	"github.com/conn-castle/template-wizard/internal/messages"
	"github.com/conn-castle/template-wizard/internal/templates"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax or filesystem errors).
var ErrConfigValidation = errors.New("config validation failed")

// LoadConfig reads and validates the config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return ParseConfig(data, path)
}

// LoadTemplateConfig returns the embedded default config as a validated Config.
func LoadTemplateConfig() (*Config, error) {
	data, err := templates.Read("config.toml")
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigFailedReadTemplateFmt, err)
	}
	return ParseConfig(data, "template config.toml")
}

// ParseConfig parses and validates config TOML data.
// source is used in error messages.
func ParseConfig(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w "+messages.ConfigValidationGuidance, ErrConfigValidation, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes the data rejecting keys the Config does not know.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// Resolve loads the effective configuration: the file at paths.ConfigPath
// (embedded defaults when it does not exist), then TW_ overrides from the
// .env file and the process environment, which wins.
func Resolve(paths Paths, lookup func(string) (string, bool)) (*Config, error) {
	cfg, err := LoadConfig(paths.ConfigPath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = LoadTemplateConfig()
	}
	if err != nil {
		return nil, err
	}

	fileEnv, err := envfile.Load(paths.EnvPath)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidEnvFileFmt, paths.EnvPath, err)
	}
	cfg.ApplyOverrides(envfile.Overrides(fileEnv, lookup))
	if err := cfg.Validate(paths.EnvPath); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}

	if cfg.Catalog.Path != "" {
		expanded, err := ExpandPath(cfg.Catalog.Path)
		if err != nil {
			return nil, err
		}
		cfg.Catalog.Path = expanded
	}
	return cfg, nil
}

// ApplyOverrides copies known TW_ values onto the config.
func (c *Config) ApplyOverrides(env map[string]string) {
	if v, ok := env[envfile.KeyCatalogPath]; ok {
		c.Catalog.Path = v
	}
	if v, ok := env[envfile.KeyOutputFormat]; ok {
		c.Output.Format = v
	}
	if v, ok := env[envfile.KeyLogLevel]; ok {
		c.Log.Level = v
	}
}
