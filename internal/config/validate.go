package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/template-wizard/internal/messages"
	"github.com/conn-castle/template-wizard/internal/selection"
)

var validLogLevels = map[string]struct{}{
	"":         {},
	"debug":    {},
	"info":     {},
	"warn":     {},
	"error":    {},
	"disabled": {},
}

// Validate ensures the config is complete and consistent.
// path is used in error messages.
func (c *Config) Validate(path string) error {
	if _, err := selection.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf(messages.ConfigOutputFormatInvalidFmt, path, c.Output.Format)
	}
	if _, ok := validLogLevels[strings.ToLower(c.Log.Level)]; !ok {
		return fmt.Errorf(messages.ConfigLogLevelInvalidFmt, path, c.Log.Level)
	}
	if c.Defaults.HomeName != "" && strings.TrimSpace(c.Defaults.HomeName) == "" {
		return fmt.Errorf(messages.ConfigHomeNameInvalidFmt, path)
	}
	if c.Defaults.Framework != "" && c.Defaults.ProjectType == "" {
		return fmt.Errorf(messages.ConfigFrameworkWithoutTypeFmt, path)
	}
	return nil
}
