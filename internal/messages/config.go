package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats unreadable config file errors.
	ConfigMissingFileFmt        = "failed to read config file %s: %w"
	ConfigInvalidConfigFmt      = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt   = "%s: unrecognized keys: %v."
	ConfigValidationGuidance    = "Fix the config file or remove it to use defaults."
	ConfigInvalidEnvFileFmt     = "invalid env file %s: %w"
	ConfigExpandHomeFailedFmt   = "failed to expand home directory in %q: %w"
	ConfigFailedReadTemplateFmt = "failed to read template config.toml: %w"

	ConfigOutputFormatInvalidFmt  = "%s: output.format must be one of toml, yaml, json (got %q)"
	ConfigLogLevelInvalidFmt      = "%s: log.level must be one of debug, info, warn, error, disabled (got %q)"
	ConfigHomeNameInvalidFmt      = "%s: defaults.home_name must not contain whitespace only"
	ConfigFrameworkWithoutTypeFmt = "%s: defaults.framework requires defaults.project_type"
)
