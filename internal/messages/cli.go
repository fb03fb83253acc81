package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "tw"
	// RootShort is the short description for the root command.
	RootShort       = "Template Wizard CLI"
	RootLong        = "Create a new project selection from a template catalog: pick a project type and framework, add pages and features, review licenses, and emit the final selection."
	RootVersionFlag = "Print version and exit"

	RootFlagConfig   = "Path to the config file (default ~/.template-wizard/config.toml)"
	RootFlagCatalog  = "Path to a catalog TOML file (default: embedded catalog)"
	RootFlagFormat   = "Output format for the final selection: toml, yaml, or json"
	RootFlagLogLevel = "Log level: debug, info, warn, error, or disabled"
	RootFlagMetrics  = "Print wizard metrics in Prometheus text format to stderr on exit"
	RootFlagTrace    = "Print wizard trace spans as JSON to stderr"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// NewUse is the interactive wizard command name.
	NewUse              = "new"
	NewShort            = "Run the interactive project creation wizard"
	NewFlagOutput       = "Write the final selection to this file instead of stdout"
	NewRequiresTerminal = "tw new requires an interactive terminal; use 'tw compose' for scripted runs"

	// ComposeUse is the non-interactive command name.
	ComposeUse                 = "compose"
	ComposeShort               = "Build a project selection without prompts"
	ComposeFlagProjectType     = "Project type name"
	ComposeFlagFramework       = "Framework name"
	ComposeFlagHome            = "Home page name (defaults to the first page name)"
	ComposeFlagPage            = "Page to add as name=template (repeatable, order preserved)"
	ComposeFlagFeature         = "Feature to add as name=template (repeatable, order preserved)"
	ComposeFlagLicenses        = "Print the resolved licenses after the selection"
	ComposeProjectTypeRequired = "--project-type is required"
	ComposeFrameworkRequired   = "--framework is required"
	ComposeInvalidItemFmt      = "invalid %s %q: expected name=template"
	ComposeLicensesHeader      = "\nLicenses:\n"
	ComposeLicenseLineFmt      = "- %s <%s>\n"

	// CatalogUse is the catalog listing command name.
	CatalogUse                = "catalog"
	CatalogShort              = "List project types, frameworks, and templates in the catalog"
	CatalogProjectTypesHeader = "Project types:"
	CatalogFrameworksHeader   = "Frameworks:"
	CatalogTemplatesHeaderFmt = "%s templates:"
	CatalogEntryFmt           = "  %-24s %s"
	CatalogFrameworkEntryFmt  = "  %-24s %s (%s)"
	CatalogAllProjectTypes    = "all project types"
	CatalogLicensedSuffixFmt  = " [%d license(s)]"

	OutputWriteFailedFmt   = "failed to write selection to %s: %w"
	MetricsGatherFailedFmt = "failed to gather metrics: %w"
	MetricsWriteFailedFmt  = "failed to write metrics: %w"

	TracingExporterFailedFmt = "failed to create trace exporter: %w"
	TracingShutdownFailedFmt = "failed to flush traces: %w"
)
