package messages

// Catalog loading, validation, and composition messages.
const (
	CatalogReadFailedFmt                = "failed to read catalog %s: %w"
	CatalogParseFailedFmt               = "invalid catalog %s: %w"
	CatalogReadEmbeddedFailedFmt        = "failed to read embedded catalog: %w"
	CatalogNoProjectTypesFmt            = "%s: catalog defines no project types"
	CatalogProjectTypeNameRequiredFmt   = "%s: project_types[%d].name is required"
	CatalogDuplicateProjectTypeFmt      = "%s: duplicate project type %q"
	CatalogFrameworkNameRequiredFmt     = "%s: frameworks[%d].name is required"
	CatalogDuplicateFrameworkFmt        = "%s: duplicate framework %q"
	CatalogFrameworkUnknownTypeFmt      = "%s: framework %q references unknown project type %q"
	CatalogTemplateIDRequiredFmt        = "%s: templates[%d].id is required"
	CatalogDuplicateTemplateFmt         = "%s: duplicate template id %q"
	CatalogTemplateKindInvalidFmt       = "%s: template %q has invalid kind %q (want project, page, or feature)"
	CatalogTemplateUnknownTypeFmt       = "%s: template %q references unknown project type %q"
	CatalogTemplateUnknownFrameworkFmt  = "%s: template %q references unknown framework %q"
	CatalogTemplateUnknownDependencyFmt = "%s: template %q depends on unknown template %q"
	CatalogTemplateProjectDependencyFmt = "%s: template %q cannot depend on project template %q"
	CatalogLicenseURLRequiredFmt        = "%s: template %q has a license without url"
	CatalogDependencyCycleFmt           = "%s: dependency cycle through template %q"

	ComposeMissingSetup            = "project type and framework are required"
	ComposeUnknownTemplateFmt      = "%w: %q"
	ComposeIncompatibleTemplateFmt = "%w: %q is not available for %s/%s"
	ComposeWrongKindFmt            = "%w: %q is a %s template, not a %s"
	ComposeNoProjectTemplateFmt    = "%w for %s/%s"
	ComposeUnknownProjectTypeFmt   = "%w: project type %q"
	ComposeUnknownFrameworkFmt     = "%w: framework %q for project type %q"
	ComposeDuplicateItemNameFmt    = "duplicate item name %q"
	ComposeSingleInstanceFmt       = "template %q allows a single instance"
)
