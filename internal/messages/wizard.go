package messages

// Wizard prompt titles and user-facing flow text.
const (
	WizardProjectTypeTitle          = "Select a project type"
	WizardFrameworkTitle            = "Select a framework"
	WizardPagesTitle                = "Select pages (in the order they should be added)"
	WizardFeaturesTitle             = "Select features"
	WizardHomeNamePrompt            = "Name of the home page"
	WizardSummaryTitle              = "Summary"
	WizardLicenseChangesTitle       = "License changes"
	WizardFinishPrompt              = "Create the project with this selection?"
	WizardFirstStepEscapeExitPrompt = "Exit the wizard without creating a project?"
	WizardRetrySetupPrompt          = "Project setup failed to load. Retry?"
	WizardExitWithoutChanges        = "Exited wizard without creating a project."
	WizardCompleted                 = "Project selection complete."
	WizardRequiresTerminal          = "wizard requires an interactive terminal"
	WizardLoadingSetup              = " Loading project types and frameworks..."
	WizardNoLicenseChanges          = "No license changes since the last summary."
	WizardStatusTitle               = "Status"
	WizardStatusWarningPrefix       = "Warning: "
	WizardStatusErrorPrefix         = "Error: "
)

// Wizard status advisories.
const (
	WizardResetSelectionFmt        = "The project type or framework changed. Pages and features added for %s / %s were removed."
	WizardComposeFailedStatusFmt   = "The current selection could not be resolved: %v"
	WizardSetupInitFailedStatusFmt = "Project setup could not be loaded: %v"
)

// Wizard errors.
const (
	WizardComposeFailedFmt        = "failed to compose selection: %w"
	WizardSetupInitFailedFmt      = "failed to initialize project setup: %w"
	WizardSetupNotInitialized     = "project setup has not been initialized"
	WizardSetupNotChosen          = "select a project type and framework before continuing"
	WizardUnknownProjectTypeFmt   = "unknown project type %q"
	WizardUnknownFrameworkFmt     = "unknown framework %q for project type %q"
	WizardInvalidTransitionFmt    = "%w: cannot %s from %s"
	WizardClosedFmt               = "%w: cannot %s after %s"
	WizardItemNameRequired        = "page or feature name is required"
	WizardItemTemplateRequiredFmt = "template is required for %q"
	WizardDuplicateItemNameFmt    = "%q is already used by another page or feature"
	WizardUnknownSavedItemFmt     = "no saved %s named %q"
	WizardMissingCollaborators    = "wizard: host, composer and setup initializer are required"
)

// Wizard summary output strings.
const (
	WizardSummaryProjectTypeFmt = "Project type: %s\n"
	WizardSummaryFrameworkFmt   = "Framework: %s\n"
	WizardSummaryHomeNameFmt    = "Home page: %s\n"
	WizardSummaryPagesHeader    = "\nPages:\n"
	WizardSummaryFeaturesHeader = "\nFeatures:\n"
	WizardSummaryLicensesHeader = "\nLicenses:\n"
	WizardSummaryItemFmt        = "- %s (%s)\n"
	WizardSummaryLicenseFmt     = "- %s <%s>\n"
	WizardSummaryNone           = "(none)\n"
)
