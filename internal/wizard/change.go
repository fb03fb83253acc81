package wizard

// HasSetupChanged reports whether templates saved under context have gone
// stale because the current setup names a different project type or
// framework. It is always false when no template has been added.
// Names are compared exactly; display names are ignored.
func HasSetupChanged(context TemplateContext, current SetupChoice, hasAnyTemplatesAdded bool) bool {
	if !hasAnyTemplatesAdded {
		return false
	}
	return context.ProjectType.Name != current.ProjectType.Name ||
		context.Framework.Name != current.Framework.Name
}
