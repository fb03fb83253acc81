package wizard

import (
	"slices"

	"github.com/conn-castle/template-wizard/internal/selection"
)

// Option is a named choice offered by the project setup step.
// Name is the identity; DisplayName is only shown to the user.
type Option struct {
	Name        string
	DisplayName string
}

// Label returns the display name, falling back to the name.
func (o Option) Label() string {
	if o.DisplayName != "" {
		return o.DisplayName
	}
	return o.Name
}

// SetupChoice is the project type and framework currently selected.
type SetupChoice struct {
	ProjectType Option
	Framework   Option
}

// Complete reports whether both parts of the setup have been chosen.
func (s SetupChoice) Complete() bool {
	return s.ProjectType.Name != "" && s.Framework.Name != ""
}

// TemplateContext is the setup choice in effect when templates were first added.
type TemplateContext struct {
	ProjectType Option
	Framework   Option
}

// SavedTemplate is one page or feature added by the user.
type SavedTemplate struct {
	Name       string
	TemplateID string
}

// SelectionState holds the choices made across the wizard steps.
// It does no validation of its own; the Controller enforces validity.
type SelectionState struct {
	setup    SetupChoice
	context  *TemplateContext
	pages    []SavedTemplate
	features []SavedTemplate
	homeName string
}

// NewSelectionState returns an empty state.
func NewSelectionState() *SelectionState {
	return &SelectionState{}
}

// Setup returns the current setup choice.
func (s *SelectionState) Setup() SetupChoice { return s.setup }

// Context returns the template context and whether it is defined.
func (s *SelectionState) Context() (TemplateContext, bool) {
	if s.context == nil {
		return TemplateContext{}, false
	}
	return *s.context, true
}

// Pages returns the saved pages in insertion order.
func (s *SelectionState) Pages() []SavedTemplate { return slices.Clone(s.pages) }

// Features returns the saved features in insertion order.
func (s *SelectionState) Features() []SavedTemplate { return slices.Clone(s.features) }

// HomeName returns the configured home page name.
func (s *SelectionState) HomeName() string { return s.homeName }

// HasTemplates reports whether any page or feature is saved.
func (s *SelectionState) HasTemplates() bool {
	return len(s.pages)+len(s.features) > 0
}

// SetSetup replaces the setup choice. Saved templates are left alone;
// staleness is evaluated by the Controller on Next.
func (s *SelectionState) SetSetup(choice SetupChoice) { s.setup = choice }

// SetHomeName sets the home page name.
func (s *SelectionState) SetHomeName(name string) { s.homeName = name }

// AddPage appends a page, snapshotting the context on the first addition.
func (s *SelectionState) AddPage(item SavedTemplate) {
	s.snapshotContext()
	s.pages = append(s.pages, item)
}

// AddFeature appends a feature, snapshotting the context on the first addition.
func (s *SelectionState) AddFeature(item SavedTemplate) {
	s.snapshotContext()
	s.features = append(s.features, item)
}

// RemovePage removes the page named name and reports whether it existed.
func (s *SelectionState) RemovePage(name string) bool {
	var ok bool
	s.pages, ok = removeNamed(s.pages, name)
	s.dropContextIfEmpty()
	return ok
}

// RemoveFeature removes the feature named name and reports whether it existed.
func (s *SelectionState) RemoveFeature(name string) bool {
	var ok bool
	s.features, ok = removeNamed(s.features, name)
	s.dropContextIfEmpty()
	return ok
}

// ResetTemplates clears all saved pages and features and the context.
func (s *SelectionState) ResetTemplates() {
	s.pages = nil
	s.features = nil
	s.context = nil
}

// HasName reports whether a saved page or feature already uses name.
func (s *SelectionState) HasName(name string) bool {
	return slices.ContainsFunc(s.pages, byName(name)) || slices.ContainsFunc(s.features, byName(name))
}

// Clone returns an independent copy of the state.
func (s *SelectionState) Clone() *SelectionState {
	clone := &SelectionState{
		setup:    s.setup,
		pages:    slices.Clone(s.pages),
		features: slices.Clone(s.features),
		homeName: s.homeName,
	}
	if s.context != nil {
		ctx := *s.context
		clone.context = &ctx
	}
	return clone
}

// Selection builds the immutable user selection from the state. The home
// name is passed through as set, empty included.
func (s *SelectionState) Selection() selection.UserSelection {
	return selection.New(
		s.setup.ProjectType.Name,
		s.setup.Framework.Name,
		s.homeName,
		toItems(s.pages),
		toItems(s.features),
	)
}

func (s *SelectionState) snapshotContext() {
	if s.context != nil {
		return
	}
	s.context = &TemplateContext{ProjectType: s.setup.ProjectType, Framework: s.setup.Framework}
}

// dropContextIfEmpty keeps the context defined only while templates are saved.
func (s *SelectionState) dropContextIfEmpty() {
	if !s.HasTemplates() {
		s.context = nil
	}
}

func removeNamed(items []SavedTemplate, name string) ([]SavedTemplate, bool) {
	idx := slices.IndexFunc(items, byName(name))
	if idx < 0 {
		return items, false
	}
	return slices.Delete(items, idx, idx+1), true
}

func byName(name string) func(SavedTemplate) bool {
	return func(item SavedTemplate) bool { return item.Name == name }
}

func toItems(saved []SavedTemplate) []selection.Item {
	items := make([]selection.Item, len(saved))
	for i, s := range saved {
		items[i] = selection.Item{Name: s.Name, TemplateID: s.TemplateID}
	}
	return items
}
