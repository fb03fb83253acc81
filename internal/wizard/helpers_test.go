package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/template-wizard/internal/catalog"
	"github.com/conn-castle/template-wizard/internal/selection"
)

const (
	toolkitURL = "https://github.com/windows-toolkit/WindowsCommunityToolkit/blob/master/license.md"
	telerikURL = "https://github.com/telerik/UI-For-UWP/blob/master/LICENSE.md"
	mvvmURL    = "https://github.com/lbugnion/mvvmlight/blob/master/LICENSE"
)

// MockUI is a function-field UI for tests. Nil functions succeed without
// changing the value.
type MockUI struct {
	SelectFunc      func(title string, choices []Choice, current *string) error
	MultiSelectFunc func(title string, choices []Choice, selected *[]string) error
	ConfirmFunc     func(title string, value *bool) error
	InputFunc       func(title string, value *string) error
	NoteFunc        func(title string, body string) error
}

func (m *MockUI) Select(title string, choices []Choice, current *string) error {
	if m.SelectFunc != nil {
		return m.SelectFunc(title, choices, current)
	}
	return nil
}

func (m *MockUI) MultiSelect(title string, choices []Choice, selected *[]string) error {
	if m.MultiSelectFunc != nil {
		return m.MultiSelectFunc(title, choices, selected)
	}
	return nil
}

func (m *MockUI) Confirm(title string, value *bool) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(title, value)
	}
	return nil
}

func (m *MockUI) Input(title string, value *string) error {
	if m.InputFunc != nil {
		return m.InputFunc(title, value)
	}
	return nil
}

func (m *MockUI) Note(title string, body string) error {
	if m.NoteFunc != nil {
		return m.NoteFunc(title, body)
	}
	return nil
}

// composerFunc adapts a function to Composer.
type composerFunc func(ctx context.Context, sel selection.UserSelection) ([]catalog.GenItem, error)

func (f composerFunc) Compose(ctx context.Context, sel selection.UserSelection) ([]catalog.GenItem, error) {
	return f(ctx, sel)
}

// setupFunc adapts a function to SetupInitializer.
type setupFunc func(ctx context.Context) (catalog.Setup, error)

func (f setupFunc) InitializeSetup(ctx context.Context) (catalog.Setup, error) {
	return f(ctx)
}

// recordingObserver remembers every notification.
type recordingObserver struct {
	transitions [][2]Step
	resets      []TemplateContext
	diffs       []LicenseDiff
	statuses    []Status
}

func (o *recordingObserver) Transitioned(from, to Step)            { o.transitions = append(o.transitions, [2]Step{from, to}) }
func (o *recordingObserver) SetupChanged(previous TemplateContext) { o.resets = append(o.resets, previous) }
func (o *recordingObserver) LicensesChanged(diff LicenseDiff)      { o.diffs = append(o.diffs, diff) }
func (o *recordingObserver) StatusChanged(status Status)           { o.statuses = append(o.statuses, status) }

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.LoadDefault()
	require.NoError(t, err)
	return cat
}

type testWizard struct {
	ctrl     *Controller
	host     *RecordingHost
	observer *recordingObserver
	catalog  *catalog.Catalog
}

// newTestWizard returns a controller over the embedded catalog with setup
// already awaited.
func newTestWizard(t *testing.T) *testWizard {
	t.Helper()
	cat := loadCatalog(t)
	return newTestWizardWith(t, cat, catalog.NewComposer(cat), cat)
}

func newTestWizardWith(t *testing.T, cat *catalog.Catalog, composer Composer, setup SetupInitializer) *testWizard {
	t.Helper()
	host := &RecordingHost{}
	obs := &recordingObserver{}
	ctrl, err := New(Options{Host: host, Composer: composer, Setup: setup, Observers: []Observer{obs}})
	require.NoError(t, err)
	_, err = ctrl.AwaitSetup(context.Background())
	require.NoError(t, err)
	return &testWizard{ctrl: ctrl, host: host, observer: obs, catalog: cat}
}

func urls(licenses []catalog.License) []string {
	out := make([]string, len(licenses))
	for i, l := range licenses {
		out[i] = l.URL
	}
	return out
}
