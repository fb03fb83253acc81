package wizard

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/template-wizard/internal/catalog"
	"github.com/conn-castle/template-wizard/internal/messages"
	"github.com/conn-castle/template-wizard/internal/selection"
)

type fakeSpinner struct {
	starts, stops int
}

func (s *fakeSpinner) Start() { s.starts++ }
func (s *fakeSpinner) Stop()  { s.stops++ }

func stubSpinner(t *testing.T) *fakeSpinner {
	t.Helper()
	orig := newSpinner
	t.Cleanup(func() { newSpinner = orig })
	sp := &fakeSpinner{}
	newSpinner = func(io.Writer, string) Spinner { return sp }
	return sp
}

type runHarness struct {
	ctrl    *Controller
	host    *RecordingHost
	catalog *catalog.Catalog
	out     bytes.Buffer
}

func newRunHarness(t *testing.T, setup SetupInitializer) *runHarness {
	t.Helper()
	cat := loadCatalog(t)
	if setup == nil {
		setup = cat
	}
	h := &runHarness{host: &RecordingHost{}, catalog: cat}
	ctrl, err := New(Options{Host: h.host, Composer: catalog.NewComposer(cat), Setup: setup})
	require.NoError(t, err)
	h.ctrl = ctrl
	return h
}

func (h *runHarness) run(ui UI, defaults Defaults) (*selection.UserSelection, error) {
	return Run(context.Background(), ui, h.ctrl, h.catalog, defaults, &h.out)
}

// choose answers each Select by its title.
func choose(values map[string]string) func(string, []Choice, *string) error {
	return func(title string, _ []Choice, current *string) error {
		if v, ok := values[title]; ok {
			*current = v
		}
		return nil
	}
}

func TestRunHappyPath(t *testing.T) {
	sp := stubSpinner(t)
	h := newRunHarness(t, nil)

	var notes []string
	ui := &MockUI{
		SelectFunc: choose(map[string]string{
			messages.WizardProjectTypeTitle: "Blank",
			messages.WizardFrameworkTitle:   "CodeBehind",
		}),
		MultiSelectFunc: func(title string, choices []Choice, selected *[]string) error {
			switch title {
			case messages.WizardPagesTitle:
				*selected = []string{"page.chart", "page.blank"}
			case messages.WizardFeaturesTitle:
				*selected = []string{"feature.toast"}
			}
			return nil
		},
		InputFunc: func(title string, value *string) error {
			assert.Equal(t, messages.WizardHomeNamePrompt, title)
			assert.Equal(t, "Main", *value, "default home name is offered")
			*value = "  Home "
			return nil
		},
		NoteFunc: func(title, body string) error {
			notes = append(notes, title+"\n"+body)
			return nil
		},
	}

	result, err := h.run(ui, Defaults{HomeName: "Main"})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Blank", result.ProjectType())
	assert.Equal(t, "CodeBehind", result.Framework())
	assert.Equal(t, "Home", result.HomeName())
	assert.Equal(t, []selection.Item{
		{Name: "Main", TemplateID: "page.blank"},
		{Name: "Chart", TemplateID: "page.chart"},
	}, result.Pages())
	assert.Equal(t, []selection.Item{{Name: "ToastNotifications", TemplateID: "feature.toast"}}, result.Features())

	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], messages.WizardSummaryTitle)
	assert.Contains(t, notes[0], "Telerik UI for UWP")
	assert.Contains(t, notes[0], "- Chart (page.chart)")
	assert.Contains(t, h.out.String(), messages.WizardCompleted)
	assert.True(t, h.host.Completed)
	assert.Equal(t, 1, sp.starts)
	assert.Equal(t, 1, sp.stops)
}

func TestRunClearedHomeNameUsesFirstPage(t *testing.T) {
	stubSpinner(t)
	h := newRunHarness(t, nil)

	ui := &MockUI{
		SelectFunc: choose(map[string]string{
			messages.WizardProjectTypeTitle: "Blank",
			messages.WizardFrameworkTitle:   "CodeBehind",
		}),
		MultiSelectFunc: func(title string, choices []Choice, selected *[]string) error {
			if title == messages.WizardPagesTitle {
				*selected = []string{"page.chart"}
			}
			return nil
		},
		InputFunc: func(title string, value *string) error {
			*value = "   "
			return nil
		},
	}

	result, err := h.run(ui, Defaults{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Chart", result.HomeName())
}

func TestRunWithoutPagesSkipsHomePrompt(t *testing.T) {
	stubSpinner(t)
	h := newRunHarness(t, nil)

	ui := &MockUI{
		SelectFunc: choose(map[string]string{
			messages.WizardProjectTypeTitle: "Blank",
			messages.WizardFrameworkTitle:   "CodeBehind",
		}),
		InputFunc: func(string, *string) error {
			t.Fatal("home name is only asked for when pages are selected")
			return nil
		},
	}

	result, err := h.run(ui, Defaults{HomeName: "Main"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Pages())
	assert.Equal(t, "Main", result.HomeName(), "the configured default passes through unchanged")
}

func TestRunUsesDefaultsForSetup(t *testing.T) {
	stubSpinner(t)
	h := newRunHarness(t, nil)

	var offered []string
	ui := &MockUI{
		SelectFunc: func(title string, choices []Choice, current *string) error {
			offered = append(offered, *current)
			if title == messages.WizardProjectTypeTitle {
				assert.Equal(t, Choice{Label: "Navigation Pane", Value: "SplitView"}, choices[0])
			}
			return nil
		},
	}

	result, err := h.run(ui, Defaults{ProjectType: "SplitView", Framework: "MVVMLight"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, []string{"SplitView", "MVVMLight"}, offered)
	assert.Equal(t, "MVVMLight", result.Framework())
	assert.Empty(t, result.Pages())
}

func TestRunFirstStepEscapeExits(t *testing.T) {
	stubSpinner(t)
	h := newRunHarness(t, nil)

	ui := &MockUI{
		SelectFunc: func(title string, _ []Choice, _ *string) error {
			if title == messages.WizardProjectTypeTitle {
				return errWizardBack
			}
			return nil
		},
		ConfirmFunc: func(title string, value *bool) error {
			assert.Equal(t, messages.WizardFirstStepEscapeExitPrompt, title)
			*value = true
			return nil
		},
	}

	result, err := h.run(ui, Defaults{})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Contains(t, h.out.String(), messages.WizardExitWithoutChanges)
	assert.Equal(t, StepCancelled, h.ctrl.Step())
	assert.True(t, h.host.Closed)
	assert.False(t, h.host.Completed)
}

func TestRunFirstStepEscapeDeclinedContinues(t *testing.T) {
	stubSpinner(t)
	h := newRunHarness(t, nil)

	escapes := 0
	ui := &MockUI{
		SelectFunc: func(title string, _ []Choice, current *string) error {
			switch title {
			case messages.WizardProjectTypeTitle:
				escapes++
				if escapes == 1 {
					return errWizardBack
				}
				*current = "Blank"
			case messages.WizardFrameworkTitle:
				*current = "MVVMBasic"
			}
			return nil
		},
		ConfirmFunc: func(title string, value *bool) error {
			if title == messages.WizardFirstStepEscapeExitPrompt {
				*value = false
			}
			return nil
		},
	}

	result, err := h.run(ui, Defaults{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 2, escapes)
}

func TestRunFrameworkEscapeReturnsToProjectType(t *testing.T) {
	stubSpinner(t)
	h := newRunHarness(t, nil)

	var titles []string
	frameworkCalls := 0
	ui := &MockUI{
		SelectFunc: func(title string, _ []Choice, current *string) error {
			titles = append(titles, title)
			switch title {
			case messages.WizardProjectTypeTitle:
				*current = "Blank"
			case messages.WizardFrameworkTitle:
				frameworkCalls++
				if frameworkCalls == 1 {
					return errWizardBack
				}
				*current = "MVVMBasic"
			}
			return nil
		},
	}

	_, err := h.run(ui, Defaults{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		messages.WizardProjectTypeTitle,
		messages.WizardFrameworkTitle,
		messages.WizardProjectTypeTitle,
		messages.WizardFrameworkTitle,
	}, titles)
}

func TestRunChangingSetupResetsTemplatesWithWarning(t *testing.T) {
	stubSpinner(t)
	h := newRunHarness(t, nil)

	setupVisits := 0
	pageCalls := 0
	finishConfirms := 0
	var notes []string
	ui := &MockUI{
		SelectFunc: func(title string, _ []Choice, current *string) error {
			switch title {
			case messages.WizardProjectTypeTitle:
				setupVisits++
				*current = map[int]string{1: "Blank", 2: "SplitView"}[setupVisits]
			case messages.WizardFrameworkTitle:
				*current = "MVVMBasic"
			}
			return nil
		},
		MultiSelectFunc: func(title string, _ []Choice, selected *[]string) error {
			if title != messages.WizardPagesTitle {
				return nil
			}
			pageCalls++
			switch pageCalls {
			case 1:
				*selected = []string{"page.chart"}
			case 2:
				assert.Equal(t, []string{"page.chart"}, *selected, "saved pages are preselected")
				return errWizardBack
			case 3:
				assert.Empty(t, *selected, "stale pages were discarded")
				*selected = []string{"page.map"}
			}
			return nil
		},
		ConfirmFunc: func(title string, value *bool) error {
			if title == messages.WizardFinishPrompt {
				finishConfirms++
				*value = finishConfirms > 1
			}
			return nil
		},
		NoteFunc: func(title, body string) error {
			notes = append(notes, title+"\n"+body)
			return nil
		},
	}

	result, err := h.run(ui, Defaults{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, []selection.Item{{Name: "Map", TemplateID: "page.map"}}, result.Pages())

	var statusNote, lastSummary string
	for _, n := range notes {
		if strings.HasPrefix(n, messages.WizardStatusTitle) {
			statusNote = n
		}
		if strings.HasPrefix(n, messages.WizardSummaryTitle) {
			lastSummary = n
		}
	}
	assert.Contains(t, statusNote, "Blank / MVVM Basic")
	assert.Contains(t, lastSummary, messages.WizardLicenseChangesTitle)
	assert.Contains(t, lastSummary, "-- Telerik UI for UWP")
}

func TestRunCtrlCCancels(t *testing.T) {
	stubSpinner(t)
	h := newRunHarness(t, nil)

	ui := &MockUI{
		MultiSelectFunc: func(string, []Choice, *[]string) error { return errWizardCancelled },
		SelectFunc: choose(map[string]string{
			messages.WizardProjectTypeTitle: "Blank",
			messages.WizardFrameworkTitle:   "MVVMBasic",
		}),
	}

	result, err := h.run(ui, Defaults{})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, StepCancelled, h.ctrl.Step())
	assert.Contains(t, h.out.String(), messages.WizardExitWithoutChanges)
}

func TestRunSetupFailureRetry(t *testing.T) {
	sp := stubSpinner(t)
	cat := loadCatalog(t)
	var calls atomic.Int32
	setup := setupFunc(func(ctx context.Context) (catalog.Setup, error) {
		if calls.Add(1) == 1 {
			return catalog.Setup{}, errors.New("catalog unreachable")
		}
		return cat.InitializeSetup(ctx)
	})
	h := newRunHarness(t, setup)

	var statusNotes []string
	ui := &MockUI{
		SelectFunc: choose(map[string]string{
			messages.WizardProjectTypeTitle: "Blank",
			messages.WizardFrameworkTitle:   "MVVMBasic",
		}),
		NoteFunc: func(title, body string) error {
			if title == messages.WizardStatusTitle {
				statusNotes = append(statusNotes, body)
			}
			return nil
		},
		ConfirmFunc: func(title string, value *bool) error {
			*value = true
			return nil
		},
	}

	result, err := h.run(ui, Defaults{})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, statusNotes, 1)
	assert.Contains(t, statusNotes[0], "catalog unreachable")
	assert.Equal(t, 2, sp.starts)
}

func TestRunSetupFailureDeclineRetryCancels(t *testing.T) {
	stubSpinner(t)
	h := newRunHarness(t, setupFunc(func(context.Context) (catalog.Setup, error) {
		return catalog.Setup{}, errors.New("catalog unreachable")
	}))

	ui := &MockUI{
		ConfirmFunc: func(title string, value *bool) error {
			assert.Equal(t, messages.WizardRetrySetupPrompt, title)
			*value = false
			return nil
		},
	}

	result, err := h.run(ui, Defaults{})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, StepCancelled, h.ctrl.Step())
}

func TestRunPropagatesUIErrors(t *testing.T) {
	stubSpinner(t)
	h := newRunHarness(t, nil)

	ui := &MockUI{
		SelectFunc: func(string, []Choice, *string) error { return errors.New(messages.WizardRequiresTerminal) },
	}

	_, err := h.run(ui, Defaults{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestBuildSummaryEmptySelection(t *testing.T) {
	s := NewSelectionState()
	s.SetSetup(SetupChoice{ProjectType: Option{Name: "Blank"}, Framework: Option{Name: "MVVMBasic", DisplayName: "MVVM Basic"}})

	summary := buildSummary(s, nil)
	assert.Contains(t, summary, "Project type: Blank")
	assert.Contains(t, summary, "Framework: MVVM Basic")
	assert.NotContains(t, summary, "Home page")
	assert.Equal(t, 3, strings.Count(summary, messages.WizardSummaryNone))
}
