package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/template-wizard/internal/catalog"
	"github.com/conn-castle/template-wizard/internal/messages"
	"github.com/conn-castle/template-wizard/internal/selection"
)

var (
	errWizardBack      = errors.New("wizard back requested")
	errWizardCancelled = errors.New("wizard cancelled")
)

// TemplateLister lists the templates offered for a setup.
type TemplateLister interface {
	TemplatesFor(kind catalog.Kind, projectType, framework string) []*catalog.Template
}

// Defaults preselects values the user has not chosen yet.
type Defaults struct {
	ProjectType string
	Framework   string
	HomeName    string
}

type flow struct {
	ctx       context.Context
	ui        UI
	ctrl      *Controller
	templates TemplateLister
	defaults  Defaults
	out       io.Writer

	summarized   bool
	lastLicenses []catalog.License
}

// Run drives ctrl through the interactive steps until it finishes or is
// cancelled. It returns nil when the user exits without a result.
func Run(ctx context.Context, ui UI, ctrl *Controller, templates TemplateLister, defaults Defaults, out io.Writer) (*selection.UserSelection, error) {
	if out == nil {
		out = os.Stdout
	}
	f := &flow{ctx: ctx, ui: ui, ctrl: ctrl, templates: templates, defaults: defaults, out: out}
	if _, err := ctrl.TemplatesAvailable(ctx); err != nil {
		return nil, err
	}

	for {
		var err error
		switch ctrl.Step() {
		case StepProjectSetup:
			err = f.promptSetup()
		case StepTemplates:
			err = f.promptTemplates()
		case StepSummary:
			err = f.promptSummary()
		case StepFinished:
			result, _ := ctrl.Result()
			_, _ = color.New(color.FgGreen).Fprintln(out, messages.WizardCompleted)
			return &result, nil
		case StepCancelled:
			_, _ = fmt.Fprintln(out, messages.WizardExitWithoutChanges)
			return nil, nil
		}

		if err == nil {
			continue
		}
		if errors.Is(err, errWizardCancelled) {
			_ = ctrl.Cancel()
			continue
		}
		if !errors.Is(err, errWizardBack) {
			return nil, err
		}
		if ctrl.Step() != StepProjectSetup {
			_ = ctrl.Back()
			continue
		}
		exit, confirmErr := confirmWizardExitOnFirstStepEscape(ui)
		if confirmErr != nil && !errors.Is(confirmErr, errWizardCancelled) {
			return nil, confirmErr
		}
		if exit || confirmErr != nil {
			_ = ctrl.Cancel()
		}
	}
}

func confirmWizardExitOnFirstStepEscape(ui UI) (bool, error) {
	exit := true
	if err := ui.Confirm(messages.WizardFirstStepEscapeExitPrompt, &exit); err != nil {
		if errors.Is(err, errWizardBack) {
			return false, nil
		}
		return false, err
	}
	return exit, nil
}

// awaitSetup waits for setup initialization behind a spinner, offering a
// retry when it fails.
func (f *flow) awaitSetup() (catalog.Setup, error) {
	for {
		sp := newSpinner(f.out, messages.WizardLoadingSetup)
		sp.Start()
		setup, err := f.ctrl.AwaitSetup(f.ctx)
		sp.Stop()
		if err == nil {
			return setup, nil
		}
		if f.ctx.Err() != nil {
			return catalog.Setup{}, err
		}
		if noteErr := f.showStatus(); noteErr != nil {
			return catalog.Setup{}, noteErr
		}
		retry := true
		if confirmErr := f.ui.Confirm(messages.WizardRetrySetupPrompt, &retry); confirmErr != nil {
			return catalog.Setup{}, confirmErr
		}
		if !retry {
			return catalog.Setup{}, errWizardCancelled
		}
	}
}

func (f *flow) promptSetup() error {
	setup, err := f.awaitSetup()
	if err != nil {
		return err
	}
	current := f.ctrl.State().Setup()
	projectType := firstNonEmpty(current.ProjectType.Name, f.defaults.ProjectType)
	framework := firstNonEmpty(current.Framework.Name, f.defaults.Framework)

	for {
		if err := f.ui.Select(messages.WizardProjectTypeTitle, projectTypeChoices(setup.ProjectTypes), &projectType); err != nil {
			return err
		}
		err := f.ui.Select(messages.WizardFrameworkTitle, frameworkChoices(setup.FrameworksFor(projectType)), &framework)
		if errors.Is(err, errWizardBack) {
			continue
		}
		if err != nil {
			return err
		}
		break
	}

	if err := f.ctrl.SetSetup(projectType, framework); err != nil {
		return err
	}
	return f.ctrl.Next(f.ctx)
}

func (f *flow) promptTemplates() error {
	if err := f.showStatus(); err != nil {
		return err
	}
	state := f.ctrl.State()
	setup := state.Setup()
	pages := f.templates.TemplatesFor(catalog.KindPage, setup.ProjectType.Name, setup.Framework.Name)
	features := f.templates.TemplatesFor(catalog.KindFeature, setup.ProjectType.Name, setup.Framework.Name)

	selectedPages := templateIDs(state.Pages())
	if err := f.ui.MultiSelect(messages.WizardPagesTitle, templateChoices(pages), &selectedPages); err != nil {
		return err
	}
	selectedFeatures := templateIDs(state.Features())
	if err := f.ui.MultiSelect(messages.WizardFeaturesTitle, templateChoices(features), &selectedFeatures); err != nil {
		return err
	}
	homeName := firstNonEmpty(state.HomeName(), f.defaults.HomeName)
	if len(selectedPages) > 0 {
		if err := f.ui.Input(messages.WizardHomeNamePrompt, &homeName); err != nil {
			return err
		}
	}

	if err := f.applyTemplates(catalog.KindPage, state.Pages(), pages, selectedPages); err != nil {
		return err
	}
	if err := f.applyTemplates(catalog.KindFeature, state.Features(), features, selectedFeatures); err != nil {
		return err
	}
	homeName = strings.TrimSpace(homeName)
	if homeName == "" && len(selectedPages) > 0 {
		// a cleared prompt names the first page home
		if saved := f.ctrl.State().Pages(); len(saved) > 0 {
			homeName = saved[0].Name
		}
	}
	if err := f.ctrl.SetHomeName(homeName); err != nil {
		return err
	}

	if err := f.ctrl.Next(f.ctx); err != nil {
		// Composition failures are in the status slot; stay on this step.
		if f.ctrl.Step() == StepTemplates && f.ctrl.Status().Kind == StatusError {
			return nil
		}
		return err
	}
	return nil
}

// applyTemplates brings the saved items of kind in line with the selected
// template ids: deselected items are removed, new ones are added under
// their default name.
func (f *flow) applyTemplates(kind catalog.Kind, saved []SavedTemplate, offered []*catalog.Template, selected []string) error {
	remove, add := f.ctrl.RemovePage, f.ctrl.AddPage
	if kind == catalog.KindFeature {
		remove, add = f.ctrl.RemoveFeature, f.ctrl.AddFeature
	}

	for _, item := range saved {
		if !slices.Contains(selected, item.TemplateID) {
			if err := remove(f.ctx, item.Name); err != nil {
				return err
			}
		}
	}
	for _, tmpl := range offered {
		if !slices.Contains(selected, tmpl.ID) || slices.Contains(templateIDs(saved), tmpl.ID) {
			continue
		}
		if err := add(f.ctx, f.uniqueName(tmpl), tmpl.ID); err != nil {
			return err
		}
	}
	return nil
}

func (f *flow) uniqueName(tmpl *catalog.Template) string {
	base := firstNonEmpty(tmpl.DefaultName, tmpl.Name)
	state := f.ctrl.State()
	name := base
	for i := 1; state.HasName(name); i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	return name
}

func (f *flow) promptSummary() error {
	if err := f.showStatus(); err != nil {
		return err
	}
	licenses := f.ctrl.Licenses()
	body := buildSummary(f.ctrl.State(), licenses)
	if f.summarized {
		diff := RenderDiff(f.lastLicenses, licenses)
		if diff == "" {
			diff = messages.WizardNoLicenseChanges
		}
		body += "\n" + messages.WizardLicenseChangesTitle + ":\n" + diff + "\n"
	}
	f.summarized = true
	f.lastLicenses = licenses

	if err := f.ui.Note(messages.WizardSummaryTitle, body); err != nil {
		return err
	}
	confirm := true
	if err := f.ui.Confirm(messages.WizardFinishPrompt, &confirm); err != nil {
		return err
	}
	if !confirm {
		return errWizardBack
	}
	if _, err := f.ctrl.Finish(f.ctx); err != nil {
		if f.ctrl.Step() == StepSummary && f.ctrl.Status().Kind == StatusError {
			return nil
		}
		return err
	}
	return nil
}

func (f *flow) showStatus() error {
	status := f.ctrl.Status()
	if status.IsZero() {
		return nil
	}
	return f.ui.Note(messages.WizardStatusTitle, renderStatus(status))
}

// buildSummary renders the selection and licenses for the summary step.
func buildSummary(state *SelectionState, licenses []catalog.License) string {
	var b strings.Builder
	setup := state.Setup()
	sel := state.Selection()
	_, _ = fmt.Fprintf(&b, messages.WizardSummaryProjectTypeFmt, setup.ProjectType.Label())
	_, _ = fmt.Fprintf(&b, messages.WizardSummaryFrameworkFmt, setup.Framework.Label())
	if sel.HomeName() != "" {
		_, _ = fmt.Fprintf(&b, messages.WizardSummaryHomeNameFmt, sel.HomeName())
	}

	writeItems := func(header string, items []SavedTemplate) {
		b.WriteString(header)
		if len(items) == 0 {
			b.WriteString(messages.WizardSummaryNone)
			return
		}
		for _, item := range items {
			_, _ = fmt.Fprintf(&b, messages.WizardSummaryItemFmt, item.Name, item.TemplateID)
		}
	}
	writeItems(messages.WizardSummaryPagesHeader, state.Pages())
	writeItems(messages.WizardSummaryFeaturesHeader, state.Features())

	b.WriteString(messages.WizardSummaryLicensesHeader)
	if len(licenses) == 0 {
		b.WriteString(messages.WizardSummaryNone)
	}
	for _, l := range licenses {
		_, _ = fmt.Fprintf(&b, messages.WizardSummaryLicenseFmt, l.Text, l.URL)
	}
	return b.String()
}

func projectTypeChoices(types []catalog.ProjectType) []Choice {
	choices := make([]Choice, len(types))
	for i, pt := range types {
		choices[i] = Choice{Label: firstNonEmpty(pt.DisplayName, pt.Name), Value: pt.Name}
	}
	return choices
}

func frameworkChoices(frameworks []catalog.Framework) []Choice {
	choices := make([]Choice, len(frameworks))
	for i, fw := range frameworks {
		choices[i] = Choice{Label: firstNonEmpty(fw.DisplayName, fw.Name), Value: fw.Name}
	}
	return choices
}

func templateChoices(templates []*catalog.Template) []Choice {
	choices := make([]Choice, len(templates))
	for i, t := range templates {
		choices[i] = Choice{Label: firstNonEmpty(t.DisplayName, t.Name), Value: t.ID}
	}
	return choices
}

func templateIDs(items []SavedTemplate) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if !slices.Contains(ids, item.TemplateID) {
			ids = append(ids, item.TemplateID)
		}
	}
	return ids
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
