// Package wizard drives the new-project wizard: project setup, template
// selection, and a summary with the resolved licenses.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/conn-castle/template-wizard/internal/catalog"
	"github.com/conn-castle/template-wizard/internal/logging"
	"github.com/conn-castle/template-wizard/internal/messages"
	"github.com/conn-castle/template-wizard/internal/selection"
)

// Step identifies a wizard state.
type Step int

// Wizard steps in order. StepFinished and StepCancelled are terminal.
const (
	StepProjectSetup Step = iota
	StepTemplates
	StepSummary
	StepFinished
	StepCancelled
)

func (s Step) String() string {
	switch s {
	case StepProjectSetup:
		return "project setup"
	case StepTemplates:
		return "templates"
	case StepSummary:
		return "summary"
	case StepFinished:
		return "finished"
	case StepCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Terminal reports whether no transition can leave s.
func (s Step) Terminal() bool {
	return s == StepFinished || s == StepCancelled
}

var (
	// ErrWizardClosed is returned by operations on a finished or cancelled wizard.
	ErrWizardClosed = errors.New("wizard is closed")
	// ErrInvalidTransition is returned when an operation is not allowed in the current step.
	ErrInvalidTransition = errors.New("invalid wizard transition")
	// ErrSetupNotInitialized is returned when setup choices are made before AwaitSetup succeeded.
	ErrSetupNotInitialized = errors.New(messages.WizardSetupNotInitialized)
	// ErrSetupIncomplete is returned by Next when no project type or framework is chosen.
	ErrSetupIncomplete = errors.New(messages.WizardSetupNotChosen)
)

// TracerName is the instrumentation scope of the spans the Controller records.
const TracerName = "github.com/conn-castle/template-wizard/internal/wizard"

const composeSpanName = "wizard.compose"

// Controller is the wizard state machine. It is not safe for concurrent
// use; callers serialize access. The only background work is project
// setup initialization, which the Controller joins in AwaitSetup.
type Controller struct {
	host     Host
	composer Composer
	setupper SetupInitializer
	observer Observer
	logger   logging.Logger
	tracer   trace.Tracer

	step     Step
	state    *SelectionState
	licenses *LicenseReconciler
	status   Status
	setup    *catalog.Setup
	init     *InitTask
	result   *selection.UserSelection
}

// New returns a Controller on the project setup step.
func New(opts Options) (*Controller, error) {
	if opts.Host == nil || opts.Composer == nil || opts.Setup == nil {
		return nil, errors.New(messages.WizardMissingCollaborators)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}
	c := &Controller{
		host:     opts.Host,
		setupper: opts.Setup,
		observer: observers(opts.Observers),
		logger:   logger,
		tracer:   tracer,
		step:     StepProjectSetup,
		state:    NewSelectionState(),
	}
	c.composer = &tracedComposer{next: opts.Composer, tracer: tracer}
	c.licenses = NewLicenseReconciler(c.composer, c.observer)
	return c, nil
}

// Step returns the current step.
func (c *Controller) Step() Step { return c.step }

// Status returns the current advisory.
func (c *Controller) Status() Status { return c.status }

// State returns a copy of the current selection state.
func (c *Controller) State() *SelectionState { return c.state.Clone() }

// Licenses returns the displayed licenses.
func (c *Controller) Licenses() []catalog.License { return c.licenses.Displayed() }

// Setup returns the initialized setup options, if AwaitSetup has succeeded.
func (c *Controller) Setup() (catalog.Setup, bool) {
	if c.setup == nil {
		return catalog.Setup{}, false
	}
	return *c.setup, true
}

// Result returns the final selection once the wizard has finished.
func (c *Controller) Result() (selection.UserSelection, bool) {
	if c.result == nil {
		return selection.UserSelection{}, false
	}
	return *c.result, true
}

// TemplatesAvailable starts project setup initialization without waiting
// for it. A running task is reused and a failed one is replaced. Once setup
// is initialized the returned task is already done.
func (c *Controller) TemplatesAvailable(ctx context.Context) (*InitTask, error) {
	if err := c.ensureOpen("start setup"); err != nil {
		return nil, err
	}
	if c.setup != nil {
		return finishedTask(*c.setup), nil
	}
	if c.init != nil && !c.init.failed() {
		return c.init, nil
	}
	c.logger.Debug("initializing project setup")
	c.init = startInit(ctx, c.setupper)
	return c.init, nil
}

// AwaitSetup joins setup initialization, starting it if needed. The setup
// step is not interactive until it succeeds. A failure is reported through
// the status slot and can be retried.
func (c *Controller) AwaitSetup(ctx context.Context) (catalog.Setup, error) {
	if c.setup != nil {
		return *c.setup, nil
	}
	task, err := c.TemplatesAvailable(ctx)
	if err != nil {
		return catalog.Setup{}, err
	}
	setup, err := task.Wait(ctx)
	if err != nil {
		c.logger.Error("project setup initialization failed", err)
		c.setStatus(ErrorStatus(fmt.Sprintf(messages.WizardSetupInitFailedStatusFmt, err)))
		return catalog.Setup{}, fmt.Errorf(messages.WizardSetupInitFailedFmt, err)
	}
	c.setup = &setup
	c.init = nil
	if c.status.Kind == StatusError {
		c.setStatus(Status{})
	}
	return setup, nil
}

// SetSetup selects the project type and framework by name.
func (c *Controller) SetSetup(projectType, framework string) error {
	if err := c.ensureStep("choose setup", StepProjectSetup); err != nil {
		return err
	}
	if c.setup == nil {
		return ErrSetupNotInitialized
	}
	pt, ok := c.setup.ProjectType(projectType)
	if !ok {
		return fmt.Errorf(messages.WizardUnknownProjectTypeFmt, projectType)
	}
	fw, ok := c.setup.Framework(projectType, framework)
	if !ok {
		return fmt.Errorf(messages.WizardUnknownFrameworkFmt, framework, projectType)
	}
	c.state.SetSetup(SetupChoice{
		ProjectType: Option{Name: pt.Name, DisplayName: pt.DisplayName},
		Framework:   Option{Name: fw.Name, DisplayName: fw.DisplayName},
	})
	return nil
}

// Next advances one step. Saved templates that went stale because the setup
// changed are discarded with a warning; otherwise the status is cleared.
// Entering the summary reconciles licenses; if composition fails the
// wizard stays on the templates step.
func (c *Controller) Next(ctx context.Context) error {
	if err := c.ensureOpen("go next"); err != nil {
		return err
	}
	switch c.step {
	case StepProjectSetup:
		if !c.state.Setup().Complete() {
			return ErrSetupIncomplete
		}
		c.checkStaleness()
		c.transition(StepTemplates)
		return nil
	case StepTemplates:
		c.checkStaleness()
		if _, err := c.reconcile(ctx); err != nil {
			return err
		}
		c.transition(StepSummary)
		return nil
	default:
		return fmt.Errorf(messages.WizardInvalidTransitionFmt, ErrInvalidTransition, "go next", c.step)
	}
}

// Back returns to the previous step without touching the selection.
func (c *Controller) Back() error {
	if err := c.ensureOpen("go back"); err != nil {
		return err
	}
	switch c.step {
	case StepTemplates:
		c.transition(StepProjectSetup)
	case StepSummary:
		c.transition(StepTemplates)
	default:
		return fmt.Errorf(messages.WizardInvalidTransitionFmt, ErrInvalidTransition, "go back", c.step)
	}
	return nil
}

// Cancel ends the wizard without a result and abandons any running
// setup initialization.
func (c *Controller) Cancel() error {
	if err := c.ensureOpen("cancel"); err != nil {
		return err
	}
	if c.init != nil {
		c.init.Cancel()
		c.init = nil
	}
	c.result = nil
	c.transition(StepCancelled)
	c.host.Close(nil, false)
	return nil
}

// Finish builds the final selection, composes it once more to settle the
// licenses, and hands it to the host. A composition failure keeps the
// wizard on the summary step.
func (c *Controller) Finish(ctx context.Context) (selection.UserSelection, error) {
	if err := c.ensureStep("finish", StepSummary); err != nil {
		return selection.UserSelection{}, err
	}
	result := c.state.Selection()
	items, err := c.composer.Compose(ctx, result)
	if err != nil {
		c.composeFailed(err)
		return selection.UserSelection{}, fmt.Errorf(messages.WizardComposeFailedFmt, err)
	}
	c.licenses.Sync(catalog.DistinctLicenses(items))

	c.result = &result
	c.transition(StepFinished)
	c.host.Close(&result, true)
	return result, nil
}

// AddPage saves a page instance named name from the template templateID.
func (c *Controller) AddPage(ctx context.Context, name, templateID string) error {
	if err := c.checkNewItem(name, templateID); err != nil {
		return err
	}
	c.state.AddPage(SavedTemplate{Name: name, TemplateID: templateID})
	c.reconcileLive(ctx)
	return nil
}

// AddFeature saves a feature instance named name from the template templateID.
func (c *Controller) AddFeature(ctx context.Context, name, templateID string) error {
	if err := c.checkNewItem(name, templateID); err != nil {
		return err
	}
	c.state.AddFeature(SavedTemplate{Name: name, TemplateID: templateID})
	c.reconcileLive(ctx)
	return nil
}

// RemovePage removes the saved page named name.
func (c *Controller) RemovePage(ctx context.Context, name string) error {
	if err := c.ensureStep("remove page", StepTemplates); err != nil {
		return err
	}
	if !c.state.RemovePage(name) {
		return fmt.Errorf(messages.WizardUnknownSavedItemFmt, "page", name)
	}
	c.reconcileLive(ctx)
	return nil
}

// RemoveFeature removes the saved feature named name.
func (c *Controller) RemoveFeature(ctx context.Context, name string) error {
	if err := c.ensureStep("remove feature", StepTemplates); err != nil {
		return err
	}
	if !c.state.RemoveFeature(name) {
		return fmt.Errorf(messages.WizardUnknownSavedItemFmt, "feature", name)
	}
	c.reconcileLive(ctx)
	return nil
}

// SetHomeName sets the name of the home page.
func (c *Controller) SetHomeName(name string) error {
	if err := c.ensureStep("set home name", StepTemplates); err != nil {
		return err
	}
	c.state.SetHomeName(name)
	return nil
}

func (c *Controller) checkNewItem(name, templateID string) error {
	if err := c.ensureStep("add template", StepTemplates); err != nil {
		return err
	}
	if name == "" {
		return errors.New(messages.WizardItemNameRequired)
	}
	if templateID == "" {
		return fmt.Errorf(messages.WizardItemTemplateRequiredFmt, name)
	}
	if c.state.HasName(name) {
		return fmt.Errorf(messages.WizardDuplicateItemNameFmt, name)
	}
	return nil
}

// checkStaleness resets templates saved under a setup that no longer applies.
func (c *Controller) checkStaleness() {
	previous, _ := c.state.Context()
	if !HasSetupChanged(previous, c.state.Setup(), c.state.HasTemplates()) {
		c.setStatus(Status{})
		return
	}
	c.logger.Warn("project setup changed; discarding saved templates",
		logging.String("previous_project_type", previous.ProjectType.Name),
		logging.String("previous_framework", previous.Framework.Name),
		logging.Int("pages", len(c.state.Pages())),
		logging.Int("features", len(c.state.Features())),
	)
	c.state.ResetTemplates()
	c.observer.SetupChanged(previous)
	c.setStatus(WarningStatus(fmt.Sprintf(messages.WizardResetSelectionFmt,
		previous.ProjectType.Label(), previous.Framework.Label())))
}

// reconcile synchronizes licenses with the current state, reporting
// failures through the status slot.
func (c *Controller) reconcile(ctx context.Context) (LicenseDiff, error) {
	diff, err := c.licenses.Reconcile(ctx, c.state.Selection())
	if err != nil {
		c.composeFailed(err)
		return LicenseDiff{}, fmt.Errorf(messages.WizardComposeFailedFmt, err)
	}
	return diff, nil
}

// reconcileLive keeps the license list current while templates are edited.
func (c *Controller) reconcileLive(ctx context.Context) {
	if _, err := c.reconcile(ctx); err == nil && c.status.Kind == StatusError {
		c.setStatus(Status{})
	}
}

func (c *Controller) composeFailed(err error) {
	c.logger.Error("composition failed", err, logging.String("step", c.step.String()))
	c.setStatus(ErrorStatus(fmt.Sprintf(messages.WizardComposeFailedStatusFmt, err)))
}

func (c *Controller) setStatus(status Status) {
	if status == c.status {
		return
	}
	c.status = status
	c.observer.StatusChanged(status)
}

func (c *Controller) transition(to Step) {
	from := c.step
	c.step = to
	c.logger.Info("wizard transition", logging.String("from", from.String()), logging.String("to", to.String()))
	c.observer.Transitioned(from, to)
	if !to.Terminal() {
		c.host.Navigate(to)
	}
}

func (c *Controller) ensureOpen(op string) error {
	if c.step.Terminal() {
		return fmt.Errorf(messages.WizardClosedFmt, ErrWizardClosed, op, c.step)
	}
	return nil
}

func (c *Controller) ensureStep(op string, want Step) error {
	if err := c.ensureOpen(op); err != nil {
		return err
	}
	if c.step != want {
		return fmt.Errorf(messages.WizardInvalidTransitionFmt, ErrInvalidTransition, op, c.step)
	}
	return nil
}

// tracedComposer records a span around every composition.
type tracedComposer struct {
	next   Composer
	tracer trace.Tracer
}

func (t *tracedComposer) Compose(ctx context.Context, sel selection.UserSelection) ([]catalog.GenItem, error) {
	ctx, span := t.tracer.Start(ctx, composeSpanName, trace.WithAttributes(
		attribute.String("project_type", sel.ProjectType()),
		attribute.String("framework", sel.Framework()),
		attribute.Int("pages", len(sel.Pages())),
		attribute.Int("features", len(sel.Features())),
	))
	defer span.End()

	items, err := t.next.Compose(ctx, sel)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("items", len(items)))
	return items, nil
}
