//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks

package wizard

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/conn-castle/template-wizard/internal/catalog"
	"github.com/conn-castle/template-wizard/internal/logging"
	"github.com/conn-castle/template-wizard/internal/selection"
)

// Host owns step rendering and receives the wizard outcome.
type Host interface {
	// Navigate is called after every transition between interactive steps.
	Navigate(step Step)
	// Close is called once when the wizard ends. result is nil unless completed.
	Close(result *selection.UserSelection, completed bool)
}

// Composer resolves a selection into generation items.
// It must be deterministic for a given selection.
type Composer interface {
	Compose(ctx context.Context, sel selection.UserSelection) ([]catalog.GenItem, error)
}

// SetupInitializer loads the data the project setup step offers.
type SetupInitializer interface {
	InitializeSetup(ctx context.Context) (catalog.Setup, error)
}

// Observer is notified of wizard changes. Implementations must not call
// back into the Controller.
type Observer interface {
	Transitioned(from, to Step)
	SetupChanged(previous TemplateContext)
	LicensesChanged(diff LicenseDiff)
	StatusChanged(status Status)
}

// NopObserver ignores every notification. Embed it to implement a subset.
type NopObserver struct{}

func (NopObserver) Transitioned(Step, Step)      {}
func (NopObserver) SetupChanged(TemplateContext) {}
func (NopObserver) LicensesChanged(LicenseDiff)  {}
func (NopObserver) StatusChanged(Status)         {}

// observers fans notifications out in registration order.
type observers []Observer

func (o observers) Transitioned(from, to Step) {
	for _, obs := range o {
		obs.Transitioned(from, to)
	}
}

func (o observers) SetupChanged(previous TemplateContext) {
	for _, obs := range o {
		obs.SetupChanged(previous)
	}
}

func (o observers) LicensesChanged(diff LicenseDiff) {
	for _, obs := range o {
		obs.LicensesChanged(diff)
	}
}

func (o observers) StatusChanged(status Status) {
	for _, obs := range o {
		obs.StatusChanged(status)
	}
}

// Options is the session handed to a Controller at construction.
// Host, Composer and Setup are required.
type Options struct {
	Host      Host
	Composer  Composer
	Setup     SetupInitializer
	Observers []Observer
	Logger    logging.Logger
	Tracer    trace.Tracer
}

// RecordingHost is a Host that remembers what it was told.
// It serves the CLI, which renders steps itself.
type RecordingHost struct {
	Steps     []Step
	Result    *selection.UserSelection
	Completed bool
	Closed    bool
}

// Navigate records the step.
func (h *RecordingHost) Navigate(step Step) {
	h.Steps = append(h.Steps, step)
}

// Close records the outcome.
func (h *RecordingHost) Close(result *selection.UserSelection, completed bool) {
	h.Result = result
	h.Completed = completed
	h.Closed = true
}
