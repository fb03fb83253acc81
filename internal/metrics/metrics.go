// Package metrics counts wizard activity with Prometheus collectors.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/conn-castle/template-wizard/internal/messages"
	"github.com/conn-castle/template-wizard/internal/wizard"
)

const (
	namespace = "template_wizard"
	subsystem = "wizard"
)

// Recorder is a wizard.Observer backed by its own Prometheus registry.
type Recorder struct {
	registry *prometheus.Registry

	transitions    *prometheus.CounterVec
	setupResets    *prometheus.CounterVec
	licenseChanges *prometheus.CounterVec
	statuses       *prometheus.CounterVec
	licenses       prometheus.Gauge
}

var _ wizard.Observer = (*Recorder)(nil)

// NewRecorder registers the wizard collectors on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "transitions_total",
				Help:      "Wizard step transitions.",
			},
			[]string{"from", "to"},
		),
		setupResets: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "setup_resets_total",
				Help:      "Saved templates discarded because the project setup changed.",
			},
			[]string{"project_type", "framework"},
		),
		licenseChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "license_changes_total",
				Help:      "Licenses added to or removed from the displayed list.",
			},
			[]string{"change"},
		),
		statuses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "status_changes_total",
				Help:      "Status slot updates by kind.",
			},
			[]string{"kind"},
		),
		licenses: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "displayed_licenses",
				Help:      "Licenses currently displayed.",
			},
		),
	}
	r.registry.MustRegister(r.transitions, r.setupResets, r.licenseChanges, r.statuses, r.licenses)
	return r
}

// Registry exposes the registry the collectors live on.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Transitioned counts a step change.
func (r *Recorder) Transitioned(from, to wizard.Step) {
	r.transitions.WithLabelValues(from.String(), to.String()).Inc()
}

// SetupChanged counts a staleness reset under the previous setup.
func (r *Recorder) SetupChanged(previous wizard.TemplateContext) {
	r.setupResets.WithLabelValues(previous.ProjectType.Name, previous.Framework.Name).Inc()
}

// LicensesChanged counts added and removed licenses and tracks the list size.
func (r *Recorder) LicensesChanged(diff wizard.LicenseDiff) {
	r.licenseChanges.WithLabelValues("added").Add(float64(len(diff.Added)))
	r.licenseChanges.WithLabelValues("removed").Add(float64(len(diff.Removed)))
	r.licenses.Add(float64(len(diff.Added) - len(diff.Removed)))
}

// StatusChanged counts status updates, including clears.
func (r *Recorder) StatusChanged(status wizard.Status) {
	r.statuses.WithLabelValues(status.Kind.String()).Inc()
}

// WriteText writes every gathered family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf(messages.MetricsGatherFailedFmt, err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf(messages.MetricsWriteFailedFmt, err)
		}
	}
	return nil
}
