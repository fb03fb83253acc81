package wizard

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/template-wizard/internal/catalog"
	"github.com/conn-castle/template-wizard/internal/messages"
	"github.com/conn-castle/template-wizard/internal/selection"
)

// LicenseDiff lists what a reconciliation changed in the displayed licenses.
type LicenseDiff struct {
	Added   []catalog.License
	Removed []catalog.License
}

// Empty reports whether the reconciliation changed nothing.
func (d LicenseDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// LicenseReconciler keeps the displayed license list equal, by URL, to the
// licenses of the current selection, changing it incrementally.
type LicenseReconciler struct {
	composer  Composer
	observer  Observer
	displayed []catalog.License
}

// NewLicenseReconciler returns a reconciler with an empty displayed list.
// observer may be nil.
func NewLicenseReconciler(composer Composer, observer Observer) *LicenseReconciler {
	if observer == nil {
		observer = NopObserver{}
	}
	return &LicenseReconciler{composer: composer, observer: observer}
}

// Displayed returns the displayed licenses in display order.
func (r *LicenseReconciler) Displayed() []catalog.License {
	return slices.Clone(r.displayed)
}

// Reconcile composes sel and synchronizes the displayed list with the
// resulting licenses. On a compose failure the list is left untouched.
func (r *LicenseReconciler) Reconcile(ctx context.Context, sel selection.UserSelection) (LicenseDiff, error) {
	items, err := r.composer.Compose(ctx, sel)
	if err != nil {
		return LicenseDiff{}, err
	}
	return r.Sync(catalog.DistinctLicenses(items)), nil
}

// Sync applies canonical to the displayed list: entries whose URL is gone
// are removed, new URLs are appended, survivors keep their order.
func (r *LicenseReconciler) Sync(canonical []catalog.License) LicenseDiff {
	wanted := make(map[string]bool, len(canonical))
	for _, l := range canonical {
		wanted[l.URL] = true
	}

	var diff LicenseDiff
	kept := make([]catalog.License, 0, len(canonical))
	present := make(map[string]bool, len(r.displayed))
	for _, l := range r.displayed {
		if !wanted[l.URL] {
			diff.Removed = append(diff.Removed, l)
			continue
		}
		kept = append(kept, l)
		present[l.URL] = true
	}
	for _, l := range canonical {
		if present[l.URL] {
			continue
		}
		present[l.URL] = true
		kept = append(kept, l)
		diff.Added = append(diff.Added, l)
	}

	r.displayed = kept
	if !diff.Empty() {
		r.observer.LicensesChanged(diff)
	}
	return diff
}

// RenderDiff returns a unified diff between two license lists, or "" when
// they render identically.
func RenderDiff(before, after []catalog.License) string {
	return strings.TrimSpace(udiff.Unified(
		"licenses (previous)",
		"licenses (current)",
		renderLicenses(before),
		renderLicenses(after),
	))
}

func renderLicenses(licenses []catalog.License) string {
	var b strings.Builder
	for _, l := range licenses {
		_, _ = fmt.Fprintf(&b, messages.WizardSummaryLicenseFmt, l.Text, l.URL)
	}
	return b.String()
}
