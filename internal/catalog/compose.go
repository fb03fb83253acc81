package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/conn-castle/template-wizard/internal/messages"
	"github.com/conn-castle/template-wizard/internal/selection"
)

// Composition errors. Callers can match them with errors.Is.
var (
	ErrMissingSetup         = errors.New(messages.ComposeMissingSetup)
	ErrUnknownSetup         = errors.New("unknown project setup")
	ErrNoProjectTemplate    = errors.New("no project template")
	ErrUnknownTemplate      = errors.New("unknown template")
	ErrIncompatibleTemplate = errors.New("incompatible template")
	ErrInvalidSelection     = errors.New("invalid selection")
)

// GenItem is one unit of generation: an instance name and the template that produces it.
type GenItem struct {
	Name     string
	Template *Template
}

// Composer resolves a user selection into the ordered list of templates to generate.
type Composer struct {
	catalog *Catalog
}

// NewComposer returns a Composer backed by cat.
func NewComposer(cat *Catalog) *Composer {
	return &Composer{catalog: cat}
}

// Compose returns the generation items for sel: the project template, implicit
// templates for the setup, pages and features in selection order, then any
// dependencies not already present. The result depends only on sel and the catalog.
func (c *Composer) Compose(ctx context.Context, sel selection.UserSelection) ([]GenItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	projectType, framework := sel.ProjectType(), sel.Framework()
	if projectType == "" || framework == "" {
		return nil, ErrMissingSetup
	}
	if _, ok := c.catalog.ProjectType(projectType); !ok {
		return nil, fmt.Errorf(messages.ComposeUnknownProjectTypeFmt, ErrUnknownSetup, projectType)
	}
	fw, ok := c.catalog.Framework(framework)
	if !ok || !fw.Supports(projectType) {
		return nil, fmt.Errorf(messages.ComposeUnknownFrameworkFmt, ErrUnknownSetup, framework, projectType)
	}

	b := &composition{
		catalog:     c.catalog,
		projectType: projectType,
		framework:   framework,
		included:    make(map[string]bool),
		names:       make(map[string]bool),
		reserved:    make(map[string]bool),
	}

	project := b.projectTemplate()
	if project == nil {
		return nil, fmt.Errorf(messages.ComposeNoProjectTemplateFmt, ErrNoProjectTemplate, projectType, framework)
	}
	// User names win; generated items are renamed around them.
	for _, item := range append(sel.Pages(), sel.Features()...) {
		b.reserved[item.Name] = true
	}
	b.add(b.generatedName(project.Name), project)
	for i := range c.catalog.Templates {
		tmpl := &c.catalog.Templates[i]
		if tmpl.Implicit && tmpl.Supports(projectType, framework) {
			b.add(b.generatedName(tmpl.DefaultName), tmpl)
		}
	}

	if err := b.addSelected(sel.Pages(), KindPage); err != nil {
		return nil, err
	}
	if err := b.addSelected(sel.Features(), KindFeature); err != nil {
		return nil, err
	}

	// Dependencies are appended after the explicit selection so user order is preserved.
	explicit := len(b.items)
	for i := 0; i < explicit; i++ {
		if err := b.addDependencies(b.items[i].Template); err != nil {
			return nil, err
		}
	}
	return b.items, nil
}

// DistinctLicenses flattens the licenses of items, keeping the first occurrence of each URL.
func DistinctLicenses(items []GenItem) []License {
	seen := make(map[string]bool)
	var out []License
	for _, item := range items {
		for _, license := range item.Template.GetLicenses() {
			if seen[license.URL] {
				continue
			}
			seen[license.URL] = true
			out = append(out, license)
		}
	}
	return out
}

type composition struct {
	catalog     *Catalog
	projectType string
	framework   string
	items       []GenItem
	included    map[string]bool
	names       map[string]bool
	reserved    map[string]bool // names chosen by the user
}

func (b *composition) projectTemplate() *Template {
	for i := range b.catalog.Templates {
		tmpl := &b.catalog.Templates[i]
		if tmpl.Kind == KindProject && tmpl.Supports(b.projectType, b.framework) {
			return tmpl
		}
	}
	return nil
}

func (b *composition) add(name string, tmpl *Template) {
	b.items = append(b.items, GenItem{Name: name, Template: tmpl})
	b.included[tmpl.ID] = true
	b.names[name] = true
}

// generatedName returns base, suffixed with the first free number when base
// is taken by another item or by a user name.
func (b *composition) generatedName(base string) string {
	name := base
	for suffix := 1; b.names[name] || b.reserved[name]; suffix++ {
		name = fmt.Sprintf("%s%d", base, suffix)
	}
	return name
}

func (b *composition) addSelected(items []selection.Item, kind Kind) error {
	for _, item := range items {
		tmpl, ok := b.catalog.Template(item.TemplateID)
		if !ok {
			return fmt.Errorf(messages.ComposeUnknownTemplateFmt, ErrUnknownTemplate, item.TemplateID)
		}
		if tmpl.Kind != kind || tmpl.Implicit {
			return fmt.Errorf(messages.ComposeWrongKindFmt, ErrIncompatibleTemplate, tmpl.ID, tmpl.Kind, kind)
		}
		if !tmpl.Supports(b.projectType, b.framework) {
			return fmt.Errorf(messages.ComposeIncompatibleTemplateFmt, ErrIncompatibleTemplate, tmpl.ID, b.projectType, b.framework)
		}
		if item.Name == "" || b.names[item.Name] {
			return fmt.Errorf("%w: "+messages.ComposeDuplicateItemNameFmt, ErrInvalidSelection, item.Name)
		}
		if b.included[tmpl.ID] && !tmpl.MultipleInstances {
			return fmt.Errorf("%w: "+messages.ComposeSingleInstanceFmt, ErrInvalidSelection, tmpl.ID)
		}
		b.add(item.Name, tmpl)
	}
	return nil
}

func (b *composition) addDependencies(tmpl *Template) error {
	for _, depID := range tmpl.Dependencies {
		if b.included[depID] {
			continue
		}
		dep, ok := b.catalog.Template(depID)
		if !ok {
			return fmt.Errorf(messages.ComposeUnknownTemplateFmt, ErrUnknownTemplate, depID)
		}
		if !dep.Supports(b.projectType, b.framework) {
			return fmt.Errorf(messages.ComposeIncompatibleTemplateFmt, ErrIncompatibleTemplate, dep.ID, b.projectType, b.framework)
		}
		b.add(b.generatedName(dep.DefaultName), dep)
		if err := b.addDependencies(dep); err != nil {
			return err
		}
	}
	return nil
}
