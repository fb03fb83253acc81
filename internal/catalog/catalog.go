// Package catalog loads the template catalog and composes generation items from a
// user selection.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/template-wizard/internal/messages"
	"github.com/conn-castle/template-wizard/internal/templates"
)

// ErrCatalogValidation wraps catalog consistency failures (as opposed to
// filesystem or TOML syntax errors).
var ErrCatalogValidation = errors.New("catalog validation failed")

// Kind classifies a template.
type Kind string

// Template kinds.
const (
	KindProject Kind = "project"
	KindPage    Kind = "page"
	KindFeature Kind = "feature"
)

// ProjectType is a selectable project shape.
type ProjectType struct {
	Name        string `toml:"name"`
	DisplayName string `toml:"display_name"`
}

// Framework is a selectable framework. Empty ProjectTypes means the framework
// supports every project type.
type Framework struct {
	Name         string   `toml:"name"`
	DisplayName  string   `toml:"display_name"`
	ProjectTypes []string `toml:"project_types"`
}

// Supports reports whether the framework can be used with projectType.
func (f Framework) Supports(projectType string) bool {
	return len(f.ProjectTypes) == 0 || slices.Contains(f.ProjectTypes, projectType)
}

// License is a third-party license pulled in by a template. Identity is the URL.
type License struct {
	URL  string `toml:"url"`
	Text string `toml:"text"`
}

// Template describes one catalog template.
type Template struct {
	ID                string    `toml:"id"`
	Name              string    `toml:"name"`
	DisplayName       string    `toml:"display_name"`
	Kind              Kind      `toml:"kind"`
	ProjectTypes      []string  `toml:"project_types"`
	Frameworks        []string  `toml:"frameworks"`
	Licenses          []License `toml:"licenses"`
	Dependencies      []string  `toml:"dependencies"`
	DefaultName       string    `toml:"default_name"`
	MultipleInstances bool      `toml:"multiple_instances"`
	// Implicit templates are never offered to the user; they are composed
	// automatically whenever they support the selected setup.
	Implicit bool `toml:"implicit"`
}

// GetLicenses returns the licenses the template carries.
func (t *Template) GetLicenses() []License {
	return slices.Clone(t.Licenses)
}

// Supports reports whether the template applies to the project type and framework.
func (t *Template) Supports(projectType, framework string) bool {
	if len(t.ProjectTypes) > 0 && !slices.Contains(t.ProjectTypes, projectType) {
		return false
	}
	return len(t.Frameworks) == 0 || slices.Contains(t.Frameworks, framework)
}

// Catalog is the set of project types, frameworks, and templates available to the wizard.
type Catalog struct {
	Version      int           `toml:"version"`
	ProjectTypes []ProjectType `toml:"project_types"`
	Frameworks   []Framework   `toml:"frameworks"`
	Templates    []Template    `toml:"templates"`

	source string
	byID   map[string]*Template
}

// LoadDefault returns the catalog embedded in the binary.
func LoadDefault() (*Catalog, error) {
	data, err := templates.Read("catalog.toml")
	if err != nil {
		return nil, fmt.Errorf(messages.CatalogReadEmbeddedFailedFmt, err)
	}
	return Parse(data, "embedded catalog.toml")
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.CatalogReadFailedFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates catalog TOML. source is used in error messages.
func Parse(data []byte, source string) (*Catalog, error) {
	var cat Catalog
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cat); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return nil, fmt.Errorf("%w: "+messages.CatalogParseFailedFmt, ErrCatalogValidation, source, err)
		}
		return nil, fmt.Errorf(messages.CatalogParseFailedFmt, source, err)
	}
	cat.source = source
	cat.normalize()
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogValidation, err)
	}
	cat.index()
	return &cat, nil
}

// normalize fills display names and template names that the file left empty.
func (c *Catalog) normalize() {
	for i := range c.ProjectTypes {
		if c.ProjectTypes[i].DisplayName == "" {
			c.ProjectTypes[i].DisplayName = c.ProjectTypes[i].Name
		}
	}
	for i := range c.Frameworks {
		if c.Frameworks[i].DisplayName == "" {
			c.Frameworks[i].DisplayName = c.Frameworks[i].Name
		}
	}
	for i := range c.Templates {
		tmpl := &c.Templates[i]
		if tmpl.Name == "" {
			tmpl.Name = tmpl.ID
		}
		if tmpl.DisplayName == "" {
			tmpl.DisplayName = tmpl.Name
		}
		if tmpl.DefaultName == "" {
			tmpl.DefaultName = tmpl.Name
		}
	}
}

func (c *Catalog) index() {
	c.byID = make(map[string]*Template, len(c.Templates))
	for i := range c.Templates {
		c.byID[c.Templates[i].ID] = &c.Templates[i]
	}
}

// Source returns the path or label the catalog was loaded from.
func (c *Catalog) Source() string {
	return c.source
}

// ProjectType looks up a project type by name.
func (c *Catalog) ProjectType(name string) (ProjectType, bool) {
	for _, pt := range c.ProjectTypes {
		if pt.Name == name {
			return pt, true
		}
	}
	return ProjectType{}, false
}

// Framework looks up a framework by name.
func (c *Catalog) Framework(name string) (Framework, bool) {
	for _, fw := range c.Frameworks {
		if fw.Name == name {
			return fw, true
		}
	}
	return Framework{}, false
}

// FrameworksFor returns the frameworks supporting projectType, in catalog order.
func (c *Catalog) FrameworksFor(projectType string) []Framework {
	out := make([]Framework, 0, len(c.Frameworks))
	for _, fw := range c.Frameworks {
		if fw.Supports(projectType) {
			out = append(out, fw)
		}
	}
	return out
}

// Template looks up a template by id.
func (c *Catalog) Template(id string) (*Template, bool) {
	tmpl, ok := c.byID[id]
	return tmpl, ok
}

// TemplatesFor returns the user-selectable templates of kind that support the
// project type and framework, in catalog order.
func (c *Catalog) TemplatesFor(kind Kind, projectType, framework string) []*Template {
	var out []*Template
	for i := range c.Templates {
		tmpl := &c.Templates[i]
		if tmpl.Kind != kind || tmpl.Implicit {
			continue
		}
		if tmpl.Supports(projectType, framework) {
			out = append(out, tmpl)
		}
	}
	return out
}
