package catalog

import (
	"fmt"

	"github.com/conn-castle/template-wizard/internal/messages"
)

var validKinds = map[Kind]struct{}{
	KindProject: {},
	KindPage:    {},
	KindFeature: {},
}

// Validate ensures the catalog is complete and internally consistent.
func (c *Catalog) Validate() error {
	if len(c.ProjectTypes) == 0 {
		return fmt.Errorf(messages.CatalogNoProjectTypesFmt, c.source)
	}

	projectTypes := make(map[string]struct{}, len(c.ProjectTypes))
	for i, pt := range c.ProjectTypes {
		if pt.Name == "" {
			return fmt.Errorf(messages.CatalogProjectTypeNameRequiredFmt, c.source, i)
		}
		if _, dup := projectTypes[pt.Name]; dup {
			return fmt.Errorf(messages.CatalogDuplicateProjectTypeFmt, c.source, pt.Name)
		}
		projectTypes[pt.Name] = struct{}{}
	}

	frameworks := make(map[string]struct{}, len(c.Frameworks))
	for i, fw := range c.Frameworks {
		if fw.Name == "" {
			return fmt.Errorf(messages.CatalogFrameworkNameRequiredFmt, c.source, i)
		}
		if _, dup := frameworks[fw.Name]; dup {
			return fmt.Errorf(messages.CatalogDuplicateFrameworkFmt, c.source, fw.Name)
		}
		frameworks[fw.Name] = struct{}{}
		for _, pt := range fw.ProjectTypes {
			if _, ok := projectTypes[pt]; !ok {
				return fmt.Errorf(messages.CatalogFrameworkUnknownTypeFmt, c.source, fw.Name, pt)
			}
		}
	}

	byID := make(map[string]*Template, len(c.Templates))
	for i := range c.Templates {
		tmpl := &c.Templates[i]
		if tmpl.ID == "" {
			return fmt.Errorf(messages.CatalogTemplateIDRequiredFmt, c.source, i)
		}
		if _, dup := byID[tmpl.ID]; dup {
			return fmt.Errorf(messages.CatalogDuplicateTemplateFmt, c.source, tmpl.ID)
		}
		byID[tmpl.ID] = tmpl
		if _, ok := validKinds[tmpl.Kind]; !ok {
			return fmt.Errorf(messages.CatalogTemplateKindInvalidFmt, c.source, tmpl.ID, tmpl.Kind)
		}
		for _, pt := range tmpl.ProjectTypes {
			if _, ok := projectTypes[pt]; !ok {
				return fmt.Errorf(messages.CatalogTemplateUnknownTypeFmt, c.source, tmpl.ID, pt)
			}
		}
		for _, fw := range tmpl.Frameworks {
			if _, ok := frameworks[fw]; !ok {
				return fmt.Errorf(messages.CatalogTemplateUnknownFrameworkFmt, c.source, tmpl.ID, fw)
			}
		}
		for _, license := range tmpl.Licenses {
			if license.URL == "" {
				return fmt.Errorf(messages.CatalogLicenseURLRequiredFmt, c.source, tmpl.ID)
			}
		}
	}

	for i := range c.Templates {
		tmpl := &c.Templates[i]
		for _, depID := range tmpl.Dependencies {
			dep, ok := byID[depID]
			if !ok {
				return fmt.Errorf(messages.CatalogTemplateUnknownDependencyFmt, c.source, tmpl.ID, depID)
			}
			if dep.Kind == KindProject {
				return fmt.Errorf(messages.CatalogTemplateProjectDependencyFmt, c.source, tmpl.ID, depID)
			}
		}
	}

	return c.checkDependencyCycles(byID)
}

// checkDependencyCycles walks dependency edges depth-first and rejects any back edge.
func (c *Catalog) checkDependencyCycles(byID map[string]*Template) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(byID))
	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf(messages.CatalogDependencyCycleFmt, c.source, id)
		case done:
			return nil
		}
		state[id] = visiting
		for _, dep := range byID[id].Dependencies {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}
	for i := range c.Templates {
		if err := visit(c.Templates[i].ID); err != nil {
			return err
		}
	}
	return nil
}
