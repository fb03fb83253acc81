package catalog

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Setup is the data the project setup step needs: project types and the
// frameworks each one supports.
type Setup struct {
	ProjectTypes []ProjectType
	Frameworks   map[string][]Framework
}

// FrameworksFor returns the frameworks available for projectType.
func (s Setup) FrameworksFor(projectType string) []Framework {
	return slices.Clone(s.Frameworks[projectType])
}

// ProjectType looks up a project type by name.
func (s Setup) ProjectType(name string) (ProjectType, bool) {
	for _, pt := range s.ProjectTypes {
		if pt.Name == name {
			return pt, true
		}
	}
	return ProjectType{}, false
}

// Framework looks up a framework by name among those available for projectType.
func (s Setup) Framework(projectType, name string) (Framework, bool) {
	for _, fw := range s.Frameworks[projectType] {
		if fw.Name == name {
			return fw, true
		}
	}
	return Framework{}, false
}

// InitializeSetup builds the project setup data from the catalog, resolving
// the frameworks of every project type concurrently. The first failure or a
// cancelled ctx stops the remaining lookups.
func (c *Catalog) InitializeSetup(ctx context.Context) (Setup, error) {
	if err := ctx.Err(); err != nil {
		return Setup{}, err
	}
	resolved := make([][]Framework, len(c.ProjectTypes))
	g, gctx := errgroup.WithContext(ctx)
	for i, pt := range c.ProjectTypes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resolved[i] = c.FrameworksFor(pt.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Setup{}, err
	}

	setup := Setup{
		ProjectTypes: slices.Clone(c.ProjectTypes),
		Frameworks:   make(map[string][]Framework, len(c.ProjectTypes)),
	}
	for i, pt := range c.ProjectTypes {
		setup.Frameworks[pt.Name] = resolved[i]
	}
	return setup, nil
}
