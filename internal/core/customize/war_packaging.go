package customize

import (
	"fmt"

	"github.com/nightconcept/initializr-go/internal/core/build"
	"github.com/nightconcept/initializr-go/internal/core/metadata"
	"github.com/nightconcept/initializr-go/internal/core/project"
	"github.com/nightconcept/initializr-go/internal/core/translate"
)

// WarPackagingWebStarterCustomizer makes sure a war project can bootstrap a
// web application and does not embed its servlet container.
type WarPackagingWebStarterCustomizer struct {
	desc    *project.Description
	catalog *metadata.Catalog
}

// NewWarPackagingWebStarterCustomizer returns a customizer for desc.
func NewWarPackagingWebStarterCustomizer(desc *project.Description, catalog *metadata.Catalog) *WarPackagingWebStarterCustomizer {
	return &WarPackagingWebStarterCustomizer{desc: desc, catalog: catalog}
}

// Customize implements BuildCustomizer.
func (c *WarPackagingWebStarterCustomizer) Customize(b *build.Build) error {
	if !hasWebFacet(c.desc, c.catalog) {
		web := c.webDependency()
		if err := addDependency(b, web); err != nil {
			return err
		}
	}
	tomcat := c.catalog.Starter("tomcat", "tomcat")
	tomcat.Scope = metadata.ScopeProvided
	return addDependency(b, tomcat)
}

func (c *WarPackagingWebStarterCustomizer) webDependency() metadata.Dependency {
	if web, ok := c.catalog.Lookup("web"); ok {
		return web
	}
	return c.catalog.Starter("web", "web")
}

func addDependency(b *build.Build, dep metadata.Dependency) error {
	translated, ok := translate.ToDependency(dep)
	if !ok {
		return fmt.Errorf("dependency %q: %w %q", dep.ID, metadata.ErrUnknownScope, dep.Scope)
	}
	b.AddDependency(dep.ID, translated)
	return nil
}
