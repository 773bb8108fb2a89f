package customize

import (
	"strings"

	"github.com/nightconcept/initializr-go/internal/core/build"
	"github.com/nightconcept/initializr-go/internal/core/metadata"
)

// RootStarterID is the id the root starter is registered under.
const RootStarterID = "root_starter"

// DefaultStarterCustomizer adds the root starter to builds that have no
// starter at all. It must run after every customizer that adds dependencies.
type DefaultStarterCustomizer struct {
	catalog *metadata.Catalog
}

// NewDefaultStarterCustomizer returns a customizer backed by catalog.
func NewDefaultStarterCustomizer(catalog *metadata.Catalog) *DefaultStarterCustomizer {
	return &DefaultStarterCustomizer{catalog: catalog}
}

// Customize implements BuildCustomizer.
func (c *DefaultStarterCustomizer) Customize(b *build.Build) error {
	for _, id := range b.Dependencies.IDs() {
		dep, _ := b.Dependencies.Get(id)
		if c.isStarter(id, dep) {
			return nil
		}
	}
	return addDependency(b, c.catalog.Starter(RootStarterID, ""))
}

// isStarter consults the catalog entry for id. Dependencies without one count
// as starters only when they look like a synthesized compile-scope starter.
func (c *DefaultStarterCustomizer) isStarter(id string, dep build.Dependency) bool {
	if id == RootStarterID {
		return true
	}
	if entry, ok := c.catalog.Lookup(id); ok {
		return entry.IsStarter()
	}
	return dep.Type == build.TypeCompile &&
		dep.GroupID == c.catalog.Platform.StarterGroupID &&
		strings.HasPrefix(dep.ArtifactID, "spring-boot-starter")
}
