// Package customize holds the build customizers and project contributors
// that enrich a generated project from the metadata catalog.
package customize

import (
	"github.com/nightconcept/initializr-go/internal/core/build"
	"github.com/nightconcept/initializr-go/internal/core/metadata"
	"github.com/nightconcept/initializr-go/internal/core/project"
)

// BuildCustomizer customizes any build.
type BuildCustomizer interface {
	Customize(b *build.Build) error
}

// MavenBuildCustomizer customizes Maven builds only.
type MavenBuildCustomizer interface {
	CustomizeMaven(b *build.MavenBuild) error
}

// ProjectContributor writes to the generated project tree.
type ProjectContributor interface {
	Contribute(projectRoot string) error
}

// hasWebFacet reports whether a selected dependency carries the web facet.
// Selected ids without a catalog entry are ignored.
func hasWebFacet(desc *project.Description, catalog *metadata.Catalog) bool {
	for _, id := range desc.DependencyIDs() {
		if dep, ok := catalog.Lookup(id); ok && dep.HasFacet(metadata.FacetWeb) {
			return true
		}
	}
	return false
}
