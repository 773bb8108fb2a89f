package customize

import (
	"fmt"
	"strings"

	"github.com/nightconcept/initializr-go/internal/core/build"
	"github.com/nightconcept/initializr-go/internal/core/metadata"
	"github.com/nightconcept/initializr-go/internal/core/project"
	"github.com/nightconcept/initializr-go/internal/core/translate"
	"github.com/nightconcept/initializr-go/internal/core/version"
)

// MetadataBuildCustomizer adds the BOMs and repositories the selected
// dependencies need.
type MetadataBuildCustomizer struct {
	desc    *project.Description
	catalog *metadata.Catalog
}

// NewMetadataBuildCustomizer returns a customizer for desc.
func NewMetadataBuildCustomizer(desc *project.Description, catalog *metadata.Catalog) *MetadataBuildCustomizer {
	return &MetadataBuildCustomizer{desc: desc, catalog: catalog}
}

// Customize implements BuildCustomizer.
func (c *MetadataBuildCustomizer) Customize(b *build.Build) error {
	boms := build.NewContainer[metadata.BillOfMaterials]()
	repositories := build.NewContainer[metadata.Repository]()

	for _, dep := range c.selectedDependencies() {
		if dep.BOM != "" {
			r := &bomResolver{catalog: c.catalog, version: c.desc.PlatformVersion, boms: boms, visiting: map[string]bool{}}
			if err := r.resolve(dep.BOM, nil); err != nil {
				return fmt.Errorf("dependency %q: %w", dep.ID, err)
			}
		}
		if dep.Repository != "" {
			if err := c.addRepository(repositories, dep.Repository); err != nil {
				return fmt.Errorf("dependency %q: %w", dep.ID, err)
			}
		}
	}
	for _, bom := range boms.Values() {
		for _, id := range bom.Repositories {
			if err := c.addRepository(repositories, id); err != nil {
				return fmt.Errorf("bom %q: %w", bom.ID, err)
			}
		}
	}

	for _, bom := range boms.Values() {
		b.AddBOM(bom.ID, translate.ToBOM(bom))
		if bom.VersionProperty != nil {
			b.AddVersionProperty(translate.ToVersionProperty(*bom.VersionProperty), bom.Version)
		}
	}
	for _, repo := range repositories.Values() {
		if repo.SnapshotsEnabled {
			b.AddSnapshotMavenRepository(repo.ID, repo.Name, repo.URL)
		} else {
			b.AddMavenRepository(repo.ID, repo.Name, repo.URL)
		}
	}
	return nil
}

// selectedDependencies returns the catalog entries of the selected
// dependencies. Inline dependencies have no entry and are skipped.
func (c *MetadataBuildCustomizer) selectedDependencies() []metadata.Dependency {
	var deps []metadata.Dependency
	for _, id := range c.desc.DependencyIDs() {
		if dep, ok := c.catalog.Lookup(id); ok {
			deps = append(deps, dep)
		}
	}
	return deps
}

func (c *MetadataBuildCustomizer) addRepository(repositories *build.Container[metadata.Repository], id string) error {
	if repositories.Has(id) {
		return nil
	}
	repo, err := c.catalog.RepositoryFor(id)
	if err != nil {
		return err
	}
	repositories.Add(id, repo)
	return nil
}

// bomResolver resolves a BOM and its additional BOMs depth first. A BOM is
// registered only after everything it pulls in.
type bomResolver struct {
	catalog  *metadata.Catalog
	version  version.Version
	boms     *build.Container[metadata.BillOfMaterials]
	visiting map[string]bool
}

func (r *bomResolver) resolve(id string, path []string) error {
	if r.boms.Has(id) {
		return nil
	}
	path = append(path, id)
	if r.visiting[id] {
		return fmt.Errorf("%w: %s", metadata.ErrBOMCycle, strings.Join(path, " -> "))
	}
	r.visiting[id] = true
	defer delete(r.visiting, id)

	template, err := r.catalog.BOMFor(id)
	if err != nil {
		return err
	}
	bom, err := template.Resolve(r.version)
	if err != nil {
		return err
	}
	for _, additional := range bom.AdditionalBOMs {
		if err := r.resolve(additional, path); err != nil {
			return err
		}
	}
	r.boms.Add(id, bom)
	return nil
}
