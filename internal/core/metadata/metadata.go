// Package metadata holds the catalog describing the dependencies, bills of
// materials and repositories a generated project may use.
//
// A Catalog is read-only once loaded and can be shared by concurrent
// generations.
package metadata

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Dependency scopes understood by the catalog.
const (
	ScopeCompile             = "compile"
	ScopeCompileOnly         = "compileOnly"
	ScopeAnnotationProcessor = "annotationProcessor"
	ScopeRuntime             = "runtime"
	ScopeProvided            = "provided"
	ScopeTest                = "test"
)

// FacetWeb marks dependencies that turn the project into a web application.
const FacetWeb = "web"

// Lookup errors. A selected dependency referencing an unknown BOM or
// repository is a catalog inconsistency.
var (
	ErrBOMNotFound         = errors.New("bom not found in catalog")
	ErrRepositoryNotFound  = errors.New("repository not found in catalog")
	ErrNoCompatibleMapping = errors.New("no bom mapping compatible with platform version")
	ErrUnknownScope        = errors.New("unknown dependency scope")
	ErrBOMCycle            = errors.New("cycle between additional boms")
)

// Dependency is a catalog entry for a selectable dependency.
type Dependency struct {
	ID         string   `toml:"-"`
	Name       string   `toml:"name,omitempty"`
	GroupID    string   `toml:"group_id"`
	ArtifactID string   `toml:"artifact_id"`
	Version    string   `toml:"version,omitempty"`
	Scope      string   `toml:"scope,omitempty"`
	Facets     []string `toml:"facets,omitempty"`
	BOM        string   `toml:"bom,omitempty"`
	Repository string   `toml:"repository,omitempty"`
	Starter    *bool    `toml:"starter,omitempty"`
}

// HasFacet reports whether the dependency is tagged with facet.
func (d Dependency) HasFacet(facet string) bool {
	for _, f := range d.Facets {
		if f == facet {
			return true
		}
	}
	return false
}

// IsStarter reports whether the dependency is a starter. Dependencies are
// starters unless the catalog says otherwise.
func (d Dependency) IsStarter() bool {
	return d.Starter == nil || *d.Starter
}

// Repository is a catalog entry for a Maven repository.
type Repository struct {
	ID               string `toml:"-"`
	Name             string `toml:"name"`
	URL              string `toml:"url"`
	SnapshotsEnabled bool   `toml:"snapshots_enabled,omitempty"`
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// VersionProperty is a named version placeholder such as "spring-cloud.version".
type VersionProperty struct {
	Name     string `toml:"name"`
	Internal bool   `toml:"internal,omitempty"`
}

// ToStandardFormat returns the property name in lower kebab case with dots
// preserved, e.g. "springCloud.version" becomes "spring-cloud.version".
func (p VersionProperty) ToStandardFormat() string {
	name := strings.ReplaceAll(p.Name, "_", "-")
	name = camelBoundary.ReplaceAllString(name, "$1-$2")
	return strings.ToLower(name)
}

// String returns the standard format of the property.
func (p VersionProperty) String() string {
	return p.ToStandardFormat()
}

// Starter returns a synthesized starter dependency for name. An empty name
// yields the root starter.
func (c *Catalog) Starter(id, name string) Dependency {
	artifact := "spring-boot-starter"
	if name != "" {
		artifact += "-" + name
	}
	return Dependency{
		ID:         id,
		GroupID:    c.Platform.StarterGroupID,
		ArtifactID: artifact,
		Scope:      ScopeCompile,
	}
}

// PlatformBOM returns the platform's own BOM bound to version, referenced
// through versionProperty.
func (c *Catalog) PlatformBOM(version, versionProperty string) BillOfMaterials {
	return BillOfMaterials{
		ID:              PlatformBOMID,
		GroupID:         c.Platform.BOMGroupID,
		ArtifactID:      c.Platform.BOMArtifactID,
		Version:         version,
		VersionProperty: &VersionProperty{Name: versionProperty},
	}
}

// Lookup returns the dependency registered under id.
func (c *Catalog) Lookup(id string) (Dependency, bool) {
	d, ok := c.Dependencies[id]
	return d, ok
}

// BOMFor returns the BOM registered under id.
func (c *Catalog) BOMFor(id string) (BillOfMaterials, error) {
	bom, ok := c.BOMs[id]
	if !ok {
		return BillOfMaterials{}, fmt.Errorf("%w: %q", ErrBOMNotFound, id)
	}
	return bom, nil
}

// RepositoryFor returns the repository registered under id.
func (c *Catalog) RepositoryFor(id string) (Repository, error) {
	repo, ok := c.Repositories[id]
	if !ok {
		return Repository{}, fmt.Errorf("%w: %q", ErrRepositoryNotFound, id)
	}
	return repo, nil
}
