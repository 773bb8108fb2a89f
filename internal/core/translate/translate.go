// Package translate converts catalog records into their build model
// counterparts.
package translate

import (
	"github.com/nightconcept/initializr-go/internal/core/build"
	"github.com/nightconcept/initializr-go/internal/core/metadata"
	"github.com/nightconcept/initializr-go/internal/core/version"
)

var scopeTypes = map[string]build.DependencyType{
	metadata.ScopeAnnotationProcessor: build.TypeAnnotationProcessor,
	metadata.ScopeCompile:             build.TypeCompile,
	metadata.ScopeRuntime:             build.TypeRuntime,
	metadata.ScopeCompileOnly:         build.TypeAnnotationProcessor,
	metadata.ScopeProvided:            build.TypeProvidedRuntime,
	metadata.ScopeTest:                build.TypeTestCompile,
}

// FromVersion parses the textual form of v. It fails when the text is not a
// valid version.
func FromVersion(v interface{ String() string }) (version.Version, error) {
	return version.Parse(v.String())
}

// ToDependencyType maps a catalog scope to a dependency type. The boolean is
// false when the scope is not recognized.
func ToDependencyType(scope string) (build.DependencyType, bool) {
	t, ok := scopeTypes[scope]
	return t, ok
}

// ToDependency translates a catalog dependency. The boolean is false when the
// scope is not recognized; the returned dependency then has an undefined type
// and must not be added to a build.
func ToDependency(d metadata.Dependency) (build.Dependency, bool) {
	t, ok := ToDependencyType(d.Scope)
	return build.Dependency{
		GroupID:    d.GroupID,
		ArtifactID: d.ArtifactID,
		Version:    build.VersionOf(d.Version),
		Type:       t,
	}, ok
}

// ToVersionProperty translates a catalog version property.
func ToVersionProperty(p metadata.VersionProperty) build.VersionProperty {
	return build.VersionProperty{
		Name:     p.ToStandardFormat(),
		Internal: p.Internal,
	}
}

// ToBOM translates a catalog BOM. A BOM with a version property references
// that property; otherwise its version is used literally.
func ToBOM(bom metadata.BillOfMaterials) build.BillOfMaterials {
	v := build.VersionOf(bom.Version)
	if bom.VersionProperty != nil {
		v = build.VersionOfProperty(ToVersionProperty(*bom.VersionProperty))
	}
	return build.BillOfMaterials{
		GroupID:    bom.GroupID,
		ArtifactID: bom.ArtifactID,
		Version:    v,
		Order:      bom.Order,
	}
}
