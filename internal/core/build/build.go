// Package build is the in-memory build model that customizers enrich and
// build-file writers serialize.
package build

import (
	"sort"

	"deps.dev/util/maven"
)

// DependencyType is the role a dependency plays in the build.
type DependencyType int

// Dependency types. TypeUndefined marks a dependency whose scope could not be
// mapped; such a dependency is never added to a build.
const (
	TypeUndefined DependencyType = iota
	TypeCompile
	TypeRuntime
	TypeAnnotationProcessor
	TypeProvidedRuntime
	TypeTestCompile
)

var dependencyTypeNames = map[DependencyType]string{
	TypeUndefined:           "undefined",
	TypeCompile:             "compile",
	TypeRuntime:             "runtime",
	TypeAnnotationProcessor: "annotation-processor",
	TypeProvidedRuntime:     "provided-runtime",
	TypeTestCompile:         "test-compile",
}

func (t DependencyType) String() string {
	if name, ok := dependencyTypeNames[t]; ok {
		return name
	}
	return "undefined"
}

// ParseDependencyType is the inverse of DependencyType.String.
func ParseDependencyType(name string) DependencyType {
	for t, n := range dependencyTypeNames {
		if n == name {
			return t
		}
	}
	return TypeUndefined
}

// VersionProperty is a named version placeholder. Internal properties are
// not exposed in the generated build file's properties.
type VersionProperty struct {
	Name     string
	Internal bool
}

// VersionReference is either a literal version or a reference to a version
// property.
type VersionReference struct {
	Value    string
	Property *VersionProperty
}

// VersionOf returns a literal version reference.
func VersionOf(value string) VersionReference {
	return VersionReference{Value: value}
}

// VersionOfProperty returns a reference to property.
func VersionOfProperty(property VersionProperty) VersionReference {
	return VersionReference{Property: &property}
}

// IsProperty reports whether the reference points to a version property.
func (v VersionReference) IsProperty() bool {
	return v.Property != nil
}

func (v VersionReference) String() string {
	if v.Property != nil {
		return "${" + v.Property.Name + "}"
	}
	return v.Value
}

// Dependency is a dependency of the build.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Version    VersionReference
	Type       DependencyType
}

// BillOfMaterials is a BOM imported by the build.
type BillOfMaterials struct {
	GroupID    string
	ArtifactID string
	Version    VersionReference
	Order      int
}

// Repository is a Maven repository used by the build.
type Repository struct {
	ID               string
	Name             string
	URL              string
	SnapshotsEnabled bool
}

// VersionPropertyValue is a version property together with its value.
type VersionPropertyValue struct {
	Property VersionProperty
	Value    string
}

// Build is the mutable target of every build customizer.
type Build struct {
	Dependencies       *Container[Dependency]
	BOMs               *Container[BillOfMaterials]
	Repositories       *Container[Repository]
	PluginRepositories *Container[Repository]
	VersionProperties  *Container[VersionPropertyValue]
	Properties         *Container[string]
}

// New returns an empty build.
func New() *Build {
	return &Build{
		Dependencies:       NewContainer[Dependency](),
		BOMs:               NewContainer[BillOfMaterials](),
		Repositories:       NewContainer[Repository](),
		PluginRepositories: NewContainer[Repository](),
		VersionProperties:  NewContainer[VersionPropertyValue](),
		Properties:         NewContainer[string](),
	}
}

// AddDependency adds dep under id. Dependencies of undefined type are
// ignored and AddDependency reports false.
func (b *Build) AddDependency(id string, dep Dependency) bool {
	if dep.Type == TypeUndefined {
		return false
	}
	b.Dependencies.Add(id, dep)
	return true
}

// AddBOM adds bom under id.
func (b *Build) AddBOM(id string, bom BillOfMaterials) {
	b.BOMs.Add(id, bom)
}

// AddVersionProperty registers property with value.
func (b *Build) AddVersionProperty(property VersionProperty, value string) {
	b.VersionProperties.Add(property.Name, VersionPropertyValue{Property: property, Value: value})
}

// AddInternalVersionProperty registers an internal version property.
func (b *Build) AddInternalVersionProperty(name, value string) {
	b.AddVersionProperty(VersionProperty{Name: name, Internal: true}, value)
}

// AddMavenRepository adds a release repository.
func (b *Build) AddMavenRepository(id, name, url string) {
	b.Repositories.Add(id, Repository{ID: id, Name: name, URL: url})
}

// AddSnapshotMavenRepository adds a repository with snapshots enabled.
func (b *Build) AddSnapshotMavenRepository(id, name, url string) {
	b.Repositories.Add(id, Repository{ID: id, Name: name, URL: url, SnapshotsEnabled: true})
}

// SetProperty sets a free-form build property.
func (b *Build) SetProperty(name, value string) {
	b.Properties.Add(name, value)
}

// OrderedBOMs returns the BOM ids sorted by their order weight, keeping
// insertion order between BOMs of equal weight.
func (b *Build) OrderedBOMs() []string {
	ids := b.BOMs.IDs()
	sort.SliceStable(ids, func(i, j int) bool {
		bi, _ := b.BOMs.Get(ids[i])
		bj, _ := b.BOMs.Get(ids[j])
		return bi.Order < bj.Order
	})
	return ids
}

// MavenBuild is a build with a Maven parent.
type MavenBuild struct {
	*Build
	Parent *maven.Parent
}

// NewMaven returns an empty Maven build.
func NewMaven() *MavenBuild {
	return &MavenBuild{Build: New()}
}

// SetParent sets the parent POM coordinates.
func (b *MavenBuild) SetParent(groupID, artifactID, version string) {
	b.Parent = &maven.Parent{
		ProjectKey: maven.ProjectKey{
			GroupID:    maven.String(groupID),
			ArtifactID: maven.String(artifactID),
			Version:    maven.String(version),
		},
	}
}
