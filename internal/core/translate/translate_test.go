// Package translate_test contains tests for the translate package.
package translate_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightconcept/initializr-go/internal/core/build"
	"github.com/nightconcept/initializr-go/internal/core/metadata"
	"github.com/nightconcept/initializr-go/internal/core/translate"
	"github.com/nightconcept/initializr-go/internal/core/version"
)

func TestToDependencyType(t *testing.T) {
	t.Parallel()
	tests := []struct {
		scope string
		want  build.DependencyType
	}{
		{metadata.ScopeAnnotationProcessor, build.TypeAnnotationProcessor},
		{metadata.ScopeCompile, build.TypeCompile},
		{metadata.ScopeRuntime, build.TypeRuntime},
		{metadata.ScopeCompileOnly, build.TypeAnnotationProcessor},
		{metadata.ScopeProvided, build.TypeProvidedRuntime},
		{metadata.ScopeTest, build.TypeTestCompile},
	}
	for _, tt := range tests {
		got, ok := translate.ToDependencyType(tt.scope)
		assert.True(t, ok, tt.scope)
		assert.Equal(t, tt.want, got, tt.scope)
	}
}

func TestToDependencyType_Unrecognized(t *testing.T) {
	t.Parallel()
	got, ok := translate.ToDependencyType("system")
	assert.False(t, ok)
	assert.Equal(t, build.TypeUndefined, got)
}

func TestToDependency_RoundTrip(t *testing.T) {
	t.Parallel()
	d := metadata.Dependency{ID: "acme", GroupID: "com.example", ArtifactID: "acme", Version: "1.2.3", Scope: metadata.ScopeTest}

	got, ok := translate.ToDependency(d)
	require.True(t, ok)

	want := build.Dependency{
		GroupID:    "com.example",
		ArtifactID: "acme",
		Version:    build.VersionReference{Value: "1.2.3"},
		Type:       build.TypeTestCompile,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToDependency() mismatch (-want +got):\n%s", diff)
	}
}

func TestToDependency_UnrecognizedScopeIsNotAdded(t *testing.T) {
	t.Parallel()
	d := metadata.Dependency{ID: "odd", GroupID: "com.example", ArtifactID: "odd", Scope: "system"}

	got, ok := translate.ToDependency(d)
	assert.False(t, ok)
	assert.Equal(t, build.TypeUndefined, got.Type)

	b := build.New()
	assert.False(t, b.AddDependency(d.ID, got))
	assert.True(t, b.Dependencies.IsEmpty())
}

func TestToVersionProperty(t *testing.T) {
	t.Parallel()
	got := translate.ToVersionProperty(metadata.VersionProperty{Name: "springCloud.version", Internal: true})
	assert.Equal(t, build.VersionProperty{Name: "spring-cloud.version", Internal: true}, got)
}

func TestToBOM_Literal(t *testing.T) {
	t.Parallel()
	got := translate.ToBOM(metadata.BillOfMaterials{GroupID: "com.example", ArtifactID: "foo-bom", Version: "1.0.0", Order: 42})

	want := build.BillOfMaterials{
		GroupID:    "com.example",
		ArtifactID: "foo-bom",
		Version:    build.VersionOf("1.0.0"),
		Order:      42,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToBOM() mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, got.Version.IsProperty())
}

func TestToBOM_Property(t *testing.T) {
	t.Parallel()
	got := translate.ToBOM(metadata.BillOfMaterials{
		GroupID:         "org.springframework.cloud",
		ArtifactID:      "spring-cloud-dependencies",
		Version:         "2023.0.0",
		VersionProperty: &metadata.VersionProperty{Name: "spring-cloud.version"},
	})

	require.True(t, got.Version.IsProperty())
	assert.Equal(t, "spring-cloud.version", got.Version.Property.Name)
	assert.False(t, got.Version.Property.Internal)
	assert.Empty(t, got.Version.Value)
}

func TestFromVersion(t *testing.T) {
	t.Parallel()
	v, err := translate.FromVersion(version.MustParse("2.0.0.RELEASE"))
	require.NoError(t, err)
	assert.Equal(t, "2.0.0.RELEASE", v.String())

	_, err = translate.FromVersion(build.VersionOf("not a version"))
	assert.ErrorIs(t, err, version.ErrInvalidVersion)
}
