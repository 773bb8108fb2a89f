package customize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightconcept/initializr-go/internal/core/build"
	"github.com/nightconcept/initializr-go/internal/core/customize"
	"github.com/nightconcept/initializr-go/internal/core/metadata"
	"github.com/nightconcept/initializr-go/internal/core/project"
	"github.com/nightconcept/initializr-go/internal/core/translate"
	"github.com/nightconcept/initializr-go/internal/core/version"
)

// newDescription returns a description selecting deps, in order.
func newDescription(t *testing.T, platformVersion string, deps ...metadata.Dependency) *project.Description {
	t.Helper()
	desc := project.NewDescription()
	desc.PlatformVersion = version.MustParse(platformVersion)
	for _, dep := range deps {
		translated, ok := translate.ToDependency(dep)
		require.True(t, ok, "dependency %q has an unknown scope", dep.ID)
		desc.AddDependency(dep.ID, translated)
	}
	return desc
}

func simpleBOM(artifactID, v string) metadata.BillOfMaterials {
	return metadata.BillOfMaterials{GroupID: "com.example", ArtifactID: artifactID, Version: v}
}

func customizeBuild(t *testing.T, desc *project.Description, catalog *metadata.Catalog) (*build.Build, error) {
	t.Helper()
	b := build.NewMaven().Build
	err := customize.NewMetadataBuildCustomizer(desc, catalog).Customize(b)
	return b, err
}

func TestMetadataBuildCustomizer_AdditionalBOM(t *testing.T) {
	t.Parallel()
	foo := metadata.Dependency{ID: "foo", GroupID: "com.example", ArtifactID: "foo", Scope: metadata.ScopeCompile, BOM: "foo-bom"}
	fooBOM := simpleBOM("foo-bom", "1.0.0")
	fooBOM.AdditionalBOMs = []string{"bar-bom"}

	c := metadata.NewCatalog()
	c.AddDependency(foo)
	c.AddBOM("foo-bom", fooBOM)
	c.AddBOM("bar-bom", simpleBOM("bar-bom", "1.1.0"))

	b, err := customizeBuild(t, newDescription(t, "2.0.0.RELEASE", foo), c)
	require.NoError(t, err)
	assert.Equal(t, 2, b.BOMs.Len())
	assert.Equal(t, []string{"bar-bom", "foo-bom"}, b.BOMs.IDs(), "additional boms are registered before the bom pulling them in")
}

func TestMetadataBuildCustomizer_Repositories(t *testing.T) {
	t.Parallel()
	foo := metadata.Dependency{ID: "foo", GroupID: "com.example", ArtifactID: "foo", Scope: metadata.ScopeCompile, BOM: "foo-bom", Repository: "foo-repo"}
	fooBOM := simpleBOM("foo-bom", "1.0.0")
	fooBOM.Repositories = []string{"bar-repo"}

	c := metadata.NewCatalog()
	c.AddDependency(foo)
	c.AddBOM("foo-bom", fooBOM)
	c.AddRepository("foo-repo", "foo-repo", "http://example.com/foo", false)
	c.AddRepository("bar-repo", "bar-repo", "http://example.com/bar", false)

	b, err := customizeBuild(t, newDescription(t, "2.0.0.RELEASE", foo), c)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Repositories.Len())
	assert.Equal(t, []string{"foo-repo", "bar-repo"}, b.Repositories.IDs())
	assert.True(t, b.PluginRepositories.IsEmpty())
}

func TestMetadataBuildCustomizer_DeduplicatesSharedReferences(t *testing.T) {
	t.Parallel()
	one := metadata.Dependency{ID: "one", GroupID: "com.example", ArtifactID: "one", Scope: metadata.ScopeCompile, BOM: "one-bom", Repository: "shared-repo"}
	two := metadata.Dependency{ID: "two", GroupID: "com.example", ArtifactID: "two", Scope: metadata.ScopeRuntime, BOM: "two-bom", Repository: "shared-repo"}
	oneBOM := simpleBOM("one-bom", "1.0.0")
	oneBOM.AdditionalBOMs = []string{"common-bom"}
	oneBOM.Repositories = []string{"shared-repo", "other-repo"}
	twoBOM := simpleBOM("two-bom", "2.0.0")
	twoBOM.AdditionalBOMs = []string{"common-bom"}
	twoBOM.Repositories = []string{"other-repo"}
	commonBOM := simpleBOM("common-bom", "3.0.0")
	commonBOM.Repositories = []string{"shared-repo"}

	c := metadata.NewCatalog()
	c.AddDependency(one)
	c.AddDependency(two)
	c.AddBOM("one-bom", oneBOM)
	c.AddBOM("two-bom", twoBOM)
	c.AddBOM("common-bom", commonBOM)
	c.AddRepository("shared-repo", "Shared", "https://repo.example.com/shared", false)
	c.AddRepository("other-repo", "Other", "https://repo.example.com/other", true)

	b, err := customizeBuild(t, newDescription(t, "3.2.0", one, two), c)
	require.NoError(t, err)
	assert.Equal(t, []string{"common-bom", "one-bom", "two-bom"}, b.BOMs.IDs())
	assert.Equal(t, []string{"shared-repo", "other-repo"}, b.Repositories.IDs())

	other, _ := b.Repositories.Get("other-repo")
	assert.True(t, other.SnapshotsEnabled)
	shared, _ := b.Repositories.Get("shared-repo")
	assert.False(t, shared.SnapshotsEnabled)
}

func TestMetadataBuildCustomizer_RegistersVersionProperty(t *testing.T) {
	t.Parallel()
	cloud := metadata.Dependency{ID: "cloud", GroupID: "org.springframework.cloud", ArtifactID: "spring-cloud-starter", Scope: metadata.ScopeCompile, BOM: "spring-cloud"}
	cloudBOM := metadata.BillOfMaterials{
		GroupID:         "org.springframework.cloud",
		ArtifactID:      "spring-cloud-dependencies",
		VersionProperty: &metadata.VersionProperty{Name: "spring-cloud.version"},
		Order:           50,
		Mappings: []metadata.BOMMapping{
			{CompatibilityRange: "[2.0.0,3.0.0)", Version: "2021.0.9"},
			{CompatibilityRange: "[3.0.0,4.0.0)", Version: "2023.0.0"},
		},
	}
	c := metadata.NewCatalog()
	c.AddDependency(cloud)
	c.AddBOM("spring-cloud", cloudBOM)

	b, err := customizeBuild(t, newDescription(t, "3.2.0", cloud), c)
	require.NoError(t, err)

	bom, ok := b.BOMs.Get("spring-cloud")
	require.True(t, ok)
	require.True(t, bom.Version.IsProperty())
	assert.Equal(t, "spring-cloud.version", bom.Version.Property.Name)
	assert.Equal(t, 50, bom.Order)

	prop, ok := b.VersionProperties.Get("spring-cloud.version")
	require.True(t, ok)
	assert.Equal(t, "2023.0.0", prop.Value)
	assert.False(t, prop.Property.Internal)
}

func TestMetadataBuildCustomizer_SkipsInlineDependencies(t *testing.T) {
	t.Parallel()
	inline := metadata.Dependency{ID: "inline", GroupID: "com.example", ArtifactID: "inline", Scope: metadata.ScopeCompile, BOM: "never-looked-up"}

	b, err := customizeBuild(t, newDescription(t, "3.2.0", inline), metadata.NewCatalog())
	require.NoError(t, err)
	assert.True(t, b.BOMs.IsEmpty())
	assert.True(t, b.Repositories.IsEmpty())
}

func TestMetadataBuildCustomizer_MissingReferencesFail(t *testing.T) {
	t.Parallel()
	missingBOM := metadata.Dependency{ID: "a", GroupID: "com.example", ArtifactID: "a", Scope: metadata.ScopeCompile, BOM: "ghost-bom"}
	missingRepo := metadata.Dependency{ID: "b", GroupID: "com.example", ArtifactID: "b", Scope: metadata.ScopeCompile, Repository: "ghost-repo"}
	bomWithMissingRepo := simpleBOM("c-bom", "1.0.0")
	bomWithMissingRepo.Repositories = []string{"ghost-repo"}
	viaBOM := metadata.Dependency{ID: "c", GroupID: "com.example", ArtifactID: "c", Scope: metadata.ScopeCompile, BOM: "c-bom"}

	c := metadata.NewCatalog()
	c.AddDependency(missingBOM)
	c.AddDependency(missingRepo)
	c.AddDependency(viaBOM)
	c.AddBOM("c-bom", bomWithMissingRepo)

	_, err := customizeBuild(t, newDescription(t, "3.2.0", missingBOM), c)
	assert.ErrorIs(t, err, metadata.ErrBOMNotFound)
	assert.Contains(t, err.Error(), `"ghost-bom"`)

	_, err = customizeBuild(t, newDescription(t, "3.2.0", missingRepo), c)
	assert.ErrorIs(t, err, metadata.ErrRepositoryNotFound)

	_, err = customizeBuild(t, newDescription(t, "3.2.0", viaBOM), c)
	assert.ErrorIs(t, err, metadata.ErrRepositoryNotFound)
	assert.Contains(t, err.Error(), `bom "c-bom"`)
}

func TestMetadataBuildCustomizer_RejectsBOMCycles(t *testing.T) {
	t.Parallel()
	dep := metadata.Dependency{ID: "loop", GroupID: "com.example", ArtifactID: "loop", Scope: metadata.ScopeCompile, BOM: "a-bom"}
	a := simpleBOM("a-bom", "1.0.0")
	a.AdditionalBOMs = []string{"b-bom"}
	b := simpleBOM("b-bom", "1.0.0")
	b.AdditionalBOMs = []string{"a-bom"}

	c := metadata.NewCatalog()
	c.AddDependency(dep)
	c.AddBOM("a-bom", a)
	c.AddBOM("b-bom", b)

	_, err := customizeBuild(t, newDescription(t, "3.2.0", dep), c)
	require.Error(t, err)
	assert.ErrorIs(t, err, metadata.ErrBOMCycle)
	assert.Contains(t, err.Error(), "a-bom -> b-bom -> a-bom")
}

func TestMetadataBuildCustomizer_NoCompatibleMapping(t *testing.T) {
	t.Parallel()
	dep := metadata.Dependency{ID: "old", GroupID: "com.example", ArtifactID: "old", Scope: metadata.ScopeCompile, BOM: "old-bom"}
	old := simpleBOM("old-bom", "")
	old.Mappings = []metadata.BOMMapping{{CompatibilityRange: "[1.0.0,2.0.0)", Version: "1.0.0"}}

	c := metadata.NewCatalog()
	c.AddDependency(dep)
	c.AddBOM("old-bom", old)

	_, err := customizeBuild(t, newDescription(t, "3.2.0", dep), c)
	assert.ErrorIs(t, err, metadata.ErrNoCompatibleMapping)
}
