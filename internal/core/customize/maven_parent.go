package customize

import (
	"github.com/nightconcept/initializr-go/internal/core/build"
	"github.com/nightconcept/initializr-go/internal/core/metadata"
	"github.com/nightconcept/initializr-go/internal/core/project"
	"github.com/nightconcept/initializr-go/internal/core/translate"
)

// MavenParentContributor applies the parent POM selected for the platform
// version, the platform BOM when the parent asks for it, and the encoding
// properties the starter parent would otherwise provide.
type MavenParentContributor struct {
	desc    *project.Description
	catalog *metadata.Catalog
}

// NewMavenParentContributor returns a contributor for desc.
func NewMavenParentContributor(desc *project.Description, catalog *metadata.Catalog) *MavenParentContributor {
	return &MavenParentContributor{desc: desc, catalog: catalog}
}

// CustomizeMaven implements MavenBuildCustomizer.
func (c *MavenParentContributor) CustomizeMaven(b *build.MavenBuild) error {
	platformVersion := c.desc.PlatformVersion.String()
	parent, err := c.catalog.ResolveParentPOM(c.desc.PlatformVersion)
	if err != nil {
		return err
	}
	if parent.IncludePlatformBOM {
		bom := translate.ToBOM(c.catalog.PlatformBOM(platformVersion, metadata.PlatformVersionProperty))
		if !hasBOM(b.Build, bom) {
			b.AddInternalVersionProperty(metadata.PlatformVersionProperty, platformVersion)
			b.AddBOM(metadata.PlatformBOMID, bom)
		}
	}
	if !c.catalog.IsStarterParent(parent) {
		b.SetProperty("project.build.sourceEncoding", "UTF-8")
		b.SetProperty("project.reporting.outputEncoding", "UTF-8")
	}
	b.SetParent(parent.GroupID, parent.ArtifactID, parent.Version)
	return nil
}

// hasBOM reports whether a BOM with the coordinates of bom is already part of
// the build.
func hasBOM(b *build.Build, bom build.BillOfMaterials) bool {
	for _, existing := range b.BOMs.Values() {
		if existing.GroupID == bom.GroupID && existing.ArtifactID == bom.ArtifactID {
			return true
		}
	}
	return false
}
