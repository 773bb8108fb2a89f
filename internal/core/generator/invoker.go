package generator

import (
	"fmt"
	"io"

	"github.com/nightconcept/initializr-go/internal/core/customize"
	"github.com/nightconcept/initializr-go/internal/core/metadata"
	"github.com/nightconcept/initializr-go/internal/core/project"
	"github.com/nightconcept/initializr-go/internal/core/snapshot"
)

// Customizer orders used by the invoker.
const (
	OrderMetadata         = 0
	OrderWarPackaging     = 10
	OrderMavenParent      = 20
	OrderRequestVersions  = 30
	OrderDefaultStarter   = LowestPrecedence
	metadataCustomizer    = "metadata"
	mavenParentCustomizer = "maven-parent"
)

// Invoker turns project requests into generated projects.
type Invoker struct {
	catalog *metadata.Catalog
	out     io.Writer
}

// NewInvoker returns an invoker backed by catalog. Progress is reported to
// out when it is not nil.
func NewInvoker(catalog *metadata.Catalog, out io.Writer) *Invoker {
	return &Invoker{catalog: catalog, out: out}
}

// Pipeline assembles the customizers and contributors that apply to desc.
func (inv *Invoker) Pipeline(desc *project.Description, req *project.Request) *Pipeline {
	p := NewPipeline(inv.out)
	p.AddBuildCustomizer(metadataCustomizer, OrderMetadata, customize.NewMetadataBuildCustomizer(desc, inv.catalog))
	if desc.IsMaven() {
		p.AddMavenBuildCustomizer(mavenParentCustomizer, OrderMavenParent, customize.NewMavenParentContributor(desc, inv.catalog))
	}
	if desc.IsWar() {
		p.AddBuildCustomizer("war-packaging", OrderWarPackaging, customize.NewWarPackagingWebStarterCustomizer(desc, inv.catalog))
	}
	if req != nil && len(req.Versions) > 0 {
		p.AddBuildCustomizer("request-versions", OrderRequestVersions, customize.NewRequestVersionsCustomizer(req.Versions))
	}
	p.AddBuildCustomizer("default-starter", OrderDefaultStarter, customize.NewDefaultStarterCustomizer(inv.catalog))
	p.AddContributor("web-folders", customize.NewWebFoldersContributor(desc, inv.catalog))
	return p
}

// Generate generates the project described by req under dir and records the
// enriched build in the project root.
func (inv *Invoker) Generate(dir string, req *project.Request) (*Result, error) {
	desc, err := project.Describe(req, inv.catalog)
	if err != nil {
		return nil, fmt.Errorf("invalid project request: %w", err)
	}
	res, err := inv.Pipeline(desc, req).Run(dir, desc)
	if err != nil {
		return nil, fmt.Errorf("project generation failed: %w", err)
	}

	var s *snapshot.Snapshot
	if res.MavenBuild != nil {
		s = snapshot.FromMavenBuild(res.MavenBuild)
	} else {
		s = snapshot.FromBuild(res.Build)
	}
	s.BuildSystem = desc.BuildSystem
	s.PlatformVersion = desc.PlatformVersion.String()
	s.CatalogDigest = inv.catalog.Digest
	if err := snapshot.Save(res.ProjectRoot, s); err != nil {
		return nil, err
	}
	return res, nil
}
