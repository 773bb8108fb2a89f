package customize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nightconcept/initializr-go/internal/core/metadata"
	"github.com/nightconcept/initializr-go/internal/core/project"
)

// Web resource directories, relative to the project root.
const (
	TemplatesDir = "src/main/resources/templates"
	StaticDir    = "src/main/resources/static"
)

// WebFoldersContributor creates the web resource directories of a web
// project.
type WebFoldersContributor struct {
	desc    *project.Description
	catalog *metadata.Catalog
}

// NewWebFoldersContributor returns a contributor for desc.
func NewWebFoldersContributor(desc *project.Description, catalog *metadata.Catalog) *WebFoldersContributor {
	return &WebFoldersContributor{desc: desc, catalog: catalog}
}

// Contribute implements ProjectContributor.
func (c *WebFoldersContributor) Contribute(projectRoot string) error {
	if !hasWebFacet(c.desc, c.catalog) {
		return nil
	}
	for _, dir := range []string{TemplatesDir, StaticDir} {
		path := filepath.Join(projectRoot, filepath.FromSlash(dir))
		if err := os.MkdirAll(path, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
	}
	return nil
}
