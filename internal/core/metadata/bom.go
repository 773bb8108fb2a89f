package metadata

import (
	"fmt"

	"github.com/nightconcept/initializr-go/internal/core/version"
)

// BillOfMaterials is a catalog BOM. Version is either used literally or, when
// VersionProperty is set, exposed to the build through that property.
type BillOfMaterials struct {
	ID              string           `toml:"-"`
	GroupID         string           `toml:"group_id"`
	ArtifactID      string           `toml:"artifact_id"`
	Version         string           `toml:"version,omitempty"`
	VersionProperty *VersionProperty `toml:"version_property,omitempty"`
	Order           int              `toml:"order,omitempty"`
	Repositories    []string         `toml:"repositories,omitempty"`
	AdditionalBOMs  []string         `toml:"additional_boms,omitempty"`
	Mappings        []BOMMapping     `toml:"mappings,omitempty"`
}

// BOMMapping overrides a BOM's version and references for the platform
// versions inside CompatibilityRange.
type BOMMapping struct {
	CompatibilityRange string   `toml:"compatibility_range"`
	Version            string   `toml:"version,omitempty"`
	Repositories       []string `toml:"repositories,omitempty"`
	AdditionalBOMs     []string `toml:"additional_boms,omitempty"`
}

// Resolve binds the BOM to platformVersion. Without mappings the BOM is
// returned as is; otherwise the first compatible mapping overrides the
// version, repositories and additional BOMs it declares.
func (b BillOfMaterials) Resolve(platformVersion version.Version) (BillOfMaterials, error) {
	resolved := b
	resolved.Mappings = nil
	resolved.Repositories = append([]string(nil), b.Repositories...)
	resolved.AdditionalBOMs = append([]string(nil), b.AdditionalBOMs...)
	if len(b.Mappings) == 0 {
		return resolved, nil
	}
	for _, m := range b.Mappings {
		r, err := version.ParseRange(m.CompatibilityRange)
		if err != nil {
			return BillOfMaterials{}, fmt.Errorf("bom %q: %w", b.ID, err)
		}
		if !r.Match(platformVersion) {
			continue
		}
		if m.Version != "" {
			resolved.Version = m.Version
		}
		if len(m.Repositories) > 0 {
			resolved.Repositories = append([]string(nil), m.Repositories...)
		}
		if len(m.AdditionalBOMs) > 0 {
			resolved.AdditionalBOMs = append([]string(nil), m.AdditionalBOMs...)
		}
		return resolved, nil
	}
	return BillOfMaterials{}, fmt.Errorf("%w: bom %q, version %s", ErrNoCompatibleMapping, b.ID, platformVersion)
}

// additionalBOMIDs returns the additional BOMs of the BOM and of all of its
// mappings, without duplicates.
func (b BillOfMaterials) additionalBOMIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(list []string) {
		for _, id := range list {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	add(b.AdditionalBOMs)
	for _, m := range b.Mappings {
		add(m.AdditionalBOMs)
	}
	return ids
}
