package metadata

import (
	"fmt"

	"github.com/nightconcept/initializr-go/internal/core/version"
)

// ParentPOM is a Maven parent reference.
type ParentPOM struct {
	GroupID            string `toml:"group_id"`
	ArtifactID         string `toml:"artifact_id"`
	Version            string `toml:"version"`
	IncludePlatformBOM bool   `toml:"include_platform_bom,omitempty"`
}

// ParentRule selects a parent POM for the platform versions in Range.
type ParentRule struct {
	Range string `toml:"range"`
	ParentPOM
}

// Maven holds the Maven specific settings of the catalog.
type Maven struct {
	// Parent is used for every platform version no rule matches. When empty
	// the platform starter parent is used.
	Parent ParentPOM    `toml:"parent,omitempty"`
	Rules  []ParentRule `toml:"parents,omitempty"`
}

// ResolveParentPOM returns the parent POM applicable to platformVersion.
func (c *Catalog) ResolveParentPOM(platformVersion version.Version) (ParentPOM, error) {
	for _, rule := range c.Maven.Rules {
		r, err := version.ParseRange(rule.Range)
		if err != nil {
			return ParentPOM{}, fmt.Errorf("maven parent rule: %w", err)
		}
		if r.Match(platformVersion) {
			return rule.ParentPOM, nil
		}
	}
	if c.Maven.Parent.GroupID != "" {
		return c.Maven.Parent, nil
	}
	return ParentPOM{
		GroupID:    c.Platform.StarterGroupID,
		ArtifactID: DefaultStarterParent,
		Version:    platformVersion.String(),
	}, nil
}

// IsStarterParent reports whether parent is the platform starter parent,
// which already configures source and reporting encodings.
func (c *Catalog) IsStarterParent(parent ParentPOM) bool {
	return parent.GroupID == c.Platform.StarterGroupID && parent.ArtifactID == DefaultStarterParent
}

func (m Maven) validate() []error {
	var errs []error
	for i, rule := range m.Rules {
		if _, err := version.ParseRange(rule.Range); err != nil {
			errs = append(errs, fmt.Errorf("maven parent rule #%d: %w", i, err))
		}
		if rule.GroupID == "" || rule.ArtifactID == "" || rule.Version == "" {
			errs = append(errs, fmt.Errorf("maven parent rule #%d: incomplete parent coordinates", i))
		}
	}
	return errs
}
