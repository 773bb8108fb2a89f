package customize

import (
	"sort"

	"github.com/nightconcept/initializr-go/internal/core/build"
	"github.com/nightconcept/initializr-go/internal/core/metadata"
	"github.com/nightconcept/initializr-go/internal/core/translate"
)

// RequestVersionsCustomizer registers the version properties carried by the
// request.
type RequestVersionsCustomizer struct {
	versions map[string]string
}

// NewRequestVersionsCustomizer returns a customizer for versions, keyed by
// property name.
func NewRequestVersionsCustomizer(versions map[string]string) *RequestVersionsCustomizer {
	return &RequestVersionsCustomizer{versions: versions}
}

// Customize implements BuildCustomizer.
func (c *RequestVersionsCustomizer) Customize(b *build.Build) error {
	names := make([]string, 0, len(c.versions))
	for name := range c.versions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.AddVersionProperty(translate.ToVersionProperty(metadata.VersionProperty{Name: name}), c.versions[name])
	}
	return nil
}
