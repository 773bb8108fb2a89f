package metadata

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nightconcept/initializr-go/internal/core/version"
)

// Platform defaults.
const (
	DefaultPlatformGroupID     = "org.springframework.boot"
	DefaultPlatformBOMArtifact = "spring-boot-dependencies"
	DefaultStarterParent       = "spring-boot-starter-parent"
	PlatformBOMID              = "spring-boot"
	PlatformVersionProperty    = "spring-boot.version"
)

// Platform describes the platform the generated projects build on.
type Platform struct {
	DefaultVersion string `toml:"default_version,omitempty"`
	BOMGroupID     string `toml:"bom_group_id,omitempty"`
	BOMArtifactID  string `toml:"bom_artifact_id,omitempty"`
	StarterGroupID string `toml:"starter_group_id,omitempty"`
}

// Catalog is the metadata a generation reads from. Entries are keyed by id.
type Catalog struct {
	Platform     Platform                   `toml:"platform"`
	Maven        Maven                      `toml:"maven"`
	Dependencies map[string]Dependency      `toml:"dependencies,omitempty"`
	BOMs         map[string]BillOfMaterials `toml:"boms,omitempty"`
	Repositories map[string]Repository      `toml:"repositories,omitempty"`

	// Digest identifies the document the catalog was decoded from, when known.
	Digest string `toml:"-"`
}

// NewCatalog returns an empty catalog with platform defaults applied.
func NewCatalog() *Catalog {
	c := &Catalog{}
	c.applyDefaults()
	return c
}

// Decode parses a TOML catalog document.
func Decode(data []byte) (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	c.applyDefaults()
	return &c, nil
}

// applyDefaults fills ids from table keys and the platform defaults.
func (c *Catalog) applyDefaults() {
	if c.Platform.BOMGroupID == "" {
		c.Platform.BOMGroupID = DefaultPlatformGroupID
	}
	if c.Platform.BOMArtifactID == "" {
		c.Platform.BOMArtifactID = DefaultPlatformBOMArtifact
	}
	if c.Platform.StarterGroupID == "" {
		c.Platform.StarterGroupID = DefaultPlatformGroupID
	}
	if c.Dependencies == nil {
		c.Dependencies = make(map[string]Dependency)
	}
	if c.BOMs == nil {
		c.BOMs = make(map[string]BillOfMaterials)
	}
	if c.Repositories == nil {
		c.Repositories = make(map[string]Repository)
	}
	for id, d := range c.Dependencies {
		d.ID = id
		if d.Scope == "" {
			d.Scope = ScopeCompile
		}
		c.Dependencies[id] = d
	}
	for id, b := range c.BOMs {
		b.ID = id
		c.BOMs[id] = b
	}
	for id, r := range c.Repositories {
		r.ID = id
		c.Repositories[id] = r
	}
}

// AddDependency registers d, filling its scope default.
func (c *Catalog) AddDependency(d Dependency) {
	if d.Scope == "" {
		d.Scope = ScopeCompile
	}
	c.Dependencies[d.ID] = d
}

// AddBOM registers bom under id.
func (c *Catalog) AddBOM(id string, bom BillOfMaterials) {
	bom.ID = id
	c.BOMs[id] = bom
}

// AddRepository registers a repository under id.
func (c *Catalog) AddRepository(id, name, url string, snapshotsEnabled bool) {
	c.Repositories[id] = Repository{ID: id, Name: name, URL: url, SnapshotsEnabled: snapshotsEnabled}
}

// Validate checks the catalog for inconsistencies: unknown scopes, dangling
// BOM and repository references, and malformed versions or ranges. All
// problems are reported together.
func (c *Catalog) Validate() error {
	var errs []error
	for _, id := range sortedKeys(c.Dependencies) {
		d := c.Dependencies[id]
		if !KnownScope(d.Scope) {
			errs = append(errs, fmt.Errorf("dependency %q: %w %q", id, ErrUnknownScope, d.Scope))
		}
		if d.BOM != "" {
			if _, ok := c.BOMs[d.BOM]; !ok {
				errs = append(errs, fmt.Errorf("dependency %q: %w: %q", id, ErrBOMNotFound, d.BOM))
			}
		}
		if d.Repository != "" {
			if _, ok := c.Repositories[d.Repository]; !ok {
				errs = append(errs, fmt.Errorf("dependency %q: %w: %q", id, ErrRepositoryNotFound, d.Repository))
			}
		}
	}
	for _, id := range sortedKeys(c.BOMs) {
		errs = append(errs, c.validateBOM(id, c.BOMs[id])...)
	}
	errs = append(errs, c.bomCycles()...)
	errs = append(errs, c.Maven.validate()...)
	if c.Platform.DefaultVersion != "" {
		if _, err := version.Parse(c.Platform.DefaultVersion); err != nil {
			errs = append(errs, fmt.Errorf("platform default version: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (c *Catalog) validateBOM(id string, bom BillOfMaterials) []error {
	var errs []error
	check := func(repos, boms []string) {
		for _, r := range repos {
			if _, ok := c.Repositories[r]; !ok {
				errs = append(errs, fmt.Errorf("bom %q: %w: %q", id, ErrRepositoryNotFound, r))
			}
		}
		for _, b := range boms {
			if _, ok := c.BOMs[b]; !ok {
				errs = append(errs, fmt.Errorf("bom %q: additional %w: %q", id, ErrBOMNotFound, b))
			}
		}
	}
	check(bom.Repositories, bom.AdditionalBOMs)
	for i, m := range bom.Mappings {
		if _, err := version.ParseRange(m.CompatibilityRange); err != nil {
			errs = append(errs, fmt.Errorf("bom %q mapping #%d: %w", id, i, err))
		}
		check(m.Repositories, m.AdditionalBOMs)
	}
	return errs
}

// KnownScope reports whether scope is one of the supported dependency scopes.
func KnownScope(scope string) bool {
	switch scope {
	case ScopeCompile, ScopeCompileOnly, ScopeAnnotationProcessor, ScopeRuntime, ScopeProvided, ScopeTest:
		return true
	}
	return false
}

// bomCycles walks the additional BOMs of every BOM, mappings included, and
// reports each cycle once with its path.
func (c *Catalog) bomCycles() []error {
	const (
		unvisited = iota
		inProgress
		done
	)
	state := make(map[string]int, len(c.BOMs))
	var errs []error
	var stack []string
	var walk func(id string)
	walk = func(id string) {
		state[id] = inProgress
		stack = append(stack, id)
		for _, next := range c.BOMs[id].additionalBOMIDs() {
			if _, ok := c.BOMs[next]; !ok {
				continue
			}
			switch state[next] {
			case unvisited:
				walk(next)
			case inProgress:
				start := 0
				for i, s := range stack {
					if s == next {
						start = i
					}
				}
				path := append(append([]string(nil), stack[start:]...), next)
				errs = append(errs, fmt.Errorf("%w: %s", ErrBOMCycle, strings.Join(path, " -> ")))
			}
		}
		stack = stack[:len(stack)-1]
		state[id] = done
	}
	for _, id := range sortedKeys(c.BOMs) {
		if state[id] == unvisited {
			walk(id)
		}
	}
	return errs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
