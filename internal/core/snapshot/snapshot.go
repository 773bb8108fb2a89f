// Package snapshot records an enriched build as a TOML document next to the
// generated project, so the outcome of a generation can be inspected.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/nightconcept/initializr-go/internal/core/build"
)

// Snapshot file name, written in the project root, and the format version
// recorded in it.
const (
	FileName   = "initz-build.toml"
	APIVersion = "1"
)

// ParentEntry is the Maven parent of the build.
type ParentEntry struct {
	GroupID    string `toml:"group_id"`
	ArtifactID string `toml:"artifact_id"`
	Version    string `toml:"version"`
}

// DependencyEntry is a single dependency of the build.
type DependencyEntry struct {
	ID         string `toml:"id"`
	GroupID    string `toml:"group_id"`
	ArtifactID string `toml:"artifact_id"`
	Version    string `toml:"version,omitempty"`
	Type       string `toml:"type"`
}

// BOMEntry is a single imported BOM. Version is either a literal version or a
// "${property}" reference.
type BOMEntry struct {
	ID         string `toml:"id"`
	GroupID    string `toml:"group_id"`
	ArtifactID string `toml:"artifact_id"`
	Version    string `toml:"version"`
	Order      int    `toml:"order,omitempty"`
}

// RepositoryEntry is a single repository of the build.
type RepositoryEntry struct {
	ID               string `toml:"id"`
	Name             string `toml:"name"`
	URL              string `toml:"url"`
	SnapshotsEnabled bool   `toml:"snapshots_enabled"`
}

// VersionPropertyEntry is a version property and its value.
type VersionPropertyEntry struct {
	Name     string `toml:"name"`
	Value    string `toml:"value"`
	Internal bool   `toml:"internal,omitempty"`
}

// Snapshot is the structure of the initz-build.toml file.
type Snapshot struct {
	APIVersion        string                 `toml:"api_version"`
	BuildSystem       string                 `toml:"build_system"`
	PlatformVersion   string                 `toml:"platform_version"`
	CatalogDigest     string                 `toml:"catalog_digest,omitempty"`
	Parent            *ParentEntry           `toml:"parent,omitempty"`
	Properties        map[string]string      `toml:"properties,omitempty"`
	VersionProperties []VersionPropertyEntry `toml:"version_properties,omitempty"`
	Dependencies      []DependencyEntry      `toml:"dependencies,omitempty"`
	BOMs              []BOMEntry             `toml:"boms,omitempty"`
	Repositories      []RepositoryEntry      `toml:"repositories,omitempty"`
}

// New creates a new Snapshot with default values.
func New() *Snapshot {
	return &Snapshot{APIVersion: APIVersion}
}

// FromBuild records b. BOMs are listed by order weight.
func FromBuild(b *build.Build) *Snapshot {
	s := New()
	for _, name := range b.Properties.IDs() {
		if s.Properties == nil {
			s.Properties = make(map[string]string)
		}
		s.Properties[name], _ = b.Properties.Get(name)
	}
	for _, vp := range b.VersionProperties.Values() {
		s.VersionProperties = append(s.VersionProperties, VersionPropertyEntry{
			Name:     vp.Property.Name,
			Value:    vp.Value,
			Internal: vp.Property.Internal,
		})
	}
	for _, id := range b.Dependencies.IDs() {
		dep, _ := b.Dependencies.Get(id)
		s.Dependencies = append(s.Dependencies, DependencyEntry{
			ID:         id,
			GroupID:    dep.GroupID,
			ArtifactID: dep.ArtifactID,
			Version:    dep.Version.String(),
			Type:       dep.Type.String(),
		})
	}
	for _, id := range b.OrderedBOMs() {
		bom, _ := b.BOMs.Get(id)
		s.BOMs = append(s.BOMs, BOMEntry{
			ID:         id,
			GroupID:    bom.GroupID,
			ArtifactID: bom.ArtifactID,
			Version:    bom.Version.String(),
			Order:      bom.Order,
		})
	}
	for _, repo := range b.Repositories.Values() {
		s.Repositories = append(s.Repositories, RepositoryEntry{
			ID:               repo.ID,
			Name:             repo.Name,
			URL:              repo.URL,
			SnapshotsEnabled: repo.SnapshotsEnabled,
		})
	}
	return s
}

// FromMavenBuild records b including its parent.
func FromMavenBuild(b *build.MavenBuild) *Snapshot {
	s := FromBuild(b.Build)
	if b.Parent != nil {
		s.Parent = &ParentEntry{
			GroupID:    string(b.Parent.GroupID),
			ArtifactID: string(b.Parent.ArtifactID),
			Version:    string(b.Parent.Version),
		}
	}
	return s
}

// Load loads the snapshot from the given project root path.
func Load(projectRoot string) (*Snapshot, error) {
	path := filepath.Join(projectRoot, FileName)
	s := New()
	if _, err := toml.DecodeFile(path, s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	if s.APIVersion == "" {
		s.APIVersion = APIVersion
	}
	return s, nil
}

// Save writes the snapshot to the given project root path.
func Save(projectRoot string, s *Snapshot) error {
	path := filepath.Join(projectRoot, FileName)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create/truncate snapshot %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	if err := toml.NewEncoder(file).Encode(s); err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", path, err)
	}
	return nil
}
