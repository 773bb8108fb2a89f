// Package project describes the project a generation produces.
package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nightconcept/initializr-go/internal/core/build"
	"github.com/nightconcept/initializr-go/internal/core/metadata"
	"github.com/nightconcept/initializr-go/internal/core/translate"
	"github.com/nightconcept/initializr-go/internal/core/version"
)

// Build systems.
const (
	BuildSystemMaven  = "maven"
	BuildSystemGradle = "gradle"
)

// Packaging types.
const (
	PackagingJar = "jar"
	PackagingWar = "war"
)

// ErrUnknownDependency is returned when a request selects a dependency the
// catalog does not define.
var ErrUnknownDependency = errors.New("unknown dependency")

// ErrInvalidBaseDir is returned when the project directory would not be a
// relative path inside the output directory.
var ErrInvalidBaseDir = errors.New("invalid project directory")

// Request is an inbound project request.
type Request struct {
	Name            string            `toml:"name"`
	GroupID         string            `toml:"group_id"`
	ArtifactID      string            `toml:"artifact_id"`
	Description     string            `toml:"description,omitempty"`
	PackageName     string            `toml:"package_name,omitempty"`
	ApplicationName string            `toml:"application_name,omitempty"`
	BaseDir         string            `toml:"base_dir,omitempty"`
	Type            string            `toml:"type"`
	Language        string            `toml:"language"`
	Packaging       string            `toml:"packaging"`
	BootVersion     string            `toml:"boot_version,omitempty"`
	Dependencies    []string          `toml:"dependencies,omitempty"`
	Versions        map[string]string `toml:"versions,omitempty"`
}

// NewRequest returns a request with the conventional defaults.
func NewRequest() *Request {
	return &Request{
		Name:       "demo",
		GroupID:    "com.example",
		ArtifactID: "demo",
		Type:       "maven-project",
		Language:   "java",
		Packaging:  PackagingJar,
		Versions:   make(map[string]string),
	}
}

// Description is the resolved form of a request that generation works from.
type Description struct {
	Name            string
	GroupID         string
	ArtifactID      string
	Description     string
	PackageName     string
	ApplicationName string
	BaseDirectory   string
	BuildSystem     string
	Language        string
	Packaging       string
	PlatformVersion version.Version

	// Dependencies holds the selected dependencies keyed by id, in selection
	// order.
	Dependencies *build.Container[build.Dependency]
}

// NewDescription returns an empty description.
func NewDescription() *Description {
	return &Description{Dependencies: build.NewContainer[build.Dependency]()}
}

// AddDependency selects dep under id.
func (d *Description) AddDependency(id string, dep build.Dependency) {
	d.Dependencies.Add(id, dep)
}

// DependencyIDs returns the selected dependency ids in selection order.
func (d *Description) DependencyIDs() []string {
	return d.Dependencies.IDs()
}

// IsMaven reports whether the project is built with Maven.
func (d *Description) IsMaven() bool {
	return d.BuildSystem == BuildSystemMaven
}

// IsWar reports whether the project is packaged as a war.
func (d *Description) IsWar() bool {
	return d.Packaging == PackagingWar
}

// Describe resolves req against catalog. The platform version falls back to
// the catalog default and must parse; every selected dependency must be
// defined by the catalog.
func Describe(req *Request, catalog *metadata.Catalog) (*Description, error) {
	bootVersion := req.BootVersion
	if bootVersion == "" {
		bootVersion = catalog.Platform.DefaultVersion
	}
	platformVersion, err := version.Parse(bootVersion)
	if err != nil {
		return nil, fmt.Errorf("platform version: %w", err)
	}

	desc := NewDescription()
	desc.Name = req.Name
	desc.GroupID = req.GroupID
	desc.ArtifactID = req.ArtifactID
	desc.Description = req.Description
	desc.PackageName = req.PackageName
	if desc.PackageName == "" {
		desc.PackageName = packageNameFor(req.GroupID, req.ArtifactID)
	}
	desc.ApplicationName = req.ApplicationName
	desc.BaseDirectory = req.BaseDir
	// The artifact id names the project directory when no base dir is set.
	for _, dir := range []string{req.BaseDir, req.ArtifactID} {
		if err := checkDirectoryName(dir); err != nil {
			return nil, err
		}
	}
	desc.BuildSystem = BuildSystemMaven
	if strings.HasPrefix(req.Type, BuildSystemGradle) {
		desc.BuildSystem = BuildSystemGradle
	}
	desc.Language = req.Language
	desc.Packaging = req.Packaging
	if desc.Packaging == "" {
		desc.Packaging = PackagingJar
	}
	desc.PlatformVersion = platformVersion

	for _, id := range req.Dependencies {
		dep, ok := catalog.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDependency, id)
		}
		translated, ok := translate.ToDependency(dep)
		if !ok {
			return nil, fmt.Errorf("dependency %q: %w %q", id, metadata.ErrUnknownScope, dep.Scope)
		}
		desc.AddDependency(id, translated)
	}
	return desc, nil
}

func packageNameFor(groupID, artifactID string) string {
	var parts []string
	for _, p := range []string{groupID, artifactID} {
		p = strings.ToLower(strings.NewReplacer("-", "", " ", "").Replace(p))
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

// checkDirectoryName rejects names that are absolute or climb out of the
// directory they are joined to.
func checkDirectoryName(name string) error {
	if name == "" {
		return nil
	}
	if filepath.IsAbs(name) || filepath.VolumeName(name) != "" || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return fmt.Errorf("%w %q: must be relative", ErrInvalidBaseDir, name)
	}
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(name)))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%w %q: must stay inside the output directory", ErrInvalidBaseDir, name)
	}
	return nil
}
