// Package generator runs the build customizers and project contributors of a
// generation in order.
package generator

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/nightconcept/initializr-go/internal/core/build"
	"github.com/nightconcept/initializr-go/internal/core/customize"
	"github.com/nightconcept/initializr-go/internal/core/project"
)

// LowestPrecedence is the order of customizers that must run after every
// other one. Lower orders run first.
const LowestPrecedence = math.MaxInt

type customizerStep struct {
	name  string
	order int
	seq   int
	apply func(mb *build.MavenBuild, b *build.Build) error
}

type contributorStep struct {
	name        string
	contributor customize.ProjectContributor
}

// Pipeline is an ordered list of build customizers followed by project
// contributors. Customizers run by ascending order, then registration order;
// contributors run in registration order once every customizer has finished.
type Pipeline struct {
	customizers  []customizerStep
	contributors []contributorStep
	out          io.Writer
}

// NewPipeline returns an empty pipeline. Progress is reported to out when it
// is not nil.
func NewPipeline(out io.Writer) *Pipeline {
	if out == nil {
		out = io.Discard
	}
	return &Pipeline{out: out}
}

// AddBuildCustomizer registers c with the given order.
func (p *Pipeline) AddBuildCustomizer(name string, order int, c customize.BuildCustomizer) {
	p.addCustomizer(name, order, func(_ *build.MavenBuild, b *build.Build) error {
		return c.Customize(b)
	})
}

// AddMavenBuildCustomizer registers c with the given order. It only runs for
// Maven builds.
func (p *Pipeline) AddMavenBuildCustomizer(name string, order int, c customize.MavenBuildCustomizer) {
	p.addCustomizer(name, order, func(mb *build.MavenBuild, _ *build.Build) error {
		if mb == nil {
			return nil
		}
		return c.CustomizeMaven(mb)
	})
}

func (p *Pipeline) addCustomizer(name string, order int, apply func(*build.MavenBuild, *build.Build) error) {
	p.customizers = append(p.customizers, customizerStep{name: name, order: order, seq: len(p.customizers), apply: apply})
}

// AddContributor registers a project contributor.
func (p *Pipeline) AddContributor(name string, c customize.ProjectContributor) {
	p.contributors = append(p.contributors, contributorStep{name: name, contributor: c})
}

// Customize runs every build customizer against the build. mb is nil for
// builds that are not Maven builds.
func (p *Pipeline) Customize(mb *build.MavenBuild, b *build.Build) error {
	steps := append([]customizerStep(nil), p.customizers...)
	sort.SliceStable(steps, func(i, j int) bool {
		if steps[i].order != steps[j].order {
			return steps[i].order < steps[j].order
		}
		return steps[i].seq < steps[j].seq
	})
	for _, step := range steps {
		_, _ = fmt.Fprintf(p.out, "customizing build: %s\n", step.name)
		if err := step.apply(mb, b); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}
	return nil
}

// Contribute runs every project contributor against projectRoot.
func (p *Pipeline) Contribute(projectRoot string) error {
	for _, step := range p.contributors {
		_, _ = fmt.Fprintf(p.out, "contributing: %s\n", step.name)
		if err := step.contributor.Contribute(projectRoot); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}
	return nil
}

// Result is the outcome of a generation.
type Result struct {
	ProjectRoot string
	Build       *build.Build
	// MavenBuild is nil unless the project is built with Maven.
	MavenBuild *build.MavenBuild
}

// Run creates the project root for desc under dir, customizes a fresh build
// seeded with the selected dependencies, then runs the contributors.
func (p *Pipeline) Run(dir string, desc *project.Description) (*Result, error) {
	root := filepath.Join(dir, projectDirName(desc))
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create project root %s: %w", root, err)
	}

	res := &Result{ProjectRoot: root}
	if desc.IsMaven() {
		res.MavenBuild = build.NewMaven()
		res.Build = res.MavenBuild.Build
	} else {
		res.Build = build.New()
	}
	for _, id := range desc.DependencyIDs() {
		dep, _ := desc.Dependencies.Get(id)
		res.Build.AddDependency(id, dep)
	}

	if err := p.Customize(res.MavenBuild, res.Build); err != nil {
		return nil, err
	}
	if err := p.Contribute(root); err != nil {
		return nil, err
	}
	return res, nil
}

func projectDirName(desc *project.Description) string {
	switch {
	case desc.BaseDirectory != "":
		return desc.BaseDirectory
	case desc.ArtifactID != "":
		return desc.ArtifactID
	}
	return "demo"
}
