// Package generate implements "initz generate", which turns a project request
// into a project tree and a recorded build.
package generate

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/initializr-go/internal/core/config"
	"github.com/nightconcept/initializr-go/internal/core/generator"
	"github.com/nightconcept/initializr-go/internal/core/project"
	"github.com/nightconcept/initializr-go/internal/core/snapshot"
)

// GenerateCmd defines the structure for the 'generate' command.
var GenerateCmd = &cli.Command{
	Name:      "generate",
	Aliases:   []string{"gen"},
	Usage:     "Generates a project from the catalog",
	ArgsUsage: "[dependency...]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "catalog",
			Aliases: []string{"c"},
			Usage:   "Catalog file, directory holding catalog.toml, or http(s) URL",
			Value:   ".",
			EnvVars: []string{"INITZ_CATALOG"},
		},
		&cli.StringFlag{
			Name:    "catalog-sha256",
			Usage:   "Expected digest of the catalog document",
			EnvVars: []string{"INITZ_CATALOG_SHA256"},
		},
		&cli.StringFlag{
			Name:    "request",
			Aliases: []string{"r"},
			Usage:   "Read the project request from a TOML file",
		},
		&cli.StringFlag{Name: "type", Usage: "Project type, e.g. maven-project or gradle-project"},
		&cli.StringFlag{Name: "language", Usage: "Project language"},
		&cli.StringFlag{Name: "packaging", Usage: "Packaging, jar or war"},
		&cli.StringFlag{Name: "boot-version", Usage: "Platform version (defaults to the catalog default)"},
		&cli.StringSliceFlag{
			Name:    "dependencies",
			Aliases: []string{"d"},
			Usage:   "Dependency ids to select",
		},
		&cli.StringFlag{Name: "group-id", Usage: "Project group id"},
		&cli.StringFlag{Name: "artifact-id", Usage: "Project artifact id"},
		&cli.StringFlag{Name: "name", Usage: "Project name"},
		&cli.StringFlag{Name: "description", Usage: "Project description"},
		&cli.StringFlag{Name: "package-name", Usage: "Root package name"},
		&cli.StringFlag{Name: "base-dir", Usage: "Project directory name (defaults to the artifact id)"},
		&cli.StringSliceFlag{
			Name:  "version",
			Usage: "Version property as name=value, may be repeated",
		},
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"o"},
			Usage:   "Directory the project is generated in",
			Value:   ".",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose output",
		},
	},
	Action: func(c *cli.Context) error {
		verbose := c.Bool("verbose")
		out := c.App.Writer

		req, err := buildRequest(c)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}

		location := c.String("catalog")
		if verbose {
			_, _ = fmt.Fprintf(out, "Loading catalog from %s\n", location)
		}
		catalog, err := config.LoadCatalog(c.Context, location, c.String("catalog-sha256"))
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error loading catalog: %v", err), 1)
		}
		if err := catalog.Validate(); err != nil {
			return cli.Exit(fmt.Sprintf("Error: invalid catalog %s (run 'initz validate' for details): %v", location, err), 1)
		}
		if verbose {
			_, _ = fmt.Fprintf(out, "Catalog digest: %s\n", catalog.Digest)
		}

		var progress io.Writer
		if verbose {
			progress = out
		}
		res, err := generator.NewInvoker(catalog, progress).Generate(c.String("dir"), req)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}

		printSummary(out, res)
		return nil
	},
}

// buildRequest starts from the request file, if any, and applies the flags
// that were set on top of it.
func buildRequest(c *cli.Context) (*project.Request, error) {
	req := project.NewRequest()
	if path := c.String("request"); path != "" {
		loaded, err := config.LoadRequest(path)
		if err != nil {
			return nil, err
		}
		req = loaded
	}

	for flag, field := range map[string]*string{
		"type":         &req.Type,
		"language":     &req.Language,
		"packaging":    &req.Packaging,
		"boot-version": &req.BootVersion,
		"group-id":     &req.GroupID,
		"artifact-id":  &req.ArtifactID,
		"name":         &req.Name,
		"description":  &req.Description,
		"package-name": &req.PackageName,
		"base-dir":     &req.BaseDir,
	} {
		if c.IsSet(flag) {
			*field = c.String(flag)
		}
	}

	req.Dependencies = appendUnique(req.Dependencies, splitIDs(c.StringSlice("dependencies"))...)
	req.Dependencies = appendUnique(req.Dependencies, c.Args().Slice()...)

	for _, kv := range c.StringSlice("version") {
		name, value, ok := strings.Cut(kv, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --version %q, expected name=value", kv)
		}
		if req.Versions == nil {
			req.Versions = make(map[string]string)
		}
		req.Versions[name] = strings.TrimSpace(value)
	}
	return req, nil
}

// splitIDs accepts both repeated flags and comma separated lists.
func splitIDs(values []string) []string {
	var ids []string
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func appendUnique(ids []string, more ...string) []string {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, id := range more {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

func printSummary(out io.Writer, res *generator.Result) {
	headerColor := color.New(color.FgCyan, color.Bold).SprintFunc()
	idColor := color.New(color.FgWhite).SprintFunc()
	detailColor := color.New(color.FgHiBlack).SprintFunc()
	pathColor := color.New(color.FgGreen).SprintFunc()

	_, _ = fmt.Fprintf(out, "Generated project in %s\n", pathColor(res.ProjectRoot))
	if res.MavenBuild != nil && res.MavenBuild.Parent != nil {
		p := res.MavenBuild.Parent
		_, _ = fmt.Fprintf(out, "%s %s:%s:%s\n", headerColor("parent:"), p.GroupID, p.ArtifactID, p.Version)
	}

	b := res.Build
	_, _ = fmt.Fprintln(out, headerColor("dependencies:"))
	for _, id := range b.Dependencies.IDs() {
		dep, _ := b.Dependencies.Get(id)
		_, _ = fmt.Fprintf(out, "  %s %s\n", idColor(id), detailColor(coordinates(dep.GroupID, dep.ArtifactID, dep.Version.String())+" ("+dep.Type.String()+")"))
	}
	if !b.BOMs.IsEmpty() {
		_, _ = fmt.Fprintln(out, headerColor("boms:"))
		for _, id := range b.OrderedBOMs() {
			bom, _ := b.BOMs.Get(id)
			_, _ = fmt.Fprintf(out, "  %s %s\n", idColor(id), detailColor(coordinates(bom.GroupID, bom.ArtifactID, bom.Version.String())))
		}
	}
	if !b.Repositories.IsEmpty() {
		_, _ = fmt.Fprintln(out, headerColor("repositories:"))
		for _, repo := range b.Repositories.Values() {
			_, _ = fmt.Fprintf(out, "  %s %s\n", idColor(repo.ID), detailColor(repo.URL))
		}
	}
	_, _ = fmt.Fprintf(out, "Build recorded in %s\n", snapshot.FileName)
}

func coordinates(groupID, artifactID, version string) string {
	s := groupID + ":" + artifactID
	if version != "" {
		s += ":" + version
	}
	return s
}
