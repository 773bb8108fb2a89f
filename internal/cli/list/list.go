// Package list implements "initz list", which displays the build recorded
// for a generated project.
package list

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/initializr-go/internal/core/build"
	"github.com/nightconcept/initializr-go/internal/core/snapshot"
)

// ListCmd defines the structure for the 'list' command.
var ListCmd = &cli.Command{
	Name:      "list",
	Aliases:   []string{"ls"},
	Usage:     "Displays the build recorded for a generated project.",
	ArgsUsage: "[project-dir]",
	Action: func(c *cli.Context) error {
		root := "."
		if c.NArg() > 0 {
			root = c.Args().First()
		}

		s, err := snapshot.Load(root)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return cli.Exit(fmt.Sprintf("Error: %s not found in %s. Run 'initz generate' first.", snapshot.FileName, root), 1)
			}
			return cli.Exit(fmt.Sprintf("Error loading %s: %v", snapshot.FileName, err), 1)
		}

		printSnapshot(c.App.Writer, s)
		for _, d := range s.Dependencies {
			if build.ParseDependencyType(d.Type) == build.TypeUndefined {
				_, _ = fmt.Fprintf(c.App.ErrWriter, "Warning: dependency %s has unknown type %q\n", d.ID, d.Type)
			}
		}
		return nil
	},
}

func printSnapshot(out io.Writer, s *snapshot.Snapshot) {
	projectColor := color.New(color.FgMagenta, color.Bold, color.Underline).SprintFunc()
	versionColor := color.New(color.FgMagenta).SprintFunc()
	headerColor := color.New(color.FgCyan, color.Bold).SprintFunc()
	nameColor := color.New(color.FgWhite).SprintFunc()
	versionValueColor := color.New(color.FgYellow).SprintFunc()
	detailColor := color.New(color.FgHiBlack).SprintFunc()

	_, _ = fmt.Fprintf(out, "%s@%s\n", projectColor(s.BuildSystem), versionColor(s.PlatformVersion))
	if s.CatalogDigest != "" {
		_, _ = fmt.Fprintf(out, "catalog %s\n", detailColor(s.CatalogDigest))
	}
	_, _ = fmt.Fprintln(out)

	if s.Parent != nil {
		_, _ = fmt.Fprintf(out, "%s %s:%s %s\n", headerColor("parent:"), nameColor(s.Parent.GroupID), nameColor(s.Parent.ArtifactID), versionValueColor(s.Parent.Version))
	}

	_, _ = fmt.Fprintln(out, headerColor("dependencies:"))
	if len(s.Dependencies) == 0 {
		_, _ = fmt.Fprintln(out, "No dependencies recorded.")
	}
	for _, d := range s.Dependencies {
		v := d.Version
		if v == "" {
			v = "managed"
		}
		_, _ = fmt.Fprintf(out, "%s %s %s\n", nameColor(d.ID), versionValueColor(v), detailColor(d.GroupID+":"+d.ArtifactID+" "+d.Type))
	}

	if len(s.BOMs) > 0 {
		_, _ = fmt.Fprintln(out, headerColor("boms:"))
		for _, b := range s.BOMs {
			_, _ = fmt.Fprintf(out, "%s %s %s\n", nameColor(b.ID), versionValueColor(b.Version), detailColor(b.GroupID+":"+b.ArtifactID))
		}
	}

	if len(s.VersionProperties) > 0 {
		_, _ = fmt.Fprintln(out, headerColor("version properties:"))
		for _, p := range s.VersionProperties {
			_, _ = fmt.Fprintf(out, "%s %s\n", nameColor(p.Name), versionValueColor(p.Value))
		}
	}

	if len(s.Repositories) > 0 {
		_, _ = fmt.Fprintln(out, headerColor("repositories:"))
		for _, r := range s.Repositories {
			snapshots := ""
			if r.SnapshotsEnabled {
				snapshots = " (snapshots)"
			}
			_, _ = fmt.Fprintf(out, "%s %s\n", nameColor(r.ID), detailColor(r.URL+snapshots))
		}
	}

	if len(s.Properties) > 0 {
		_, _ = fmt.Fprintln(out, headerColor("properties:"))
		keys := make([]string, 0, len(s.Properties))
		for k := range s.Properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			_, _ = fmt.Fprintf(out, "%s %s\n", nameColor(k), s.Properties[k])
		}
	}
}
