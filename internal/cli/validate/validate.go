// Package validate implements "initz validate", which checks a catalog for
// dangling references, unknown scopes and malformed ranges.
package validate

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/initializr-go/internal/core/config"
)

// ValidateCmd defines the structure for the 'validate' command.
var ValidateCmd = &cli.Command{
	Name:      "validate",
	Usage:     "Checks a catalog for inconsistencies",
	ArgsUsage: "[catalog]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "catalog-sha256",
			Usage:   "Expected digest of the catalog document",
			EnvVars: []string{"INITZ_CATALOG_SHA256"},
		},
	},
	Action: func(c *cli.Context) error {
		location := "."
		if c.NArg() > 0 {
			location = c.Args().First()
		}
		out := c.App.Writer
		okColor := color.New(color.FgGreen, color.Bold).SprintFunc()
		errColor := color.New(color.FgRed, color.Bold).SprintFunc()

		catalog, err := config.LoadCatalog(c.Context, location, c.String("catalog-sha256"))
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error loading catalog: %v", err), 1)
		}

		if err := catalog.Validate(); err != nil {
			problems := strings.Split(err.Error(), "\n")
			for _, p := range problems {
				_, _ = fmt.Fprintf(c.App.ErrWriter, "%s %s\n", errColor("error:"), p)
			}
			return cli.Exit(fmt.Sprintf("Catalog %s has %d problem(s).", location, len(problems)), 1)
		}

		_, _ = fmt.Fprintf(out, "%s %d dependencies, %d boms, %d repositories\n",
			okColor("catalog ok:"), len(catalog.Dependencies), len(catalog.BOMs), len(catalog.Repositories))
		_, _ = fmt.Fprintf(out, "digest %s\n", catalog.Digest)
		return nil
	},
}
