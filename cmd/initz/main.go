// Command initz generates JVM project builds from a dependency catalog.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/initializr-go/internal/cli/generate"
	"github.com/nightconcept/initializr-go/internal/cli/initcmd"
	"github.com/nightconcept/initializr-go/internal/cli/list"
	"github.com/nightconcept/initializr-go/internal/cli/self"
	"github.com/nightconcept/initializr-go/internal/cli/validate"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "v0.1.0"

func main() {
	app := &cli.App{
		Name:    "initz",
		Usage:   "Generate JVM projects from a dependency catalog",
		Version: version,
		Action: func(c *cli.Context) error {
			// Default action if no command is specified
			_ = cli.ShowAppHelp(c)
			return nil
		},
		Commands: []*cli.Command{
			initcmd.GetInitCommand(),
			generate.GenerateCmd,
			list.ListCmd,
			validate.ValidateCmd,
			self.NewSelfCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
