// Package initcmd implements "initz init", which interactively writes a
// project request file.
package initcmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/initializr-go/internal/core/config"
	"github.com/nightconcept/initializr-go/internal/core/project"
)

// promptWithDefault prompts the user and returns their input, or defaultValue
// when the input is empty.
func promptWithDefault(out io.Writer, reader *bufio.Reader, promptText, defaultValue string) (string, error) {
	if defaultValue != "" {
		_, _ = fmt.Fprintf(out, "%s (default: %s): ", promptText, defaultValue)
	} else {
		_, _ = fmt.Fprintf(out, "%s: ", promptText)
	}

	input, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input for '%s': %w", promptText, err)
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue, nil
	}
	return input, nil
}

// GetInitCommand returns the definition for the "init" command.
func GetInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a project request file (initz.toml) interactively",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Path of the request file",
				Value:   config.RequestFileName,
			},
		},
		Action: func(c *cli.Context) error {
			out := c.App.Writer
			reader := bufio.NewReader(c.App.Reader)
			req := project.NewRequest()

			_, _ = fmt.Fprintln(out, "Starting project request initialization...")

			for _, p := range []struct {
				text  string
				field *string
			}{
				{"Group id", &req.GroupID},
				{"Artifact id", &req.ArtifactID},
				{"Name", &req.Name},
				{"Description (optional)", &req.Description},
				{"Project type", &req.Type},
				{"Language", &req.Language},
				{"Packaging", &req.Packaging},
				{"Platform version (optional)", &req.BootVersion},
			} {
				value, err := promptWithDefault(out, reader, p.text, *p.field)
				if err != nil {
					return cli.Exit(err.Error(), 1)
				}
				*p.field = value
			}

			_, _ = fmt.Fprintln(out, "\nEnter dependency ids (leave empty to finish):")
			for {
				id, err := promptWithDefault(out, reader, "Dependency id", "")
				if err != nil {
					return cli.Exit(fmt.Sprintf("Error reading dependency id: %v", err), 1)
				}
				if id == "" {
					break
				}
				req.Dependencies = append(req.Dependencies, id)
			}

			path := c.String("output")
			if err := config.WriteRequest(path, req); err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
			}
			_, _ = fmt.Fprintf(out, "\nWrote to %s\n", path)
			return nil
		},
	}
}
