// Package cli — stop.go implements the "chimera stop" command.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirofcodes/chimera-stack/internal/docker"
)

// NewStopCommand creates the "stop" cobra command.
func NewStopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stop <name>",
		Short: "Stop a project's services",
		Long: `Run "docker compose stop" in the project directory ./<name>.

Containers are stopped but not removed; "chimera start" resumes them.`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStop(cmd.Context(), args[0])
		},
	}
}

func runStop(ctx context.Context, name string) error {
	root, err := requireProject(name)
	if err != nil {
		return err
	}

	VerboseLog("Stopping services in %s", root)
	if err := docker.ComposeStop(ctx, root); err != nil {
		return err
	}

	fmt.Printf("Stopped project %q\n", name)
	return nil
}
