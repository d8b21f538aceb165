// Package cli — destroy.go implements the "chimera destroy" command.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amirofcodes/chimera-stack/internal/docker"
)

// NewDestroyCommand creates the "destroy" cobra command.
func NewDestroyCommand() *cobra.Command {
	var removeVolumes bool

	cmd := &cobra.Command{
		Use:   "destroy <name>",
		Short: "Tear down a project's Docker resources",
		Long: `Run "docker compose down" in the project directory ./<name>, removing
containers and the networks compose created. The generated files stay on
disk.

With --volumes, named volumes are removed too, deleting database data.
The pre-created project network and data volume are removed as well.`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDestroy(cmd.Context(), args[0], removeVolumes)
		},
	}

	cmd.Flags().BoolVar(&removeVolumes, "volumes", false, "Also remove named volumes (deletes data)")

	return cmd
}

func runDestroy(ctx context.Context, name string, removeVolumes bool) error {
	root, err := requireProject(name)
	if err != nil {
		return err
	}

	VerboseLog("Tearing down services in %s (volumes: %t)", root, removeVolumes)
	if err := docker.ComposeDown(ctx, root, removeVolumes); err != nil {
		return err
	}

	// Remove the resources create pre-allocated outside compose. Both
	// are best-effort; the daemon may already have pruned them.
	if cli, err := docker.NewClient(); err == nil {
		defer func() { _ = cli.Close() }()
		if err := cli.RemoveNetwork(ctx, name+"_network"); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		if removeVolumes {
			if err := cli.RemoveVolume(ctx, name+"_data"); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		}
	}

	fmt.Printf("Destroyed project %q\n", name)
	return nil
}
