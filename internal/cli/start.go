// Package cli — start.go implements the "chimera start" command.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/amirofcodes/chimera-stack/internal/config"
	"github.com/amirofcodes/chimera-stack/internal/docker"
	"github.com/amirofcodes/chimera-stack/internal/model"
)

// NewStartCommand creates the "start" cobra command.
func NewStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start <name>",
		Short: "Start a project's services",
		Long:  `Run "docker compose up -d" in the project directory ./<name>.`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(cmd.Context(), args[0])
		},
	}
}

func runStart(ctx context.Context, name string) error {
	root, err := requireProject(name)
	if err != nil {
		return err
	}

	VerboseLog("Starting services in %s", root)
	if err := docker.ComposeUp(ctx, root); err != nil {
		return err
	}

	fmt.Printf("Started project %q\n", name)
	if snap, err := config.LoadSnapshot(root); err == nil && snap.Ports.Web != 0 {
		fmt.Printf("  Web: http://localhost:%d\n", snap.Ports.Web)
	}
	return nil
}

// requireProject resolves the project directory for a name and verifies
// it holds a generated project. Returns ExitProjectNotFound when the
// directory or its Compose file is missing.
func requireProject(name string) (string, error) {
	if err := model.ValidateProjectName(name); err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError, "invalid project name", err)
	}

	root, err := config.ProjectRoot(name)
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError, "failed to resolve project path", err)
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", model.NewCLIError(model.ExitProjectNotFound,
			fmt.Sprintf("project %q not found at %s", name, root))
	}
	if _, err := os.Stat(filepath.Join(root, "docker-compose.yml")); err != nil {
		return "", model.NewCLIError(model.ExitProjectNotFound,
			fmt.Sprintf("%s has no docker-compose.yml; not a generated project", root))
	}
	return root, nil
}
