// Package cli — init.go implements the "chimera init" command, the
// interactive entry point. It runs the wizard, then hands the resulting
// spec to the same orchestration the create command uses.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amirofcodes/chimera-stack/internal/config"
	"github.com/amirofcodes/chimera-stack/internal/docker"
	"github.com/amirofcodes/chimera-stack/internal/model"
	"github.com/amirofcodes/chimera-stack/internal/scaffold"
	"github.com/amirofcodes/chimera-stack/internal/wizard"
)

// NewInitCommand creates the "init" cobra command.
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Set up a development environment interactively",
		Long: `Walk through project setup with interactive prompts: name, tier,
language, framework, web server and database. Selections from the
chimera.jsonc defaults file in the working directory prefill the prompts.

Nothing is written until the final confirmation.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.Context())
		},
	}
}

func runInit(ctx context.Context) error {
	defaults, err := config.LoadDefaults()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to load defaults file", err)
	}

	spec, err := wizard.Run(defaults)
	if err != nil {
		return err
	}
	if spec == nil {
		// Declined the final confirmation; a clean exit, not an error.
		fmt.Println("Setup cancelled")
		return nil
	}

	return createProject(ctx, *spec)
}

// createProject runs the post-spec creation pipeline shared by init and
// create: scaffold, generate, verify Docker, pre-create resources, guide.
func createProject(ctx context.Context, spec model.ProjectSpec) error {
	root, err := config.ProjectRoot(spec.Name)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to resolve project path", err)
	}

	VerboseLog("Creating project skeleton at %s", root)
	if err := scaffold.Setup(root); err != nil {
		if shouldRollbackSetup(err) {
			cleanupPartial(root)
		}
		return err
	}

	VerboseLog("Generating project configuration...")
	result, err := config.Initialize(spec, root)
	if err != nil {
		cleanupPartial(root)
		return err
	}

	cli, err := docker.NewClient()
	if err != nil {
		cleanupPartial(root)
		return err
	}
	defer func() { _ = cli.Close() }()

	if err := cli.Ping(ctx); err != nil {
		cleanupPartial(root)
		return err
	}
	VerboseLog("Docker daemon is reachable")

	if err := cli.EnsureNetwork(ctx, spec.Name+"_network"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := cli.EnsureVolume(ctx, spec.Name+"_data"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	scaffold.PruneEmptyDirs(root, prunableDirs...)

	printProjectGuide(spec, result)
	return nil
}

// prunableDirs are skeleton directories that stay empty for some stacks
// and are removed after generation. The src and public directories are
// part of the documented layout and are always kept.
var prunableDirs = []string{"docker/database", "docker/webserver"}

// shouldRollbackSetup reports whether a failed Setup may have left a
// partial skeleton behind. The refusal to overwrite an existing project
// writes nothing, so that path must not be rolled back.
func shouldRollbackSetup(err error) bool {
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) && cliErr.Code == model.ExitProjectExists {
		return false
	}
	return true
}
