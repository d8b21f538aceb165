package docker

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/amirofcodes/chimera-stack/internal/model"
)

// ComposeUp starts the project's services in detached mode. It executes
// "docker compose up -d" in the project directory, where relative paths in
// the Compose file resolve correctly.
func ComposeUp(ctx context.Context, projectDir string) error {
	args := buildComposeArgs()
	args = append(args, "up", "-d")

	return runCompose(ctx, projectDir, args)
}

// ComposeStop stops running services without removing containers. The
// project can be resumed later with ComposeUp.
func ComposeStop(ctx context.Context, projectDir string) error {
	args := buildComposeArgs()
	args = append(args, "stop")

	return runCompose(ctx, projectDir, args)
}

// ComposeDown stops and removes containers and the networks compose
// created. When removeVolumes is true the -v flag also removes named
// volumes, leaving no data behind.
func ComposeDown(ctx context.Context, projectDir string, removeVolumes bool) error {
	args := buildComposeArgs()
	args = append(args, "down")
	if removeVolumes {
		args = append(args, "-v")
	}

	return runCompose(ctx, projectDir, args)
}

// buildComposeArgs constructs the common prefix for compose invocations.
// "compose" is the plugin subcommand; the generated file is always named
// docker-compose.yml at the project root.
func buildComposeArgs() []string {
	return []string{"compose", "-f", "docker-compose.yml"}
}

// runCompose executes a docker compose command as a child process in the
// project directory, capturing combined output for error reporting. The
// plugin form ("docker compose") is used rather than the legacy
// docker-compose binary.
func runCompose(ctx context.Context, projectDir string, args []string) error {
	cmd := exec.CommandContext(ctx, "docker", args...)
	cmd.Dir = projectDir
	cmd.Env = os.Environ()

	output, err := cmd.CombinedOutput()
	if err != nil {
		return model.WrapCLIError(
			model.ExitDockerNotRunning,
			fmt.Sprintf("docker compose failed: %s", strings.TrimSpace(string(output))),
			err,
		)
	}

	return nil
}
