package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirofcodes/chimera-stack/internal/config"
	"github.com/amirofcodes/chimera-stack/internal/model"
)

// newCreateCommandForTest builds a command with the create flag set bound,
// applying the given flag values as if passed on the command line.
func newCreateCommandForTest(t *testing.T, set map[string]string) (*cobra.Command, *createFlags) {
	t.Helper()

	flags := &createFlags{}
	cmd := &cobra.Command{Use: "create"}
	cmd.Flags().StringVar(&flags.language, "language", "", "")
	cmd.Flags().StringVar(&flags.framework, "framework", "", "")
	cmd.Flags().StringVar(&flags.webServer, "webserver", "", "")
	cmd.Flags().StringVar(&flags.database, "database", "", "")
	cmd.Flags().StringVar(&flags.tier, "tier", "", "")

	for name, value := range set {
		require.NoError(t, cmd.Flags().Set(name, value))
	}
	return cmd, flags
}

func TestResolveSpecBuiltinDefaults(t *testing.T) {
	cmd, flags := newCreateCommandForTest(t, map[string]string{"language": "php"})

	spec, err := resolveSpec(cmd, "demo", flags, config.Defaults{})
	require.NoError(t, err)

	assert.Equal(t, model.LanguagePHP, spec.Language)
	assert.Equal(t, model.FrameworkNone, spec.Framework)
	assert.Equal(t, model.WebServerNginx, spec.WebServer)
	assert.Equal(t, model.DatabaseMySQL, spec.Database)
	assert.Equal(t, model.TierDevelopment, spec.Tier)
}

func TestResolveSpecDefaultsFileOverridesBuiltins(t *testing.T) {
	cmd, flags := newCreateCommandForTest(t, map[string]string{"language": "php"})

	spec, err := resolveSpec(cmd, "demo", flags, config.Defaults{
		WebServer: "apache",
		Database:  "mariadb",
		Tier:      "testing",
	})
	require.NoError(t, err)

	assert.Equal(t, model.WebServerApache, spec.WebServer)
	assert.Equal(t, model.DatabaseMariaDB, spec.Database)
	assert.Equal(t, model.TierTesting, spec.Tier)
}

func TestResolveSpecExplicitFlagBeatsDefaultsFile(t *testing.T) {
	cmd, flags := newCreateCommandForTest(t, map[string]string{
		"language": "php",
		"database": "postgresql",
	})

	spec, err := resolveSpec(cmd, "demo", flags, config.Defaults{Database: "mariadb"})
	require.NoError(t, err)

	assert.Equal(t, model.DatabasePostgreSQL, spec.Database)
}

func TestResolveSpecRejectsInvalidOption(t *testing.T) {
	cmd, flags := newCreateCommandForTest(t, map[string]string{
		"language": "php",
		"database": "oracle",
	})

	_, err := resolveSpec(cmd, "demo", flags, config.Defaults{})
	assert.Error(t, err)
}

func TestResolveSpecRejectsFrameworkLanguageMismatch(t *testing.T) {
	cmd, flags := newCreateCommandForTest(t, map[string]string{
		"language":  "python",
		"framework": "symfony",
	})

	_, err := resolveSpec(cmd, "demo", flags, config.Defaults{})
	assert.Error(t, err)
}

func TestFrameworkBootstrapSteps(t *testing.T) {
	spec := model.ProjectSpec{Framework: model.FrameworkLaravel}
	steps := frameworkBootstrapSteps(spec)
	require.Len(t, steps, 2)
	assert.Contains(t, steps[0], "composer create-project laravel/laravel")

	spec.Framework = model.FrameworkNone
	assert.Empty(t, frameworkBootstrapSteps(spec))
}

func TestRequireProjectMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := requireProject("ghost")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitProjectNotFound, cliErr.Code)
}

func TestRequireProjectWithoutComposeFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "demo"), 0o755))

	_, err := requireProject("demo")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitProjectNotFound, cliErr.Code)
}

func TestRequireProjectFound(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "demo"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo", "docker-compose.yml"), []byte("services: {}\n"), 0o644))

	root, err := requireProject("demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", filepath.Base(root))
}
