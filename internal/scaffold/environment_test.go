package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirofcodes/chimera-stack/internal/model"
)

func TestSetupCreatesSkeleton(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")

	require.NoError(t, Setup(root))

	for _, dir := range []string{"src", "public", "config"} {
		info, err := os.Stat(filepath.Join(root, dir))
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}
	for _, name := range []string{".env", "docker-compose.yml", ".gitignore"} {
		info, err := os.Stat(filepath.Join(root, name))
		require.NoError(t, err, name)
		assert.False(t, info.IsDir(), name)
	}

	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), ".env")
	assert.Contains(t, string(data), "__pycache__/")
}

func TestSetupRefusesExistingDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, os.MkdirAll(root, 0o755))

	err := Setup(root)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitProjectExists, cliErr.Code)
}

func TestSetupRefusesExistingFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o644))

	err := Setup(root)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitProjectExists, cliErr.Code)
}

func TestCleanupRemovesTree(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, Setup(root))

	require.NoError(t, Cleanup(root))

	_, err := os.Stat(root)
	assert.True(t, os.IsNotExist(err))
}

func TestPruneEmptyDirs(t *testing.T) {
	root := t.TempDir()
	empty := filepath.Join(root, "docker", "mysql")
	full := filepath.Join(root, "docker", "nginx")
	require.NoError(t, os.MkdirAll(empty, 0o755))
	require.NoError(t, os.MkdirAll(full, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(full, "default.conf"), []byte("x"), 0o644))

	PruneEmptyDirs(root, "docker/mysql", "docker/nginx", "docker/missing")

	_, err := os.Stat(empty)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(full)
	assert.NoError(t, err)
}
