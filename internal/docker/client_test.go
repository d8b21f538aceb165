package docker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectUnixSocketFindsExisting(t *testing.T) {
	dir := t.TempDir()
	sock := filepath.Join(dir, "docker.sock")
	require.NoError(t, os.WriteFile(sock, nil, 0o644))

	host, err := detectUnixSocket([]string{
		filepath.Join(dir, "missing.sock"),
		sock,
	})
	require.NoError(t, err)
	assert.Equal(t, "unix://"+sock, host)
}

func TestDetectUnixSocketNoneFound(t *testing.T) {
	dir := t.TempDir()

	_, err := detectUnixSocket([]string{
		filepath.Join(dir, "a.sock"),
		filepath.Join(dir, "b.sock"),
	})
	assert.Error(t, err)
}

func TestNewClientRespectsDockerHost(t *testing.T) {
	t.Setenv("DOCKER_HOST", "unix:///nonexistent/docker.sock")

	// Client creation does not dial the daemon, so an unreachable host
	// still yields a client.
	c, err := NewClient()
	require.NoError(t, err)
	defer c.Close()

	assert.NotNil(t, c.Inner())
}

func TestBuildComposeArgs(t *testing.T) {
	args := buildComposeArgs()
	assert.Equal(t, []string{"compose", "-f", "docker-compose.yml"}, args)
}
