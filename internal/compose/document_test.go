package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestNewDocument verifies the base document shape: version 3.8, no
// services, and the shared bridge network.
func TestNewDocument(t *testing.T) {
	doc := NewDocument()

	assert.Equal(t, "3.8", doc.Version)
	assert.Empty(t, doc.Services)
	require.Contains(t, doc.Networks, DefaultNetwork)
	assert.Equal(t, "bridge", doc.Networks[DefaultNetwork].Driver)
}

// TestMerge verifies that distinct fragments accumulate into one document.
func TestMerge(t *testing.T) {
	doc := NewDocument()

	err := doc.Merge(Fragment{
		Services: map[string]Service{
			"mysql": {Image: "mysql:8.0"},
		},
		Volumes: map[string]*Volume{
			"demo_mysql_data": {Driver: "local"},
		},
	})
	require.NoError(t, err)

	err = doc.Merge(Fragment{
		Services: map[string]Service{
			"nginx": {Image: "nginx:stable-alpine", DependsOn: []string{"php"}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"mysql", "nginx"}, doc.ServiceNames())
	assert.Contains(t, doc.Volumes, "demo_mysql_data")
}

// TestMergeServiceCollision verifies that a duplicate service name aborts
// the merge instead of silently overwriting the earlier definition.
func TestMergeServiceCollision(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Merge(Fragment{
		Services: map[string]Service{"mysql": {Image: "mysql:8.0"}},
	}))

	err := doc.Merge(Fragment{
		Services: map[string]Service{"mysql": {Image: "mariadb:10.11"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate service "mysql"`)
	// The original definition must survive the failed merge.
	assert.Equal(t, "mysql:8.0", doc.Services["mysql"].Image)
}

// TestMergeVolumeCollision verifies the same strictness for named volumes,
// where a silent overwrite would discard a persistence mount.
func TestMergeVolumeCollision(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Merge(Fragment{
		Volumes: map[string]*Volume{"demo_data": {Driver: "local"}},
	}))

	err := doc.Merge(Fragment{
		Volumes: map[string]*Volume{"demo_data": nil},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate volume "demo_data"`)
}

// TestMergeDefaultNetworkSkipped verifies that fragments may reference the
// shared network without tripping the collision check.
func TestMergeDefaultNetworkSkipped(t *testing.T) {
	doc := NewDocument()
	err := doc.Merge(Fragment{
		Networks: map[string]Network{DefaultNetwork: {Driver: "bridge"}},
	})
	require.NoError(t, err)
	assert.Len(t, doc.Networks, 1)
}

// TestMarshalRoundTrip serializes a representative document and parses it
// back with yaml.v3 to prove the output is valid YAML with the expected
// structure.
func TestMarshalRoundTrip(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Merge(Fragment{
		Services: map[string]Service{
			"mysql": {
				Image:   "mysql:8.0",
				Command: "--default-authentication-plugin=mysql_native_password",
				Restart: "unless-stopped",
				Ports:   []string{"3306:3306"},
				Environment: map[string]string{
					"MYSQL_DATABASE": "${DB_DATABASE}",
				},
				Volumes: []string{"demo_mysql_data:/var/lib/mysql"},
				Healthcheck: &Healthcheck{
					Test:     []string{"CMD", "mysqladmin", "ping", "-h", "localhost"},
					Interval: "10s",
					Timeout:  "5s",
					Retries:  5,
				},
				Networks: []string{DefaultNetwork},
			},
			"php": {
				Build:    &Build{Context: ".", Dockerfile: "docker/php/Dockerfile"},
				Networks: []string{DefaultNetwork},
			},
		},
		Volumes: map[string]*Volume{
			"demo_mysql_data": {Driver: "local"},
		},
	}))

	data, err := doc.Marshal()
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &parsed))

	assert.Equal(t, "3.8", parsed["version"])
	services, ok := parsed["services"].(map[string]interface{})
	require.True(t, ok, "services must parse as a mapping")
	assert.Len(t, services, 2)

	mysql := services["mysql"].(map[string]interface{})
	assert.Equal(t, "mysql:8.0", mysql["image"])
	hc := mysql["healthcheck"].(map[string]interface{})
	assert.Equal(t, 5, hc["retries"])
}

// TestMarshalOmitsEmptyVolumes verifies that a document with no named
// volumes does not render a volumes key at all.
func TestMarshalOmitsEmptyVolumes(t *testing.T) {
	doc := NewDocument()
	data, err := doc.Marshal()
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.NotContains(t, parsed, "volumes")
}
