package compose

import (
	"bytes"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// composeVersion is the Compose schema version written to every generated
// docker-compose.yml. The generated documents target the v3.8 schema.
const composeVersion = "3.8"

// DefaultNetwork is the shared bridge network every generated service
// joins. It is declared once in the base document, never by fragments.
const DefaultNetwork = "app_network"

// Build describes a build-based service (as opposed to an image-based one).
type Build struct {
	Context    string `yaml:"context"`
	Dockerfile string `yaml:"dockerfile"`
}

// Healthcheck mirrors the Compose healthcheck mapping.
type Healthcheck struct {
	Test        []string `yaml:"test"`
	Interval    string   `yaml:"interval,omitempty"`
	Timeout     string   `yaml:"timeout,omitempty"`
	Retries     int      `yaml:"retries,omitempty"`
	StartPeriod string   `yaml:"start_period,omitempty"`
}

// Service is a single Compose service definition. Exactly one of Image or
// Build should be set; the generators guarantee this, the document does
// not enforce it.
type Service struct {
	Image       string            `yaml:"image,omitempty"`
	Build       *Build            `yaml:"build,omitempty"`
	Command     string            `yaml:"command,omitempty"`
	Restart     string            `yaml:"restart,omitempty"`
	Ports       []string          `yaml:"ports,omitempty"`
	Volumes     []string          `yaml:"volumes,omitempty"`
	Environment map[string]string `yaml:"environment,omitempty"`
	DependsOn   []string          `yaml:"depends_on,omitempty"`
	Healthcheck *Healthcheck      `yaml:"healthcheck,omitempty"`
	Networks    []string          `yaml:"networks,omitempty"`
	ShmSize     string            `yaml:"shm_size,omitempty"`
}

// Volume is a named volume definition. A nil *Volume in the volumes map
// serializes as an empty (null) definition, which Compose accepts and
// treats as a local volume.
type Volume struct {
	Driver string `yaml:"driver,omitempty"`
}

// Network is a network definition.
type Network struct {
	Driver string `yaml:"driver,omitempty"`
}

// Fragment is the partial Compose document contributed by one generator:
// its own services, plus any named volumes and networks those services
// reference. Fragments are independent of each other; composition happens
// only in Document.Merge.
type Fragment struct {
	Services map[string]Service
	Volumes  map[string]*Volume
	Networks map[string]Network
}

// Document is a complete Compose v3.8 document, built incrementally by
// merging generator fragments into the base document.
type Document struct {
	Version  string             `yaml:"version"`
	Services map[string]Service `yaml:"services"`
	Networks map[string]Network `yaml:"networks,omitempty"`
	Volumes  map[string]*Volume `yaml:"volumes,omitempty"`
}

// NewDocument creates the base document: schema version 3.8, no services,
// and the shared app_network bridge network that every fragment's services
// attach to.
func NewDocument() *Document {
	return &Document{
		Version:  composeVersion,
		Services: make(map[string]Service),
		Networks: map[string]Network{
			DefaultNetwork: {Driver: "bridge"},
		},
		Volumes: make(map[string]*Volume),
	}
}

// Merge adds a fragment's services, volumes and networks to the document.
//
// Name collisions are errors: two generators declaring the same service,
// volume or network name almost always means misconfigured generators, and
// a silent last-write-wins merge would drop one side's definition (for
// volumes this can silently discard a database's persistence mount).
// The error names the duplicate key so the failure is diagnosable.
func (d *Document) Merge(frag Fragment) error {
	for name, svc := range frag.Services {
		if _, exists := d.Services[name]; exists {
			return fmt.Errorf("duplicate service %q in compose document", name)
		}
		d.Services[name] = svc
	}
	for name, vol := range frag.Volumes {
		if _, exists := d.Volumes[name]; exists {
			return fmt.Errorf("duplicate volume %q in compose document", name)
		}
		d.Volumes[name] = vol
	}
	for name, nw := range frag.Networks {
		// The shared default network may be referenced by fragments but is
		// declared only by the base document.
		if name == DefaultNetwork {
			continue
		}
		if _, exists := d.Networks[name]; exists {
			return fmt.Errorf("duplicate network %q in compose document", name)
		}
		d.Networks[name] = nw
	}
	return nil
}

// ServiceNames returns the document's service names in sorted order.
func (d *Document) ServiceNames() []string {
	names := make([]string, 0, len(d.Services))
	for name := range d.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Marshal serializes the document to YAML with 2-space indentation.
// An empty volumes map is dropped before encoding so a database-less
// document does not render a dangling "volumes: {}" mapping.
func (d *Document) Marshal() ([]byte, error) {
	doc := *d
	if len(doc.Volumes) == 0 {
		doc.Volumes = nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("failed to serialize compose document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize compose document: %w", err)
	}
	return buf.Bytes(), nil
}
