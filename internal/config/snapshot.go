package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/amirofcodes/chimera-stack/internal/compose"
	"github.com/amirofcodes/chimera-stack/internal/model"
)

// Snapshot is the record of what was generated, written to
// config/<tier>.yaml. The info command reads it back to describe a
// project without re-deriving anything from the Compose file.
type Snapshot struct {
	Project   string `yaml:"project"`
	Language  string `yaml:"language"`
	Framework string `yaml:"framework"`
	WebServer string `yaml:"webserver"`
	Database  string `yaml:"database"`
	Tier      string `yaml:"tier"`

	Ports struct {
		Web      int `yaml:"web"`
		Database int `yaml:"database"`
	} `yaml:"ports"`

	Services []string `yaml:"services"`

	// Compose is the document as generated, embedded so the snapshot is a
	// self-contained record even if docker-compose.yml is later edited.
	Compose *compose.Document `yaml:"compose"`
}

func writeSnapshot(spec model.ProjectSpec, result *Result, root string) error {
	snap := Snapshot{
		Project:   spec.Name,
		Language:  spec.Language.String(),
		Framework: spec.Framework.String(),
		WebServer: spec.WebServer.String(),
		Database:  spec.Database.String(),
		Tier:      spec.Tier.String(),
		Services:  result.Document.ServiceNames(),
		Compose:   result.Document,
	}
	snap.Ports.Web = result.WebPort
	snap.Ports.Database = result.DatabasePort

	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	path := filepath.Join(root, "config", spec.Tier.String()+".yaml")
	return os.WriteFile(path, data, 0o644)
}

// LoadSnapshot finds and parses the tier snapshot of the project at root.
// Projects carry exactly one snapshot; tiers are checked in the order they
// are defined.
func LoadSnapshot(root string) (*Snapshot, error) {
	for _, tier := range []model.Tier{model.TierDevelopment, model.TierTesting, model.TierProduction} {
		path := filepath.Join(root, "config", tier.String()+".yaml")
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var snap Snapshot
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return &snap, nil
	}
	return nil, model.NewCLIError(model.ExitProjectNotFound,
		fmt.Sprintf("no tier snapshot found under %s", filepath.Join(root, "config")))
}
