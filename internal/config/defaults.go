package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// DefaultsFile is the optional per-directory defaults file. It supplies
// default option values for create flags left unset and initial wizard
// selections.
const DefaultsFile = "chimera.jsonc"

// Defaults are the user's preferred answers, read from chimera.jsonc in
// the working directory. The file is JSONC so users can comment out
// choices without deleting them.
type Defaults struct {
	Language  string `json:"language"`
	Framework string `json:"framework"`
	WebServer string `json:"webserver"`
	Database  string `json:"database"`
	Tier      string `json:"tier"`
}

// LoadDefaults reads the defaults file from the working directory. A
// missing file is not an error; it just yields empty defaults.
func LoadDefaults() (Defaults, error) {
	return loadDefaultsFrom(DefaultsFile)
}

func loadDefaultsFrom(path string) (Defaults, error) {
	var d Defaults
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return d, nil
	}
	if err != nil {
		return d, fmt.Errorf("failed to read defaults file: %w", err)
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &d); err != nil {
		return d, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return d, nil
}
