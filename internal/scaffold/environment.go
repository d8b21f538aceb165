package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amirofcodes/chimera-stack/internal/model"
)

// Standard subdirectories created under every project root.
var projectDirs = []string{"src", "public", "config"}

// Placeholder files created empty so later steps can fill them in.
var projectFiles = []string{".env", "docker-compose.yml"}

const gitignoreContent = `# Environment files
.env
*.env

# Docker
.docker/

# Dependencies
/vendor/
/node_modules/
__pycache__/
*.py[cod]

# IDE
.idea/
.vscode/
*.swp

# OS
.DS_Store
Thumbs.db

# Logs
*.log
`

// Setup creates the project skeleton at path. It refuses to touch a path
// that already exists, no matter what it contains.
func Setup(path string) error {
	if _, err := os.Stat(path); err == nil {
		return model.NewCLIError(model.ExitProjectExists,
			fmt.Sprintf("directory %q already exists", path))
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check project path: %w", err)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	for _, dir := range projectDirs {
		if err := os.MkdirAll(filepath.Join(path, dir), 0o755); err != nil {
			return fmt.Errorf("failed to create %s directory: %w", dir, err)
		}
	}

	for _, name := range projectFiles {
		if err := os.WriteFile(filepath.Join(path, name), nil, 0o644); err != nil {
			return fmt.Errorf("failed to create %s: %w", name, err)
		}
	}

	if err := os.WriteFile(filepath.Join(path, ".gitignore"), []byte(gitignoreContent), 0o644); err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	return nil
}

// Cleanup removes a partially created project tree. Used when a later
// create step fails and the skeleton should not be left behind.
func Cleanup(path string) error {
	return os.RemoveAll(path)
}

// PruneEmptyDirs removes the named subdirectories of root when they exist
// and are empty. Generators only create the directories they need, but a
// skeleton directory that stayed empty is noise in the final tree.
func PruneEmptyDirs(root string, dirs ...string) {
	for _, dir := range dirs {
		path := filepath.Join(root, dir)
		entries, err := os.ReadDir(path)
		if err != nil || len(entries) > 0 {
			continue
		}
		_ = os.Remove(path)
	}
}
