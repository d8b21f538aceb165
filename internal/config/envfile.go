package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/amirofcodes/chimera-stack/internal/model"
)

// envEntry is one KEY=value line. Entries are written in declaration
// order so the file stays stable across runs.
type envEntry struct {
	key   string
	value string
}

// writeEnvFile renders the project's .env. The file has a commented
// section per concern: PHP runtime settings for PHP projects, then the
// database credentials every project gets. Database name and user derive
// from the project name so each project gets its own namespace.
func writeEnvFile(spec model.ProjectSpec, result *Result, path string) error {
	var b strings.Builder

	if spec.Language == model.LanguagePHP {
		b.WriteString("# PHP Configuration\n")
		for _, e := range phpEnvEntries(spec.Tier) {
			fmt.Fprintf(&b, "%s=%s\n", e.key, e.value)
		}
		b.WriteString("\n")
	}

	if spec.Framework == model.FrameworkDjango {
		b.WriteString("# Django Configuration\n")
		for _, e := range djangoEnvEntries(spec) {
			fmt.Fprintf(&b, "%s=%s\n", e.key, e.value)
		}
		b.WriteString("\n")
	}

	b.WriteString("# Database Configuration\n")
	for _, e := range databaseEnvEntries(spec) {
		fmt.Fprintf(&b, "%s=%s\n", e.key, e.value)
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// djangoEnvEntries returns the Django settings surfaced through the
// environment. The secret key is a placeholder the user replaces before
// anything leaves their machine.
func djangoEnvEntries(spec model.ProjectSpec) []envEntry {
	debug := "1"
	if spec.Tier == model.TierProduction {
		debug = "0"
	}
	return []envEntry{
		{"DJANGO_DEBUG", debug},
		{"DJANGO_SECRET_KEY", "change-me"},
		{"DJANGO_ALLOWED_HOSTS", "localhost,127.0.0.1"},
	}
}

// phpEnvEntries returns the PHP runtime settings for a tier. Development
// surfaces every error; production hides them and trims limits.
func phpEnvEntries(tier model.Tier) []envEntry {
	display := "On"
	reporting := "E_ALL"
	if tier == model.TierProduction {
		display = "Off"
		reporting = "E_ALL & ~E_DEPRECATED & ~E_STRICT"
	}
	return []envEntry{
		{"PHP_DISPLAY_ERRORS", display},
		{"PHP_ERROR_REPORTING", reporting},
		{"PHP_MEMORY_LIMIT", "256M"},
		{"PHP_MAX_EXECUTION_TIME", "60"},
		{"PHP_POST_MAX_SIZE", "32M"},
		{"PHP_UPLOAD_MAX_FILESIZE", "32M"},
	}
}

func databaseEnvEntries(spec model.ProjectSpec) []envEntry {
	return []envEntry{
		{"DB_CONNECTION", dbConnectionName(spec.Database)},
		{"DB_HOST", spec.Database.ServiceName()},
		{"DB_PORT", fmt.Sprintf("%d", inNetworkDBPort(spec.Database))},
		{"DB_DATABASE", spec.Name},
		{"DB_USERNAME", spec.Name},
		{"DB_PASSWORD", "secret"},
		{"DB_ROOT_PASSWORD", "rootsecret"},
	}
}
