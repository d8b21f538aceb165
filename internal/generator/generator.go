package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amirofcodes/chimera-stack/internal/compose"
	"github.com/amirofcodes/chimera-stack/internal/model"
	"github.com/amirofcodes/chimera-stack/internal/port"
)

// Host port probe ranges per service family. The ranges mirror the probing
// behavior users already rely on: databases start at their well-known port
// and walk upward, web servers start at 8000.
const (
	mysqlPortStart = 3306
	mysqlPortEnd   = 3400

	postgresPortStart = 5432
	postgresPortEnd   = 5500

	webPortStart = 8000
	webPortEnd   = 8100
)

// Context carries everything a generator needs: the immutable project
// spec and the shared port allocator for the current create run.
type Context struct {
	Spec  model.ProjectSpec
	Ports *port.Allocator
}

// Generator is the capability set shared by all service and framework
// generators.
type Generator interface {
	// Fragment produces the generator's partial Compose document. It may
	// reserve host ports through the context's allocator.
	Fragment() (compose.Fragment, error)

	// WriteConfigFiles writes the config files the fragment references
	// (mounted configs, Dockerfiles, framework boilerplate) under the
	// project root.
	WriteConfigFiles(root string) error

	// DefaultPort reports the service's canonical container port.
	DefaultPort() int
}

// ForDatabase returns the generator for the selected database.
func ForDatabase(ctx *Context) (Generator, error) {
	switch ctx.Spec.Database {
	case model.DatabaseMySQL:
		return &mysqlGenerator{ctx: ctx}, nil
	case model.DatabasePostgreSQL:
		return &postgresGenerator{ctx: ctx}, nil
	case model.DatabaseMariaDB:
		return &mariadbGenerator{ctx: ctx}, nil
	default:
		return nil, fmt.Errorf("no generator for database %q", ctx.Spec.Database)
	}
}

// ForWebServer returns the generator for the selected web server.
func ForWebServer(ctx *Context) (Generator, error) {
	switch ctx.Spec.WebServer {
	case model.WebServerNginx:
		return &nginxGenerator{ctx: ctx}, nil
	case model.WebServerApache:
		return &apacheGenerator{ctx: ctx}, nil
	default:
		return nil, fmt.Errorf("no generator for web server %q", ctx.Spec.WebServer)
	}
}

// ForFramework returns the generator for the selected language/framework
// combination.
func ForFramework(ctx *Context) (Generator, error) {
	switch ctx.Spec.Language {
	case model.LanguagePHP:
		switch ctx.Spec.Framework {
		case model.FrameworkNone:
			return &vanillaPHPGenerator{ctx: ctx}, nil
		case model.FrameworkLaravel:
			return &laravelGenerator{ctx: ctx}, nil
		case model.FrameworkSymfony:
			return &symfonyGenerator{ctx: ctx}, nil
		}
	case model.LanguagePython:
		switch ctx.Spec.Framework {
		case model.FrameworkNone:
			return &vanillaPythonGenerator{ctx: ctx}, nil
		case model.FrameworkDjango:
			return &djangoGenerator{ctx: ctx}, nil
		case model.FrameworkFlask:
			return &flaskGenerator{ctx: ctx}, nil
		}
	}
	return nil, fmt.Errorf("no generator for %s framework %q", ctx.Spec.Language, ctx.Spec.Framework)
}

// appUpstreamPort returns the container port the web server forwards
// requests to: PHP-FPM listens on 9000, Flask apps on 5000, every other
// Python app on 8000.
func appUpstreamPort(spec model.ProjectSpec) int {
	if spec.Language == model.LanguagePHP {
		return 9000
	}
	if spec.Framework == model.FrameworkFlask {
		return 5000
	}
	return 8000
}

// writeFile writes content to root/rel, creating parent directories as
// needed. All generated files are world-readable configs.
func writeFile(root, rel, content string) error {
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return nil
}
