package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/amirofcodes/chimera-stack/internal/compose"
	"github.com/amirofcodes/chimera-stack/internal/generator"
	"github.com/amirofcodes/chimera-stack/internal/model"
	"github.com/amirofcodes/chimera-stack/internal/port"
)

// Result describes what Initialize produced: the merged Compose document
// and the host ports it allocated.
type Result struct {
	Document *compose.Document

	// WebPort is the host port mapped to the web server.
	WebPort int

	// DatabasePort is the host port mapped to the database.
	DatabasePort int
}

// Initialize generates the full project configuration under root: it runs
// the database, web server and framework generators against a shared port
// allocator, merges their fragments, and writes docker-compose.yml, .env
// and the tier snapshot. The skeleton created by scaffold.Setup must
// already exist at root.
func Initialize(spec model.ProjectSpec, root string) (*Result, error) {
	ctx := &generator.Context{
		Spec:  spec,
		Ports: port.NewAllocator(port.NewScanner()),
	}

	dbGen, err := generator.ForDatabase(ctx)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigFailed, "failed to resolve database generator", err)
	}
	webGen, err := generator.ForWebServer(ctx)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigFailed, "failed to resolve web server generator", err)
	}
	fwGen, err := generator.ForFramework(ctx)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigFailed, "failed to resolve framework generator", err)
	}

	doc := compose.NewDocument()
	for _, gen := range []generator.Generator{dbGen, webGen, fwGen} {
		frag, err := gen.Fragment()
		if err != nil {
			return nil, model.WrapCLIError(model.ExitConfigFailed, "failed to build compose fragment", err)
		}
		if err := doc.Merge(frag); err != nil {
			return nil, model.WrapCLIError(model.ExitConfigFailed, "compose fragments conflict", err)
		}
		if err := gen.WriteConfigFiles(root); err != nil {
			return nil, model.WrapCLIError(model.ExitConfigFailed, "failed to write config files", err)
		}
	}

	data, err := doc.Marshal()
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigFailed, "failed to render docker-compose.yml", err)
	}
	if err := os.WriteFile(filepath.Join(root, "docker-compose.yml"), data, 0o644); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigFailed, "failed to write docker-compose.yml", err)
	}

	result := &Result{
		Document:     doc,
		WebPort:      hostPort(doc, spec.WebServer.String()),
		DatabasePort: hostPort(doc, spec.Database.ServiceName()),
	}

	if err := writeEnvFile(spec, result, filepath.Join(root, ".env")); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigFailed, "failed to write .env", err)
	}
	if err := writeSnapshot(spec, result, root); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigFailed, "failed to write tier snapshot", err)
	}

	return result, nil
}

// hostPort extracts the host side of a service's first port mapping, or 0
// when the service publishes nothing.
func hostPort(doc *compose.Document, service string) int {
	svc, ok := doc.Services[service]
	if !ok || len(svc.Ports) == 0 {
		return 0
	}
	host, _, found := strings.Cut(svc.Ports[0], ":")
	if !found {
		return 0
	}
	n, err := strconv.Atoi(host)
	if err != nil {
		return 0
	}
	return n
}

// inNetworkDBPort returns the port the database listens on inside the
// Compose network.
func inNetworkDBPort(db model.Database) int {
	if db == model.DatabasePostgreSQL {
		return 5432
	}
	return 3306
}

// dbConnectionName returns the driver name applications use to identify
// the database engine.
func dbConnectionName(db model.Database) string {
	switch db {
	case model.DatabasePostgreSQL:
		return "pgsql"
	case model.DatabaseMariaDB:
		return "mysql"
	default:
		return "mysql"
	}
}

// ProjectRoot returns the project directory for a name, relative to the
// current working directory.
func ProjectRoot(name string) (string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project path: %w", err)
	}
	return abs, nil
}
