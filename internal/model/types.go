package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Language is the primary programming language of a generated project.
type Language string

const (
	// LanguagePHP selects a PHP-FPM based stack.
	LanguagePHP Language = "php"

	// LanguagePython selects a gunicorn based Python stack.
	LanguagePython Language = "python"
)

// String returns the string representation of Language.
func (l Language) String() string {
	return string(l)
}

// IsValid checks whether the Language value is one of the supported languages.
func (l Language) IsValid() bool {
	switch l {
	case LanguagePHP, LanguagePython:
		return true
	default:
		return false
	}
}

// ParseLanguage converts a string to a Language.
// Returns an error if the string does not match any supported language.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(s))
	if !l.IsValid() {
		return "", fmt.Errorf("invalid language: %q (valid: php, python)", s)
	}
	return l, nil
}

// Framework is the web framework scaffolded into a generated project.
// FrameworkNone is a valid choice for both languages and produces a
// vanilla project skeleton.
type Framework string

const (
	// FrameworkNone scaffolds a framework-free project for the chosen language.
	FrameworkNone Framework = "none"

	// FrameworkLaravel scaffolds a Laravel-oriented PHP environment.
	FrameworkLaravel Framework = "laravel"

	// FrameworkSymfony scaffolds a Symfony-oriented PHP environment.
	FrameworkSymfony Framework = "symfony"

	// FrameworkDjango scaffolds a Django-oriented Python environment.
	FrameworkDjango Framework = "django"

	// FrameworkFlask scaffolds a Flask-oriented Python environment.
	FrameworkFlask Framework = "flask"
)

// String returns the string representation of Framework.
func (f Framework) String() string {
	return string(f)
}

// IsValid checks whether the Framework value is one of the known frameworks.
// It does not check language compatibility; see SupportsLanguage.
func (f Framework) IsValid() bool {
	switch f {
	case FrameworkNone, FrameworkLaravel, FrameworkSymfony, FrameworkDjango, FrameworkFlask:
		return true
	default:
		return false
	}
}

// SupportsLanguage reports whether the framework can be combined with the
// given language. FrameworkNone is valid for every language.
func (f Framework) SupportsLanguage(l Language) bool {
	for _, candidate := range FrameworksFor(l) {
		if f == candidate {
			return true
		}
	}
	return false
}

// FrameworksFor returns the frameworks available for a language, in the
// order they are presented by the wizard.
func FrameworksFor(l Language) []Framework {
	switch l {
	case LanguagePHP:
		return []Framework{FrameworkNone, FrameworkLaravel, FrameworkSymfony}
	case LanguagePython:
		return []Framework{FrameworkNone, FrameworkDjango, FrameworkFlask}
	default:
		return nil
	}
}

// ParseFramework converts a string to a Framework.
// Returns an error if the string does not match any known framework.
func ParseFramework(s string) (Framework, error) {
	f := Framework(strings.ToLower(s))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid framework: %q (valid: none, laravel, symfony, django, flask)", s)
	}
	return f, nil
}

// WebServer is the HTTP server placed in front of a generated project.
type WebServer string

const (
	// WebServerNginx uses nginx:stable-alpine.
	WebServerNginx WebServer = "nginx"

	// WebServerApache uses httpd:2.4-alpine.
	WebServerApache WebServer = "apache"
)

// String returns the string representation of WebServer.
func (w WebServer) String() string {
	return string(w)
}

// IsValid checks whether the WebServer value is one of the supported servers.
func (w WebServer) IsValid() bool {
	switch w {
	case WebServerNginx, WebServerApache:
		return true
	default:
		return false
	}
}

// ParseWebServer converts a string to a WebServer.
func ParseWebServer(s string) (WebServer, error) {
	w := WebServer(strings.ToLower(s))
	if !w.IsValid() {
		return "", fmt.Errorf("invalid web server: %q (valid: nginx, apache)", s)
	}
	return w, nil
}

// Database is the database system provisioned for a generated project.
type Database string

const (
	// DatabaseMySQL uses mysql:8.0.
	DatabaseMySQL Database = "mysql"

	// DatabasePostgreSQL uses postgres:13.
	DatabasePostgreSQL Database = "postgresql"

	// DatabaseMariaDB uses mariadb:10.11.
	DatabaseMariaDB Database = "mariadb"
)

// String returns the string representation of Database.
func (d Database) String() string {
	return string(d)
}

// IsValid checks whether the Database value is one of the supported databases.
func (d Database) IsValid() bool {
	switch d {
	case DatabaseMySQL, DatabasePostgreSQL, DatabaseMariaDB:
		return true
	default:
		return false
	}
}

// ParseDatabase converts a string to a Database.
func ParseDatabase(s string) (Database, error) {
	d := Database(strings.ToLower(s))
	if !d.IsValid() {
		return "", fmt.Errorf("invalid database: %q (valid: mysql, postgresql, mariadb)", s)
	}
	return d, nil
}

// ServiceName returns the Compose service name used for the database.
// PostgreSQL historically runs under the shorter "postgres" service name;
// the other databases use their option value unchanged.
func (d Database) ServiceName() string {
	if d == DatabasePostgreSQL {
		return "postgres"
	}
	return string(d)
}

// Tier is the environment tier a project is generated for. The tier selects
// which config/<tier>.yaml snapshot is written alongside the project.
type Tier string

const (
	// TierDevelopment optimizes the generated stack for local development.
	TierDevelopment Tier = "development"

	// TierTesting configures the stack for testing/staging.
	TierTesting Tier = "testing"

	// TierProduction configures the stack for production-like deployment.
	TierProduction Tier = "production"
)

// String returns the string representation of Tier.
func (t Tier) String() string {
	return string(t)
}

// IsValid checks whether the Tier value is one of the supported tiers.
func (t Tier) IsValid() bool {
	switch t {
	case TierDevelopment, TierTesting, TierProduction:
		return true
	default:
		return false
	}
}

// ParseTier converts a string to a Tier.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(s))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid environment tier: %q (valid: development, testing, production)", s)
	}
	return t, nil
}

// ProjectSpec is the full set of user-selected options for one project.
// It is assembled once, by the wizard or by the create command's flags,
// and then passed read-only through the configuration manager to every
// generator.
type ProjectSpec struct {
	// Name is the project (and directory) name.
	Name string `json:"name" yaml:"name"`

	// Language is the primary programming language.
	Language Language `json:"language" yaml:"language"`

	// Framework is the web framework, or FrameworkNone for a vanilla project.
	Framework Framework `json:"framework" yaml:"framework"`

	// WebServer is the HTTP server fronting the application service.
	WebServer WebServer `json:"webserver" yaml:"webserver"`

	// Database is the database system.
	Database Database `json:"database" yaml:"database"`

	// Tier is the environment tier (development, testing, production).
	Tier Tier `json:"tier" yaml:"environment"`
}

// Validate checks the spec for completeness and internal consistency:
// a valid name, valid enum values, and a framework that belongs to the
// selected language.
func (s *ProjectSpec) Validate() error {
	if err := ValidateProjectName(s.Name); err != nil {
		return err
	}
	if !s.Language.IsValid() {
		return fmt.Errorf("invalid language: %q", s.Language)
	}
	if !s.Framework.IsValid() {
		return fmt.Errorf("invalid framework: %q", s.Framework)
	}
	if !s.Framework.SupportsLanguage(s.Language) {
		return fmt.Errorf("framework %q is not available for language %q", s.Framework, s.Language)
	}
	if !s.WebServer.IsValid() {
		return fmt.Errorf("invalid web server: %q", s.WebServer)
	}
	if !s.Database.IsValid() {
		return fmt.Errorf("invalid database: %q", s.Database)
	}
	if !s.Tier.IsValid() {
		return fmt.Errorf("invalid environment tier: %q", s.Tier)
	}
	return nil
}

// AppServiceName returns the Compose service name of the application
// container contributed by the framework generator: "php" for PHP stacks,
// "web" for Python stacks. The web server's depends_on and proxy
// configuration are keyed off this name.
func (s *ProjectSpec) AppServiceName() string {
	if s.Language == LanguagePython {
		return "web"
	}
	return "php"
}

// nameRegex validates project names: letters, digits, underscores and
// hyphens, starting with an alphanumeric character. The name doubles as a
// directory name, a Compose project name, and a prefix for volume and
// network names, so the character set is deliberately conservative.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// ValidateProjectName checks if the given name is a valid project name.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("invalid project name %q: use only letters, numbers, underscores and hyphens, starting with a letter or number", name)
	}
	return nil
}
