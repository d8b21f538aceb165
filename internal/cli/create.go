// Package cli — create.go implements the "chimera create" command.
//
// Create is the flag-driven project generator. It orchestrates the full
// workflow:
//  1. Resolve options (flags, then chimera.jsonc defaults) and validate
//  2. Refuse an existing project directory
//  3. Scaffold the directory skeleton
//  4. Generate docker-compose.yml, .env, service configs and boilerplate
//  5. Verify the Docker daemon is reachable
//  6. Pre-create the project network and data volume
//  7. Print the project guide with allocated ports and next steps
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amirofcodes/chimera-stack/internal/config"
	"github.com/amirofcodes/chimera-stack/internal/model"
	"github.com/amirofcodes/chimera-stack/internal/scaffold"
)

// createFlags holds the flag values for the create command.
type createFlags struct {
	language  string
	framework string
	webServer string
	database  string
	tier      string
}

// Built-in option defaults, used when neither a flag nor the defaults
// file supplies a value.
const (
	defaultFramework = "none"
	defaultWebServer = "nginx"
	defaultDatabase  = "mysql"
	defaultTier      = "development"
)

// NewCreateCommand creates the "create" cobra command.
func NewCreateCommand() *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new development environment",
		Long: `Create a new Dockerized development environment in ./<name>.

The command generates the directory layout, docker-compose.yml, .env,
per-service configuration under docker/, and framework boilerplate, then
verifies Docker connectivity and pre-creates the project network and
data volume.

Option values left unset fall back to the chimera.jsonc defaults file in
the working directory, then to none/nginx/mysql/development.

Examples:
  chimera create blog --language php
  chimera create api --language php --framework laravel --database mariadb
  chimera create app --language python --framework django --webserver apache`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd.Context(), cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.language, "language", "", "Project language: php or python (required)")
	cmd.Flags().StringVar(&flags.framework, "framework", "", "Framework: none, laravel, symfony, django, flask")
	cmd.Flags().StringVar(&flags.webServer, "webserver", "", "Web server: nginx or apache")
	cmd.Flags().StringVar(&flags.database, "database", "", "Database: mysql, postgresql or mariadb")
	cmd.Flags().StringVar(&flags.tier, "tier", "", "Environment tier: development, testing or production")
	_ = cmd.MarkFlagRequired("language")

	return cmd
}

// runCreate is the main orchestration function for the create command.
func runCreate(ctx context.Context, cmd *cobra.Command, name string, flags *createFlags) error {
	// Step 1: Resolve the spec. Explicit flags win over the defaults
	// file, which wins over the built-in defaults. Validation happens
	// before anything touches the filesystem.
	defaults, err := config.LoadDefaults()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to load defaults file", err)
	}

	spec, err := resolveSpec(cmd, name, flags, defaults)
	if err != nil {
		return err
	}
	VerboseLog("Project spec: %s %s/%s, %s + %s, tier %s",
		spec.Name, spec.Language, spec.Framework, spec.WebServer, spec.Database, spec.Tier)

	// Steps 2-7: the shared creation pipeline (see init.go).
	return createProject(ctx, *spec)
}

// resolveSpec merges flags, file defaults and built-in defaults into a
// validated ProjectSpec.
func resolveSpec(cmd *cobra.Command, name string, flags *createFlags, defaults config.Defaults) (*model.ProjectSpec, error) {
	pick := func(flagName, flagValue, fileValue, builtin string) string {
		if cmd.Flags().Changed(flagName) {
			return flagValue
		}
		if fileValue != "" {
			return fileValue
		}
		return builtin
	}

	language := flags.language
	if !cmd.Flags().Changed("language") && defaults.Language != "" {
		language = defaults.Language
	}

	lang, err := model.ParseLanguage(language)
	if err != nil {
		return nil, err
	}
	fw, err := model.ParseFramework(pick("framework", flags.framework, defaults.Framework, defaultFramework))
	if err != nil {
		return nil, err
	}
	ws, err := model.ParseWebServer(pick("webserver", flags.webServer, defaults.WebServer, defaultWebServer))
	if err != nil {
		return nil, err
	}
	db, err := model.ParseDatabase(pick("database", flags.database, defaults.Database, defaultDatabase))
	if err != nil {
		return nil, err
	}
	tier, err := model.ParseTier(pick("tier", flags.tier, defaults.Tier, defaultTier))
	if err != nil {
		return nil, err
	}

	spec := &model.ProjectSpec{
		Name:      name,
		Language:  lang,
		Framework: fw,
		WebServer: ws,
		Database:  db,
		Tier:      tier,
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

// cleanupPartial removes a half-built project tree.
func cleanupPartial(root string) {
	VerboseLog("Cleaning up %s", root)
	if err := scaffold.Cleanup(root); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to clean up %s: %v\n", root, err)
	}
}

// printProjectGuide tells the user what was created and how to proceed.
func printProjectGuide(spec model.ProjectSpec, result *config.Result) {
	fmt.Printf("Created project %q\n", spec.Name)
	fmt.Printf("  Stack:     %s/%s, %s, %s (%s tier)\n",
		spec.Language, spec.Framework, spec.WebServer, spec.Database, spec.Tier)
	fmt.Printf("  Web:       http://localhost:%d\n", result.WebPort)
	fmt.Printf("  Database:  localhost:%d (db %q, user %q)\n",
		result.DatabasePort, spec.Name, spec.Name)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", spec.Name)

	for _, step := range frameworkBootstrapSteps(spec) {
		fmt.Printf("  %s\n", step)
	}
	fmt.Printf("  chimera start %s\n", spec.Name)
}

// frameworkBootstrapSteps lists the framework skeleton installation
// commands that run inside the generated containers. Generation itself
// never runs containers, so these stay manual.
func frameworkBootstrapSteps(spec model.ProjectSpec) []string {
	switch spec.Framework {
	case model.FrameworkLaravel:
		return []string{
			"docker compose run --rm php composer create-project laravel/laravel .",
			"docker compose run --rm php php artisan key:generate",
		}
	case model.FrameworkSymfony:
		return []string{
			"docker compose run --rm php composer create-project symfony/skeleton .",
		}
	case model.FrameworkDjango:
		return []string{
			"docker compose run --rm web django-admin startproject config .",
		}
	default:
		return nil
	}
}
