// Package cli — info.go implements the "chimera info" command.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/amirofcodes/chimera-stack/internal/config"
)

var (
	infoHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	infoLabel   = lipgloss.NewStyle().Faint(true)
)

// NewInfoCommand creates the "info" cobra command.
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [name]",
		Short: "Show tool or project information",
		Long: `Without arguments, show the supported stack matrix and version.

With a project name, read the project's tier snapshot and show what was
generated: the stack, the services and the allocated host ports.`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runProjectInfo(args[0])
			}
			return runToolInfo()
		},
	}
}

func runToolInfo() error {
	fmt.Println(infoHeading.Render("chimera " + Version))
	fmt.Println()
	fmt.Println(infoHeading.Render("Supported stacks"))

	rows := []struct {
		label  string
		values string
	}{
		{"Languages", "php, python"},
		{"PHP frameworks", "none, laravel, symfony"},
		{"Python frameworks", "none, django, flask"},
		{"Web servers", "nginx, apache"},
		{"Databases", "mysql, postgresql, mariadb"},
		{"Tiers", "development, testing, production"},
	}
	for _, row := range rows {
		fmt.Printf("  %s %s\n",
			infoLabel.Render(fmt.Sprintf("%-19s", row.label+":")), row.values)
	}
	return nil
}

func runProjectInfo(name string) error {
	root, err := requireProject(name)
	if err != nil {
		return err
	}

	snap, err := config.LoadSnapshot(root)
	if err != nil {
		return err
	}

	fmt.Println(infoHeading.Render("Project " + snap.Project))

	rows := []struct {
		label string
		value string
	}{
		{"Language", snap.Language},
		{"Framework", snap.Framework},
		{"Web server", snap.WebServer},
		{"Database", snap.Database},
		{"Tier", snap.Tier},
		{"Services", strings.Join(snap.Services, ", ")},
		{"Web URL", fmt.Sprintf("http://localhost:%d", snap.Ports.Web)},
		{"Database port", fmt.Sprintf("%d", snap.Ports.Database)},
	}
	for _, row := range rows {
		fmt.Printf("  %s %s\n",
			infoLabel.Render(fmt.Sprintf("%-15s", row.label+":")), row.value)
	}
	return nil
}
