package wizard

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/huh/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/amirofcodes/chimera-stack/internal/config"
	"github.com/amirofcodes/chimera-stack/internal/model"
)

var (
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Faint(true)
)

// answers holds the raw form values between wizard rounds, so a "start
// over" keeps the previous choices as the new initial selections.
type answers struct {
	name      string
	tier      string
	language  string
	framework string
	webServer string
	database  string
}

func answersFromDefaults(defaults config.Defaults) answers {
	return answers{
		tier:      preselect(tierOptions(), defaults.Tier),
		language:  preselect(languageOptions(), defaults.Language),
		framework: defaults.Framework,
		webServer: preselect(webServerOptions(), defaults.WebServer),
		database:  preselect(databaseOptions(), defaults.Database),
	}
}

// Run walks the user through the interactive setup and returns the
// resulting project spec. Defaults prefill select fields when they name a
// valid choice. Every answer is confirmed in place: choosing "Change" at
// a step's confirmation re-asks that step with the previous answer
// preselected.
//
// A (nil, nil) return means the user declined the final confirmation and
// chose not to start over; the caller reports "Setup cancelled" and exits
// cleanly. Aborting a prompt (Esc, Ctrl+C) returns a model.CLIError with
// ExitUserCancelled.
func Run(defaults config.Defaults) (*model.ProjectSpec, error) {
	a := answersFromDefaults(defaults)

	for {
		if err := collect(&a); err != nil {
			return nil, err
		}

		spec, err := buildSpec(a)
		if err != nil {
			return nil, err
		}

		confirmed, err := confirmSpec(*spec)
		if err != nil {
			return nil, err
		}
		if confirmed {
			return spec, nil
		}

		retry, err := askRetry()
		if err != nil {
			return nil, err
		}
		if !retry {
			return nil, nil
		}
	}
}

// collect asks the questions one step at a time and fills in a. Each
// answer is followed by a keep-or-change confirmation; choosing to change
// re-asks that question.
func collect(a *answers) error {
	if err := askStep(func() error {
		return runForm(huh.NewGroup(
			huh.NewNote().Title("Let's set up your development environment"),
			huh.NewInput().
				Title("Project name").
				Description("Used for the directory, database name and database user").
				Value(&a.name).
				Validate(model.ValidateProjectName),
		))
	}, stepConfirm("project name", &a.name)); err != nil {
		return err
	}

	if err := askStep(func() error {
		return runForm(selectGroup("Environment tier", tierOptions(), &a.tier))
	}, stepConfirm("environment tier", &a.tier)); err != nil {
		return err
	}

	if err := askStep(func() error {
		return runForm(selectGroup("Language", languageOptions(), &a.language))
	}, stepConfirm("language", &a.language)); err != nil {
		return err
	}

	lang, err := model.ParseLanguage(a.language)
	if err != nil {
		return err
	}
	a.framework = preselect(frameworkOptions(lang), a.framework)

	if err := askStep(func() error {
		return runForm(selectGroup("Framework", frameworkOptions(lang), &a.framework))
	}, stepConfirm("framework", &a.framework)); err != nil {
		return err
	}

	if err := askStep(func() error {
		return runForm(selectGroup("Web server", webServerOptions(), &a.webServer))
	}, stepConfirm("web server", &a.webServer)); err != nil {
		return err
	}

	return askStep(func() error {
		return runForm(selectGroup("Database", databaseOptions(), &a.database))
	}, stepConfirm("database", &a.database))
}

// askStep runs one question until its answer is confirmed. A declined
// confirmation re-asks the question; errors from either prompt end the
// step.
func askStep(run func() error, confirm func() (bool, error)) error {
	for {
		if err := run(); err != nil {
			return err
		}
		keep, err := confirm()
		if err != nil {
			return err
		}
		if keep {
			return nil
		}
	}
}

// stepConfirm builds the keep-or-change prompt for a step. The value is
// read through a pointer so the prompt shows the answer just given.
func stepConfirm(label string, value *string) func() (bool, error) {
	return func() (bool, error) {
		keep := true
		err := runForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Keep %q as the %s?", *value, label)).
				Affirmative("Keep").
				Negative("Change").
				Value(&keep),
		))
		if err != nil {
			return false, err
		}
		return keep, nil
	}
}

func selectGroup(title string, options []string, value *string) *huh.Group {
	return huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(huh.NewOptions(options...)...).
			Value(value),
	)
}

// runForm wraps a single group in a themed form and maps prompt aborts
// to the CLI cancellation error.
func runForm(group *huh.Group) error {
	if err := huh.NewForm(group).WithTheme(huh.ThemeCharm(true)).Run(); err != nil {
		return cancelled(err)
	}
	return nil
}

func confirmSpec(spec model.ProjectSpec) (bool, error) {
	var confirmed bool
	err := runForm(huh.NewGroup(
		huh.NewNote().Title("Review").Description(Summary(spec)),
		huh.NewConfirm().
			Title("Create this project?").
			Affirmative("Create").
			Negative("No").
			Value(&confirmed),
	))
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

func askRetry() (bool, error) {
	var retry bool
	err := runForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Change your answers?").
			Affirmative("Start over").
			Negative("Quit").
			Value(&retry),
	))
	if err != nil {
		return false, err
	}
	return retry, nil
}

// buildSpec parses the collected answers into a validated ProjectSpec.
func buildSpec(a answers) (*model.ProjectSpec, error) {
	lang, err := model.ParseLanguage(a.language)
	if err != nil {
		return nil, err
	}
	fw, err := model.ParseFramework(a.framework)
	if err != nil {
		return nil, err
	}
	ws, err := model.ParseWebServer(a.webServer)
	if err != nil {
		return nil, err
	}
	db, err := model.ParseDatabase(a.database)
	if err != nil {
		return nil, err
	}
	tier, err := model.ParseTier(a.tier)
	if err != nil {
		return nil, err
	}

	spec := &model.ProjectSpec{
		Name:      a.name,
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

// Summary renders the chosen stack for the review step.
func Summary(spec model.ProjectSpec) string {
	rows := []struct {
		label string
		value string
	}{
		{"Project", spec.Name},
		{"Language", spec.Language.String()},
		{"Framework", spec.Framework.String()},
		{"Web server", spec.WebServer.String()},
		{"Database", spec.Database.String()},
		{"Tier", spec.Tier.String()},
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-11s", row.label+":")),
			valueStyle.Render(row.value),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

// preselect returns def when it is one of options, otherwise the first
// option. Keeps a stale or misspelled defaults file from breaking the
// wizard.
func preselect(options []string, def string) string {
	for _, opt := range options {
		if opt == def {
			return opt
		}
	}
	return options[0]
}

func languageOptions() []string {
	return []string{model.LanguagePHP.String(), model.LanguagePython.String()}
}

func frameworkOptions(lang model.Language) []string {
	frameworks := model.FrameworksFor(lang)
	options := make([]string, 0, len(frameworks))
	for _, fw := range frameworks {
		options = append(options, fw.String())
	}
	return options
}

func webServerOptions() []string {
	return []string{model.WebServerNginx.String(), model.WebServerApache.String()}
}

func databaseOptions() []string {
	return []string{
		model.DatabaseMySQL.String(),
		model.DatabasePostgreSQL.String(),
		model.DatabaseMariaDB.String(),
	}
}

// cancelled maps a form abort (Esc or Ctrl+C) to the CLI's cancellation
// error; other form errors pass through unchanged.
func cancelled(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return model.NewCLIError(model.ExitUserCancelled, "setup cancelled")
	}
	return err
}
