package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLanguage verifies parsing of supported and unsupported languages,
// including case normalization.
func TestParseLanguage(t *testing.T) {
	l, err := ParseLanguage("PHP")
	require.NoError(t, err)
	assert.Equal(t, LanguagePHP, l)

	l, err = ParseLanguage("python")
	require.NoError(t, err)
	assert.Equal(t, LanguagePython, l)

	_, err = ParseLanguage("ruby")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid language")
}

// TestFrameworksFor verifies the language-scoped framework option tables
// used by the wizard and by ProjectSpec validation.
func TestFrameworksFor(t *testing.T) {
	assert.Equal(t, []Framework{FrameworkNone, FrameworkLaravel, FrameworkSymfony}, FrameworksFor(LanguagePHP))
	assert.Equal(t, []Framework{FrameworkNone, FrameworkDjango, FrameworkFlask}, FrameworksFor(LanguagePython))
	assert.Nil(t, FrameworksFor(Language("ruby")))
}

// TestFrameworkSupportsLanguage verifies cross-language rejection: Django
// is Python-only, Laravel is PHP-only, and "none" works everywhere.
func TestFrameworkSupportsLanguage(t *testing.T) {
	assert.True(t, FrameworkNone.SupportsLanguage(LanguagePHP))
	assert.True(t, FrameworkNone.SupportsLanguage(LanguagePython))
	assert.True(t, FrameworkLaravel.SupportsLanguage(LanguagePHP))
	assert.False(t, FrameworkLaravel.SupportsLanguage(LanguagePython))
	assert.True(t, FrameworkDjango.SupportsLanguage(LanguagePython))
	assert.False(t, FrameworkDjango.SupportsLanguage(LanguagePHP))
}

// TestDatabaseServiceName verifies the Compose service naming rule:
// postgresql runs under the "postgres" service name, the others keep
// their option value.
func TestDatabaseServiceName(t *testing.T) {
	assert.Equal(t, "mysql", DatabaseMySQL.ServiceName())
	assert.Equal(t, "mariadb", DatabaseMariaDB.ServiceName())
	assert.Equal(t, "postgres", DatabasePostgreSQL.ServiceName())
}

// TestProjectSpecValidate covers the consistency rules enforced before any
// filesystem write happens.
func TestProjectSpecValidate(t *testing.T) {
	valid := ProjectSpec{
		Name:      "demo",
		Language:  LanguagePHP,
		Framework: FrameworkNone,
		WebServer: WebServerNginx,
		Database:  DatabaseMySQL,
		Tier:      TierDevelopment,
	}
	require.NoError(t, valid.Validate())

	t.Run("framework language mismatch", func(t *testing.T) {
		spec := valid
		spec.Framework = FrameworkDjango
		err := spec.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not available for language")
	})

	t.Run("empty name", func(t *testing.T) {
		spec := valid
		spec.Name = ""
		assert.Error(t, spec.Validate())
	})

	t.Run("invalid database", func(t *testing.T) {
		spec := valid
		spec.Database = Database("sqlite")
		assert.Error(t, spec.Validate())
	})
}

// TestValidateProjectName checks the accepted character set. The name is
// reused as a directory, Compose project, and volume prefix, so leading
// hyphens and path separators must be rejected.
func TestValidateProjectName(t *testing.T) {
	for _, name := range []string{"demo", "my-app", "my_app", "app2", "0day"} {
		assert.NoError(t, ValidateProjectName(name), name)
	}
	for _, name := range []string{"", "-demo", "_demo", "my app", "a/b", "demo!", "../demo"} {
		assert.Error(t, ValidateProjectName(name), name)
	}
}

// TestAppServiceName verifies the app service naming convention consumed
// by the web server generators.
func TestAppServiceName(t *testing.T) {
	php := ProjectSpec{Language: LanguagePHP}
	py := ProjectSpec{Language: LanguagePython}
	assert.Equal(t, "php", php.AppServiceName())
	assert.Equal(t, "web", py.AppServiceName())
}

// TestCLIErrorUnwrap verifies that wrapped errors stay reachable through
// errors.Is, which Execute relies on for exit-code selection.
func TestCLIErrorUnwrap(t *testing.T) {
	cause := errors.New("socket missing")
	err := WrapCLIError(ExitDockerNotRunning, "Docker is not available", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ExitDockerNotRunning, err.Code)
	assert.Contains(t, err.Error(), "Docker is not available")
	assert.Contains(t, err.Error(), "socket missing")

	plain := NewCLIError(ExitProjectExists, "project directory 'demo' already exists")
	assert.Nil(t, plain.Unwrap())
	assert.Equal(t, "project directory 'demo' already exists", plain.Error())
}
