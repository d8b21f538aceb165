package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirofcodes/chimera-stack/internal/compose"
	"github.com/amirofcodes/chimera-stack/internal/model"
	"github.com/amirofcodes/chimera-stack/internal/port"
)

func newTestContext(t *testing.T, spec model.ProjectSpec) *Context {
	t.Helper()
	return &Context{Spec: spec, Ports: port.NewAllocator(port.NewScanner())}
}

func phpNginxMySQLSpec() model.ProjectSpec {
	return model.ProjectSpec{
		Name:      "demo",
		Language:  model.LanguagePHP,
		Framework: model.FrameworkNone,
		WebServer: model.WebServerNginx,
		Database:  model.DatabaseMySQL,
		Tier:      model.TierDevelopment,
	}
}

func TestForDatabaseDispatch(t *testing.T) {
	tests := []struct {
		database model.Database
		wantType Generator
	}{
		{model.DatabaseMySQL, &mysqlGenerator{}},
		{model.DatabasePostgreSQL, &postgresGenerator{}},
		{model.DatabaseMariaDB, &mariadbGenerator{}},
	}

	for _, tt := range tests {
		t.Run(tt.database.String(), func(t *testing.T) {
			spec := phpNginxMySQLSpec()
			spec.Database = tt.database
			g, err := ForDatabase(newTestContext(t, spec))
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, g)
		})
	}
}

func TestForFrameworkDispatch(t *testing.T) {
	tests := []struct {
		language  model.Language
		framework model.Framework
		wantType  Generator
	}{
		{model.LanguagePHP, model.FrameworkNone, &vanillaPHPGenerator{}},
		{model.LanguagePHP, model.FrameworkLaravel, &laravelGenerator{}},
		{model.LanguagePHP, model.FrameworkSymfony, &symfonyGenerator{}},
		{model.LanguagePython, model.FrameworkNone, &vanillaPythonGenerator{}},
		{model.LanguagePython, model.FrameworkDjango, &djangoGenerator{}},
		{model.LanguagePython, model.FrameworkFlask, &flaskGenerator{}},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%s/%s", tt.language, tt.framework)
		t.Run(name, func(t *testing.T) {
			spec := phpNginxMySQLSpec()
			spec.Language = tt.language
			spec.Framework = tt.framework
			g, err := ForFramework(newTestContext(t, spec))
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, g)
		})
	}
}

func TestForFrameworkRejectsMismatch(t *testing.T) {
	spec := phpNginxMySQLSpec()
	spec.Framework = model.FrameworkDjango

	_, err := ForFramework(newTestContext(t, spec))
	assert.Error(t, err)
}

func TestAppUpstreamPort(t *testing.T) {
	spec := phpNginxMySQLSpec()
	assert.Equal(t, 9000, appUpstreamPort(spec))

	spec.Language = model.LanguagePython
	spec.Framework = model.FrameworkNone
	assert.Equal(t, 8000, appUpstreamPort(spec))

	spec.Framework = model.FrameworkFlask
	assert.Equal(t, 5000, appUpstreamPort(spec))
}

func TestMySQLFragment(t *testing.T) {
	g, err := ForDatabase(newTestContext(t, phpNginxMySQLSpec()))
	require.NoError(t, err)

	frag, err := g.Fragment()
	require.NoError(t, err)

	svc, ok := frag.Services["mysql"]
	require.True(t, ok)
	assert.Equal(t, "mysql:8.0", svc.Image)
	assert.Equal(t, "unless-stopped", svc.Restart)
	require.Len(t, svc.Ports, 1)
	assert.True(t, strings.HasSuffix(svc.Ports[0], ":3306"))
	assert.Equal(t, "${DB_DATABASE}", svc.Environment["MYSQL_DATABASE"])
	assert.Contains(t, frag.Volumes, "demo_mysql_data")
	assert.Contains(t, svc.Networks, compose.DefaultNetwork)
}

func TestPostgresFragmentPortRange(t *testing.T) {
	spec := phpNginxMySQLSpec()
	spec.Database = model.DatabasePostgreSQL
	g, err := ForDatabase(newTestContext(t, spec))
	require.NoError(t, err)

	frag, err := g.Fragment()
	require.NoError(t, err)

	svc, ok := frag.Services["postgres"]
	require.True(t, ok)
	assert.Equal(t, "postgres:13", svc.Image)
	require.Len(t, svc.Ports, 1)
	assert.True(t, strings.HasSuffix(svc.Ports[0], ":5432"))
}

func TestNginxFragmentPHP(t *testing.T) {
	ctx := newTestContext(t, phpNginxMySQLSpec())
	g, err := ForWebServer(ctx)
	require.NoError(t, err)

	frag, err := g.Fragment()
	require.NoError(t, err)

	svc, ok := frag.Services["nginx"]
	require.True(t, ok)
	assert.Equal(t, "nginx:stable-alpine", svc.Image)
	assert.Contains(t, svc.DependsOn, "php")
	assert.Contains(t, svc.Volumes, ".:/var/www/html:cached")
}

func TestNginxFragmentPythonOmitsDocroot(t *testing.T) {
	spec := phpNginxMySQLSpec()
	spec.Language = model.LanguagePython
	g, err := ForWebServer(newTestContext(t, spec))
	require.NoError(t, err)

	frag, err := g.Fragment()
	require.NoError(t, err)

	svc := frag.Services["nginx"]
	assert.Contains(t, svc.DependsOn, "web")
	assert.NotContains(t, svc.Volumes, ".:/var/www/html:cached")
}

func TestNginxConfigProxiesPython(t *testing.T) {
	spec := phpNginxMySQLSpec()
	spec.Language = model.LanguagePython
	spec.Framework = model.FrameworkFlask
	g, err := ForWebServer(newTestContext(t, spec))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, g.WriteConfigFiles(dir))

	data, err := os.ReadFile(filepath.Join(dir, "docker", "nginx", "conf.d", "default.conf"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "proxy_pass http://web:5000")
	assert.NotContains(t, string(data), "fastcgi_pass")
}

func TestVanillaPHPWritesBoilerplate(t *testing.T) {
	g, err := ForFramework(newTestContext(t, phpNginxMySQLSpec()))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, g.WriteConfigFiles(dir))

	for _, rel := range []string{
		"docker/php/Dockerfile",
		"docker/php/php.ini",
		"docker/php/www.conf",
		"public/index.php",
		"src/bootstrap.php",
		"src/pages/home.php",
	} {
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
		assert.NoError(t, err, rel)
	}
}

func TestLaravelEnvUsesProjectName(t *testing.T) {
	spec := phpNginxMySQLSpec()
	spec.Framework = model.FrameworkLaravel
	g, err := ForFramework(newTestContext(t, spec))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, g.WriteConfigFiles(dir))

	data, err := os.ReadFile(filepath.Join(dir, "src", ".env"))
	require.NoError(t, err)
	env := string(data)
	assert.Contains(t, env, "DB_CONNECTION=mysql")
	assert.Contains(t, env, "DB_HOST=mysql")
	assert.Contains(t, env, "DB_DATABASE=demo")
	assert.Contains(t, env, "DB_USERNAME=demo")
}

func TestLaravelEnvPostgres(t *testing.T) {
	spec := phpNginxMySQLSpec()
	spec.Framework = model.FrameworkLaravel
	spec.Database = model.DatabasePostgreSQL
	g, err := ForFramework(newTestContext(t, spec))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, g.WriteConfigFiles(dir))

	data, err := os.ReadFile(filepath.Join(dir, "src", ".env"))
	require.NoError(t, err)
	env := string(data)
	assert.Contains(t, env, "DB_CONNECTION=pgsql")
	assert.Contains(t, env, "DB_HOST=postgres")
	assert.Contains(t, env, "DB_PORT=5432")
}

func TestDjangoFragmentVolumes(t *testing.T) {
	spec := phpNginxMySQLSpec()
	spec.Language = model.LanguagePython
	spec.Framework = model.FrameworkDjango
	g, err := ForFramework(newTestContext(t, spec))
	require.NoError(t, err)

	frag, err := g.Fragment()
	require.NoError(t, err)

	assert.Contains(t, frag.Volumes, "demo_static")
	assert.Contains(t, frag.Volumes, "demo_media")
	svc := frag.Services["web"]
	assert.Contains(t, svc.Command, "config.wsgi:application")
}

func TestFlaskFragment(t *testing.T) {
	spec := phpNginxMySQLSpec()
	spec.Language = model.LanguagePython
	spec.Framework = model.FrameworkFlask
	g, err := ForFramework(newTestContext(t, spec))
	require.NoError(t, err)

	frag, err := g.Fragment()
	require.NoError(t, err)

	svc, ok := frag.Services["web"]
	require.True(t, ok)
	assert.Contains(t, svc.Command, "0.0.0.0:5000")
	assert.Equal(t, "src/app.py", svc.Environment["FLASK_APP"])
	assert.Equal(t, 5000, g.DefaultPort())
}
