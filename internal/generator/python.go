package generator

import (
	"fmt"

	"github.com/amirofcodes/chimera-stack/internal/compose"
)

// vanillaPythonGenerator scaffolds a plain WSGI application served by
// gunicorn. The app module keeps an application factory so the same code
// runs under gunicorn and the dev server.
type vanillaPythonGenerator struct {
	ctx *Context
}

func (g *vanillaPythonGenerator) DefaultPort() int { return 8000 }

func (g *vanillaPythonGenerator) Fragment() (compose.Fragment, error) {
	return compose.Fragment{
		Services: map[string]compose.Service{
			"web": {
				Build: &compose.Build{
					Context:    ".",
					Dockerfile: "docker/python/Dockerfile",
				},
				Command: "gunicorn --bind 0.0.0.0:8000 --chdir /app/src app:app",
				Volumes: []string{".:/app:cached"},
				Environment: map[string]string{
					"PYTHONDONTWRITEBYTECODE": "1",
					"PYTHONUNBUFFERED":        "1",
					"DB_HOST":                 g.ctx.Spec.Database.ServiceName(),
					"DB_DATABASE":             "${DB_DATABASE}",
					"DB_USERNAME":             "${DB_USERNAME}",
					"DB_PASSWORD":             "${DB_PASSWORD}",
				},
				DependsOn: []string{g.ctx.Spec.Database.ServiceName()},
				Networks:  []string{compose.DefaultNetwork},
			},
		},
	}, nil
}

func (g *vanillaPythonGenerator) WriteConfigFiles(root string) error {
	files := map[string]string{
		"docker/python/Dockerfile": pythonDockerfile,
		"requirements.txt":         vanillaRequirements,
		"src/app.py":               vanillaAppFile,
	}
	for rel, content := range files {
		if err := writeFile(root, rel, content); err != nil {
			return err
		}
	}
	return nil
}

// djangoGenerator scaffolds a Django deployment shell: gunicorn against
// config.wsgi, dedicated static and media volumes, and a requirements set.
// The Django project itself is created with django-admin startproject,
// which the next-steps guide walks through.
type djangoGenerator struct {
	ctx *Context
}

func (g *djangoGenerator) DefaultPort() int { return 8000 }

func (g *djangoGenerator) Fragment() (compose.Fragment, error) {
	name := g.ctx.Spec.Name
	return compose.Fragment{
		Services: map[string]compose.Service{
			"web": {
				Build: &compose.Build{
					Context:    ".",
					Dockerfile: "docker/python/Dockerfile",
				},
				Command: "gunicorn --bind 0.0.0.0:8000 config.wsgi:application",
				Volumes: []string{
					"./src:/app:cached",
					fmt.Sprintf("%s_static:/app/staticfiles", name),
					fmt.Sprintf("%s_media:/app/media", name),
				},
				Environment: map[string]string{
					"PYTHONDONTWRITEBYTECODE": "1",
					"PYTHONUNBUFFERED":        "1",
					"DJANGO_SETTINGS_MODULE":  "config.settings",
					"DB_HOST":                 g.ctx.Spec.Database.ServiceName(),
					"DB_DATABASE":             "${DB_DATABASE}",
					"DB_USERNAME":             "${DB_USERNAME}",
					"DB_PASSWORD":             "${DB_PASSWORD}",
				},
				DependsOn: []string{g.ctx.Spec.Database.ServiceName()},
				Networks:  []string{compose.DefaultNetwork},
			},
		},
		Volumes: map[string]*compose.Volume{
			name + "_static": {Driver: "local"},
			name + "_media":  {Driver: "local"},
		},
	}, nil
}

func (g *djangoGenerator) WriteConfigFiles(root string) error {
	if err := writeFile(root, "docker/python/Dockerfile", pythonDockerfile); err != nil {
		return err
	}
	return writeFile(root, "requirements.txt", djangoRequirements)
}

// flaskGenerator scaffolds a Flask app with its dev-friendly settings and
// the factory-based src/app.py entry point.
type flaskGenerator struct {
	ctx *Context
}

func (g *flaskGenerator) DefaultPort() int { return 5000 }

func (g *flaskGenerator) Fragment() (compose.Fragment, error) {
	return compose.Fragment{
		Services: map[string]compose.Service{
			"web": {
				Build: &compose.Build{
					Context:    ".",
					Dockerfile: "docker/python/Dockerfile",
				},
				Command: "gunicorn --bind 0.0.0.0:5000 --chdir /app/src app:app",
				Volumes: []string{".:/app:cached"},
				Environment: map[string]string{
					"PYTHONDONTWRITEBYTECODE": "1",
					"PYTHONUNBUFFERED":        "1",
					"FLASK_APP":               "src/app.py",
					"FLASK_DEBUG":             "1",
					"DB_HOST":                 g.ctx.Spec.Database.ServiceName(),
					"DB_DATABASE":             "${DB_DATABASE}",
					"DB_USERNAME":             "${DB_USERNAME}",
					"DB_PASSWORD":             "${DB_PASSWORD}",
				},
				DependsOn: []string{g.ctx.Spec.Database.ServiceName()},
				Networks:  []string{compose.DefaultNetwork},
			},
		},
	}, nil
}

func (g *flaskGenerator) WriteConfigFiles(root string) error {
	files := map[string]string{
		"docker/python/Dockerfile": pythonDockerfile,
		"requirements.txt":         flaskRequirements,
		"src/app.py":               flaskAppFile,
	}
	for rel, content := range files {
		if err := writeFile(root, rel, content); err != nil {
			return err
		}
	}
	return nil
}

const pythonDockerfile = `FROM python:3.11-slim

ENV PYTHONDONTWRITEBYTECODE=1 \
    PYTHONUNBUFFERED=1

# Install system dependencies for database drivers
RUN apt-get update && apt-get install -y \
    gcc \
    default-libmysqlclient-dev \
    libpq-dev \
    pkg-config \
    && rm -rf /var/lib/apt/lists/*

WORKDIR /app

COPY requirements.txt .
RUN pip install --no-cache-dir -r requirements.txt

COPY . .
`

const vanillaRequirements = `gunicorn==21.2.0
mysqlclient==2.2.4
psycopg2-binary==2.9.9
python-dotenv==1.0.1
`

const djangoRequirements = `Django==5.0.4
gunicorn==21.2.0
mysqlclient==2.2.4
psycopg2-binary==2.9.9
python-dotenv==1.0.1
whitenoise==6.6.0
`

const flaskRequirements = `Flask==3.0.3
gunicorn==21.2.0
mysqlclient==2.2.4
psycopg2-binary==2.9.9
python-dotenv==1.0.1
`

const vanillaAppFile = `"""WSGI application entry point."""

import os


def create_app():
    def application(environ, start_response):
        path = environ.get("PATH_INFO", "/")
        if path == "/health":
            body = b"ok"
        else:
            body = b"<h1>Welcome to ChimeraStack</h1><p>Your development environment is ready.</p>"
        start_response(
            "200 OK",
            [
                ("Content-Type", "text/html; charset=utf-8"),
                ("Content-Length", str(len(body))),
            ],
        )
        return [body]

    return application


app = create_app()


if __name__ == "__main__":
    from wsgiref.simple_server import make_server

    port = int(os.environ.get("PORT", "8000"))
    with make_server("", port, app) as server:
        print(f"Serving on port {port}...")
        server.serve_forever()
`

const flaskAppFile = `"""Flask application entry point."""

import os

from flask import Flask


def create_app():
    flask_app = Flask(__name__)
    flask_app.config["SECRET_KEY"] = os.environ.get("SECRET_KEY", "dev")

    @flask_app.route("/")
    def index():
        return (
            "<h1>Welcome to ChimeraStack</h1>"
            "<p>Your Flask development environment is ready.</p>"
        )

    @flask_app.route("/health")
    def health():
        return "ok"

    return flask_app


app = create_app()


if __name__ == "__main__":
    app.run(host="0.0.0.0", port=int(os.environ.get("PORT", "5000")))
`
