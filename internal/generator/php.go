package generator

import (
	"fmt"

	"github.com/amirofcodes/chimera-stack/internal/compose"
	"github.com/amirofcodes/chimera-stack/internal/model"
)

// vanillaPHPGenerator scaffolds a framework-free PHP-FPM project: the
// public/index.php front controller, a bootstrap with env loading and an
// autoloader, and the PHP runtime image.
type vanillaPHPGenerator struct {
	ctx *Context
}

func (g *vanillaPHPGenerator) DefaultPort() int { return 9000 }

func (g *vanillaPHPGenerator) Fragment() (compose.Fragment, error) {
	return compose.Fragment{
		Services: map[string]compose.Service{
			"php": {
				Build: &compose.Build{
					Context:    ".",
					Dockerfile: "docker/php/Dockerfile",
				},
				Volumes: []string{
					".:/var/www/html:cached",
					"./docker/php/www.conf:/usr/local/etc/php-fpm.d/www.conf:ro",
				},
				Environment: map[string]string{
					"PHP_DISPLAY_ERRORS":      "${PHP_DISPLAY_ERRORS}",
					"PHP_ERROR_REPORTING":     "${PHP_ERROR_REPORTING}",
					"PHP_MEMORY_LIMIT":        "${PHP_MEMORY_LIMIT}",
					"PHP_MAX_EXECUTION_TIME":  "${PHP_MAX_EXECUTION_TIME}",
					"PHP_POST_MAX_SIZE":       "${PHP_POST_MAX_SIZE}",
					"PHP_UPLOAD_MAX_FILESIZE": "${PHP_UPLOAD_MAX_FILESIZE}",
				},
				DependsOn: []string{g.ctx.Spec.Database.ServiceName()},
				Networks:  []string{compose.DefaultNetwork},
			},
		},
	}, nil
}

func (g *vanillaPHPGenerator) WriteConfigFiles(root string) error {
	files := map[string]string{
		"docker/php/Dockerfile": vanillaPHPDockerfile,
		"docker/php/php.ini":    phpIniConfig,
		"docker/php/www.conf":   phpFPMPoolConfig,
		"public/index.php":      phpIndexFile,
		"src/bootstrap.php":     phpBootstrapFile,
		"src/pages/home.php":    phpHomePage,
	}
	for rel, content := range files {
		if err := writeFile(root, rel, content); err != nil {
			return err
		}
	}
	return nil
}

// laravelGenerator scaffolds a Laravel-oriented environment: the PHP image
// with Laravel's extension set and Composer, plus a ready-to-use src/.env.
// The Laravel skeleton itself is installed by the user afterwards
// ("composer create-project" is printed in the next-steps guide), so
// generation works without a reachable Docker daemon.
type laravelGenerator struct {
	ctx *Context
}

func (g *laravelGenerator) DefaultPort() int { return 9000 }

func (g *laravelGenerator) Fragment() (compose.Fragment, error) {
	return compose.Fragment{
		Services: map[string]compose.Service{
			"php": {
				Build: &compose.Build{
					Context:    ".",
					Dockerfile: "docker/php/Dockerfile",
				},
				Volumes: []string{
					"./src:/var/www/html:cached",
					"./docker/php/local.ini:/usr/local/etc/php/conf.d/local.ini:ro",
				},
				DependsOn: []string{g.ctx.Spec.Database.ServiceName()},
				Networks:  []string{compose.DefaultNetwork},
			},
		},
	}, nil
}

func (g *laravelGenerator) WriteConfigFiles(root string) error {
	if err := writeFile(root, "docker/php/Dockerfile", laravelDockerfile); err != nil {
		return err
	}
	if err := writeFile(root, "docker/php/local.ini", laravelPHPIni); err != nil {
		return err
	}
	connection, port := laravelConnection(g.ctx.Spec.Database)
	env := fmt.Sprintf(laravelEnvFile,
		connection,
		g.ctx.Spec.Database.ServiceName(),
		port,
		g.ctx.Spec.Name,
		g.ctx.Spec.Name,
	)
	return writeFile(root, "src/.env", env)
}

// symfonyGenerator scaffolds a Symfony-oriented environment on php:8.3-fpm
// with intl and opcache. Like Laravel, the framework skeleton install is
// left to the user.
type symfonyGenerator struct {
	ctx *Context
}

func (g *symfonyGenerator) DefaultPort() int { return 9000 }

func (g *symfonyGenerator) Fragment() (compose.Fragment, error) {
	return compose.Fragment{
		Services: map[string]compose.Service{
			"php": {
				Build: &compose.Build{
					Context:    ".",
					Dockerfile: "docker/php/Dockerfile",
				},
				Volumes: []string{
					".:/var/www/html:cached",
					"./docker/php/php.ini:/usr/local/etc/php/conf.d/custom.ini:ro",
				},
				DependsOn: []string{g.ctx.Spec.Database.ServiceName()},
				Networks:  []string{compose.DefaultNetwork},
			},
		},
	}, nil
}

func (g *symfonyGenerator) WriteConfigFiles(root string) error {
	if err := writeFile(root, "docker/php/Dockerfile", symfonyDockerfile); err != nil {
		return err
	}
	return writeFile(root, "docker/php/php.ini", symfonyPHPIni)
}

const vanillaPHPDockerfile = `FROM php:8.2-fpm

# Install system dependencies
RUN apt-get update && apt-get install -y \
    git \
    zip \
    unzip \
    libpng-dev \
    libonig-dev \
    libzip-dev \
    && rm -rf /var/lib/apt/lists/*

# Install PHP extensions
RUN docker-php-ext-configure gd && \
    docker-php-ext-install pdo pdo_mysql mbstring zip exif gd

# Configure PHP
COPY docker/php/php.ini /usr/local/etc/php/conf.d/custom.ini

WORKDIR /var/www/html
`

const laravelDockerfile = `FROM php:8.2-fpm

# Install dependencies
RUN apt-get update && apt-get install -y \
    git \
    curl \
    libpng-dev \
    libonig-dev \
    libxml2-dev \
    zip \
    unzip \
    && rm -rf /var/lib/apt/lists/*

# Install PHP extensions
RUN docker-php-ext-install \
    pdo_mysql mbstring exif pcntl bcmath gd

# Install Composer
RUN curl -sS https://getcomposer.org/installer | php -- --install-dir=/usr/local/bin --filename=composer

WORKDIR /var/www/html
`

const symfonyDockerfile = `FROM php:8.3-fpm

# Install system dependencies
RUN apt-get update && apt-get install -y \
    git \
    zip \
    unzip \
    libicu-dev \
    libzip-dev \
    && rm -rf /var/lib/apt/lists/*

# Install PHP extensions
RUN docker-php-ext-configure intl && \
    docker-php-ext-install pdo pdo_mysql zip intl opcache

# Install Composer
RUN curl -sS https://getcomposer.org/installer | php -- --install-dir=/usr/local/bin --filename=composer

WORKDIR /var/www/html
`

const phpIniConfig = `[PHP]
display_errors = ${PHP_DISPLAY_ERRORS}
error_reporting = ${PHP_ERROR_REPORTING}
memory_limit = ${PHP_MEMORY_LIMIT}
max_execution_time = ${PHP_MAX_EXECUTION_TIME}
post_max_size = ${PHP_POST_MAX_SIZE}
upload_max_filesize = ${PHP_UPLOAD_MAX_FILESIZE}

[Date]
date.timezone = UTC

[Session]
session.save_handler = files
session.save_path = /tmp
session.gc_maxlifetime = 1800

[opcache]
opcache.enable=1
opcache.memory_consumption=128
opcache.interned_strings_buffer=8
opcache.max_accelerated_files=4000
opcache.validate_timestamps=1
opcache.revalidate_freq=60
`

const symfonyPHPIni = `[PHP]
memory_limit = 512M
max_execution_time = 120
post_max_size = 100M
upload_max_filesize = 100M

[Date]
date.timezone = UTC

[opcache]
opcache.enable=1
opcache.memory_consumption=256
opcache.interned_strings_buffer=16
opcache.max_accelerated_files=20000
opcache.validate_timestamps=1
opcache.revalidate_freq=60
`

const laravelPHPIni = `upload_max_filesize = 40M
post_max_size = 40M
memory_limit = 512M
max_execution_time = 600
default_socket_timeout = 3600
request_terminate_timeout = 600
`

const phpFPMPoolConfig = `[www]
user = www-data
group = www-data

listen = 9000

pm = dynamic
pm.max_children = 10
pm.start_servers = 2
pm.min_spare_servers = 1
pm.max_spare_servers = 3
pm.max_requests = 500

catch_workers_output = yes
clear_env = no
`

const phpIndexFile = `<?php
declare(strict_types=1);

require_once __DIR__ . '/../src/bootstrap.php';

// Basic routing
$uri = parse_url($_SERVER['REQUEST_URI'], PHP_URL_PATH);

// Add your routes here
switch ($uri) {
    case '/':
        require __DIR__ . '/../src/pages/home.php';
        break;
    case '/info':
        phpinfo();
        break;
    default:
        http_response_code(404);
        echo "404 Not Found";
        break;
}
`

const phpBootstrapFile = `<?php
declare(strict_types=1);

// Error reporting for development
error_reporting(E_ALL);
ini_set('display_errors', '1');

// Load environment variables
if (file_exists(__DIR__ . '/../.env')) {
    $env = parse_ini_file(__DIR__ . '/../.env');
    foreach ($env as $key => $value) {
        $_ENV[$key] = $value;
        putenv("$key=$value");
    }
}

// Autoloader setup for future use
spl_autoload_register(function ($class) {
    $file = __DIR__ . '/' . str_replace('\\', '/', $class) . '.php';
    if (file_exists($file)) {
        require $file;
        return true;
    }
    return false;
});
`

const phpHomePage = `<?php
declare(strict_types=1);

$title = 'Welcome to ChimeraStack';
?>

<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title><?= htmlspecialchars($title) ?></title>
</head>
<body>
    <h1><?= htmlspecialchars($title) ?></h1>
    <p>Your development environment is ready.</p>
    <p><a href="/info">View PHP Info</a></p>
</body>
</html>
`

// laravelConnection maps a database engine to Laravel's connection driver
// name and the in-network port.
func laravelConnection(db model.Database) (string, int) {
	if db == model.DatabasePostgreSQL {
		return "pgsql", 5432
	}
	return "mysql", 3306
}

// laravelEnvFile expects the connection driver, the database service name,
// the in-network port, the database name and the database user.
const laravelEnvFile = `APP_NAME=Laravel
APP_ENV=local
APP_KEY=
APP_DEBUG=true
APP_URL=http://localhost:8080

LOG_CHANNEL=stack
LOG_DEPRECATIONS_CHANNEL=null
LOG_LEVEL=debug

DB_CONNECTION=%s
DB_HOST=%s
DB_PORT=%d
DB_DATABASE=%s
DB_USERNAME=%s
DB_PASSWORD=secret

BROADCAST_DRIVER=log
CACHE_DRIVER=file
FILESYSTEM_DISK=local
QUEUE_CONNECTION=sync
SESSION_DRIVER=file
SESSION_LIFETIME=120
`
