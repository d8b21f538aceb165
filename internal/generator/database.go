package generator

import (
	"fmt"

	"github.com/amirofcodes/chimera-stack/internal/compose"
)

// mysqlGenerator produces the MySQL 8.0 service and its my.cnf.
type mysqlGenerator struct {
	ctx *Context
}

func (g *mysqlGenerator) DefaultPort() int { return 3306 }

// Fragment builds the MySQL service definition. The host port is probed
// from the 3306-3400 range; credentials come from the project .env via
// Compose variable substitution, so docker-compose.yml itself contains
// no secrets.
func (g *mysqlGenerator) Fragment() (compose.Fragment, error) {
	hostPort, err := g.ctx.Ports.Reserve(mysqlPortStart, mysqlPortEnd)
	if err != nil {
		return compose.Fragment{}, fmt.Errorf("mysql: %w", err)
	}

	volumeName := g.ctx.Spec.Name + "_mysql_data"

	return compose.Fragment{
		Services: map[string]compose.Service{
			"mysql": {
				Image:   "mysql:8.0",
				Command: "--default-authentication-plugin=mysql_native_password",
				Restart: "unless-stopped",
				Ports:   []string{fmt.Sprintf("%d:3306", hostPort)},
				Environment: map[string]string{
					"MYSQL_DATABASE":      "${DB_DATABASE}",
					"MYSQL_USER":          "${DB_USERNAME}",
					"MYSQL_PASSWORD":      "${DB_PASSWORD}",
					"MYSQL_ROOT_PASSWORD": "${DB_ROOT_PASSWORD}",
				},
				Volumes: []string{
					volumeName + ":/var/lib/mysql",
					"./docker/mysql/my.cnf:/etc/mysql/conf.d/my.cnf:ro",
				},
				Healthcheck: &compose.Healthcheck{
					Test:        []string{"CMD", "mysqladmin", "ping", "-h", "localhost"},
					Interval:    "10s",
					Timeout:     "5s",
					Retries:     5,
					StartPeriod: "30s",
				},
				Networks: []string{compose.DefaultNetwork},
			},
		},
		Volumes: map[string]*compose.Volume{
			volumeName: {Driver: "local"},
		},
	}, nil
}

func (g *mysqlGenerator) WriteConfigFiles(root string) error {
	return writeFile(root, "docker/mysql/my.cnf", mysqlConfig)
}

// mariadbGenerator produces the MariaDB 10.11 service, its server.cnf and
// an init script hook.
type mariadbGenerator struct {
	ctx *Context
}

func (g *mariadbGenerator) DefaultPort() int { return 3306 }

func (g *mariadbGenerator) Fragment() (compose.Fragment, error) {
	hostPort, err := g.ctx.Ports.Reserve(mysqlPortStart, mysqlPortEnd)
	if err != nil {
		return compose.Fragment{}, fmt.Errorf("mariadb: %w", err)
	}

	volumeName := g.ctx.Spec.Name + "_mariadb_data"

	return compose.Fragment{
		Services: map[string]compose.Service{
			"mariadb": {
				Image:   "mariadb:10.11",
				Command: "--character-set-server=utf8mb4 --collation-server=utf8mb4_unicode_ci",
				Restart: "unless-stopped",
				Ports:   []string{fmt.Sprintf("%d:3306", hostPort)},
				Environment: map[string]string{
					"MARIADB_DATABASE":      "${DB_DATABASE}",
					"MARIADB_USER":          "${DB_USERNAME}",
					"MARIADB_PASSWORD":      "${DB_PASSWORD}",
					"MARIADB_ROOT_PASSWORD": "${DB_ROOT_PASSWORD}",
					"TZ":                    "UTC",
				},
				Volumes: []string{
					volumeName + ":/var/lib/mysql",
					"./docker/mariadb/conf.d:/etc/mysql/conf.d:ro",
					"./docker/mariadb/init:/docker-entrypoint-initdb.d:ro",
				},
				Healthcheck: &compose.Healthcheck{
					Test:        []string{"CMD", "healthcheck.sh", "--connect", "--innodb_initialized"},
					Interval:    "10s",
					Timeout:     "5s",
					Retries:     3,
					StartPeriod: "30s",
				},
				Networks: []string{compose.DefaultNetwork},
			},
		},
		Volumes: map[string]*compose.Volume{
			volumeName: nil,
		},
	}, nil
}

func (g *mariadbGenerator) WriteConfigFiles(root string) error {
	if err := writeFile(root, "docker/mariadb/conf.d/server.cnf", mariadbConfig); err != nil {
		return err
	}
	return writeFile(root, "docker/mariadb/init/01_init_db.sh", mariadbInitScript)
}

// postgresGenerator produces the PostgreSQL 13 service and its
// postgresql.conf. The service runs under the "postgres" service name.
type postgresGenerator struct {
	ctx *Context
}

func (g *postgresGenerator) DefaultPort() int { return 5432 }

func (g *postgresGenerator) Fragment() (compose.Fragment, error) {
	hostPort, err := g.ctx.Ports.Reserve(postgresPortStart, postgresPortEnd)
	if err != nil {
		return compose.Fragment{}, fmt.Errorf("postgresql: %w", err)
	}

	volumeName := g.ctx.Spec.Name + "_postgres_data"

	return compose.Fragment{
		Services: map[string]compose.Service{
			"postgres": {
				Image:   "postgres:13",
				Restart: "unless-stopped",
				ShmSize: "256mb",
				Ports:   []string{fmt.Sprintf("%d:5432", hostPort)},
				Environment: map[string]string{
					"POSTGRES_DB":       "${DB_DATABASE}",
					"POSTGRES_USER":     "${DB_USERNAME}",
					"POSTGRES_PASSWORD": "${DB_PASSWORD}",
				},
				Volumes: []string{
					volumeName + ":/var/lib/postgresql/data",
					"./docker/postgresql/postgresql.conf:/etc/postgresql/postgresql.conf:ro",
				},
				Healthcheck: &compose.Healthcheck{
					Test:        []string{"CMD-SHELL", "pg_isready -U ${DB_USERNAME}"},
					Interval:    "10s",
					Timeout:     "5s",
					Retries:     5,
					StartPeriod: "30s",
				},
				Networks: []string{compose.DefaultNetwork},
			},
		},
		Volumes: map[string]*compose.Volume{
			volumeName: {Driver: "local"},
		},
	}, nil
}

func (g *postgresGenerator) WriteConfigFiles(root string) error {
	return writeFile(root, "docker/postgresql/postgresql.conf", postgresConfig)
}

const mysqlConfig = `[mysqld]
# Character Set Configuration
character-set-server = utf8mb4
collation-server = utf8mb4_unicode_ci
default-authentication-plugin = mysql_native_password

# Connection and Thread Settings
max_connections = 100
thread_cache_size = 8
thread_stack = 256K

# Buffer Pool Configuration
innodb_buffer_pool_size = 256M
innodb_buffer_pool_instances = 4
innodb_log_file_size = 64M
innodb_flush_method = O_DIRECT
innodb_flush_log_at_trx_commit = 2

# Temporary Table Settings
tmp_table_size = 32M
max_heap_table_size = 32M

# General Settings
max_allowed_packet = 64M
sql_mode = STRICT_TRANS_TABLES,NO_ZERO_IN_DATE,NO_ZERO_DATE,ERROR_FOR_DIVISION_BY_ZERO,NO_ENGINE_SUBSTITUTION

# InnoDB Settings
innodb_file_per_table = 1
innodb_strict_mode = 1

# Logging Configuration
slow_query_log = 1
slow_query_log_file = /var/log/mysql/mysql-slow.log
long_query_time = 2

[mysql]
default-character-set = utf8mb4

[client]
default-character-set = utf8mb4
`

const mariadbConfig = `[mysqld]
# Performance Optimization
innodb_buffer_pool_size = 256M
innodb_log_file_size = 64M
innodb_flush_log_at_trx_commit = 2
innodb_flush_method = O_DIRECT

# Connection and Thread Settings
max_connections = 100
thread_cache_size = 8
thread_stack = 256K

# Character Set Configuration
character_set_server = utf8mb4
collation_server = utf8mb4_unicode_ci

# InnoDB Settings
innodb_file_per_table = 1
innodb_strict_mode = 1

# Logging Configuration
slow_query_log = 1
slow_query_log_file = /var/log/mysql/mariadb-slow.log
long_query_time = 2
`

const mariadbInitScript = `#!/bin/bash
set -e

mysql -u root -p${MARIADB_ROOT_PASSWORD} <<-EOSQL
    SET GLOBAL log_bin_trust_function_creators = 1;
    SET GLOBAL max_allowed_packet = 64 * 1024 * 1024;
    FLUSH PRIVILEGES;
EOSQL
`

const postgresConfig = `# Connection Settings
listen_addresses = '*'
max_connections = 100

# Memory Settings
shared_buffers = 256MB
effective_cache_size = 768MB
work_mem = 4MB
maintenance_work_mem = 64MB

# Write-Ahead Log
wal_buffers = 16MB
checkpoint_completion_target = 0.9

# Query Planning
random_page_cost = 1.1
effective_io_concurrency = 200

# Logging
log_min_duration_statement = 2000
log_checkpoints = on
log_connections = off
log_disconnections = off

# Locale
timezone = 'UTC'
`
