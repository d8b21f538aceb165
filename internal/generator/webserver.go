package generator

import (
	"fmt"

	"github.com/amirofcodes/chimera-stack/internal/compose"
	"github.com/amirofcodes/chimera-stack/internal/model"
)

// nginxGenerator produces the nginx service and its conf.d/default.conf.
// The server config differs by language: PHP stacks get a FastCGI server
// block talking to php:9000, Python stacks get a reverse proxy to the
// app service.
type nginxGenerator struct {
	ctx *Context
}

func (g *nginxGenerator) DefaultPort() int { return 80 }

func (g *nginxGenerator) Fragment() (compose.Fragment, error) {
	hostPort, err := g.ctx.Ports.Reserve(webPortStart, webPortEnd)
	if err != nil {
		return compose.Fragment{}, fmt.Errorf("nginx: %w", err)
	}

	volumes := []string{
		"./docker/nginx/conf.d:/etc/nginx/conf.d:ro",
	}
	if g.ctx.Spec.Language == model.LanguagePHP {
		// PHP is served from the shared document root; Python apps are
		// proxied and need no files inside the nginx container.
		volumes = append([]string{".:/var/www/html:cached"}, volumes...)
	}

	return compose.Fragment{
		Services: map[string]compose.Service{
			"nginx": {
				Image:     "nginx:stable-alpine",
				Restart:   "unless-stopped",
				Ports:     []string{fmt.Sprintf("%d:80", hostPort)},
				Volumes:   volumes,
				DependsOn: []string{g.ctx.Spec.AppServiceName()},
				Healthcheck: &compose.Healthcheck{
					Test:        []string{"CMD", "curl", "-f", "http://localhost/health"},
					Interval:    "10s",
					Timeout:     "5s",
					Retries:     3,
					StartPeriod: "10s",
				},
				Networks: []string{compose.DefaultNetwork},
			},
		},
	}, nil
}

func (g *nginxGenerator) WriteConfigFiles(root string) error {
	conf := nginxPHPConfig
	if g.ctx.Spec.Language == model.LanguagePython {
		conf = fmt.Sprintf(nginxProxyConfig, g.ctx.Spec.AppServiceName(), appUpstreamPort(g.ctx.Spec))
	}
	return writeFile(root, "docker/nginx/conf.d/default.conf", conf)
}

// apacheGenerator produces the Apache httpd service and its configuration
// under docker/apache/conf.
type apacheGenerator struct {
	ctx *Context
}

func (g *apacheGenerator) DefaultPort() int { return 80 }

func (g *apacheGenerator) Fragment() (compose.Fragment, error) {
	hostPort, err := g.ctx.Ports.Reserve(webPortStart, webPortEnd)
	if err != nil {
		return compose.Fragment{}, fmt.Errorf("apache: %w", err)
	}

	volumes := []string{
		"./docker/apache/conf/httpd.conf:/usr/local/apache2/conf/httpd.conf:ro",
		"./docker/apache/conf/extra:/usr/local/apache2/conf/extra:ro",
	}
	if g.ctx.Spec.Language == model.LanguagePHP {
		volumes = append([]string{".:/var/www/html:cached"}, volumes...)
	}

	return compose.Fragment{
		Services: map[string]compose.Service{
			"apache": {
				Image:   "httpd:2.4-alpine",
				Restart: "unless-stopped",
				Ports:   []string{fmt.Sprintf("%d:80", hostPort)},
				Environment: map[string]string{
					"APACHE_RUN_USER":  "www-data",
					"APACHE_RUN_GROUP": "www-data",
				},
				Volumes:   volumes,
				DependsOn: []string{g.ctx.Spec.AppServiceName()},
				Healthcheck: &compose.Healthcheck{
					Test:     []string{"CMD", "wget", "--quiet", "--tries=1", "--spider", "http://localhost/server-status"},
					Interval: "10s",
					Timeout:  "5s",
					Retries:  3,
				},
				Networks: []string{compose.DefaultNetwork},
			},
		},
	}, nil
}

func (g *apacheGenerator) WriteConfigFiles(root string) error {
	if err := writeFile(root, "docker/apache/conf/httpd.conf", apacheMainConfig); err != nil {
		return err
	}
	vhost := apachePHPVhost
	if g.ctx.Spec.Language == model.LanguagePython {
		vhost = fmt.Sprintf(apacheProxyVhost, g.ctx.Spec.AppServiceName(), appUpstreamPort(g.ctx.Spec))
	}
	return writeFile(root, "docker/apache/conf/extra/vhost.conf", vhost)
}

const nginxPHPConfig = `server {
    listen 80;
    server_name localhost;
    root /var/www/html/public;
    index index.php index.html;

    charset utf-8;
    client_max_body_size 128M;
    fastcgi_read_timeout 1800;
    fastcgi_buffers 16 16k;
    fastcgi_buffer_size 32k;

    # Security headers
    add_header X-Frame-Options "SAMEORIGIN" always;
    add_header X-XSS-Protection "1; mode=block" always;
    add_header X-Content-Type-Options "nosniff" always;
    add_header Referrer-Policy "strict-origin-when-cross-origin" always;

    # Built-in health check location (no PHP processing needed)
    location = /health {
        access_log off;
        add_header Content-Type text/plain;
        return 200 'healthy';
    }

    location / {
        try_files $uri $uri/ /index.php?$query_string;
    }

    location ~ \.php$ {
        try_files $uri =404;
        fastcgi_split_path_info ^(.+\.php)(/.+)$;
        fastcgi_pass php:9000;
        fastcgi_index index.php;
        include fastcgi_params;
        fastcgi_param SCRIPT_FILENAME $document_root$fastcgi_script_name;
        fastcgi_param PATH_INFO $fastcgi_path_info;

        fastcgi_buffering on;
        fastcgi_buffer_size 16k;
        fastcgi_buffers 16 16k;

        fastcgi_connect_timeout 300;
        fastcgi_send_timeout 300;
        fastcgi_read_timeout 300;
    }

    # Static file handling
    location ~* \.(js|css|png|jpg|jpeg|gif|ico|svg)$ {
        expires max;
        access_log off;
        add_header Cache-Control "public";
    }
}
`

// nginxProxyConfig expects the upstream service name and port.
const nginxProxyConfig = `server {
    listen 80;
    server_name localhost;

    charset utf-8;
    client_max_body_size 128M;

    # Built-in health check location
    location = /health {
        access_log off;
        add_header Content-Type text/plain;
        return 200 'healthy';
    }

    location / {
        proxy_pass http://%s:%d;
        proxy_set_header Host $host;
        proxy_set_header X-Real-IP $remote_addr;
        proxy_set_header X-Forwarded-For $proxy_add_x_forwarded_for;
        proxy_set_header X-Forwarded-Proto $scheme;
        proxy_read_timeout 300;
    }

    # Static file handling
    location /static/ {
        alias /var/www/static/;
        expires max;
        access_log off;
    }
}
`

const apacheMainConfig = `ServerRoot "/usr/local/apache2"
Listen 80

# Load essential modules
LoadModule mpm_event_module modules/mod_mpm_event.so
LoadModule authz_core_module modules/mod_authz_core.so
LoadModule dir_module modules/mod_dir.so
LoadModule env_module modules/mod_env.so
LoadModule mime_module modules/mod_mime.so
LoadModule rewrite_module modules/mod_rewrite.so
LoadModule unixd_module modules/mod_unixd.so
LoadModule status_module modules/mod_status.so
LoadModule proxy_module modules/mod_proxy.so
LoadModule proxy_fcgi_module modules/mod_proxy_fcgi.so
LoadModule proxy_http_module modules/mod_proxy_http.so

# Server configuration
ServerAdmin webmaster@localhost
ServerName localhost

User www-data
Group www-data

# Document root configuration
DocumentRoot /var/www/html/public

<Location /server-status>
    SetHandler server-status
</Location>

TypesConfig conf/mime.types
DirectoryIndex index.php index.html

# Include additional configuration files
IncludeOptional conf/extra/*.conf
`

const apachePHPVhost = `<VirtualHost *:80>
    DocumentRoot /var/www/html/public

    <Directory /var/www/html/public>
        Options Indexes FollowSymLinks
        AllowOverride All
        Require all granted
    </Directory>

    <FilesMatch "\.php$">
        SetHandler "proxy:fcgi://php:9000"
    </FilesMatch>

    ErrorLog /proc/self/fd/2
    CustomLog /proc/self/fd/1 combined
</VirtualHost>
`

// apacheProxyVhost expects the upstream service name and port.
const apacheProxyVhost = `<VirtualHost *:80>
    ProxyPreserveHost On
    ProxyPass /server-status !
    ProxyPass / http://%[1]s:%[2]d/
    ProxyPassReverse / http://%[1]s:%[2]d/

    ErrorLog /proc/self/fd/2
    CustomLog /proc/self/fd/1 combined
</VirtualHost>
`
