// Package config turns a project spec into the project's on-disk
// configuration: it runs the service generators, merges their Compose
// fragments into one document, and writes docker-compose.yml, .env and the
// tier snapshot. It also loads user defaults from the chimera.jsonc file.
package config
