// Package docker wraps the Docker Engine SDK client and the docker compose
// plugin for managing project environments.
//
// The SDK client handles daemon-level concerns (connectivity checks,
// networks, volumes) with automatic socket detection across platforms.
// Lifecycle operations on a generated project (up, stop, down) shell out
// to "docker compose" so behavior matches what users get running the same
// commands by hand in the project directory.
package docker
