// Package compose models a Docker Compose v3.8 document and the service
// fragments contributed by the generators.
//
// Each generator produces a Fragment, a partial document holding its own
// services, volumes and networks. The configuration manager merges all
// fragments into a single Document. Merging is strict: a second fragment
// declaring a service, volume or network name that is already present is
// an error, never a silent overwrite.
package compose
