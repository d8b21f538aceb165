// Package main is the entry point for the chimera CLI.
//
// The binary scaffolds and manages Dockerized development environments.
// All functionality lives in the internal/cli package; this file only
// injects build-time version information and runs the root command.
package main

import (
	"github.com/amirofcodes/chimera-stack/internal/cli"
)

// version, commit, and date are set by GoReleaser at build time via
// ldflags (see .goreleaser.yml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
