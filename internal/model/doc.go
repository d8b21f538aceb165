// Package model defines the domain types and value objects for the
// chimera CLI.
//
// This package contains pure data structures with no external dependencies:
// the ProjectSpec aggregate, the typed option enums (Language, Framework,
// WebServer, Database, Tier), and the exit-code / CLIError machinery used
// by the CLI layer to translate domain failures into process exit codes.
//
// A ProjectSpec is immutable once built by the wizard or the create
// command's flags; every generator consumes it read-only.
package model
