// Package scaffold creates and removes the on-disk skeleton of a project:
// the root directory, the standard subdirectories, and the placeholder
// files every project starts with. Config content is filled in later by
// the config package.
package scaffold
