// Package generator contains the service and framework generators.
//
// A generator owns one Compose service: it produces the service's
// fragment (image/build, ports, volumes, environment, healthcheck) and
// writes the config files that fragment mounts (my.cnf, default.conf,
// Dockerfiles, ...). Generators are independent and unaware of each
// other; composition happens in the configuration manager, and shared
// host ports are coordinated through the port.Allocator in the Context.
//
// Dispatch is by lookup table keyed on the user's option value: one
// constructor per concrete choice, no inheritance chain.
package generator
