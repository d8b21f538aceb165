// Package port implements host port probing for the service generators.
//
// Each service type has a preferred port range (3306-3400 for MySQL and
// MariaDB, 5432-5500 for PostgreSQL, 8000-8100 for web servers). The
// Scanner asks the OS whether a port is free via net.Listen, and the
// Allocator walks a range to find the first free port while remembering
// every port it has already handed out during the current run, so two
// generators probing overlapping ranges can therefore never be granted
// the same host port.
package port
