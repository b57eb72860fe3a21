// Package service resolves well-known TCP port names from the system service
// database and probes TCP reachability.
//
// # Service names
//
// A Directory reads a fixed-width service database: a two line header, then
// one entry per line with the service name in the first 16 columns and the
// port number in columns 16 to 21, sorted by ascending port. Lookups stop at
// the first entry whose port exceeds the target. Results are cached for the
// lifetime of the Directory.
//
// Any failure while reading the database (missing file, short line, bad
// number) permanently disables resolution for that Directory. There is no
// retry: a missing or reformatted file is not going to fix itself while the
// process runs. Note that this cannot tell "file absent" apart from "format
// changed"; the column layout is configurable through Format for that reason.
//
// Ports in the ephemeral range (49152 and up) are never looked up.
//
// # Reachability
//
// CheckPort dials a TCP connection with an 850ms timeout. A refused or timed
// out connection is a normal false result; an unresolvable host is an
// invalid-argument error.
package service
