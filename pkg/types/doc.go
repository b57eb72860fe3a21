// Package types defines the shared vocabulary of hostkit: typed errors with
// stable categories, the OS and CPU architecture families reported by the
// platform profiler, and the numeric limits used by the service directory.
//
// Design goals:
//   - Callers branch on error kinds, never on message text.
//   - Small comparable values (OsFamily, ArchFamily, Profile) that are safe to
//     share between goroutines once computed.
//
// This package has no dependencies beyond the standard library.
package types
