// Package platform determines the host operating system family and CPU
// architecture.
//
// The OS family comes from a substring match on the reported OS name. The
// architecture comes from an ordered list of probes, each of which runs a
// helper command (uname, wmic) and either recognises its output or passes.
// The first probe to recognise something wins; a probe whose command fails
// is treated as having nothing to say.
//
// A Profiler computes its Profile once and caches it for its lifetime.
// Current returns the process-wide profile.
package platform
