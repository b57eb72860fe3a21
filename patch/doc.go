// Package patch rewrites fixed-size placeholder regions inside arbitrary
// binary files.
//
// # Overview
//
// A distributable binary is built with a reserved placeholder (for example a
// run of marker bytes sized for the longest configuration blob it may carry).
// Patch locates the first occurrence of that placeholder and overwrites the
// start of it with a payload, in place, through a read-write memory mapping.
// The file is treated as an opaque byte stream: no executable format is parsed.
//
// # Usage
//
//	pattern := patch.PatternOf([]byte("@@CONFIG_PLACEHOLDER_0123456789@@"))
//	res, err := patch.Patch("dist/agent", pattern, []byte(`{"id":7}`))
//	if errors.Is(err, types.ErrPatternNotFound) {
//	    // the file was not modified
//	}
//
// Only len(payload) bytes are written; the remainder of the matched region is
// left exactly as it was. Only the first (lowest offset) match is patched.
//
// # Search
//
// Matching is a naive needle/haystack scan: after a mismatch the comparison
// restarts one byte after the previous start position. Placeholders are short
// and patching is one-shot, and this keeps overlapping-prefix behaviour
// obvious. Pattern elements are 16 bits wide so a position can be marked as
// Wildcard.
//
// # Concurrency
//
// Patch and ZeroFill take no locks. Concurrent calls on the same file are
// undefined and must be serialized by the caller.
package patch
