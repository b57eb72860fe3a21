package types

import "time"

// ============================================================================
// Port and I/O limits
// ============================================================================

const (
	// MaxPort is the highest valid TCP port number.
	MaxPort = 65535

	// EphemeralPortStart is the first port of the IANA dynamic/private range.
	// Ports at or above it are never looked up in the service database.
	EphemeralPortStart = 49152

	// PortCheckTimeout bounds a single TCP reachability probe.
	PortCheckTimeout = 850 * time.Millisecond

	// WipeChunkSize is the write granularity used when zero-filling a file.
	WipeChunkSize = 4096
)
