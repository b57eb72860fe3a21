package testutil

// File names used for fixtures written under t.TempDir().
const (
	// BinaryName is the name of synthetic patch targets.
	BinaryName = "agent.bin"

	// ServicesName is the name of synthetic service databases.
	ServicesName = "services"
)
