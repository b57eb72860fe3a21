// Package testutil writes the synthetic fixtures shared by hostkit tests:
// pseudo-binaries with embedded placeholders and fixed-width service
// databases.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes data to name inside a fresh temporary directory and
// returns the full path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// Binary writes a size-byte pseudo-binary with marker copied to each offset.
// Filler bytes never contain two equal consecutive values, so they cannot
// form a realistic placeholder by accident. Returns the path and the
// original contents.
//
// Example:
//
//	path, orig := testutil.Binary(t, 8192, []byte("@@CFG@@"), 4000)
func Binary(t testing.TB, size int, marker []byte, offsets ...int) (string, []byte) {
	t.Helper()

	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 251)
	}
	for _, off := range offsets {
		if off+len(marker) > size {
			t.Fatalf("marker at %d overruns %d byte binary", off, size)
		}
		copy(data[off:], marker)
	}

	path := WriteFile(t, BinaryName, data)
	return path, append([]byte(nil), data...)
}

// Service is one service database entry.
type Service struct {
	Name string
	Port int
}

// ServicesDB writes a service database in the historical fixed-width layout:
// two header lines, the name left-aligned in 16 columns and the port
// right-aligned in the next 5. Trailing lines are appended verbatim.
func ServicesDB(t testing.TB, entries []Service, trailing ...string) string {
	t.Helper()

	var sb strings.Builder
	sb.WriteString("# service database\n")
	sb.WriteString("# name           port\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "%-16s%5d/tcp\n", e.Name, e.Port)
	}
	for _, line := range trailing {
		sb.WriteString(line + "\n")
	}

	return WriteFile(t, ServicesName, []byte(sb.String()))
}
