//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly && !windows

package mmfile

import (
	"io"
	"os"
)

type sysMapping struct{}

// Map reads the entire file when mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}

// mapRW loads the file into memory. Changes reach the file only on Flush.
func mapRW(f *os.File, size int64) ([]byte, sysMapping, error) {
	buf := make([]byte, size)
	if _, err := io.ReadFull(io.NewSectionReader(f, 0, size), buf); err != nil {
		return nil, sysMapping{}, err
	}
	return buf, sysMapping{}, nil
}

func unmapRW(*File) error { return nil }

func flushRW(m *File) error {
	if _, err := m.f.WriteAt(m.data, 0); err != nil {
		return err
	}
	return m.f.Sync()
}
