// Package mmfile provides platform-specific helpers for memory-mapping files
// that are searched and patched in place.
package mmfile

import (
	"errors"
	"fmt"
	"os"
)

// ErrClosed is returned when a File is used after Close.
var ErrClosed = errors.New("mmfile: file is closed")

// File is a file opened read-write and mapped into memory.
//
// A File is owned by a single caller for the duration of one operation.
// Concurrent use, or mapping the same path twice at once, is the caller's
// responsibility to avoid.
type File struct {
	f    *os.File
	data []byte
	size int64
	sys  sysMapping
}

// OpenRW opens path read-write and maps its entire contents.
// Zero-length files yield an empty mapping without touching the OS mapper.
func OpenRW(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	size := st.Size()
	if size > int64(^uint(0)>>1) {
		_ = f.Close()
		return nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}

	m := &File{f: f, size: size}
	if size == 0 {
		m.data = []byte{}
		return m, nil
	}

	data, sys, err := mapRW(f, size)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmfile: map failed: %w", err)
	}
	m.data = data
	m.sys = sys
	return m, nil
}

// Data returns the mapped bytes. Writes to the slice modify the file.
func (m *File) Data() []byte { return m.data }

// Size returns the mapped length in bytes.
func (m *File) Size() int64 { return m.size }

// Flush forces modified pages to the backing file.
func (m *File) Flush() error {
	if m.f == nil {
		return ErrClosed
	}
	if len(m.data) == 0 {
		return nil
	}
	return flushRW(m)
}

// Close unmaps the file and closes its descriptor. Calling Close more than
// once is a no-op.
func (m *File) Close() error {
	if m.f == nil {
		return nil
	}
	var err error
	if len(m.data) > 0 {
		err = unmapRW(m)
	}
	m.data = nil
	if cerr := m.f.Close(); err == nil {
		err = cerr
	}
	m.f = nil
	return err
}
