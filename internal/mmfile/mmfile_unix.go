//go:build linux || darwin || freebsd || openbsd || netbsd || dragonfly

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

type sysMapping struct{}

// Map maps the file at path read-only and returns its contents.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // safe before return; mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, cleanup, nil
}

func mapRW(f *os.File, size int64) ([]byte, sysMapping, error) {
	data, err := unix.Mmap(
		int(f.Fd()),
		0,
		int(size),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_SHARED,
	)
	return data, sysMapping{}, err
}

func unmapRW(m *File) error {
	err := unix.Munmap(m.data)
	if errors.Is(err, unix.EINVAL) {
		return nil
	}
	return err
}

// flushRW syncs the whole mapping. Darwin requires the address passed to
// msync to be the mmap base, so sub-slices are never flushed.
func flushRW(m *File) error {
	return unix.Msync(m.data, unix.MS_SYNC)
}
