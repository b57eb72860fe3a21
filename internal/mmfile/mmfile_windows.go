//go:build windows

package mmfile

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

type sysMapping struct {
	mapping windows.Handle
	addr    uintptr
}

// Map reads the file at path into memory. Read-only callers on Windows do not
// benefit enough from a view to justify holding the mapping handle open.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}

func mapRW(f *os.File, size int64) ([]byte, sysMapping, error) {
	h, err := windows.CreateFileMapping(
		windows.Handle(f.Fd()),
		nil,
		windows.PAGE_READWRITE,
		uint32(uint64(size)>>32),
		uint32(size),
		nil,
	)
	if err != nil {
		return nil, sysMapping{}, err
	}
	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_WRITE, 0, 0, uintptr(size))
	if err != nil {
		_ = windows.CloseHandle(h)
		return nil, sysMapping{}, err
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(size))
	return data, sysMapping{mapping: h, addr: addr}, nil
}

func unmapRW(m *File) error {
	err := windows.UnmapViewOfFile(m.sys.addr)
	if cerr := windows.CloseHandle(m.sys.mapping); err == nil {
		err = cerr
	}
	m.sys = sysMapping{}
	return err
}

// flushRW uses FlushViewOfFile, the Windows counterpart of msync.
func flushRW(m *File) error {
	return windows.FlushViewOfFile(m.sys.addr, uintptr(len(m.data)))
}
