package patch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joshuapare/hostkit/internal/logger"
	"github.com/joshuapare/hostkit/internal/mmfile"
	"github.com/joshuapare/hostkit/pkg/types"
)

// Result describes a successful patch.
type Result struct {
	Offset  int64 `json:"offset"`  // file offset of the matched placeholder
	Written int   `json:"written"` // payload bytes written at Offset
}

// Patch replaces the start of the first occurrence of pattern in the file at
// path with payload.
//
// Errors:
//   - types.ErrNotFound when path does not exist.
//   - types.ErrInvalidArgument when pattern is empty or payload is longer
//     than pattern.
//   - types.ErrPatternNotFound when the file does not contain pattern. The
//     file is left untouched.
//   - types.ErrIO for open, map, flush or unmap failures.
func Patch(path string, pattern Pattern, payload []byte) (res Result, err error) {
	if err := checkExists(path); err != nil {
		return Result{}, err
	}
	if len(pattern) == 0 {
		return Result{}, types.InvalidArgument("patch: empty pattern", nil)
	}
	if len(payload) > len(pattern) {
		return Result{}, types.InvalidArgument(
			fmt.Sprintf("patch: payload is %d bytes, placeholder holds %d", len(payload), len(pattern)),
			nil,
		)
	}

	m, err := mmfile.OpenRW(path)
	if err != nil {
		return Result{}, openError(path, err)
	}
	defer func() {
		if cerr := m.Close(); cerr != nil && err == nil {
			err = types.IO("patch: unmap "+path, cerr)
		}
	}()

	data := m.Data()
	off, n := -1, 0
	if ferr := mmfile.Guard(func() {
		if off = Find(data, pattern); off >= 0 {
			n = copy(data[off:off+len(payload)], payload)
		}
	}); ferr != nil {
		return Result{}, types.IO("patch: "+path, ferr)
	}
	if off < 0 {
		return Result{}, types.PatternNotFound(fmt.Sprintf("patch: placeholder not found in %s", path))
	}

	if err := m.Flush(); err != nil {
		return Result{}, types.IO("patch: flush "+path, err)
	}

	logger.Debug("patched placeholder", "path", path, "offset", off, "written", n)
	return Result{Offset: int64(off), Written: n}, nil
}

// Locate returns the offset of the first occurrence of pattern in the file at
// path without modifying it.
func Locate(path string, pattern Pattern) (int64, error) {
	if err := checkExists(path); err != nil {
		return 0, err
	}
	if len(pattern) == 0 {
		return 0, types.InvalidArgument("patch: empty pattern", nil)
	}

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return 0, openError(path, err)
	}
	defer cleanup()

	off := -1
	if ferr := mmfile.Guard(func() { off = Find(data, pattern) }); ferr != nil {
		return 0, types.IO("patch: "+path, ferr)
	}
	if off < 0 {
		return 0, types.PatternNotFound(fmt.Sprintf("patch: placeholder not found in %s", path))
	}
	return int64(off), nil
}

func checkExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.NotFound("patch: "+path, err)
		}
		return types.IO("patch: stat "+path, err)
	}
	return nil
}

func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return types.NotFound("patch: "+path, err)
	}
	return types.IO("patch: open "+path, err)
}
