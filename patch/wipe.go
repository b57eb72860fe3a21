package patch

import (
	"os"

	"github.com/joshuapare/hostkit/internal/logger"
	"github.com/joshuapare/hostkit/pkg/types"
)

// ZeroFill logically overwrites the current contents of the file at path with
// zeros, writing types.WipeChunkSize bytes at a time followed by a final
// partial chunk. The file length is unchanged.
//
// This is not a secure erase. Copy-on-write filesystems, SSD wear levelling,
// journals and snapshots may all retain the original bytes.
func ZeroFill(path string) error {
	if err := checkExists(path); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return openError(path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return types.IO("patch: stat "+path, err)
	}
	size := st.Size()

	zeros := make([]byte, types.WipeChunkSize)
	var off int64
	for ; off+int64(len(zeros)) <= size; off += int64(len(zeros)) {
		if _, err := f.WriteAt(zeros, off); err != nil {
			return types.IO("patch: wipe "+path, err)
		}
	}
	if rem := size - off; rem > 0 {
		if _, err := f.WriteAt(zeros[:rem], off); err != nil {
			return types.IO("patch: wipe "+path, err)
		}
	}

	if err := f.Sync(); err != nil {
		return types.IO("patch: sync "+path, err)
	}
	logger.Debug("zero-filled file", "path", path, "bytes", size)
	return nil
}
