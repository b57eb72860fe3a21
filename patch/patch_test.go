package patch

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hostkit/internal/testutil"
	"github.com/joshuapare/hostkit/pkg/types"
)

var placeholder = []byte("@@PLACEHOLDER-0123456789@@")

// setupBinary writes a pseudo-binary with the placeholder embedded at each of
// the given offsets and returns its path and original contents.
func setupBinary(t testing.TB, size int, offsets ...int) (string, []byte) {
	t.Helper()
	return testutil.Binary(t, size, placeholder, offsets...)
}

func TestPatch_ReplacesPrefixOfPlaceholder(t *testing.T) {
	const off = 5000
	path, orig := setupBinary(t, 3*4096+123, off)
	payload := []byte(`{"id":7}`)

	res, err := Patch(path, PatternOf(placeholder), payload)
	require.NoError(t, err)
	assert.Equal(t, Result{Offset: off, Written: len(payload)}, res)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, got, len(orig))

	assert.Equal(t, payload, got[off:off+len(payload)])
	assert.Equal(t, orig[:off], got[:off], "bytes before the match changed")
	assert.Equal(t, orig[off+len(payload):], got[off+len(payload):], "bytes after the payload changed")
}

func TestPatch_FullLengthPayload(t *testing.T) {
	path, _ := setupBinary(t, 256, 10)
	payload := bytes.Repeat([]byte{0x90}, len(placeholder))

	res, err := Patch(path, PatternOf(placeholder), payload)
	require.NoError(t, err)
	assert.EqualValues(t, 10, res.Offset)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, got[10:10+len(placeholder)])
}

func TestPatch_FirstMatchOnly(t *testing.T) {
	path, orig := setupBinary(t, 1024, 100, 700)

	res, err := Patch(path, PatternOf(placeholder), []byte("XY"))
	require.NoError(t, err)
	assert.EqualValues(t, 100, res.Offset)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("XY"), got[100:102])
	assert.Equal(t, orig[700:700+len(placeholder)], got[700:700+len(placeholder)])
}

func TestPatch_PatternNotFoundLeavesFileUntouched(t *testing.T) {
	path, orig := setupBinary(t, 2048)
	before, err := os.Stat(path)
	require.NoError(t, err)

	_, err = Patch(path, PatternOf(placeholder), []byte("x"))
	require.ErrorIs(t, err, types.ErrPatternNotFound)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, orig, got)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.Size(), after.Size())
}

func TestPatch_PayloadTooLong(t *testing.T) {
	path, orig := setupBinary(t, 512, 0)

	_, err := Patch(path, PatternOf(placeholder), make([]byte, len(placeholder)+1))
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestPatch_EmptyPattern(t *testing.T) {
	path, _ := setupBinary(t, 16)
	_, err := Patch(path, Pattern{}, nil)
	require.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestPatch_MissingFile(t *testing.T) {
	_, err := Patch(filepath.Join(t.TempDir(), "missing"), PatternOf(placeholder), nil)
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestPatch_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Patch(path, PatternOf(placeholder), nil)
	require.ErrorIs(t, err, types.ErrPatternNotFound)
}

func TestPatch_PlaceholderAtEndOfFile(t *testing.T) {
	size := 4096 + len(placeholder)
	path, _ := setupBinary(t, size, 4096)

	res, err := Patch(path, PatternOf(placeholder), []byte("tail"))
	require.NoError(t, err)
	assert.EqualValues(t, 4096, res.Offset)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, got, size)
	assert.Equal(t, []byte("tail"), got[4096:4100])
}

func TestPatch_WildcardPattern(t *testing.T) {
	path, _ := setupBinary(t, 300, 40)
	pattern := PatternOf(placeholder)
	pattern[3] = Wildcard

	res, err := Patch(path, pattern, []byte("ok"))
	require.NoError(t, err)
	assert.EqualValues(t, 40, res.Offset)
}

func TestLocate(t *testing.T) {
	path, orig := setupBinary(t, 900, 321)

	off, err := Locate(path, PatternOf(placeholder))
	require.NoError(t, err)
	assert.EqualValues(t, 321, off)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, orig, got)

	_, err = Locate(path, PatternOf([]byte("absent-marker")))
	require.ErrorIs(t, err, types.ErrPatternNotFound)

	_, err = Locate(filepath.Join(t.TempDir(), "missing"), PatternOf(placeholder))
	require.ErrorIs(t, err, types.ErrNotFound)
}
