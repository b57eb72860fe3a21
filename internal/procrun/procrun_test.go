package procrun

import (
	"context"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hostkit/pkg/types"
)

func TestResultText(t *testing.T) {
	r := Result{Stdout: "  X86_64\n"}
	assert.Equal(t, "x86_64", r.Text())
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{name: "empty", in: nil, want: ""},
		{name: "utf8", in: []byte("aarch64\n"), want: "aarch64\n"},
		{name: "utf8 bom", in: []byte("\xef\xbb\xbfx64"), want: "x64"},
		{
			name: "utf16le bom",
			in:   []byte{0xff, 0xfe, 'x', 0, '6', 0, '4', 0, '-', 0},
			want: "x64-",
		},
		{
			name: "utf16be bom",
			in:   []byte{0xfe, 0xff, 0, 'x', 0, '8', 0, '6'},
			want: "x86",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.in))
		})
	}
}

func TestExec_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	res, err := Exec{}.Run(context.Background(), "sh", "-c", "echo OUT; echo ERR >&2")
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "out", res.Text())
	assert.Equal(t, "ERR\n", res.Stderr)
}

func TestExec_NonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	res, err := Exec{}.Run(context.Background(), "sh", "-c", "echo partial; exit 3")
	require.ErrorIs(t, err, types.ErrIO)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "partial", res.Text())
}

func TestExec_SpawnFailure(t *testing.T) {
	res, err := Exec{}.Run(context.Background(), "hostkit-definitely-not-a-command")
	require.ErrorIs(t, err, types.ErrIO)
	assert.Equal(t, -1, res.ExitCode)
	assert.Empty(t, res.Stdout)
}
