// Package procrun executes short-lived helper commands and captures their
// output as a single deterministic unit.
package procrun

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/hostkit/internal/logger"
	"github.com/joshuapare/hostkit/pkg/types"
)

// Result is the captured outcome of a finished process.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Text returns stdout trimmed of surrounding whitespace and lowercased.
func (r Result) Text() string {
	return strings.ToLower(strings.TrimSpace(r.Stdout))
}

// Runner runs a command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// Exec is the Runner backed by os/exec.
type Exec struct{}

// Run executes name with args and waits for it to exit. A spawn failure or a
// non-zero exit status is reported as types.ErrIO; the Result still carries
// whatever output was captured.
func (Exec) Run(ctx context.Context, name string, args ...string) (Result, error) {
	logger.Debug("executing system command", "cmd", name, "args", args)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	res := Result{
		ExitCode: -1,
		Stdout:   Decode(stdout.Bytes()),
		Stderr:   Decode(stderr.Bytes()),
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return res, types.IO(fmt.Sprintf("procrun: %s exited with status %d", name, res.ExitCode), runErr)
		}
		return res, types.IO("procrun: start "+name, runErr)
	}
	return res, nil
}

// Decode converts raw process output to a UTF-8 string. Output that starts
// with a UTF-16 byte order mark, as written by wmic, is transcoded; anything
// else is treated as UTF-8.
func Decode(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
