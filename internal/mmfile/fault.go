package mmfile

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrFault reports a memory access fault inside a mapping, typically because
// the file was truncated by someone else while mapped.
var ErrFault = errors.New("mmfile: memory access fault")

// Guard runs fn with panic-on-fault enabled for the current goroutine and
// converts a SIGBUS/SIGSEGV on mapped memory into ErrFault. Other panics
// propagate unchanged.
func Guard(fn func()) (err error) {
	old := debug.SetPanicOnFault(true)
	defer debug.SetPanicOnFault(old)

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if fault, ok := r.(interface{ Addr() uintptr }); ok {
			err = fmt.Errorf("%w at address 0x%x", ErrFault, fault.Addr())
			return
		}
		panic(r)
	}()

	fn()
	return nil
}
