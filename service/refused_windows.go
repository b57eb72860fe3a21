//go:build windows

package service

import (
	"errors"

	"golang.org/x/sys/windows"
)

// isRefused reports an actively refused connection. Winsock reports
// WSAECONNREFUSED rather than the POSIX errno.
func isRefused(err error) bool {
	return errors.Is(err, windows.WSAECONNREFUSED)
}
