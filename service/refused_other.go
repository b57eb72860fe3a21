//go:build !windows

package service

import (
	"errors"
	"syscall"
)

// isRefused reports an actively refused connection.
func isRefused(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED)
}
