package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/joshuapare/hostkit/pkg/types"
)

// CheckPort reports whether a TCP connection to host:port can be opened
// within the Directory's dial timeout.
//
// A refused connection or a timeout yields false with a nil error. An
// unresolvable host or an out of range port is types.ErrInvalidArgument;
// any other dial failure is types.ErrIO.
func (d *Directory) CheckPort(ctx context.Context, host string, port int) (bool, error) {
	if port < 0 || port > types.MaxPort {
		return false, types.InvalidArgument(fmt.Sprintf("service: invalid port %d", port), nil)
	}

	dialer := net.Dialer{Timeout: d.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err == nil {
		_ = conn.Close()
		return true, nil
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return false, types.InvalidArgument("service: unresolvable host "+host, err)
	}
	if isRefused(err) {
		return false, nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() && ctx.Err() == nil {
		return false, nil
	}
	return false, types.IO(fmt.Sprintf("service: dial %s:%d", host, port), err)
}

// CheckPort probes host:port using the process-wide Directory.
func CheckPort(ctx context.Context, host string, port int) (bool, error) {
	return defaultDirectory.CheckPort(ctx, host, port)
}

// ServiceName resolves port using the process-wide Directory.
func ServiceName(port int) (string, bool) {
	return defaultDirectory.ServiceName(port)
}
