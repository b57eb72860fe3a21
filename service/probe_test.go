package service

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/nettest"

	"github.com/joshuapare/hostkit/pkg/types"
)

// listen starts a local TCP listener that accepts and drops connections.
func listen(t *testing.T) (net.Listener, int) {
	t.Helper()
	l, err := nettest.NewLocalListener("tcp")
	require.NoError(t, err)
	go func() {
		for {
			c, err := l.Accept()
			if err != nil {
				return
			}
			c.Close()
		}
	}()
	return l, l.Addr().(*net.TCPAddr).Port
}

func TestCheckPort_OpenThenClosed(t *testing.T) {
	l, port := listen(t)
	host := l.Addr().(*net.TCPAddr).IP.String()
	d := New()

	open, err := d.CheckPort(context.Background(), host, port)
	require.NoError(t, err)
	assert.True(t, open)

	require.NoError(t, l.Close())

	start := time.Now()
	open, err = d.CheckPort(context.Background(), host, port)
	require.NoError(t, err)
	assert.False(t, open)
	assert.Less(t, time.Since(start), types.PortCheckTimeout+time.Second)
}

func TestCheckPort_UnresolvableHost(t *testing.T) {
	_, err := New().CheckPort(context.Background(), "no-such-host.invalid", 80)
	require.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestCheckPort_InvalidPort(t *testing.T) {
	for _, port := range []int{-1, 65536} {
		_, err := New().CheckPort(context.Background(), "127.0.0.1", port)
		require.ErrorIs(t, err, types.ErrInvalidArgument)
	}
}

func TestCheckPort_TimeoutIsClosed(t *testing.T) {
	// 192.0.2.0/24 is reserved for documentation and should never answer.
	d := New(WithDialTimeout(50 * time.Millisecond))
	open, err := d.CheckPort(context.Background(), "192.0.2.1", 9)
	if err != nil {
		require.ErrorIs(t, err, types.ErrIO)
		t.Skipf("network rejected the probe outright: %v", err)
	}
	assert.False(t, open)
}

func TestCheckPort_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().CheckPort(ctx, "127.0.0.1", 1)
	require.ErrorIs(t, err, context.Canceled)
}
