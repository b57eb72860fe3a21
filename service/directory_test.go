package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hostkit/internal/testutil"
)

var sshHTTP = []testutil.Service{{Name: "ssh", Port: 22}, {Name: "http", Port: 80}}

func TestServiceName_SortedLookup(t *testing.T) {
	d := New(WithPath(testutil.ServicesDB(t, sshHTTP)))

	name, ok := d.ServiceName(22)
	require.True(t, ok)
	assert.Equal(t, "ssh", name)

	name, ok = d.ServiceName(80)
	require.True(t, ok)
	assert.Equal(t, "http", name)

	_, ok = d.ServiceName(79)
	assert.False(t, ok)
	assert.True(t, d.Enabled())
}

func TestServiceName_StopsAtFirstLargerPort(t *testing.T) {
	// The malformed line after port 80 is only reached by scanning past it.
	d := New(WithPath(testutil.ServicesDB(t, sshHTTP, "broken")))

	_, ok := d.ServiceName(79)
	assert.False(t, ok)
	assert.True(t, d.Enabled(), "lookup read past the first larger port")

	_, ok = d.ServiceName(81)
	assert.False(t, ok)
	assert.False(t, d.Enabled())
}

func TestServiceName_NotFoundPastEnd(t *testing.T) {
	d := New(WithPath(testutil.ServicesDB(t, sshHTTP)))

	_, ok := d.ServiceName(443)
	assert.False(t, ok)
	assert.True(t, d.Enabled())
}

func TestServiceName_MissingDatabaseDisablesForever(t *testing.T) {
	path := filepath.Join(t.TempDir(), "services")
	d := New(WithPath(path))

	_, ok := d.ServiceName(22)
	assert.False(t, ok)
	assert.False(t, d.Enabled())

	// Even once the database appears, no further attempt is made.
	require.NoError(t, os.WriteFile(path, []byte("h1\nh2\nssh               22/tcp\n"), 0o644))
	_, ok = d.ServiceName(22)
	assert.False(t, ok)
	_, ok = d.ServiceName(80)
	assert.False(t, ok)
}

func TestServiceName_MalformedPortDisables(t *testing.T) {
	d := New(WithPath(testutil.ServicesDB(t, nil, "ssh             abcde/tcp")))

	_, ok := d.ServiceName(22)
	assert.False(t, ok)
	assert.False(t, d.Enabled())
}

func TestServiceName_EphemeralSkipsIO(t *testing.T) {
	// A missing database would disable resolution if it were read.
	d := New(WithPath(filepath.Join(t.TempDir(), "absent")))

	_, ok := d.ServiceName(50000)
	assert.False(t, ok)
	_, ok = d.ServiceName(49152)
	assert.False(t, ok)
	_, ok = d.ServiceName(-1)
	assert.False(t, ok)
	assert.True(t, d.Enabled())
}

func TestServiceName_CachedWithoutIO(t *testing.T) {
	path := testutil.ServicesDB(t, sshHTTP)
	d := New(WithPath(path))

	name, ok := d.ServiceName(22)
	require.True(t, ok)
	require.Equal(t, "ssh", name)

	require.NoError(t, os.Remove(path))

	name, ok = d.ServiceName(22)
	require.True(t, ok)
	assert.Equal(t, "ssh", name)
	assert.True(t, d.Enabled())
}

func TestServiceName_HeaderOnly(t *testing.T) {
	d := New(WithPath(testutil.ServicesDB(t, nil)))

	_, ok := d.ServiceName(22)
	assert.False(t, ok)
	assert.True(t, d.Enabled())
}

func TestServiceName_CustomFormat(t *testing.T) {
	path := testutil.WriteFile(t, "services", []byte("nfs     2049\nsandpolis 8768\n"))

	d := New(WithPath(path), WithFormat(Format{HeaderLines: 0, NameEnd: 8, PortStart: 8, PortEnd: 12}))

	name, ok := d.ServiceName(2049)
	require.True(t, ok)
	assert.Equal(t, "nfs", name)
}

func TestServiceName_InvalidFormatDisables(t *testing.T) {
	d := New(WithPath(testutil.ServicesDB(t, sshHTTP)), WithFormat(Format{NameEnd: 16, PortStart: 21, PortEnd: 16}))

	_, ok := d.ServiceName(22)
	assert.False(t, ok)
	assert.False(t, d.Enabled())
}

func TestServiceName_ConcurrentLookups(t *testing.T) {
	var entries []testutil.Service
	for p := 1; p <= 200; p++ {
		entries = append(entries, testutil.Service{Name: fmt.Sprintf("svc%d", p), Port: p * 5})
	}
	d := New(WithPath(testutil.ServicesDB(t, entries)))

	var wg sync.WaitGroup
	for p := 1; p <= 200; p++ {
		wg.Add(2)
		for range 2 {
			go func(p int) {
				defer wg.Done()
				name, ok := d.ServiceName(p * 5)
				assert.True(t, ok)
				assert.Equal(t, fmt.Sprintf("svc%d", p), name)
			}(p)
		}
	}
	wg.Wait()

	assert.True(t, d.Enabled())
	assert.Len(t, d.cache, 200)
}

func TestDefaultDirectory(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Equal(t, DefaultPath, Default().path)
}
