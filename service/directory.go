package service

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/joshuapare/hostkit/internal/logger"
	"github.com/joshuapare/hostkit/pkg/types"
)

// DefaultPath is the system service database.
const DefaultPath = "/etc/services"

// Format describes the fixed-width layout of the service database. Columns
// are counted in characters from zero; ranges are half-open.
type Format struct {
	HeaderLines int // lines skipped before the first entry
	NameEnd     int // name occupies [0, NameEnd)
	PortStart   int // port occupies [PortStart, PortEnd)
	PortEnd     int
}

// DefaultFormat is the historical layout: two header lines, a 16 character
// name column and the port in columns 16 to 21.
var DefaultFormat = Format{HeaderLines: 2, NameEnd: 16, PortStart: 16, PortEnd: 21}

func (f Format) validate() error {
	if f.HeaderLines < 0 || f.NameEnd <= 0 || f.PortStart < 0 || f.PortEnd <= f.PortStart {
		return fmt.Errorf("service: invalid database format %+v", f)
	}
	return nil
}

// Directory resolves port numbers to service names and probes ports.
//
// The cache only grows and the enabled flag only ever goes from true to
// false, so concurrent lookups may race to read the database without
// corrupting either.
type Directory struct {
	path        string
	format      Format
	dialTimeout time.Duration

	mu    sync.RWMutex
	cache map[int]string

	enabled atomic.Bool
}

// Option configures a Directory.
type Option func(*Directory)

// WithPath sets the service database location.
func WithPath(path string) Option {
	return func(d *Directory) { d.path = path }
}

// WithFormat sets the service database column layout.
func WithFormat(f Format) Option {
	return func(d *Directory) { d.format = f }
}

// WithDialTimeout sets the CheckPort connect timeout.
func WithDialTimeout(timeout time.Duration) Option {
	return func(d *Directory) { d.dialTimeout = timeout }
}

// New returns a Directory with resolution enabled and an empty cache.
func New(opts ...Option) *Directory {
	d := &Directory{
		path:        DefaultPath,
		format:      DefaultFormat,
		dialTimeout: types.PortCheckTimeout,
		cache:       make(map[int]string),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.enabled.Store(true)
	return d
}

var defaultDirectory = New()

// Default returns the process-wide Directory.
func Default() *Directory { return defaultDirectory }

// Enabled reports whether service name resolution is still possible.
func (d *Directory) Enabled() bool { return d.enabled.Load() }

// ServiceName returns the service registered to port.
//
// It returns ok=false without any I/O when resolution is disabled or the
// port is outside 0..49151. A database read failure disables resolution for
// good and also returns ok=false.
func (d *Directory) ServiceName(port int) (name string, ok bool) {
	if !d.enabled.Load() {
		return "", false
	}
	if port < 0 || port >= types.EphemeralPortStart {
		return "", false
	}

	d.mu.RLock()
	name, ok = d.cache[port]
	d.mu.RUnlock()
	if ok {
		return name, true
	}

	name, ok, err := d.lookup(port)
	if err != nil {
		d.disable(err)
		return "", false
	}
	if !ok {
		return "", false
	}

	d.mu.Lock()
	d.cache[port] = name
	d.mu.Unlock()
	return name, true
}

func (d *Directory) disable(err error) {
	if d.enabled.CompareAndSwap(true, false) {
		logger.Warn("service name resolution disabled", "path", d.path, "error", err)
	}
}

// errShortLine reports an entry that does not reach the port column.
var errShortLine = errors.New("service: line shorter than port column")

// lookup scans the database for port. It relies on ascending port order and
// stops at the first entry past the target.
func (d *Directory) lookup(port int) (string, bool, error) {
	if err := d.format.validate(); err != nil {
		return "", false, err
	}

	f, err := os.Open(d.path)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for i := 0; i < d.format.HeaderLines; i++ {
		if !sc.Scan() {
			return "", false, sc.Err()
		}
	}

	line := d.format.HeaderLines
	for sc.Scan() {
		line++
		p, name, err := d.format.parse(sc.Text())
		if err != nil {
			return "", false, fmt.Errorf("%s:%d: %w", d.path, line, err)
		}
		if p > port {
			return "", false, nil
		}
		if p == port {
			return name, true, nil
		}
	}
	return "", false, sc.Err()
}

// parse extracts the port and name columns from one database line.
func (f Format) parse(text string) (int, string, error) {
	cols := []rune(text)
	if len(cols) < f.PortEnd || len(cols) < f.NameEnd {
		return 0, "", errShortLine
	}
	p, err := strconv.Atoi(strings.TrimSpace(string(cols[f.PortStart:f.PortEnd])))
	if err != nil {
		return 0, "", err
	}
	return p, strings.TrimSpace(string(cols[:f.NameEnd])), nil
}
