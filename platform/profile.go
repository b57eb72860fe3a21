package platform

import (
	"context"
	"runtime"
	"sync"

	"github.com/joshuapare/hostkit/internal/logger"
	"github.com/joshuapare/hostkit/internal/procrun"
	"github.com/joshuapare/hostkit/pkg/types"
)

// Profiler computes the host Profile once and caches it.
type Profiler struct {
	osName string
	runner procrun.Runner
	probes []Probe

	once    sync.Once
	profile types.Profile
}

// Option configures a Profiler.
type Option func(*Profiler)

// WithOSName overrides the reported OS name (default runtime.GOOS).
func WithOSName(name string) Option {
	return func(p *Profiler) { p.osName = name }
}

// WithRunner overrides the process runner used by probes.
func WithRunner(r procrun.Runner) Option {
	return func(p *Profiler) { p.runner = r }
}

// WithProbes replaces the architecture probe chain.
func WithProbes(probes ...Probe) Option {
	return func(p *Profiler) { p.probes = probes }
}

// New returns a Profiler that has not yet inspected the host.
func New(opts ...Option) *Profiler {
	p := &Profiler{
		osName: runtime.GOOS,
		runner: procrun.Exec{},
		probes: DefaultProbes,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Profile returns the host profile, computing it on first use. Concurrent
// first callers block until the single computation finishes; ctx only
// affects that computation.
func (p *Profiler) Profile(ctx context.Context) types.Profile {
	p.once.Do(func() {
		osFamily := DetectOS(p.osName)
		arch := DetectArch(ctx, Env{OS: osFamily, Runner: p.runner}, p.probes)
		p.profile = types.Profile{OS: osFamily, Arch: arch}

		logger.Debug("determined OS type", "os", osFamily.String())
		logger.Debug("determined architecture type", "arch", arch.String())
	})
	return p.profile
}

var defaultProfiler = New()

// Current returns the process-wide host profile.
func Current() types.Profile {
	return defaultProfiler.Profile(context.Background())
}
