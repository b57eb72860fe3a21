package platform

import (
	"context"

	"github.com/joshuapare/hostkit/internal/procrun"
	"github.com/joshuapare/hostkit/pkg/types"
)

// Probe inspects the host and reports an architecture, or ok=false when it
// has no usable signal.
type Probe func(ctx context.Context, env Env) (arch types.ArchFamily, ok bool)

// Env is what a Probe may consult.
type Env struct {
	OS     types.OsFamily
	Runner procrun.Runner
}

type archRule struct {
	substrings []string
	arch       types.ArchFamily
}

// unameRules is evaluated in order. "ppc64" precedes "ppc" and "mips64"
// precedes "mips" because the shorter names are substrings of the longer.
var unameRules = []archRule{
	{[]string{"x86_64", "ia64"}, types.X86_64},
	{[]string{"i686", "i386"}, types.X86},
	{[]string{"armv7", "armv6"}, types.ARM},
	{[]string{"aarch64", "armv8"}, types.AARCH64},
	{[]string{"ppc64"}, types.PowerPC64},
	{[]string{"ppc"}, types.PowerPC},
	{[]string{"mips64"}, types.MIPS64},
	{[]string{"mips"}, types.MIPS},
	{[]string{"s390"}, types.S390X},
	{[]string{"sparc"}, types.SPARC64},
}

var wmicRules = []archRule{
	{[]string{"x64"}, types.X86_64},
	{[]string{"x86"}, types.X86},
}

// DefaultProbes is the architecture fallback chain: uname first since most
// systems have it, then WMI on Windows.
var DefaultProbes = []Probe{UnameProbe, WMICProbe}

// UnameProbe runs `uname -m`.
func UnameProbe(ctx context.Context, env Env) (types.ArchFamily, bool) {
	return match(commandText(ctx, env.Runner, "uname", "-m"), unameRules)
}

// WMICProbe runs `wmic computersystem get systemtype`. It only applies to
// Windows hosts.
func WMICProbe(ctx context.Context, env Env) (types.ArchFamily, bool) {
	if env.OS != types.Windows {
		return types.UnknownArch, false
	}
	return match(commandText(ctx, env.Runner, "wmic", "computersystem", "get", "systemtype"), wmicRules)
}

// DetectArch runs probes in order and returns the first recognised
// architecture, or types.UnknownArch.
func DetectArch(ctx context.Context, env Env, probes []Probe) types.ArchFamily {
	for _, probe := range probes {
		if arch, ok := probe(ctx, env); ok {
			return arch
		}
	}
	return types.UnknownArch
}

// commandText returns the normalised stdout of a command, or "" when the
// command could not be run or failed.
func commandText(ctx context.Context, r procrun.Runner, name string, args ...string) string {
	if r == nil {
		return ""
	}
	res, err := r.Run(ctx, name, args...)
	if err != nil {
		return ""
	}
	return res.Text()
}

func match(text string, rules []archRule) (types.ArchFamily, bool) {
	if text == "" {
		return types.UnknownArch, false
	}
	for _, rule := range rules {
		if containsAny(text, rule.substrings) {
			return rule.arch, true
		}
	}
	return types.UnknownArch, false
}
