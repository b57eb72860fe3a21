package platform

import (
	"strings"

	"github.com/joshuapare/hostkit/pkg/types"
)

type osRule struct {
	substrings []string
	family     types.OsFamily
}

// osRules is evaluated in order; no substring is a prefix of another entry.
var osRules = []osRule{
	{[]string{"windows"}, types.Windows},
	{[]string{"linux"}, types.Linux},
	{[]string{"mac", "darwin"}, types.MacOS},
	{[]string{"solaris", "sunos"}, types.Solaris},
	{[]string{"freebsd"}, types.FreeBSD},
	{[]string{"openbsd"}, types.OpenBSD},
	{[]string{"netbsd"}, types.NetBSD},
	{[]string{"dragonfly"}, types.DragonFlyBSD},
}

// DetectOS maps a host-reported OS name such as runtime.GOOS, "Mac OS X" or
// "SunOS" to its family.
func DetectOS(name string) types.OsFamily {
	name = strings.ToLower(name)
	for _, rule := range osRules {
		if containsAny(name, rule.substrings) {
			return rule.family
		}
	}
	return types.UnknownOS
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
