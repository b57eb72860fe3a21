package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/joshuapare/hostkit/pkg/types"
)

// ParsePorts parses a port list such as "22,80,8000-8010" into a sorted,
// de-duplicated slice.
func ParsePorts(list string) ([]int, error) {
	var ports []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(field, "-")
		first, err := parsePort(lo)
		if err != nil {
			return nil, err
		}
		last := first
		if isRange {
			if last, err = parsePort(hi); err != nil {
				return nil, err
			}
			if last < first {
				return nil, types.InvalidArgument(fmt.Sprintf("service: descending port range %q", field), nil)
			}
		}
		for p := first; p <= last; p++ {
			ports = append(ports, p)
		}
	}
	if len(ports) == 0 {
		return nil, types.InvalidArgument(fmt.Sprintf("service: no ports in %q", list), nil)
	}

	ports = dedupe(ports)
	sort.Ints(ports)
	return ports, nil
}

func parsePort(s string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, types.InvalidArgument(fmt.Sprintf("service: bad port %q", s), err)
	}
	if p < 0 || p > types.MaxPort {
		return 0, types.InvalidArgument(fmt.Sprintf("service: invalid port %d", p), nil)
	}
	return p, nil
}
