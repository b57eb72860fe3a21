package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/joshuapare/hostkit/pkg/types"
)

// DefaultScanWorkers bounds concurrent probes when Scan is given no limit.
const DefaultScanWorkers = 16

// PortStatus is the outcome of probing one port.
type PortStatus struct {
	Port    int    `json:"port"`
	Open    bool   `json:"open"`
	Service string `json:"service,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Scan probes each port on host through a bounded worker pool and returns
// one PortStatus per distinct port, sorted by port. Service names are
// attached when the Directory can resolve them.
//
// An unresolvable host fails the whole scan with types.ErrInvalidArgument.
// Other per-port failures are reported in PortStatus.Error.
func (d *Directory) Scan(ctx context.Context, host string, ports []int, workers int) ([]PortStatus, error) {
	ports = dedupe(ports)
	for _, p := range ports {
		if p < 0 || p > types.MaxPort {
			return nil, types.InvalidArgument(fmt.Sprintf("service: invalid port %d", p), nil)
		}
	}
	if len(ports) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = DefaultScanWorkers
	}

	results := make([]PortStatus, len(ports))
	errs := make([]error, len(ports))

	var wg sync.WaitGroup
	pool, err := ants.NewPoolWithFunc(workers, func(item interface{}) {
		defer wg.Done()
		i := item.(int)
		port := ports[i]

		open, err := d.CheckPort(ctx, host, port)
		st := PortStatus{Port: port, Open: open}
		if err != nil {
			st.Error = err.Error()
			errs[i] = err
		}
		if name, ok := d.ServiceName(port); ok {
			st.Service = name
		}
		results[i] = st
	})
	if err != nil {
		return nil, types.IO("service: create worker pool", err)
	}
	defer pool.Release()

	for i := range ports {
		wg.Add(1)
		if err := pool.Invoke(i); err != nil {
			wg.Done()
			wg.Wait()
			return nil, types.IO("service: dispatch probe", err)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if errors.Is(err, types.ErrInvalidArgument) {
			return nil, err
		}
	}

	sort.Slice(results, func(a, b int) bool { return results[a].Port < results[b].Port })
	return results, nil
}

func dedupe(ports []int) []int {
	seen := make(map[int]struct{}, len(ports))
	out := make([]int, 0, len(ports))
	for _, p := range ports {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
