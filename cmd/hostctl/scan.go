package main

import (
	"context"

	"github.com/joshuapare/hostkit/pkg/types"
	"github.com/joshuapare/hostkit/service"
	"github.com/spf13/cobra"
)

var (
	scanWorkers int
	scanTimeout = types.PortCheckTimeout
	scanAll     bool
)

func init() {
	rootCmd.AddCommand(newScanCmd())
}

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <host> <ports>",
		Short: "Probe a list of TCP ports concurrently",
		Long: `The scan command probes several ports on one host. Ports are given as a
comma separated list that may contain ranges.

Example:
  hostctl scan localhost 22,80,443
  hostctl scan 10.0.0.5 8000-8100 --workers 32 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), args)
		},
	}
	cmd.Flags().IntVar(&scanWorkers, "workers", service.DefaultScanWorkers, "Concurrent probes")
	cmd.Flags().DurationVar(&scanTimeout, "timeout", types.PortCheckTimeout, "Connect timeout per port")
	cmd.Flags().BoolVar(&scanAll, "all", false, "Also list closed ports")
	cmd.Flags().StringVar(&servicesPath, "services", service.DefaultPath, "Service database used to name ports")
	return cmd
}

func runScan(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	host := args[0]
	ports, err := service.ParsePorts(args[1])
	if err != nil {
		return err
	}

	printVerbose("Scanning %d ports on %s with %d workers\n", len(ports), host, scanWorkers)
	dir := service.New(service.WithPath(servicesPath), service.WithDialTimeout(scanTimeout))
	results, err := dir.Scan(ctx, host, ports, scanWorkers)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(results)
	}

	for _, st := range results {
		if !st.Open && !scanAll {
			continue
		}
		state := "closed"
		if st.Open {
			state = "open"
		}
		line := state
		if st.Service != "" {
			line += "  " + st.Service
		}
		if st.Error != "" {
			line += "  (" + st.Error + ")"
		}
		printInfo("%5d/tcp  %s\n", st.Port, line)
	}
	return nil
}
