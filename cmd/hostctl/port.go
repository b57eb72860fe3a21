package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/joshuapare/hostkit/pkg/types"
	"github.com/joshuapare/hostkit/service"
	"github.com/spf13/cobra"
)

var (
	portTimeout  time.Duration
	servicesPath string
)

func init() {
	rootCmd.AddCommand(newPortCmd())
}

func newPortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "port <host> <port>",
		Short: "Check whether a TCP port accepts connections",
		Long: `The port command opens a TCP connection to host:port and reports
whether it was accepted. Refused and timed out connections are reported as
closed; an unresolvable host is an error.

Example:
  hostctl port localhost 22
  hostctl port db.internal 5432 --timeout 2s --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPort(cmd.Context(), args)
		},
	}
	cmd.Flags().DurationVar(&portTimeout, "timeout", types.PortCheckTimeout, "Connect timeout")
	cmd.Flags().StringVar(&servicesPath, "services", service.DefaultPath, "Service database used to name the port")
	return cmd
}

func runPort(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	host := args[0]
	port, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", args[1], err)
	}

	dir := service.New(service.WithPath(servicesPath), service.WithDialTimeout(portTimeout))
	open, err := dir.CheckPort(ctx, host, port)
	if err != nil {
		return err
	}
	name, _ := dir.ServiceName(port)

	if jsonOut {
		return printJSON(service.PortStatus{Port: port, Open: open, Service: name})
	}

	state := "closed"
	if open {
		state = "open"
	}
	if name != "" {
		printInfo("%s:%d (%s) is %s\n", host, port, name, state)
	} else {
		printInfo("%s:%d is %s\n", host, port, state)
	}
	return nil
}
