package main

import (
	"fmt"
	"strconv"

	"github.com/joshuapare/hostkit/service"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newServiceCmd())
}

func newServiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service <port>",
		Short: "Resolve the well-known service name of a port",
		Long: `The service command looks a port up in the fixed-width service database.

Example:
  hostctl service 22
  hostctl service 8768 --services ./services.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runService(args)
		},
	}
	cmd.Flags().StringVar(&servicesPath, "services", service.DefaultPath, "Service database path")
	return cmd
}

func runService(args []string) error {
	port, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", args[0], err)
	}

	dir := service.New(service.WithPath(servicesPath))
	name, ok := dir.ServiceName(port)
	if !ok && !dir.Enabled() {
		printVerbose("Service database %s could not be read; resolution disabled\n", servicesPath)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{"port": port, "service": name, "found": ok})
	}
	if !ok {
		return fmt.Errorf("no service registered for port %d", port)
	}
	printInfo("%s\n", name)
	return nil
}
