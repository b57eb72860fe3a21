package main

import (
	"github.com/joshuapare/hostkit/platform"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPlatformCmd())
}

func newPlatformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "Report the host OS family and CPU architecture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlatform()
		},
	}
}

func runPlatform() error {
	profile := platform.Current()

	if jsonOut {
		return printJSON(profile)
	}
	printInfo("OS:   %s\n", profile.OS)
	printInfo("Arch: %s\n", profile.Arch)
	return nil
}
