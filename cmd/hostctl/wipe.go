package main

import (
	"errors"

	"github.com/joshuapare/hostkit/patch"
	"github.com/spf13/cobra"
)

var wipeForce bool

func init() {
	rootCmd.AddCommand(newWipeCmd())
}

func newWipeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wipe <file>",
		Short: "Overwrite a file's contents with zeros",
		Long: `The wipe command overwrites the current length of a file with zero bytes.

This is a logical wipe only. Copy-on-write filesystems, SSDs and snapshots
may keep the original data; do not rely on it for secure deletion.

Example:
  hostctl wipe staging.key --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWipe(args)
		},
	}
	cmd.Flags().BoolVar(&wipeForce, "force", false, "Confirm that the file contents may be destroyed")
	return cmd
}

func runWipe(args []string) error {
	if !wipeForce {
		return errors.New("refusing to wipe without --force")
	}
	path := args[0]

	if err := patch.ZeroFill(path); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{"file": path, "wiped": true})
	}
	printInfo("Wiped %s\n", path)
	return nil
}
