package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/joshuapare/hostkit/patch"
	"github.com/spf13/cobra"
)

var (
	patchPattern       string
	patchPatternString string
	patchPayload       string
	patchPayloadString string
	patchPayloadFile   string
	patchDryRun        bool
)

func init() {
	rootCmd.AddCommand(newPatchCmd())
}

func newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch <file>",
		Short: "Overwrite the first placeholder occurrence in a binary",
		Long: `The patch command finds the first occurrence of a placeholder in a file
and overwrites its start with a payload, in place. The payload may be
shorter than the placeholder; the rest of the placeholder is left as is.

Example:
  hostctl patch agent.bin --pattern-string '@@CONFIG@@' --payload-string 'prod'
  hostctl patch agent.bin --pattern 'de ad ?? ef' --payload 0102
  hostctl patch agent.bin --pattern-string '@@CONFIG@@' --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatch(args)
		},
	}

	cmd.Flags().StringVar(&patchPattern, "pattern", "", "Placeholder as hex bytes, ?? matches any byte")
	cmd.Flags().StringVar(&patchPatternString, "pattern-string", "", "Placeholder as literal text")
	cmd.Flags().StringVar(&patchPayload, "payload", "", "Payload as hex bytes")
	cmd.Flags().StringVar(&patchPayloadString, "payload-string", "", "Payload as literal text")
	cmd.Flags().StringVar(&patchPayloadFile, "payload-file", "", "Read the payload from a file")
	cmd.Flags().BoolVar(&patchDryRun, "dry-run", false, "Only report where the placeholder is")
	return cmd
}

func runPatch(args []string) error {
	path := args[0]

	pattern, err := patchPatternFromFlags()
	if err != nil {
		return err
	}

	if patchDryRun {
		printVerbose("Locating %d byte placeholder in %s\n", pattern.Len(), path)
		off, err := patch.Locate(path, pattern)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(map[string]interface{}{"file": path, "offset": off, "dry_run": true})
		}
		printInfo("Placeholder found in %s at offset 0x%x\n", path, off)
		return nil
	}

	payload, err := patchPayloadFromFlags()
	if err != nil {
		return err
	}

	printVerbose("Patching %s: %d byte payload into %d byte placeholder\n", path, len(payload), pattern.Len())
	res, err := patch.Patch(path, pattern, payload)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{"file": path, "offset": res.Offset, "written": res.Written})
	}
	printInfo("Patched %s: wrote %d bytes at offset 0x%x\n", path, res.Written, res.Offset)
	return nil
}

func patchPatternFromFlags() (patch.Pattern, error) {
	switch {
	case patchPattern != "" && patchPatternString != "":
		return nil, errors.New("use only one of --pattern and --pattern-string")
	case patchPattern != "":
		return patch.ParsePattern(patchPattern)
	case patchPatternString != "":
		return patch.PatternOf([]byte(patchPatternString)), nil
	default:
		return nil, errors.New("a placeholder is required (--pattern or --pattern-string)")
	}
}

func patchPayloadFromFlags() ([]byte, error) {
	set := 0
	for _, v := range []string{patchPayload, patchPayloadString, patchPayloadFile} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return nil, errors.New("exactly one of --payload, --payload-string or --payload-file is required")
	}

	switch {
	case patchPayload != "":
		b, err := hex.DecodeString(patchPayload)
		if err != nil {
			return nil, fmt.Errorf("invalid --payload: %w", err)
		}
		return b, nil
	case patchPayloadString != "":
		return []byte(patchPayloadString), nil
	default:
		b, err := os.ReadFile(patchPayloadFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload: %w", err)
		}
		return b, nil
	}
}
