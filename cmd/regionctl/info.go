package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/fileregion/cmd/regionctl/logger"
	"github.com/joshuapare/fileregion/region"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Validate a region against a file and report its bounds",
		Long: `The info command checks the region selected by --start/--end against the
current file length. An invalid region is reported, not treated as an error,
with the specific reason: the start lies at or past the end of the file, or
the region runs past the end of the file.

Example:
  regionctl info data.bin --start 7 --end 16
  regionctl info data.bin --start 0x1000 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	f, reg, err := openRegion(path, os.O_RDONLY)
	if err != nil {
		return err
	}
	defer f.Close()

	fileLen, err := reg.FileLength()
	if err != nil {
		return fmt.Errorf("failed to get file length: %w", err)
	}

	verr := reg.Validate()
	if verr != nil && !region.IsRangeError(verr) {
		return fmt.Errorf("failed to validate region: %w", verr)
	}
	logger.L.Info("validated region", "path", path, "range", reg.Range().String(), "valid", verr == nil)

	r := reg.Range()
	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":        path,
			"file_length": fileLen,
			"start":       r.Start,
			"end":         r.End,
			"length":      reg.Len(),
			"valid":       verr == nil,
			"reason":      describeError(verr),
		})
	}

	printInfo("\nRegion Information:\n")
	printInfo("  File: %s\n", path)
	printInfo("  File length: %d bytes\n", fileLen)
	printInfo("  Range: %s\n", r)
	printInfo("  Length: %d bytes\n", reg.Len())
	if verr == nil {
		printInfo("  Valid: yes\n")
	} else {
		printInfo("  Valid: no (%s)\n", describeError(verr))
	}
	return nil
}
