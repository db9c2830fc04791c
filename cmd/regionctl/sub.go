package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/fileregion/region"
)

var (
	subStart string
	subEnd   string
)

func init() {
	cmd := newSubCmd()
	cmd.Flags().StringVar(&subStart, "sub-start", "0", "Subregion start, relative to the region start")
	cmd.Flags().StringVar(&subEnd, "sub-end", "", "Subregion end, relative to the region start (required)")
	_ = cmd.MarkFlagRequired("sub-end")
	rootCmd.AddCommand(cmd)
}

func newSubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub <file>",
		Short: "Derive a subregion and report its absolute bounds",
		Long: `The sub command narrows the region selected by --start/--end to the
relative range [--sub-start, --sub-end) and prints the resulting absolute
range, then checks it against the file.

Example:
  regionctl sub data.bin --start 100 --end 2100 --sub-start 200 --sub-end 600`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSub(args)
		},
	}
	return cmd
}

func runSub(args []string) error {
	path := args[0]

	a, err := parseOffset("sub-start", subStart)
	if err != nil {
		return err
	}
	b, err := parseOffset("sub-end", subEnd)
	if err != nil {
		return err
	}

	f, reg, err := openRegion(path, os.O_RDONLY)
	if err != nil {
		return err
	}
	defer f.Close()

	child, err := reg.Subregion(region.Range{Start: a, End: b})
	if err != nil {
		return fmt.Errorf("failed to derive subregion: %w", err)
	}

	verr := child.Validate()
	if verr != nil && !region.IsRangeError(verr) {
		return fmt.Errorf("failed to validate subregion: %w", verr)
	}

	r := child.Range()
	if jsonOut {
		return printJSON(map[string]interface{}{
			"parent_start": reg.Range().Start,
			"parent_end":   reg.Range().End,
			"start":        r.Start,
			"end":          r.End,
			"length":       child.Len(),
			"valid":        verr == nil,
			"reason":       describeError(verr),
		})
	}

	printInfo("Subregion: %s (length %d)\n", r, child.Len())
	if verr == nil {
		printInfo("  Valid: yes\n")
	} else {
		printInfo("  Valid: no (%s)\n", describeError(verr))
	}
	return nil
}
