package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/fileregion/cmd/regionctl/logger"
	"github.com/joshuapare/fileregion/region"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	logLevel string
	logJSON  bool

	// Region selection, shared by every subcommand
	regionStart string
	regionEnd   string
)

var rootCmd = &cobra.Command{
	Use:   "regionctl",
	Short: "Read and write bounded byte regions of a file",
	Long: `regionctl inspects, reads and writes a byte window [start, end) of an
existing file. Reads are truncated at the window edge; writes that would
leave the window are rejected without touching the file.

Offsets accept decimal or 0x-prefixed hexadecimal.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
	SilenceUsage: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log to stderr at this level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")

	rootCmd.PersistentFlags().StringVar(&regionStart, "start", "0", "Region start offset")
	rootCmd.PersistentFlags().
		StringVar(&regionEnd, "end", "", "Region end offset, exclusive (default: end of file)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogger() error {
	if logLevel == "" {
		return logger.Init(logger.Options{})
	}
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	return logger.Init(logger.Options{Enabled: true, Level: level, JSON: logJSON})
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// parseOffset parses a decimal or 0x-prefixed offset flag.
func parseOffset(name, s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid --%s %q: %w", name, s, err)
	}
	return v, nil
}

// openRegion opens path and builds the region selected by --start/--end.
// The region is not validated; callers decide how strict to be.
func openRegion(path string, flag int) (*region.File, region.Region, error) {
	start, err := parseOffset("start", regionStart)
	if err != nil {
		return nil, region.Region{}, err
	}

	printVerbose("Opening file: %s\n", path)
	f, err := region.OpenFile(path, flag, 0)
	if err != nil {
		return nil, region.Region{}, fmt.Errorf("failed to open file: %w", err)
	}

	var end uint64
	if regionEnd == "" {
		end, err = f.Length()
		if err != nil {
			_ = f.Close()
			return nil, region.Region{}, fmt.Errorf("failed to get file length: %w", err)
		}
	} else {
		end, err = parseOffset("end", regionEnd)
		if err != nil {
			_ = f.Close()
			return nil, region.Region{}, err
		}
	}

	r := region.Range{Start: start, End: end}
	if !r.WellFormed() {
		_ = f.Close()
		return nil, region.Region{}, fmt.Errorf("invalid region %s: start exceeds end", r)
	}

	logger.L.Debug("opened region", "path", path, "range", r.String())
	return f, region.New(f, r), nil
}

// describeError names the region error kind for output, or "" for nil.
func describeError(err error) string {
	if err == nil {
		return ""
	}
	if k := region.KindOf(err); k != 0 {
		return k.String()
	}
	return err.Error()
}
