package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/fileregion/cmd/regionctl/logger"
	"github.com/joshuapare/fileregion/internal/textenc"
)

var (
	writeOffset   string
	writeData     string
	writeHex      string
	writeEncoding string
	writeSync     bool
)

func init() {
	cmd := newWriteCmd()
	cmd.Flags().StringVar(&writeOffset, "offset", "0", "Offset relative to the region start")
	cmd.Flags().StringVar(&writeData, "data", "", "Text to write")
	cmd.Flags().StringVar(&writeHex, "hex", "", "Hex-encoded bytes to write")
	cmd.Flags().
		StringVar(&writeEncoding, "encoding", "utf8", "Encoding for --data (utf8, utf16le, utf16be, windows1252, latin1)")
	cmd.Flags().BoolVar(&writeSync, "sync", false, "Flush the file to stable storage after writing")
	rootCmd.AddCommand(cmd)
}

func newWriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write <file>",
		Short: "Write bytes into a region",
		Long: `The write command writes into the region selected by --start/--end. The
payload comes from --data, --hex, or standard input. A payload that does not
fit entirely inside the region is rejected and the file is left unchanged.

Example:
  regionctl write data.bin --start 7 --end 16 --data 01234
  regionctl write data.bin --start 0x20 --end 0x30 --hex deadbeef --sync
  cat patch.bin | regionctl write data.bin --start 512 --end 1024`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrite(args, os.Stdin)
		},
	}
	return cmd
}

func runWrite(args []string, stdin io.Reader) error {
	path := args[0]

	offset, err := parseOffset("offset", writeOffset)
	if err != nil {
		return err
	}
	payload, err := writePayload(stdin)
	if err != nil {
		return err
	}

	f, reg, err := openRegion(path, os.O_RDWR)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := reg.Write(offset, payload)
	if err != nil {
		return fmt.Errorf("failed to write: %w", err)
	}
	if writeSync {
		if err := reg.Sync(); err != nil {
			return fmt.Errorf("failed to sync: %w", err)
		}
	}
	logger.L.Info("wrote region", "path", path, "range", reg.Range().String(),
		"offset", offset, "bytes", n, "sync", writeSync)

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"start":   reg.Range().Start + offset,
			"bytes":   n,
			"synced":  writeSync,
			"success": true,
		})
	}

	printInfo("Wrote %d bytes at offset %d\n", n, reg.Range().Start+offset)
	return nil
}

func writePayload(stdin io.Reader) ([]byte, error) {
	switch {
	case writeData != "" && writeHex != "":
		return nil, fmt.Errorf("--data and --hex are mutually exclusive")
	case writeHex != "":
		b, err := hex.DecodeString(writeHex)
		if err != nil {
			return nil, fmt.Errorf("invalid --hex: %w", err)
		}
		return b, nil
	case writeData != "":
		b, err := textenc.Encode(writeEncoding, writeData)
		if err != nil {
			return nil, fmt.Errorf("failed to encode --data: %w", err)
		}
		return b, nil
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return b, nil
	}
}
