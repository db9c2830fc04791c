package main

import (
	"testing"
)

func TestInfoCommand(t *testing.T) {
	path := writeTestFile(t, []byte("Hello, FileRegion."))

	tests := []struct {
		name        string
		start       string
		end         string
		wantErr     bool
		wantContain []string
		wantJSON    bool
	}{
		{
			name:        "valid region",
			start:       "7",
			end:         "16",
			wantContain: []string{"Range: [7, 16)", "Length: 9 bytes", "File length: 18 bytes", "Valid: yes"},
		},
		{
			name:        "whole file by default",
			start:       "0",
			end:         "",
			wantContain: []string{"Range: [0, 18)", "Valid: yes"},
		},
		{
			name:        "hex offsets",
			start:       "0x7",
			end:         "0x10",
			wantContain: []string{"Range: [7, 16)"},
		},
		{
			name:        "start at file length",
			start:       "18",
			end:         "18",
			wantContain: []string{"Valid: no (start out of bounds)"},
		},
		{
			name:        "end past file length",
			start:       "10",
			end:         "30",
			wantContain: []string{"Valid: no (end out of bounds)"},
		},
		{
			name:        "json",
			start:       "7",
			end:         "16",
			wantJSON:    true,
			wantContain: []string{`"valid": true`, `"length": 9`},
		},
		{
			name:    "start after end",
			start:   "9",
			end:     "3",
			wantErr: true,
		},
		{
			name:    "bad offset",
			start:   "abc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON
			regionStart = tt.start
			regionEnd = tt.end

			output, err := captureOutput(t, func() error {
				return runInfo([]string{path})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runInfo() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}
			if tt.wantJSON && !tt.wantErr {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestInfoCommand_MissingFile(t *testing.T) {
	resetFlags()
	_, err := captureOutput(t, func() error {
		return runInfo([]string{"/nonexistent/region.bin"})
	})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
