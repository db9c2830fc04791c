package main

import (
	"testing"
)

func TestSubCommand(t *testing.T) {
	path := writeTestFile(t, make([]byte, 3000))
	small := writeTestFile(t, make([]byte, 500))

	tests := []struct {
		name        string
		file        string
		start       string
		end         string
		subStart    string
		subEnd      string
		wantErr     bool
		wantContain []string
		wantJSON    bool
	}{
		{
			name:        "derived range",
			file:        path,
			start:       "100",
			end:         "2100",
			subStart:    "200",
			subEnd:      "600",
			wantContain: []string{"Subregion: [300, 700) (length 400)", "Valid: yes"},
		},
		{
			name:        "derived range past file end",
			file:        small,
			start:       "100",
			end:         "2100",
			subStart:    "200",
			subEnd:      "600",
			wantContain: []string{"Subregion: [300, 700)", "Valid: no (end out of bounds)"},
		},
		{
			name:        "json",
			file:        path,
			start:       "100",
			end:         "2100",
			subStart:    "0",
			subEnd:      "2000",
			wantJSON:    true,
			wantContain: []string{`"start": 100`, `"end": 2100`, `"valid": true`},
		},
		{
			name:     "end outside parent",
			file:     path,
			start:    "10",
			end:      "20",
			subStart: "0",
			subEnd:   "11",
			wantErr:  true,
		},
		{
			name:     "start outside parent",
			file:     path,
			start:    "10",
			end:      "20",
			subStart: "11",
			subEnd:   "15",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON
			regionStart = tt.start
			regionEnd = tt.end
			subStart = tt.subStart
			subEnd = tt.subEnd

			output, err := captureOutput(t, func() error {
				return runSub([]string{tt.file})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runSub() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}
			if tt.wantJSON && !tt.wantErr {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}
