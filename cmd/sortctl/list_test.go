package main

import (
	"testing"
)

func TestListCommand(t *testing.T) {
	tests := []struct {
		name           string
		verbose        bool
		json           bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:           "plain",
			wantContain:    []string{"insertion\n", "quick-merge\n", "bubble-merge\n"},
			wantNotContain: []string{"Algorithms:", "descending"},
		},
		{
			name:        "verbose",
			verbose:     true,
			wantContain: []string{"Algorithms:", "Input kinds:", "shuffled"},
		},
		{
			name:        "json",
			json:        true,
			wantContain: []string{`"algorithms"`, `"merge-selection"`, `"kinds"`, `"random"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			verbose = tt.verbose
			jsonOut = tt.json

			output, err := captureOutput(t, runList)
			if err != nil {
				t.Fatalf("runList() error: %v", err)
			}
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}
