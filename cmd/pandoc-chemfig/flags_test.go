package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		args        []string
		wantFormat  string
		wantConfig  string
		wantVerbose bool
		wantVersion bool
		wantErr     bool
	}{
		{
			name:       "positional format as pandoc passes it",
			args:       []string{"pandoc-chemfig", "latex"},
			wantFormat: "latex",
		},
		{
			name:       "no arguments means empty format",
			args:       []string{"pandoc-chemfig"},
			wantFormat: "",
		},
		{
			name:       "format flag",
			args:       []string{"pandoc-chemfig", "--format", "html"},
			wantFormat: "html",
		},
		{
			name:       "format flag wins over positional",
			args:       []string{"pandoc-chemfig", "-f", "html", "latex"},
			wantFormat: "html",
		},
		{
			name:       "config and verbose",
			args:       []string{"pandoc-chemfig", "-c", "abbr", "-v", "docx"},
			wantFormat: "docx",
			wantConfig: "abbr",

			wantVerbose: true,
		},
		{
			name:        "version flag",
			args:        []string{"pandoc-chemfig", "--version"},
			wantVersion: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"pandoc-chemfig", "--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fl, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFlags() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if fl.format != tt.wantFormat {
				t.Errorf("format = %q, want %q", fl.format, tt.wantFormat)
			}
			if fl.config != tt.wantConfig {
				t.Errorf("config = %q, want %q", fl.config, tt.wantConfig)
			}
			if fl.verbose != tt.wantVerbose {
				t.Errorf("verbose = %v, want %v", fl.verbose, tt.wantVerbose)
			}
			if fl.version != tt.wantVersion {
				t.Errorf("version = %v, want %v", fl.version, tt.wantVersion)
			}
		})
	}
}
