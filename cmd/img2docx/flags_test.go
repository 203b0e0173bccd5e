package main

import "testing"

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, f *cliFlags, positional []string)
	}{
		{
			name: "defaults",
			args: []string{"scan.jpg"},
			check: func(t *testing.T, f *cliFlags, positional []string) {
				if f.format != "" || f.output != "" || f.quiet || f.verbose {
					t.Errorf("flags = %+v, want zero values", f)
				}
				if len(positional) != 1 || positional[0] != "scan.jpg" {
					t.Errorf("positional = %v, want [scan.jpg]", positional)
				}
			},
		},
		{
			name: "long flags",
			args: []string{"--output", "out", "--format", "pdf", "--model", "gemini-2.5-pro", "--timeout", "30s", "scan.jpg"},
			check: func(t *testing.T, f *cliFlags, positional []string) {
				if f.output != "out" || f.format != "pdf" || f.model != "gemini-2.5-pro" || f.timeout != "30s" {
					t.Errorf("flags = %+v", f)
				}
			},
		},
		{
			name: "short flags",
			args: []string{"-o", "out.docx", "-f", "docx", "-q", "-v", "scan.jpg"},
			check: func(t *testing.T, f *cliFlags, positional []string) {
				if f.output != "out.docx" || f.format != "docx" || !f.quiet || !f.verbose {
					t.Errorf("flags = %+v", f)
				}
			},
		},
		{
			name: "multiple positional args",
			args: []string{"a.jpg", "b.png", "c.gif"},
			check: func(t *testing.T, f *cliFlags, positional []string) {
				if len(positional) != 3 {
					t.Errorf("positional = %v, want 3 entries", positional)
				}
			},
		},
		{
			name:    "unknown flag",
			args:    []string{"--nope"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, positional, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFlags() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, f, positional)
			}
		})
	}
}
