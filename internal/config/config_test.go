package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Output.Format != FormatDocx {
		t.Errorf("default format = %q, want %q", cfg.Output.Format, FormatDocx)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "full config",
			content: "api:\n  key: k-123\n  model: gemini-2.5-pro\n  timeout: 45s\n" +
				"output:\n  defaultDir: /tmp/out\n  format: pdf\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.API.Key != "k-123" {
					t.Errorf("Key = %q, want k-123", cfg.API.Key)
				}
				if cfg.API.Model != "gemini-2.5-pro" {
					t.Errorf("Model = %q", cfg.API.Model)
				}
				if cfg.Output.Format != FormatPDF {
					t.Errorf("Format = %q, want pdf", cfg.Output.Format)
				}
				d, err := cfg.APITimeout()
				if err != nil || d != 45*time.Second {
					t.Errorf("APITimeout() = %v, %v, want 45s", d, err)
				}
			},
		},
		{
			name:    "partial config keeps defaults",
			content: "api:\n  model: gemini-2.5-flash\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Output.Format != FormatDocx {
					t.Errorf("Format = %q, want default docx", cfg.Output.Format)
				}
			},
		},
		{
			name:    "unknown field rejected",
			content: "api:\n  keyy: oops\n",
			wantErr: ErrConfigParse,
		},
		{
			name:    "invalid format rejected",
			content: "output:\n  format: odt\n",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "invalid timeout rejected",
			content: "api:\n  timeout: soon\n",
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative timeout rejected",
			content: "api:\n  timeout: -5s\n",
			wantErr: ErrInvalidTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			cfg, err := LoadConfig(path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadConfig() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadConfigEmptyName(t *testing.T) {
	if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
}

func TestAPITimeoutEmptyMeansDefault(t *testing.T) {
	cfg := DefaultConfig()
	d, err := cfg.APITimeout()
	if err != nil || d != 0 {
		t.Errorf("APITimeout() = %v, %v, want 0, nil", d, err)
	}
}
