package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Precision", cfg.Precision, -1},
		{"HistoryEnabled", cfg.HistoryEnabled, true},
		{"HistorySize", cfg.HistorySize, 100},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("DefaultConfig().%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	if cfg.HistoryPath == "" {
		t.Error("DefaultConfig().HistoryPath should not be empty")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *Config
		wantErr     bool
		errContains string
	}{
		{
			name: "valid defaults",
			cfg: &Config{
				Precision:      -1,
				HistoryEnabled: true,
				HistoryPath:    "/tmp/history.msgpack",
				HistorySize:    100,
			},
			wantErr: false,
		},
		{
			name: "valid fixed precision",
			cfg: &Config{
				Precision:   4,
				HistorySize: 10,
			},
			wantErr: false,
		},
		{
			name: "precision too low",
			cfg: &Config{
				Precision:   -2,
				HistorySize: 10,
			},
			wantErr:     true,
			errContains: "precision",
		},
		{
			name: "precision too high",
			cfg: &Config{
				Precision:   16,
				HistorySize: 10,
			},
			wantErr:     true,
			errContains: "precision",
		},
		{
			name: "history size zero",
			cfg: &Config{
				Precision:   -1,
				HistorySize: 0,
			},
			wantErr:     true,
			errContains: "history_size",
		},
		{
			name: "history enabled without path",
			cfg: &Config{
				Precision:      -1,
				HistoryEnabled: true,
				HistoryPath:    "",
				HistorySize:    10,
			},
			wantErr:     true,
			errContains: "history_path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Validate() error = %q, want substring %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	data := []byte("precision: 3\nhistory_enabled: false\nhistory_size: 25\nverbose: true\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}

	if cfg.Precision != 3 {
		t.Errorf("Precision = %d, want 3", cfg.Precision)
	}
	if cfg.HistoryEnabled {
		t.Error("HistoryEnabled = true, want false")
	}
	if cfg.HistorySize != 25 {
		t.Errorf("HistorySize = %d, want 25", cfg.HistorySize)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadFromFile() expected error for missing file")
	}
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("precision: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFromFile(path)
	if err == nil {
		t.Fatal("LoadFromFile() expected error for invalid YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ARITH_PRECISION", "2")
	t.Setenv("ARITH_HISTORY_ENABLED", "false")
	t.Setenv("ARITH_HISTORY_PATH", "/tmp/custom.msgpack")
	t.Setenv("ARITH_HISTORY_SIZE", "7")
	t.Setenv("ARITH_VERBOSE", "true")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Precision != 2 {
		t.Errorf("Precision = %d, want 2", cfg.Precision)
	}
	if cfg.HistoryEnabled {
		t.Error("HistoryEnabled = true, want false")
	}
	if cfg.HistoryPath != "/tmp/custom.msgpack" {
		t.Errorf("HistoryPath = %q, want /tmp/custom.msgpack", cfg.HistoryPath)
	}
	if cfg.HistorySize != 7 {
		t.Errorf("HistorySize = %d, want 7", cfg.HistorySize)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestEnvOverrides_IgnoresMalformed(t *testing.T) {
	t.Setenv("ARITH_PRECISION", "lots")
	t.Setenv("ARITH_HISTORY_ENABLED", "maybe")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Precision != -1 {
		t.Errorf("Precision = %d, want default -1", cfg.Precision)
	}
	if !cfg.HistoryEnabled {
		t.Error("HistoryEnabled = false, want default true")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Precision = 5
	cfg.HistorySize = 42

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if loaded.Precision != 5 {
		t.Errorf("Precision = %d, want 5", loaded.Precision)
	}
	if loaded.HistorySize != 42 {
		t.Errorf("HistorySize = %d, want 42", loaded.HistorySize)
	}
}
