package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestLoad_Missing(t *testing.T) {
	t.Setenv("HOOKLINE_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Color != "" || len(cfg.Hooks.SearchPaths) != 0 {
		t.Errorf("Load() = %+v, want zero config", cfg)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOOKLINE_CONFIG_HOME", dir)
	content := "hooks:\n  search_paths: [\".husky\", \"extra/\"]\ncolor: never\n"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want %q", cfg.Color, "never")
	}
	if want := []string{".husky", "extra/"}; !slices.Equal(cfg.Hooks.SearchPaths, want) {
		t.Errorf("SearchPaths = %v, want %v", cfg.Hooks.SearchPaths, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty file", input: ""},
		{name: "comments only", input: "# nothing here\n"},
		{name: "color only", input: "color: always\n"},
		{name: "invalid yaml", input: "hooks: [unclosed\n", wantErr: "yaml"},
		{name: "unknown key", input: "colour: never\n", wantErr: "colour"},
		{name: "bad color", input: "color: sometimes\n", wantErr: "color must be"},
		{name: "empty search path", input: "hooks:\n  search_paths: [\"\"]\n", wantErr: "empty entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse([]byte(tt.input))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("parse() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("parse() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
