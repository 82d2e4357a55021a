package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// isolate keeps the default search path away from the real home directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Chdir(dir)
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("termsim", pflag.ContinueOnError)
	flags.StringP("theme", "t", "", "")
	flags.String("addr", "", "")
	flags.String("log-file", "", "")
	flags.String("log-level", "", "")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "classic" || cfg.Hostname != "termsim" || cfg.Web.Addr != "127.0.0.1:8080" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" || cfg.Log.Path != "" || cfg.Log.MaxSizeMB != 10 {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
}

func TestLoadFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
theme: retro
hostname: devbox
web:
  addr: ":9090"
log:
  level: debug
  format: console
  path: /tmp/termsim.log
  max_backups: 7
`)
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "retro" || cfg.Hostname != "devbox" || cfg.Web.Addr != ":9090" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	lc := cfg.Log.Logging()
	if lc.Level != "debug" || lc.Format != "console" || lc.Path != "/tmp/termsim.log" || lc.MaxBackups != 7 || lc.MaxSizeMB != 10 {
		t.Fatalf("unexpected logging config %+v", lc)
	}
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "theme: light\n")
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "light" {
		t.Fatalf("theme = %q", cfg.Theme)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "theme: retro\nlog:\n  level: warn\n")

	flags := newFlags()
	if err := flags.Parse([]string{"-t", "modern", "--addr", ":7000"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path, flags)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "modern" || cfg.Web.Addr != ":7000" {
		t.Fatalf("flags should win: %+v", cfg)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("unset flag should not override file, level = %q", cfg.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)
	cases := []struct {
		name string
		body string
	}{
		{"unknown theme", "theme: neon\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"bad format", "log:\n  format: xml\n"},
		{"negative rotation", "log:\n  max_size_mb: -1\n"},
		{"malformed yaml", "theme: [retro\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, dir, tc.body)
			if _, err := Load(path, nil); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml"), nil); !errors.Is(err, ErrInvalid) {
		t.Fatalf("explicit missing file should fail, got %v", err)
	}
}
