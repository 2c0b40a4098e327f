package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flosswash/swish"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "swish.yaml")
	t.Setenv("SWISH_CONFIG_PATH", path)
	for _, key := range []string{
		"LISTEN_ADDR", "HTTP_LOGGING", "ENABLE_PPROF", "CORS_ORIGINS",
		"SWISH_LEVEL", "SWISH_TIMESTAMP", "SWISH_COLORS", "SWISH_SINK",
	} {
		t.Setenv(key, "")
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":3000" || !cfg.HttpLogging || cfg.LogSink != SinkStdout {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Swish.Gargles.Timestamp != nil || cfg.Swish.Gargles.Colors != nil {
		t.Fatalf("gargles should be unset: %+v", cfg.Swish.Gargles)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := isolate(t)
	data := `
listen_addr: ":9090"
log_sink: zerolog
cors_origins: ["https://example.com"]
swish:
  level: verbose
  gargles:
    colors: false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":9090" || cfg.LogSink != SinkZerolog {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "https://example.com" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSOrigins)
	}

	got := swish.Resolve(cfg.Swish)
	want := swish.Config{Level: swish.LevelVerbose, Timestamp: true, Colors: false}
	if got != want {
		t.Fatalf("resolved %+v, want %+v", got, want)
	}
}

func TestEnvOverridesYAML(t *testing.T) {
	path := isolate(t)
	if err := os.WriteFile(path, []byte("swish:\n  level: verbose\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SWISH_LEVEL", "default")
	t.Setenv("SWISH_TIMESTAMP", "true")
	t.Setenv("HTTP_LOGGING", "false")
	t.Setenv("CORS_ORIGINS", "a,b")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HttpLogging {
		t.Fatal("HTTP_LOGGING=false should disable logging")
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSOrigins)
	}

	got := swish.Resolve(cfg.Swish)
	want := swish.Config{Level: swish.LevelDefault, Timestamp: true, Colors: true}
	if got != want {
		t.Fatalf("resolved %+v, want %+v", got, want)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := isolate(t)
	if err := os.WriteFile(path, []byte("swish: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestUnparsableEnvBoolIsReported(t *testing.T) {
	isolate(t)
	t.Setenv("SWISH_COLORS", "nope")
	t.Setenv("ENABLE_PPROF", "maybe")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Swish.Gargles.Colors != nil {
		t.Fatal("unparsable SWISH_COLORS should not set colors")
	}

	err = Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error for unparsable booleans")
	}
	for _, want := range []string{"SWISH_COLORS", `"nope"`, "ENABLE_PPROF"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %s in error, got: %v", want, err)
		}
	}
}

func TestApplyTerminal(t *testing.T) {
	cfg := &Config{}
	ApplyTerminal(cfg, true)
	if cfg.Swish.Gargles.Colors != nil {
		t.Fatal("terminal output should keep colors unset")
	}

	ApplyTerminal(cfg, false)
	if cfg.Swish.Gargles.Colors == nil || *cfg.Swish.Gargles.Colors {
		t.Fatal("non-terminal output should disable colors")
	}

	explicit := &Config{Swish: swish.Options{Gargles: swish.Gargles{Colors: swish.Bool(true)}}}
	ApplyTerminal(explicit, false)
	if !*explicit.Swish.Gargles.Colors {
		t.Fatal("explicit colors must win over terminal detection")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{ListenAddr: ":3000", LogSink: SinkStdout}, ""},
		{"missing addr", Config{LogSink: SinkStdout}, "listen_addr"},
		{"bad level", Config{ListenAddr: ":3000", LogSink: SinkStdout, Swish: swish.Options{Level: "loud"}}, "swish.level"},
		{"bad sink", Config{ListenAddr: ":3000", LogSink: "syslog"}, "log_sink"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected %s error, got: %v", tt.wantErr, err)
			}
		})
	}
}
