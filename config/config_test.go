package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/cache")
	t.Setenv("HOME", "/tmp/home")
	for _, key := range []string{"MOISTY_CACHE_DIR", "MOISTY_MEET_LIST_URL", "MOISTY_HTTP_TIMEOUT", "MOISTY_LOG_LEVEL", "MOISTY_WORKERS", "MOISTY_HTTP_ADDR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	base, err := os.UserCacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(base, "moisty", "meets"); cfg.CacheDir != want {
		t.Errorf("cache dir = %s, want %s", cfg.CacheDir, want)
	}
	if cfg.HTTPTimeout != 30*time.Second || cfg.LogLevel != slog.LevelInfo || cfg.Workers != 4 || cfg.HTTPAddr != ":8080" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MOISTY_CACHE_DIR", "/srv/meets")
	t.Setenv("MOISTY_HTTP_TIMEOUT", "5s")
	t.Setenv("MOISTY_LOG_LEVEL", "DEBUG")
	t.Setenv("MOISTY_WORKERS", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CacheDir != "/srv/meets" || cfg.HTTPTimeout != 5*time.Second || cfg.LogLevel != slog.LevelDebug || cfg.Workers != 8 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MOISTY_WORKERS", "0"},
		{"MOISTY_WORKERS", "many"},
		{"MOISTY_HTTP_TIMEOUT", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
