package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Wal33D/nhtsa-recall-lookup/pkg/errors"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	want := DefaultConfig()
	if cfg.API.BaseURL != want.API.BaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.API.BaseURL, want.API.BaseURL)
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("Backend = %q, want %q", cfg.Cache.Backend, "file")
	}
	if cfg.Cache.TTLHours != want.Cache.TTLHours {
		t.Errorf("TTLHours = %d, want %d", cfg.Cache.TTLHours, want.Cache.TTLHours)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[api]
base_url = "http://localhost:9999/recalls"
timeout_seconds = 3

[cache]
backend = "redis"
ttl_hours = 6

[cache.redis]
addr = "redis.internal:6380"
db = 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:9999/recalls" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 3 {
		t.Errorf("TimeoutSeconds = %d, want 3", cfg.API.TimeoutSeconds)
	}
	if cfg.Cache.Backend != "redis" {
		t.Errorf("Backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.Cache.Redis.Addr != "redis.internal:6380" {
		t.Errorf("Redis.Addr = %q", cfg.Cache.Redis.Addr)
	}
	if cfg.Cache.Redis.DB != 2 {
		t.Errorf("Redis.DB = %d, want 2", cfg.Cache.Redis.DB)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[cache]\nbackend = \"memory\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Cache.Backend != "memory" {
		t.Errorf("Backend = %q, want memory", cfg.Cache.Backend)
	}
	if cfg.API.BaseURL != DefaultConfig().API.BaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.API.BaseURL)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", "[[[["},
		{"unknown backend", "[cache]\nbackend = \"dynamo\"\n"},
		{"zero timeout", "[api]\ntimeout_seconds = 0\n"},
		{"negative timeout", "[api]\ntimeout_seconds = -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("LoadConfig() expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
			}
		})
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDGOverride(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", appName) {
		t.Errorf("cacheDir() = %q", dir)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	path := defaultConfigPath()
	if !strings.HasSuffix(path, filepath.Join(appName, "config.toml")) {
		t.Errorf("defaultConfigPath() = %q", path)
	}
}
