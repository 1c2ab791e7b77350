package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shayshai/uprocfs/log"
)

func TestLoad_NoConfigFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("Expected no error when loading default config, got: %v", err)
	}

	if cfg.Mountpoint != DefaultMountpoint {
		t.Errorf("Expected mountpoint %s, got %s", DefaultMountpoint, cfg.Mountpoint)
	}
	if cfg.Fuse.EntryTimeout != time.Second || cfg.Fuse.AttrTimeout != time.Second {
		t.Errorf("Expected 1s timeouts, got %v %v", cfg.Fuse.EntryTimeout, cfg.Fuse.AttrTimeout)
	}
	if cfg.LogLevel() != log.Info {
		t.Errorf("Expected INFO level, got %s", cfg.LogLevel())
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	configContent := `
mountpoint: /mnt/ctl
allow_other: true
fuse:
  entry_timeout: 5s
logging:
  level: debug
metrics:
  listen: 127.0.0.1:9470
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Mountpoint != "/mnt/ctl" || !cfg.AllowOther {
		t.Errorf("Unexpected mount settings: %+v", cfg)
	}
	if cfg.Fuse.EntryTimeout != 5*time.Second {
		t.Errorf("Expected entry_timeout 5s, got %v", cfg.Fuse.EntryTimeout)
	}
	if cfg.Fuse.AttrTimeout != time.Second {
		t.Errorf("Expected default attr_timeout 1s, got %v", cfg.Fuse.AttrTimeout)
	}
	if cfg.Logging.Level != "DEBUG" || cfg.LogLevel() != log.Debug {
		t.Errorf("Expected normalized DEBUG level, got %q", cfg.Logging.Level)
	}
	if cfg.Metrics.Listen != "127.0.0.1:9470" {
		t.Errorf("Unexpected listen address: %q", cfg.Metrics.Listen)
	}
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("UPROCFS_MOUNTPOINT", "/mnt/env")
	t.Setenv("UPROCFS_LOGGING_LEVEL", "WARN")

	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Mountpoint != "/mnt/env" {
		t.Errorf("Expected environment mountpoint, got %s", cfg.Mountpoint)
	}
	if cfg.LogLevel() != log.Warn {
		t.Errorf("Expected WARN level, got %s", cfg.LogLevel())
	}
}

func TestLoad_InvalidLevel(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("logging:\n  level: verbose\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Expected validation error for invalid level")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}

	cfg := Default()
	cfg.Mountpoint = ""
	if err := Validate(cfg); err == nil {
		t.Error("Expected error for empty mountpoint")
	}

	cfg = Default()
	cfg.Metrics.Listen = "not an address"
	if err := Validate(cfg); err == nil {
		t.Error("Expected error for invalid listen address")
	}
}

func TestSaveAndLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Mountpoint = "/mnt/saved"
	cfg.Logging.JSON = true
	cfg.Fuse.AttrTimeout = 3 * time.Second

	if err := Save(cfg, configPath); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(raw), "attr_timeout: 3s") {
		t.Errorf("Expected duration string in saved file:\n%s", raw)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Mountpoint != "/mnt/saved" || !loaded.Logging.JSON || loaded.Fuse.AttrTimeout != 3*time.Second {
		t.Errorf("Unexpected round trip result: %+v", loaded)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if DefaultConfigPath() != "/tmp/xdg/uprocfs/config.yaml" {
		t.Errorf("Unexpected default path: %s", DefaultConfigPath())
	}
}
