package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q, expected :3000", cfg.Addr)
	}
	if cfg.UploadDir != "./uploads" {
		t.Errorf("UploadDir = %q, expected ./uploads", cfg.UploadDir)
	}
	if cfg.MaxUploadBytes != 32<<20 {
		t.Errorf("MaxUploadBytes = %d, expected %d", cfg.MaxUploadBytes, 32<<20)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, expected info", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, expected 10s", cfg.ShutdownTimeout)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("XLT_ADDR", "127.0.0.1:8080")
	t.Setenv("XLT_LOG_LEVEL", "debug")
	t.Setenv("XLT_DEV", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != "127.0.0.1:8080" || cfg.LogLevel != "debug" || !cfg.Development {
		t.Errorf("env not applied: %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: \":9000\"\nupload_dir: /tmp/xlt\nshutdown_timeout: 3s\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.UploadDir != "/tmp/xlt" || cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("file not applied: %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level, got %q", cfg.LogLevel)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("XLT_LOG_LEVEL", "verbose")

	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestUsage(t *testing.T) {
	if usage := Usage(); !strings.Contains(usage, "XLT_ADDR") {
		t.Errorf("Usage() missing XLT_ADDR: %q", usage)
	}
}
