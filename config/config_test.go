package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error for missing file: %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Expected default port 5000, got %d", cfg.Server.Port)
	}
	if cfg.Stream.ChunkDelayMs != 50 {
		t.Errorf("Expected default chunk delay 50, got %d", cfg.Stream.ChunkDelayMs)
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte("server:\n  port: 8081\ngemini:\n  model: gemini-2.0-flash\nstream:\n  chunkDelayMs: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Server.Port != 8081 {
		t.Errorf("Expected port 8081, got %d", cfg.Server.Port)
	}
	if cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("Expected model from file, got %q", cfg.Gemini.Model)
	}
	if cfg.Stream.ChunkDelayMs != 10 {
		t.Errorf("Expected chunk delay 10, got %d", cfg.Stream.ChunkDelayMs)
	}
}

func TestLoadConfigZeroChunkDelayMeansDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("stream:\n  chunkDelayMs: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Stream.ChunkDelayMs != 50 {
		t.Errorf("Expected an explicit zero to fall back to the default 50, got %d", cfg.Stream.ChunkDelayMs)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte("gemini:\n  apiKey: from-file\n  model: gemini-1.5-flash\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-pro")
	t.Setenv("PORT", "9000")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Gemini.ApiKey != "from-env" {
		t.Errorf("Expected env to override apiKey, got %q", cfg.Gemini.ApiKey)
	}
	if cfg.Gemini.Model != "gemini-2.0-pro" {
		t.Errorf("Expected env to override model, got %q", cfg.Gemini.Model)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Expected env to override port, got %d", cfg.Server.Port)
	}
}

func TestLoadConfigInvalidPortEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("Expected error for invalid PORT value, got nil")
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("server: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected error for malformed yaml, got nil")
	}
}
