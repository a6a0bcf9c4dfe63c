package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("cfg.Host = %q, want %q", cfg.Host, "127.0.0.1")
	}
	if cfg.Port != 8000 {
		t.Errorf("cfg.Port = %d, want 8000", cfg.Port)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docstats.yaml")
	if err := os.WriteFile(path, []byte("host: 0.0.0.0\nport: 9000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("cfg.Host = %q, want %q", cfg.Host, "0.0.0.0")
	}
	if cfg.Port != 9000 {
		t.Errorf("cfg.Port = %d, want 9000", cfg.Port)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docstats.yaml")
	if err := os.WriteFile(path, []byte("port: 9000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("cfg.Host = %q, want default to survive partial file", cfg.Host)
	}
	if cfg.Port != 9000 {
		t.Errorf("cfg.Port = %d, want 9000", cfg.Port)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() with missing file: error = nil, want error")
	}
}
