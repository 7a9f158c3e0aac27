package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/peerbook/internal/addressbook"
)

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "address_book_dir = \"/tmp/books\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadFileConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AddressBookDir != "/tmp/books" {
		t.Fatalf("unexpected dir: %q", cfg.AddressBookDir)
	}
}

func TestLoadFileConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadFileConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AddressBookDir != addressbook.DefaultDir {
		t.Fatalf("expected default dir, got %q", cfg.AddressBookDir)
	}
}

func TestLoadFileConfigMissingDefaultPath(t *testing.T) {
	cfg, err := loadFileConfig(defaultConfigPath)
	if err != nil {
		t.Fatalf("missing default config should not fail: %v", err)
	}
	if cfg.AddressBookDir != addressbook.DefaultDir {
		t.Fatalf("expected default dir, got %q", cfg.AddressBookDir)
	}
}

func TestLoadFileConfigMissingExplicitPath(t *testing.T) {
	if _, err := loadFileConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error for explicit missing path")
	}
}

func TestLoadFileConfigParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("address_book_dir = = ="), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadFileConfig(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
