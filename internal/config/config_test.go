package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "devtoolbox.yaml", "json_indent: 4\nforeground: \"#333\"\nuuid_uppercase: true\nrequire: aa\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.JSONIndent == nil || *cfg.JSONIndent != 4 {
		t.Fatalf("expected json_indent=4, got %#v", cfg.JSONIndent)
	}
	if cfg.Foreground == nil || *cfg.Foreground != "#333" {
		t.Fatalf("expected foreground=#333, got %#v", cfg.Foreground)
	}
	if cfg.UUIDUppercase == nil || *cfg.UUIDUppercase != true {
		t.Fatalf("expected uuid_uppercase=true")
	}
	if cfg.Require == nil || *cfg.Require != "aa" {
		t.Fatalf("expected require=aa, got %#v", cfg.Require)
	}
	if cfg.Background != nil {
		t.Fatalf("expected unset background, got %#v", cfg.Background)
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	// place both, expect the dotfile to be picked first by search order
	writeTemp(t, dir, "devtoolbox.yaml", "uuid_count: 1\n")
	writeTemp(t, dir, ".devtoolbox.yaml", "uuid_count: 7\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.UUIDCount == nil || *cfg.UUIDCount != 7 {
		t.Fatalf("expected uuid_count=7 from .devtoolbox.yaml, got %#v", cfg.UUIDCount)
	}
}

func TestLoadLocal_NoConfig(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLocal(dir); err == nil {
		t.Fatal("expected error when no local config exists")
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "devtoolbox")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p := filepath.Join(cfgDir, "config.yml")
	if err := os.WriteFile(p, []byte("cron_count: 9\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.CronCount == nil || *cfg.CronCount != 9 {
		t.Fatalf("expected cron_count=9 from global config, got %#v", cfg.CronCount)
	}
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	// Simulate no HOME as well by clearing HOME; LoadGlobal should error
	t.Setenv("HOME", "")
	if _, err := LoadGlobal(); err == nil {
		t.Fatal("expected error when no global config dir exists")
	}
}

func TestLoad_MissingFilesAreNotErrors(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	local, global, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if local.Theme != nil || global.Theme != nil {
		t.Fatalf("expected empty configs")
	}
}

func TestLoad_MalformedLocal(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	writeTemp(t, dir, ".devtoolbox.yml", "json_indent: [oops\n")
	if _, _, err := Load(dir); err == nil {
		t.Fatal("expected parse error for malformed local config")
	}
}

func TestLoad_BadType(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	writeTemp(t, dir, ".devtoolbox.yml", "json_indent: lots\n")
	if _, _, err := Load(dir); err == nil {
		t.Fatal("expected type error for non-integer json_indent")
	}
}
