package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "addr: :9999\nmodel: org/emotions-v1\ncache_dir: /tmp/cache\ndefault_threshold: 0.1\nmax_seq_len: 256\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.Model != "org/emotions-v1" || cfg.CacheDir != "/tmp/cache" || cfg.DefaultThreshold != 0.1 || cfg.MaxSeqLen != 256 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"addr":":7070","model":"org/m2","load_timeout_sec":120,"cors_enabled":true}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7070" || cfg.Model != "org/m2" || cfg.LoadTimeoutSec != 120 || !cfg.CORSEnabled {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.LoadTimeout() != 120*time.Second {
		t.Fatalf("unexpected load timeout: %v", cfg.LoadTimeout())
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "addr=\":8081\"\nmodel=\"org/m3\"\nhub_base_url=\"http://localhost:9000\"\nlog_level=\"debug\"\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8081" || cfg.Model != "org/m3" || cfg.HubBaseURL != "http://localhost:9000" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error on empty path")
	}
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
}

func TestFromEnvFillsOnlyUnset(t *testing.T) {
	t.Setenv("EMOTIOND_MODEL", "org/env-model")
	t.Setenv("EMOTIOND_MAX_SEQ_LEN", "128")
	t.Setenv("EMOTIOND_THRESHOLD", "0.2")
	cfg := Config{Model: "org/file-model"}
	cfg.FromEnv()
	if cfg.Model != "org/file-model" {
		t.Fatalf("env must not override file value, got %q", cfg.Model)
	}
	if cfg.MaxSeqLen != 128 || cfg.DefaultThreshold != 0.2 {
		t.Fatalf("unexpected cfg after env: %+v", cfg)
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Addr != DefaultAddr || cfg.Model != DefaultModel || cfg.DefaultThreshold != DefaultThreshold {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.MaxSeqLen != DefaultMaxSeqLen || cfg.LoadTimeoutSec != DefaultLoadSec || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestGetenvParseFallbacks(t *testing.T) {
	t.Setenv("EMOTIOND_MAX_SEQ_LEN", "not-a-number")
	if got := getenvInt("EMOTIOND_MAX_SEQ_LEN", 7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}
	t.Setenv("EMOTIOND_THRESHOLD", "nope")
	if got := getenvFloat("EMOTIOND_THRESHOLD", 0.5); got != 0.5 {
		t.Fatalf("expected fallback 0.5, got %v", got)
	}
}
