package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr             string  `json:"addr" yaml:"addr" toml:"addr"`
	Model            string  `json:"model" yaml:"model" toml:"model"`
	CacheDir         string  `json:"cache_dir" yaml:"cache_dir" toml:"cache_dir"`
	HubBaseURL       string  `json:"hub_base_url" yaml:"hub_base_url" toml:"hub_base_url"`
	DefaultThreshold float64 `json:"default_threshold" yaml:"default_threshold" toml:"default_threshold"`
	MaxSeqLen        int     `json:"max_seq_len" yaml:"max_seq_len" toml:"max_seq_len"`
	LoadTimeoutSec   int     `json:"load_timeout_sec" yaml:"load_timeout_sec" toml:"load_timeout_sec"`
	ORTLibrary       string  `json:"ort_library" yaml:"ort_library" toml:"ort_library"`
	LogLevel         string  `json:"log_level" yaml:"log_level" toml:"log_level"`
	CORSEnabled      bool    `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins      string  `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
}

// Defaults applied to unspecified fields.
const (
	DefaultAddr      = ":10000"
	DefaultModel     = "wncelrcn/mindmap-MiniLM-goemotions-v1"
	DefaultCacheDir  = "~/.cache/emotiond"
	DefaultHubURL    = "https://huggingface.co"
	DefaultThreshold = 0.05
	DefaultMaxSeqLen = 512
	DefaultLoadSec   = 300
)

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// FromEnv fills unspecified fields from EMOTIOND_* environment variables.
func (c *Config) FromEnv() {
	if c.Addr == "" {
		c.Addr = os.Getenv("EMOTIOND_ADDR")
	}
	if c.Model == "" {
		c.Model = os.Getenv("EMOTIOND_MODEL")
	}
	if c.CacheDir == "" {
		c.CacheDir = os.Getenv("EMOTIOND_CACHE_DIR")
	}
	if c.HubBaseURL == "" {
		c.HubBaseURL = os.Getenv("EMOTIOND_HUB_BASE_URL")
	}
	if c.DefaultThreshold == 0 {
		c.DefaultThreshold = getenvFloat("EMOTIOND_THRESHOLD", 0)
	}
	if c.MaxSeqLen == 0 {
		c.MaxSeqLen = getenvInt("EMOTIOND_MAX_SEQ_LEN", 0)
	}
	if c.LoadTimeoutSec == 0 {
		c.LoadTimeoutSec = getenvInt("EMOTIOND_LOAD_TIMEOUT_SEC", 0)
	}
	if c.ORTLibrary == "" {
		c.ORTLibrary = os.Getenv("EMOTIOND_ORT_LIBRARY")
	}
	if c.LogLevel == "" {
		c.LogLevel = os.Getenv("EMOTIOND_LOG_LEVEL")
	}
}

// ApplyDefaults replaces remaining zero values with package defaults.
func (c *Config) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.CacheDir == "" {
		c.CacheDir = DefaultCacheDir
	}
	if c.HubBaseURL == "" {
		c.HubBaseURL = DefaultHubURL
	}
	if c.DefaultThreshold == 0 {
		c.DefaultThreshold = DefaultThreshold
	}
	if c.MaxSeqLen == 0 {
		c.MaxSeqLen = DefaultMaxSeqLen
	}
	if c.LoadTimeoutSec == 0 {
		c.LoadTimeoutSec = DefaultLoadSec
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// LoadTimeout returns the configured load timeout as a duration.
func (c Config) LoadTimeout() time.Duration {
	return time.Duration(c.LoadTimeoutSec) * time.Second
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
