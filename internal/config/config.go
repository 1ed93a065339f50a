// Package config loads the runtime configuration of the dfa command.
//
// Values come from defaults, then an optional YAML file, then DFA_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendLoam   = "loam"
	BackendRedis  = "redis"
)

// Config is the root configuration.
type Config struct {
	LogLevel string         `mapstructure:"log_level"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Store    StoreConfig    `mapstructure:"store"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Diagrams DiagramsConfig `mapstructure:"diagrams"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type DiagramsConfig struct {
	Dir string `mapstructure:"dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		HTTP:     HTTPConfig{Addr: ":8080"},
		Store:    StoreConfig{Backend: BackendFile, Dir: "automata"},
		Redis:    RedisConfig{Addr: "localhost:6379", Prefix: "dfa:automaton:"},
		Diagrams: DiagramsConfig{Dir: "diagrams"},
	}
}

// envKeys maps environment variables to dotted config keys.
var envKeys = map[string]string{
	"DFA_LOG_LEVEL":      "log_level",
	"DFA_HTTP_ADDR":      "http.addr",
	"DFA_STORE_BACKEND":  "store.backend",
	"DFA_STORE_DIR":      "store.dir",
	"DFA_REDIS_ADDR":     "redis.addr",
	"DFA_REDIS_PASSWORD": "redis.password",
	"DFA_REDIS_DB":       "redis.db",
	"DFA_REDIS_PREFIX":   "redis.prefix",
	"DFA_REDIS_TTL":      "redis.ttl",
	"DFA_DIAGRAMS_DIR":   "diagrams.dir",
}

// Load builds the configuration. path may be empty; a missing file is an error
// only when path is set explicitly.
func Load(path string) (Config, error) {
	raw := map[string]any{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	for env, key := range envKeys {
		if v, ok := os.LookupEnv(env); ok {
			set(raw, strings.Split(key, "."), v)
		}
	}

	cfg := Default()
	if err := Decode(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Decode overlays raw onto cfg. Strings are converted to numbers and durations.
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendFile, BackendLoam, BackendRedis:
		return nil
	default:
		return fmt.Errorf("invalid config: unknown store backend %q", c.Store.Backend)
	}
}

func set(m map[string]any, path []string, v string) {
	if len(path) == 1 {
		m[path[0]] = v
		return
	}
	child, ok := m[path[0]].(map[string]any)
	if !ok {
		child = map[string]any{}
		m[path[0]] = child
	}
	set(child, path[1:], v)
}
