package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the site server configuration. Values come from defaults, then
// an optional YAML file, then the environment (a .env file is loaded into the
// environment at startup).
type Config struct {
	Port     string `koanf:"port"`
	GinMode  string `koanf:"gin_mode"`
	LogLevel string `koanf:"log_level"`

	TemplateDir string `koanf:"template_dir"`
	StaticDir   string `koanf:"static_dir"`
	// WasmExec is the Go wasm loader shipped with the toolchain.
	WasmExec string `koanf:"wasm_exec"`

	SMTPHost string `koanf:"smtp_host"`
	SMTPPort string `koanf:"smtp_port"`
	SMTPUser string `koanf:"smtp_user"`
	SMTPPass string `koanf:"smtp_pass"`
	ToEmail  string `koanf:"to_email"`
}

func DefaultConfig() *Config {
	return &Config{
		Port:        "8080",
		GinMode:     "release",
		LogLevel:    "info",
		TemplateDir: "templates",
		StaticDir:   "static",
		WasmExec:    filepath.Join(runtime.GOROOT(), "lib", "wasm", "wasm_exec.js"),
		SMTPHost:    "smtp.gmail.com",
		SMTPPort:    "587",
	}
}

// envKeys are the environment variables the server reads.
var envKeys = map[string]bool{
	"PORT": true, "GIN_MODE": true, "LOG_LEVEL": true,
	"TEMPLATE_DIR": true, "STATIC_DIR": true, "WASM_EXEC": true,
	"SMTP_HOST": true, "SMTP_PORT": true, "SMTP_USER": true, "SMTP_PASS": true,
	"TO_EMAIL": true,
}

// LoadConfig builds the configuration. A missing file at path is not an error.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", func(s string) string {
		if !envKeys[s] {
			return ""
		}
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin_mode %q: must be one of debug, release, test", c.GinMode)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	return nil
}

// MailConfigured reports whether SMTP credentials are present.
func (c *Config) MailConfigured() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", s, err)
	}
	return l, nil
}

func newLogger(c *Config) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
