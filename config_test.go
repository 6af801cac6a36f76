package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port == "" || cfg.TemplateDir != "templates" || cfg.SMTPPort != "587" {
		t.Errorf("defaults: %+v", cfg)
	}
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	yml := "port: \"9000\"\nlog_level: debug\nsmtp_host: mail.example.com\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "9100")
	t.Setenv("SMTP_USER", "site@example.com")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9100" {
		t.Errorf("Port: got %q, want env override 9100", cfg.Port)
	}
	if cfg.LogLevel != "debug" || cfg.SMTPHost != "mail.example.com" {
		t.Errorf("file values lost: %+v", cfg)
	}
	if cfg.SMTPUser != "site@example.com" {
		t.Errorf("SMTPUser: %q", cfg.SMTPUser)
	}
	if cfg.MailConfigured() {
		t.Error("mail configured without a password")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad gin mode", func(c *Config) { c.GinMode = "prod" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"no port", func(c *Config) { c.Port = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
