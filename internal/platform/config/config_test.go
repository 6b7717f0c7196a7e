package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Addr string `env:"PORTFOLIO_TEST_ADDR" envDefault:"localhost:9"`
	Port int    `env:"PORTFOLIO_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "localhost:9" {
		t.Fatalf("Addr = %q, want %q", cfg.Addr, "localhost:9")
	}
	if cfg.Port != 123 {
		t.Fatalf("Port = %d, want 123", cfg.Port)
	}
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("PORTFOLIO_TEST_ADDR", "0.0.0.0:8080")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "0.0.0.0:8080" {
		t.Fatalf("Addr = %q, want %q", cfg.Addr, "0.0.0.0:8080")
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("PORTFOLIO_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
