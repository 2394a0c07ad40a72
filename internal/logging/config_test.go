package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestEnvOverridesApply(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "true")
	t.Setenv(EnvLogBypass, "1")

	cfg := defaultConfig(ProfileRuntime)
	if err := applyEnvOverrides(&cfg); err != nil {
		t.Fatalf("applyEnvOverrides: %v", err)
	}
	if cfg.Level != zerolog.ErrorLevel {
		t.Fatalf("unexpected level: %v", cfg.Level)
	}
	if cfg.Timestamp {
		t.Fatalf("expected timestamp disabled")
	}
	if !cfg.NoColor {
		t.Fatalf("expected nocolor enabled")
	}
	if !cfg.Bypass {
		t.Fatalf("expected bypass enabled")
	}
}

func TestEnvOverridesUnsetKeepProfile(t *testing.T) {
	t.Setenv(EnvLogLevel, "disabled")

	cfg := defaultConfig(ProfileRuntime)
	if err := applyEnvOverrides(&cfg); err != nil {
		t.Fatalf("applyEnvOverrides: %v", err)
	}
	if cfg.Level != zerolog.Disabled {
		t.Fatalf("unexpected level: %v", cfg.Level)
	}
	if !cfg.Timestamp || cfg.NoColor || cfg.Bypass {
		t.Fatalf("unset overrides changed profile: %+v", cfg)
	}
}

func TestEnvOverridesRejectInvalidValues(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogBypass, "not-a-bool")

	cfg := defaultConfig(ProfileRuntime)
	err := applyEnvOverrides(&cfg)
	if err == nil {
		t.Fatalf("expected error for invalid bool")
	}
	if !strings.Contains(err.Error(), "Bypass") {
		t.Fatalf("error does not name the field: %v", err)
	}
	if cfg != defaultConfig(ProfileRuntime) {
		t.Fatalf("invalid env partially applied: %+v", cfg)
	}
}

func TestNewBypassWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Bypass: true, Out: &buf})
	logger.Info().Str("type", "packet_text").Msg("assembled")
	logger.Debug().Msg("hidden")

	out := buf.String()
	if !strings.Contains(out, `"type":"packet_text"`) {
		t.Fatalf("expected json field in output: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %q", out)
	}
}
