package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "PROTOGEN_LOG_LEVEL"
	EnvLogTimestamp = "PROTOGEN_LOG_TIMESTAMP"
	EnvLogNoColor   = "PROTOGEN_LOG_NOCOLOR"
	EnvLogBypass    = "PROTOGEN_LOG_BYPASS"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logger setup for one process.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	// Bypass skips the console writer and emits raw JSON lines.
	Bypass bool
	Out    io.Writer
}

// envOverrides holds the optional env settings. Nil means unset.
type envOverrides struct {
	Level     *zerolog.Level `env:"PROTOGEN_LOG_LEVEL"`
	Timestamp *bool          `env:"PROTOGEN_LOG_TIMESTAMP"`
	NoColor   *bool          `env:"PROTOGEN_LOG_NOCOLOR"`
	Bypass    *bool          `env:"PROTOGEN_LOG_BYPASS"`
}

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg := defaultConfig(profile)
		envErr := applyEnvOverrides(&cfg)
		log.Logger = New(cfg)
		zerolog.SetGlobalLevel(cfg.Level)
		if envErr != nil {
			log.Warn().Err(envErr).Msg("logging.Configure ignoring env overrides")
		}
	})
}

// New builds a logger from cfg without touching global state.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if !cfg.Bypass {
		out = zerolog.ConsoleWriter{
			Out:          out,
			NoColor:      cfg.NoColor,
			TimeFormat:   time.RFC3339,
			PartsExclude: partsExclude(cfg),
		}
	}
	ctx := zerolog.New(out).Level(cfg.Level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

func partsExclude(cfg Config) []string {
	if cfg.Timestamp {
		return nil
	}
	return []string{zerolog.TimestampFieldName}
}

func defaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, Timestamp: false}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

func applyEnvOverrides(cfg *Config) error {
	var raw envOverrides
	if err := env.Parse(&raw); err != nil {
		return fmt.Errorf("logging: env overrides: %w", err)
	}
	if raw.Level != nil {
		cfg.Level = *raw.Level
	}
	if raw.Timestamp != nil {
		cfg.Timestamp = *raw.Timestamp
	}
	if raw.NoColor != nil {
		cfg.NoColor = *raw.NoColor
	}
	if raw.Bypass != nil {
		cfg.Bypass = *raw.Bypass
	}
	return nil
}
