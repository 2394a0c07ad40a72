package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/filiphsps/MiNET-protocol-converter/internal/protocol/schema"
	"github.com/filiphsps/MiNET-protocol-converter/internal/protocol/source"
	"github.com/filiphsps/MiNET-protocol-converter/internal/protocol/synth"
)

// Config is the resolved converter configuration.
type Config struct {
	Source      string
	Output      string
	Format      string
	Indent      int
	EnvelopeTag string
	TypePrefix  string
	Strict      bool
	Fetch       source.FetchConfig
}

type fileConfig struct {
	Source            string `toml:"source"`
	Output            string `toml:"output"`
	Format            string `toml:"format"`
	Indent            int    `toml:"indent"`
	EnvelopeTag       string `toml:"envelope_tag"`
	TypePrefix        string `toml:"type_prefix"`
	Strict            bool   `toml:"strict"`
	FetchTimeout      string `toml:"fetch_timeout"`
	FetchAttempts     int    `toml:"fetch_attempts"`
	FetchInitialDelay string `toml:"fetch_initial_delay"`
	FetchMaxDelay     string `toml:"fetch_max_delay"`
	FetchJitter       bool   `toml:"fetch_jitter"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Source:      source.DefaultLocation,
		Output:      "output.json",
		Format:      schema.FormatJSON,
		Indent:      4,
		EnvelopeTag: synth.DefaultTag,
		TypePrefix:  synth.DefaultPrefix,
		Fetch:       source.DefaultFetchConfig(),
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default values. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %s", path, undecoded[0])
	}

	if meta.IsDefined("source") {
		cfg.Source = strings.TrimSpace(raw.Source)
	}
	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}
	if meta.IsDefined("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(raw.Format))
	}
	if meta.IsDefined("indent") {
		cfg.Indent = raw.Indent
	}
	if meta.IsDefined("envelope_tag") {
		cfg.EnvelopeTag = strings.TrimSpace(raw.EnvelopeTag)
	}
	if meta.IsDefined("type_prefix") {
		cfg.TypePrefix = strings.TrimSpace(raw.TypePrefix)
	}
	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}
	if meta.IsDefined("fetch_timeout") {
		d, err := parseDuration("fetch_timeout", raw.FetchTimeout)
		if err != nil {
			return Config{}, err
		}
		cfg.Fetch.Timeout = d
	}
	if meta.IsDefined("fetch_attempts") {
		cfg.Fetch.MaxAttempts = raw.FetchAttempts
	}
	if meta.IsDefined("fetch_initial_delay") {
		d, err := parseDuration("fetch_initial_delay", raw.FetchInitialDelay)
		if err != nil {
			return Config{}, err
		}
		cfg.Fetch.Backoff.InitialDelay = d
	}
	if meta.IsDefined("fetch_max_delay") {
		d, err := parseDuration("fetch_max_delay", raw.FetchMaxDelay)
		if err != nil {
			return Config{}, err
		}
		cfg.Fetch.Backoff.MaxDelay = d
	}
	if meta.IsDefined("fetch_jitter") {
		cfg.Fetch.Backoff.Jitter = raw.FetchJitter
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func parseDuration(key, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Output) == "" {
		return fmt.Errorf("output is required")
	}
	switch cfg.Format {
	case schema.FormatJSON, schema.FormatYAML:
	default:
		return fmt.Errorf("format must be json or yaml, got %q", cfg.Format)
	}
	if cfg.Indent < 0 || cfg.Indent > 16 {
		return fmt.Errorf("indent out of range: %d", cfg.Indent)
	}
	if strings.TrimSpace(cfg.EnvelopeTag) == "" {
		return fmt.Errorf("envelope_tag is required")
	}
	if strings.TrimSpace(cfg.TypePrefix) == "" {
		return fmt.Errorf("type_prefix is required")
	}
	if cfg.Fetch.MaxAttempts < 1 {
		return fmt.Errorf("fetch_attempts must be at least 1")
	}
	if cfg.Fetch.Timeout < 0 || cfg.Fetch.Backoff.InitialDelay < 0 || cfg.Fetch.Backoff.MaxDelay < 0 {
		return fmt.Errorf("fetch durations must not be negative")
	}
	return nil
}
