// CLAUDE:SUMMARY Configuration from a YAML file or VOICENORM_* environment variables (cleanenv), plus the slog logger it selects.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type chassisConfig struct {
	Enabled  bool   `yaml:"enabled" env:"VOICENORM_CHASSIS_ENABLED" env-default:"false"`
	Addr     string `yaml:"addr" env:"VOICENORM_CHASSIS_ADDR" env-default:":8443"`
	CertFile string `yaml:"cert_file" env:"VOICENORM_CHASSIS_CERT_FILE"`
	KeyFile  string `yaml:"key_file" env:"VOICENORM_CHASSIS_KEY_FILE"`
}

type config struct {
	Addr               string        `yaml:"addr" env:"VOICENORM_ADDR" env-default:":8420"`
	LexiconDir         string        `yaml:"lexicon_dir" env:"VOICENORM_LEXICON_DIR" env-default:"lexicon"`
	CorpusDB           string        `yaml:"corpus_db" env:"VOICENORM_CORPUS_DB"`
	SourcesDB          string        `yaml:"sources_db" env:"VOICENORM_SOURCES_DB"`
	LogLevel           string        `yaml:"log_level" env:"VOICENORM_LOG_LEVEL" env-default:"info"`
	CheckInterval      time.Duration `yaml:"check_interval" env:"VOICENORM_CHECK_INTERVAL" env-default:"1h"`
	SkipStandalone     bool          `yaml:"skip_standalone" env:"VOICENORM_SKIP_STANDALONE"`
	Region             string        `yaml:"region" env:"VOICENORM_REGION" env-default:"SN"`
	Chassis            chassisConfig `yaml:"chassis"`
}

// loadConfig reads path when it exists and falls back to the environment
// otherwise. A path given explicitly on the command line must exist.
func loadConfig(path string, explicit bool) (*config, error) {
	var cfg config

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read environment: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *config) validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if c.LexiconDir == "" {
		errs = append(errs, errors.New("lexicon_dir is required"))
	}
	if c.CheckInterval <= 0 {
		errs = append(errs, fmt.Errorf("check_interval must be positive, got %s", c.CheckInterval))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if (c.Chassis.CertFile == "") != (c.Chassis.KeyFile == "") {
		errs = append(errs, errors.New("chassis cert_file and key_file must be set together"))
	}
	return errors.Join(errs...)
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", s, err)
	}
	return lvl, nil
}

func newLogger(level string) *slog.Logger {
	lvl, err := parseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// mustConfig loads the config or exits. The bootstrap logger prints at info
// level since log_level is not known yet.
func mustConfig(path string, explicit bool) (*config, *slog.Logger) {
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		fatal(newLogger("info"), "config", err)
	}
	return cfg, newLogger(cfg.LogLevel)
}
