package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/cbodonnell/sokoreplay/pkg/log"
	"github.com/cbodonnell/sokoreplay/pkg/replay"
	"gopkg.in/yaml.v3"
)

// Config controls a replay session. Values are read from a YAML file and
// then overridden by any SOKOREPLAY_* environment variables that are set.
type Config struct {
	Mode        replay.Mode `yaml:"mode"         env:"SOKOREPLAY_MODE"`
	FrameRate   int         `yaml:"frame_rate"   env:"SOKOREPLAY_FRAME_RATE"`
	LogLevel    string      `yaml:"log_level"    env:"SOKOREPLAY_LOG_LEVEL"`
	DatabaseURL string      `yaml:"database_url" env:"SOKOREPLAY_DATABASE_URL"`
	MapPath     string      `yaml:"map"          env:"SOKOREPLAY_MAP"`
	ActionPaths []string    `yaml:"actions"      env:"SOKOREPLAY_ACTIONS"      envSeparator:","`
	Repeat      int         `yaml:"repeat"       env:"SOKOREPLAY_REPEAT"`
	Interactive bool        `yaml:"interactive"  env:"SOKOREPLAY_INTERACTIVE"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Mode:      replay.ModeFreeRace,
		FrameRate: replay.DefaultFrameRate,
		LogLevel:  log.LogLevelInfo.String(),
		Repeat:    1,
	}
}

// Load reads the config file at path, if any, over the defaults and then
// applies environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %v", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	if c.MapPath == "" {
		errs = append(errs, errors.New("map path is required"))
	}
	if len(c.ActionPaths) == 0 && !c.Interactive {
		errs = append(errs, errors.New("at least one action file is required unless interactive"))
	}
	if c.FrameRate < 0 {
		errs = append(errs, fmt.Errorf("frame rate must not be negative: %d", c.FrameRate))
	}
	if c.Repeat < 1 {
		errs = append(errs, fmt.Errorf("repeat must be at least 1: %d", c.Repeat))
	}
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
