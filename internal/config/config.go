package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/docker/go-units"
)

// count is a decimal quantity such as "16M" or "250k".
type count uint64

func (c *count) UnmarshalText(t []byte) error {
	v, err := units.FromHumanSize(string(t))
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("negative count: %s", t)
	}
	*c = count(v)
	return nil
}

type Config struct {
	Verbose  bool  `env:"POW_VERBOSE"`
	Progress count `env:"POW_PROGRESS" envDefault:"16M"`
}

func (c *Config) ProgressEvery() uint64 {
	return uint64(c.Progress)
}

// SetProgress overrides the progress interval with a human count.
func (c *Config) SetProgress(s string) error {
	if err := c.Progress.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("parse progress %q: %w", s, err)
	}
	return nil
}

func GetConfig() (*Config, error) {
	return parse(env.Options{})
}

// Parse reads the configuration from environ instead of the process
// environment.
func Parse(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}
