// Package config loads ~/.hanspell.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"

	"github.com/Alfex4936/hanspell/internal/model"
	"github.com/Alfex4936/hanspell/internal/overlay"
	"github.com/Alfex4936/hanspell/internal/speller"
)

// DefaultTimeout is the per-service deadline of one check.
const DefaultTimeout = 10 * time.Second

// Config is the decoded configuration file.
//
//	service = "all"
//	timeout_seconds = 10
//	history = true
//
//	[pnu]
//	url = "https://nara-speller.co.kr/old_speller/results"
//
//	[files]
//	typos = "~/.hanspell-typos"
type Config struct {
	Service        string `toml:"service"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	History        bool   `toml:"history"`

	PNU  Endpoint `toml:"pnu"`
	Daum Endpoint `toml:"daum"`

	Files Files `toml:"files"`
}

// Endpoint overrides a remote service URL.
type Endpoint struct {
	URL string `toml:"url"`
}

// Files points at the overlay files; "~" is expanded.
type Files struct {
	Typos          string `toml:"typos"`
	Ignore         string `toml:"ignore"`
	BadExpressions string `toml:"bad_expressions"`
	History        string `toml:"history"`
}

// DefaultPath is ~/.hanspell.toml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".hanspell.toml"), nil
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	p, err := overlay.DefaultPaths()
	if err != nil {
		return nil, err
	}
	return &Config{
		Service:        model.All.String(),
		TimeoutSeconds: int(DefaultTimeout / time.Second),
		History:        true,
		PNU:            Endpoint{URL: speller.DefaultPNUURL},
		Daum:           Endpoint{URL: speller.DefaultDaumURL},
		Files: Files{
			Typos:          p.Typos,
			Ignore:         p.Ignore,
			BadExpressions: p.BadExpressions,
			History:        p.History,
		},
	}, nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}
	path, err = homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.expand(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Validate checks values a file may have got wrong.
func (c *Config) Validate() error {
	if _, err := model.ParseService(c.Service); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config: timeout_seconds must not be negative, got %d", c.TimeoutSeconds)
	}
	return nil
}

func (c *Config) expand() error {
	for _, p := range []*string{&c.Files.Typos, &c.Files.Ignore, &c.Files.BadExpressions, &c.Files.History} {
		v, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		*p = v
	}
	return nil
}

// ServiceValue is the parsed Service.
func (c *Config) ServiceValue() model.Service {
	s, err := model.ParseService(c.Service)
	if err != nil {
		return model.All
	}
	return s
}

// Timeout is the per-service deadline.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Paths returns the overlay paths; History is empty when disabled.
func (c *Config) Paths() overlay.Paths {
	p := overlay.Paths{
		Typos:          c.Files.Typos,
		Ignore:         c.Files.Ignore,
		BadExpressions: c.Files.BadExpressions,
	}
	if c.History {
		p.History = c.Files.History
	}
	return p
}

// EnvOr returns the environment variable key, or fallback when unset.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
