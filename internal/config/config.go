// Package config loads frequency tables for building a huffcode.Coder from
// YAML files.
package config

import (
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/chronos-tachyon/huffcode"
)

// Config describes how to build a Coder.  Exactly one of Seed and Alphabet
// must be set.
type Config struct {
	// Seed is sample text whose character counts become the frequency
	// table.
	Seed string `yaml:"seed,omitempty"`

	// Alphabet maps single-character strings to occurrence counts.
	Alphabet map[string]int `yaml:"alphabet,omitempty"`
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %q", path)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %q", path)
	}
	return cfg, nil
}

// Parse parses a YAML document.  Unknown fields are rejected.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return nil, errors.Wrap(err, "yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the shape of the config.  The frequency table itself is
// validated by huffcode when the Coder is built.
func (cfg *Config) Validate() error {
	hasSeed := cfg.Seed != ""
	hasAlphabet := len(cfg.Alphabet) != 0
	switch {
	case hasSeed && hasAlphabet:
		return errors.Wrap(huffcode.ErrInvalidArgument, "config sets both seed and alphabet")
	case !hasSeed && !hasAlphabet:
		return errors.Wrap(huffcode.ErrInvalidArgument, "config sets neither seed nor alphabet")
	}
	for key := range cfg.Alphabet {
		if utf8.RuneCountInString(key) != 1 {
			return errors.Wrapf(huffcode.ErrInvalidArgument, "alphabet key %q is not exactly one character", key)
		}
	}
	return nil
}

// ToAlphabet returns the frequency table described by cfg.
func (cfg *Config) ToAlphabet() (huffcode.Alphabet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed != "" {
		return huffcode.AlphabetFromSeed(cfg.Seed)
	}
	alpha := make(huffcode.Alphabet, len(cfg.Alphabet))
	for key, count := range cfg.Alphabet {
		ch, _ := utf8.DecodeRuneInString(key)
		alpha[ch] = count
	}
	return alpha, nil
}

// Coder builds the Coder described by cfg.
func (cfg *Config) Coder() (*huffcode.Coder, error) {
	alpha, err := cfg.ToAlphabet()
	if err != nil {
		return nil, err
	}
	return huffcode.NewFromAlphabet(alpha)
}
