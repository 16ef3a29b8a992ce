// Package config provides connection configuration for the info query.
package config

import (
	"os"
	"strings"

	"github.com/amaumene/nyaainfo/internal/constants"
	"github.com/amaumene/nyaainfo/internal/errors"
)

// Config holds the resolved connection settings.
type Config struct {
	Host     string
	Username string
	Password string
	Sukebei  bool
}

// Flags carries the values given on the command line. Empty strings mean
// the flag was not set.
type Flags struct {
	Host     string
	Username string
	Password string
	Sukebei  bool
}

// LookupFunc reads an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Source yields one candidate value for a setting, "" when absent.
type Source func() string

// Resolve builds a Config from explicit flag values and an environment lookup.
// Each setting is read from an ordered list of sources and the first
// non-empty value wins. Missing credentials are an AUTH_CONFIG error.
func Resolve(flags Flags, lookup LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := &Config{
		Host: strings.TrimRight(FirstOf(
			Value(flags.Host),
			Env(lookup, constants.EnvAPIHost),
			DefaultHost(flags.Sukebei),
		), "/"),
		Username: FirstOf(
			Value(flags.Username),
			Env(lookup, constants.EnvAPIUsername),
		),
		Password: FirstOf(
			Value(flags.Password),
			Env(lookup, constants.EnvAPIPassword),
		),
		Sukebei: flags.Sukebei,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that both credentials are present.
func (c *Config) Validate() error {
	if c.Username == "" || c.Password == "" {
		return errors.NewAuthConfigError()
	}
	return nil
}

// InfoURL returns the info endpoint URL for an identifier.
func (c *Config) InfoURL(identifier string) string {
	return c.Host + constants.APIInfo + "/" + identifier
}

// FirstOf evaluates sources left to right and returns the first non-empty value.
func FirstOf(sources ...Source) string {
	for _, src := range sources {
		if v := src(); v != "" {
			return v
		}
	}
	return ""
}

// Value is a source returning a fixed value.
func Value(v string) Source {
	return func() string { return v }
}

// Env is a source reading an environment variable.
func Env(lookup LookupFunc, key string) Source {
	return func() string {
		v, _ := lookup(key)
		return v
	}
}

// DefaultHost is a source returning the primary or sukebei host.
func DefaultHost(sukebei bool) Source {
	return func() string {
		if sukebei {
			return constants.SukebeiHost
		}
		return constants.NyaaHost
	}
}
