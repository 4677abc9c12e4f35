// Package config holds the runtime settings for the word-grid tools.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config wraps a viper instance. Settings resolve in the usual order:
// explicit flag bindings, then WORDGRID_* environment variables, then an
// optional yaml config file, then defaults.
type Config struct {
	*viper.Viper
}

// DefaultConfig returns a Config with defaults and env binding set up.
func DefaultConfig() Config {
	v := viper.New()
	v.SetDefault("wordlist-path", "./data/english_words.txt")
	v.SetDefault("board-path", "")
	v.SetDefault("output-path", "")
	v.SetDefault("debug", false)
	v.SetDefault("naive", false)
	v.SetEnvPrefix("wordgrid")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return Config{v}
}

// Load reads an optional yaml config file. A missing file is not an error;
// only a malformed one is.
func (c Config) Load(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	c.SetConfigFile(path)
	return c.ReadInConfig()
}
