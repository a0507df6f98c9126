// Package config loads runtime configuration from an optional YAML file
// with environment-variable overrides. Every field has a default, so
// running with no config at all works.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the full runtime configuration.
type Config struct {
	Data   Data   `yaml:"data"`
	Ollama Ollama `yaml:"ollama"`
	Chat   Chat   `yaml:"chat"`
}

// Data locates the JSON documents and the history database.
type Data struct {
	Dir       string `yaml:"dir" env:"BOLI_DATA_DIR" env-default:"data"`
	HistoryDB string `yaml:"history_db" env:"BOLI_HISTORY_DB" env-default:""`
}

// Ollama configures the optional generative backend.
type Ollama struct {
	Enabled bool          `yaml:"enabled" env:"BOLI_OLLAMA_ENABLED" env-default:"false"`
	BaseURL string        `yaml:"base_url" env:"BOLI_OLLAMA_URL" env-default:"http://localhost:11434"`
	Model   string        `yaml:"model" env:"BOLI_OLLAMA_MODEL" env-default:"llama2:7b"`
	Timeout time.Duration `yaml:"timeout" env:"BOLI_OLLAMA_TIMEOUT" env-default:"30s"`
}

// Chat configures conversation defaults.
type Chat struct {
	Preference string `yaml:"preference" env:"BOLI_CHAT_PREFERENCE" env-default:"mixed"`
}

// Load reads configuration from path when the file exists, otherwise
// from the environment and defaults alone. Empty path skips the file.
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
			return cfg, nil
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env config: %w", err)
	}
	return cfg, nil
}

// HistoryPath returns the history database path, defaulting to
// history.db inside the data directory.
func (c Config) HistoryPath() string {
	if c.Data.HistoryDB != "" {
		return c.Data.HistoryDB
	}
	return c.Data.Dir + "/history.db"
}
