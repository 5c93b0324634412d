package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Prompt  string `yaml:"prompt"`
	History struct {
		File string `yaml:"file"`
		Max  int    `yaml:"max"`
	} `yaml:"history"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Prompt = ">>> "
	cfg.History.File = filepath.Join(homeDir(), ".pint_history.db")
	cfg.History.Max = 500
	return cfg
}

func loadConfig(file string) (Config, error) {
	cfg := defaultConfig()
	if file == "" {
		return cfg, nil
	}
	buf, err := os.ReadFile(file)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Prompt == "" {
		cfg.Prompt = ">>> "
	}
	return cfg, nil
}

func homeDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return dir
}
