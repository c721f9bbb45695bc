package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SummarizerConfig configures the key sentence extraction.
type SummarizerConfig struct {
	// TopWords is the number of top frequent words driving sentence selection.
	TopWords int `yaml:"top_words"`
}

// UIConfig configures the terminal front end.
type UIConfig struct {
	// HighlightColor is the ANSI color used to mark key sentences.
	HighlightColor string `yaml:"highlight_color"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Summarizer SummarizerConfig `yaml:"summarizer"`
	UI         UIConfig         `yaml:"ui"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/summarize/config.yaml.
// If neither exists, it writes defaults to ~/.config/summarize/config.yaml and
// returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "summarize", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Summarizer: SummarizerConfig{TopWords: 15},
		UI:         UIConfig{HighlightColor: "11"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Summarizer.TopWords == 0 {
		cfg.Summarizer.TopWords = 15
	}
	if cfg.UI.HighlightColor == "" {
		cfg.UI.HighlightColor = "11"
	}
}
