package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AI provider names accepted in the config file.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	AI struct {
		// Provider selects the enrichment backend: "gemini", "openai", or
		// empty to run without enrichment. The credential never lives in
		// this file; it must come from the environment.
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
	} `yaml:"ai"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`
}

// Load reads the config file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	switch cfg.AI.Provider {
	case "", ProviderGemini, ProviderOpenAI:
	default:
		return nil, fmt.Errorf("unknown ai provider: %q", cfg.AI.Provider)
	}
	return &cfg, nil
}

// AIKey resolves the provider credential from the environment. A configured
// provider without a credential is a startup error; there is deliberately no
// bundled fallback key.
func (c *Config) AIKey() (string, error) {
	switch c.AI.Provider {
	case "":
		return "", nil
	case ProviderGemini:
		return requireEnv("GEMINI_API_KEY")
	case ProviderOpenAI:
		return requireEnv("OPENAI_API_KEY")
	}
	return "", fmt.Errorf("unknown ai provider: %q", c.AI.Provider)
}

func requireEnv(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("%s must be set when an ai provider is configured", name)
	}
	return v, nil
}
