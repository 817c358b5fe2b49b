package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"
	"gopkg.in/yaml.v3"
)

const (
	// EnvAPIKey names the variable holding the upstream credential.
	EnvAPIKey = "OPENAI_API_KEY"
	// EnvAllowOrigin names the variable holding the allowed CORS origin.
	EnvAllowOrigin = "ALLOW_ORIGIN"

	DefaultListen   = ":8787"
	DefaultLogLevel = "info"
)

// Config represents the proxy configuration file
type Config struct {
	Listen      string         `yaml:"listen"`
	LogLevel    string         `yaml:"log_level"`
	AllowOrigin string         `yaml:"allow_origin"`
	Upstream    UpstreamConfig `yaml:"upstream"`
}

// UpstreamConfig describes the chat-completion API requests are relayed to
type UpstreamConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Listen:   DefaultListen,
		LogLevel: DefaultLogLevel,
		Upstream: UpstreamConfig{
			BaseURL: openai.DefaultConfig("").BaseURL,
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFile loads variables from dotenv files without overriding ones
// already set. Missing files are ignored.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Source returns the request-time settings source for this configuration.
// Environment variables take precedence over the file values.
func (c *Config) Source() Source {
	return EnvSource{Fallback: Settings{
		APIKey:      c.Upstream.APIKey,
		AllowOrigin: c.AllowOrigin,
	}}
}
