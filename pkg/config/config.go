package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// APIKeyEnv names the environment variable holding the OpenRouter credential.
	APIKeyEnv  = "OPENROUTER_API_KEY"
	baseURLEnv = "OPENROUTER_BASE_URL"
	modelEnv   = "OPENROUTER_MODEL"
	verboseEnv = "MEDCHAT_VERBOSE"
	hostEnv    = "HOST"
	portEnv    = "PORT"

	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "nvidia/nemotron-nano-9b-v2:free"
	DefaultTimeout = 30 * time.Second
	DefaultHost    = "0.0.0.0"
	DefaultPort    = 4000
)

// ErrMissingAPIKey is returned when no credential is configured.
var ErrMissingAPIKey = errors.New(APIKeyEnv + " environment variable is not set; set it to your OpenRouter API key")

// Config holds all runtime configuration for the chatbot.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	Verbose bool
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Model:   DefaultModel,
		Timeout: DefaultTimeout,
	}
}

// Load reads .env (if present) and the process environment, then validates the result.
func Load() (Config, error) {
	_ = godotenv.Load()
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetDefault("base_url", defaults.BaseURL)
	v.SetDefault("model", defaults.Model)
	v.SetDefault("verbose", defaults.Verbose)
	_ = v.BindEnv("api_key", APIKeyEnv)
	_ = v.BindEnv("base_url", baseURLEnv)
	_ = v.BindEnv("model", modelEnv)
	_ = v.BindEnv("verbose", verboseEnv)
	return v
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Normalize(Config{
		APIKey:  v.GetString("api_key"),
		BaseURL: v.GetString("base_url"),
		Model:   v.GetString("model"),
		Verbose: v.GetBool("verbose"),
	})
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg
}

// Validate reports configuration that must stop the process before the chat loop starts.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// ServerConfig holds the listen address of the HTTP server.
type ServerConfig struct {
	Host string
	Port int
}

// Addr returns the host:port pair to listen on.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LoadServer reads HOST and PORT, falling back to 0.0.0.0:4000.
func LoadServer() ServerConfig {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("host", DefaultHost)
	v.SetDefault("port", DefaultPort)
	_ = v.BindEnv("host", hostEnv)
	_ = v.BindEnv("port", portEnv)

	cfg := ServerConfig{
		Host: strings.TrimSpace(v.GetString("host")),
		Port: v.GetInt("port"),
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}
	return cfg
}
