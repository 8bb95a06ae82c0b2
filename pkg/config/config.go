package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	GeminiAPIKey string        `json:"gemini_api_key,omitempty"`
	Model        string        `json:"model,omitempty"`
	ListenAddr   string        `json:"listen_addr,omitempty"`
	LogLevel     string        `json:"log_level,omitempty"`
	Defaults     DefaultConfig `json:"defaults"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir string `json:"output_dir"`
}

// GetModel returns the configured model or the default if not specified.
func (c *Config) GetModel() (model string) {
	if c.Model != "" {
		model = c.Model
		return model
	}
	model = "gemini-2.0-flash" // Default to Flash
	return model
}

// GetListenAddr returns the configured listen address or the default.
func (c *Config) GetListenAddr() (addr string) {
	if c.ListenAddr != "" {
		addr = c.ListenAddr
		return addr
	}
	addr = ":8080"
	return addr
}

// Load reads configuration from file with environment variable overrides.
// The API key is optional: without one the generator still runs, it just
// skips AI enhancement.
func Load(configPath string) (cfg Config, err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return cfg, err
		}
		path = filepath.Join(homeDir, ".resumeforge", "config.json")
	}

	// Read config file
	data, readErr := os.ReadFile(path)
	switch {
	case readErr == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(readErr) && configPath == "":
		// No config file at the default location is fine; environment
		// variables and built-in defaults cover everything.
	case os.IsNotExist(readErr):
		err = errors.Errorf("config file not found: %s (run 'resumeforge init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(readErr, "failed to read config file: %s", path)
		return cfg, err
	}

	// Override with environment variables if set
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		cfg.GeminiAPIKey = apiKey
	}

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.Model = model
	}

	// Validate and fill defaults
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() (err error) {
	switch c.LogLevel {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		err = errors.Errorf("unknown log_level: %s", c.LogLevel)
		return err
	}

	// Set default output_dir if not specified
	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = "."
	}

	return err
}

// InitConfig creates a starter configuration file and returns its path.
func InitConfig(configPath string) (path string, err error) {
	// Determine config file location
	path = configPath
	if path == "" {
		var homeDir string
		homeDir, err = os.UserHomeDir()
		if err != nil {
			err = errors.Wrap(err, "failed to get user home directory")
			return path, err
		}
		path = filepath.Join(homeDir, ".resumeforge", "config.json")
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	defaultConfig := Config{
		GeminiAPIKey: "",
		Model:        "gemini-2.0-flash",
		ListenAddr:   ":8080",
		LogLevel:     "info",
		Defaults: DefaultConfig{
			OutputDir: ".",
		},
	}

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return path, err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return path, err
	}

	return path, err
}
