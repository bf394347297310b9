// Package config provides configuration loading and validation for the service and CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable names read by FromEnv.
const (
	EnvGeminiAPIKey  = "GEMINI_API_KEY"
	EnvGroqAPIKey    = "GROQ_API_KEY"
	EnvGeminiModel   = "GEMINI_MODEL"
	EnvGroqModel     = "GROQ_MODEL"
	EnvGroqBaseURL   = "GROQ_BASE_URL"
	EnvPort          = "PORT"
	EnvUploadDir     = "UPLOAD_DIR"
	EnvSessionSecret = "SESSION_SECRET"
	EnvLLMTimeout    = "LLM_TIMEOUT"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvMaxUploadMB   = "MAX_UPLOAD_MB"
)

// Config is the process-wide, read-only configuration. It is built once at
// startup and passed explicitly to the components that need it.
// All fields are optional; an empty API key degrades its flow to fallback data.
type Config struct {
	// Server
	Port        int    `yaml:"port,omitempty"`          // HTTP listen port
	UploadDir   string `yaml:"upload_dir,omitempty"`    // Directory uploaded resumes are stored in
	MaxUploadMB int    `yaml:"max_upload_mb,omitempty"` // Maximum accepted upload size

	// Session
	SessionSecret string `yaml:"session_secret,omitempty"` // HMAC key for the session cookie

	// LLM providers
	GeminiAPIKey string        `yaml:"gemini_api_key,omitempty"` // ATS scoring credential
	GeminiModel  string        `yaml:"gemini_model,omitempty"`   // ATS scoring model
	GroqAPIKey   string        `yaml:"groq_api_key,omitempty"`   // Resume parsing credential
	GroqModel    string        `yaml:"groq_model,omitempty"`     // Resume parsing model
	GroqBaseURL  string        `yaml:"groq_base_url,omitempty"`  // OpenAI-compatible endpoint
	LLMTimeout   time.Duration `yaml:"llm_timeout,omitempty"`    // Per-call timeout, 0 disables

	// Logging
	LogLevel  string `yaml:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format,omitempty"` // json or console
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:        8080,
		UploadDir:   "uploads",
		MaxUploadMB: 16,
		GeminiModel: "gemini-1.5-flash",
		GroqModel:   "llama-3.3-70b-versatile",
		GroqBaseURL: "https://api.groq.com/openai/v1",
		LogLevel:    "info",
		LogFormat:   "console",
	}
}

// LoadConfig loads configuration from a YAML file. JSON files are valid YAML
// and load the same way.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// FromEnv returns a copy of c with every field that has a non-empty
// environment variable overwritten by it.
func (c Config) FromEnv() (Config, error) {
	result := c

	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setString(&result.GeminiAPIKey, EnvGeminiAPIKey)
	setString(&result.GroqAPIKey, EnvGroqAPIKey)
	setString(&result.GeminiModel, EnvGeminiModel)
	setString(&result.GroqModel, EnvGroqModel)
	setString(&result.GroqBaseURL, EnvGroqBaseURL)
	setString(&result.UploadDir, EnvUploadDir)
	setString(&result.SessionSecret, EnvSessionSecret)
	setString(&result.LogLevel, EnvLogLevel)
	setString(&result.LogFormat, EnvLogFormat)

	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("invalid %s: %w", EnvPort, err)
		}
		result.Port = port
	}

	if v := os.Getenv(EnvMaxUploadMB); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("invalid %s: %w", EnvMaxUploadMB, err)
		}
		result.MaxUploadMB = size
	}

	if v := os.Getenv(EnvLLMTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return c, fmt.Errorf("invalid %s: %w", EnvLLMTimeout, err)
		}
		result.LLMTimeout = timeout
	}

	return result, nil
}

// Validate checks that the configuration has valid values.
// Missing API keys are not errors: each flow falls back independently.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}
	if c.MaxUploadMB < 0 {
		return fmt.Errorf("config error: 'max_upload_mb' must be non-negative")
	}
	if c.LLMTimeout < 0 {
		return fmt.Errorf("config error: 'llm_timeout' must be non-negative")
	}

	switch c.LogFormat {
	case "", "json", "console":
	default:
		return fmt.Errorf("config error: 'log_format' must be json or console, got %q", c.LogFormat)
	}

	if c.UploadDir != "" {
		if info, err := os.Stat(c.UploadDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: upload_dir is not a directory: %s", c.UploadDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	mergeString := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	mergeString(&result.UploadDir, defaults.UploadDir)
	mergeString(&result.SessionSecret, defaults.SessionSecret)
	mergeString(&result.GeminiAPIKey, defaults.GeminiAPIKey)
	mergeString(&result.GeminiModel, defaults.GeminiModel)
	mergeString(&result.GroqAPIKey, defaults.GroqAPIKey)
	mergeString(&result.GroqModel, defaults.GroqModel)
	mergeString(&result.GroqBaseURL, defaults.GroqBaseURL)
	mergeString(&result.LogLevel, defaults.LogLevel)
	mergeString(&result.LogFormat, defaults.LogFormat)

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadMB == 0 {
		result.MaxUploadMB = defaults.MaxUploadMB
	}
	if result.LLMTimeout == 0 {
		result.LLMTimeout = defaults.LLMTimeout
	}

	return result
}

// MaxUploadBytes returns the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// MaskKey returns a log-safe prefix of an API key.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 10 {
		return "..."
	}
	return key[:10] + "..."
}
