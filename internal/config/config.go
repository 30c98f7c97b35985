package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/zalando/go-keyring"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigFileName is the standard name for the main configuration file.
	DefaultConfigFileName = "config.yaml"
	// DefaultConfigDirName is the standard name for the configuration directory within the user's home directory.
	DefaultConfigDirName = ".jira-mcp"
	// ConfigDirEnvVar is the environment variable used to override the default configuration directory path.
	ConfigDirEnvVar = "JIRA_MCP_CONFIG_DIR"
	// DotEnvFileName is loaded from the working directory before any other source.
	DotEnvFileName = ".env"

	// DefaultRequestsTimeout is the HTTP timeout in seconds used when REQUESTS_TIMEOUT is unset.
	DefaultRequestsTimeout = 30
	// DefaultLogLevel is used when LOG_LEVEL is unset.
	DefaultLogLevel = "INFO"
)

// envBindings maps configuration keys to the environment variables the server
// has always been configured with.
var envBindings = map[string]string{
	"jira_base_url":    "JIRA_BASE_URL",
	"jira_user":        "JIRA_USER",
	"jira_api_key":     "JIRA_API_KEY",
	"requests_timeout": "REQUESTS_TIMEOUT",
	"rate_limit":       "JIRA_RATE_LIMIT",
	"log_level":        "LOG_LEVEL",
	"log_file":         "LOG_FILE",
	"metrics_addr":     "METRICS_ADDR",
}

// EnsureConfigDir checks if the configuration directory exists, creating it if necessary.
// It prioritizes baseDir if provided. If baseDir is empty, it checks the JIRA_MCP_CONFIG_DIR
// environment variable, and falls back to ~/.jira-mcp.
// It returns the validated configuration directory path or an error if creation/validation fails.
func EnsureConfigDir(baseDir string) (string, error) {
	var configDirPath string

	if baseDir != "" {
		configDirPath = baseDir
		log.Debug().Str("path", configDirPath).Msg("Using provided base directory path")
	} else if envDir := os.Getenv(ConfigDirEnvVar); envDir != "" {
		configDirPath = envDir
		log.Debug().Str("path", configDirPath).Str("env_var", ConfigDirEnvVar).Msg("Using config directory path from environment variable")
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configDirPath = filepath.Join(homeDir, DefaultConfigDirName)
		log.Debug().Str("path", configDirPath).Msg("Using default config directory path")
	}

	info, err := os.Stat(configDirPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", configDirPath).Msg("Config directory does not exist, attempting to create")
			if mkdirErr := os.MkdirAll(configDirPath, 0700); mkdirErr != nil {
				log.Error().Err(mkdirErr).Str("path", configDirPath).Msg("Failed to create config directory")
				return "", fmt.Errorf("%w: %w", ErrConfigDirCreate, mkdirErr)
			}
			return configDirPath, nil
		}
		log.Error().Err(err).Str("path", configDirPath).Msg("Failed to stat config directory path")
		return "", fmt.Errorf("%w: %w", ErrConfigDirStat, err)
	}

	if !info.IsDir() {
		log.Error().Str("path", configDirPath).Msg("Config path exists but is not a directory")
		return "", ErrConfigDirNotDir
	}

	return configDirPath, nil
}

// AppConfig holds the server configuration. It is read once at startup and
// never mutated afterwards. RequestsTimeout is in seconds; RateLimit is in
// requests per second, with 0 meaning unlimited.
type AppConfig struct {
	JiraBaseURL     string  `mapstructure:"jira_base_url" json:"jira_base_url" yaml:"jira_base_url"`
	JiraUser        string  `mapstructure:"jira_user" json:"jira_user" yaml:"jira_user"`
	JiraAPIKey      string  `mapstructure:"jira_api_key" json:"-" yaml:"-"`
	RequestsTimeout int     `mapstructure:"requests_timeout" json:"requests_timeout" yaml:"requests_timeout"`
	RateLimit       float64 `mapstructure:"rate_limit" json:"rate_limit" yaml:"rate_limit"`
	LogLevel        string  `mapstructure:"log_level" json:"log_level" yaml:"log_level"`
	LogFile         string  `mapstructure:"log_file" json:"log_file" yaml:"log_file"`
	MetricsAddr     string  `mapstructure:"metrics_addr" json:"metrics_addr" yaml:"metrics_addr"`
}

// Timeout returns the per-request HTTP timeout.
func (c *AppConfig) Timeout() time.Duration {
	return time.Duration(c.RequestsTimeout) * time.Second
}

// Validate checks the settings the Jira client cannot work without.
func (c *AppConfig) Validate() error {
	if c.JiraBaseURL == "" {
		return ErrBaseURLMissing
	}
	u, err := url.Parse(c.JiraBaseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBaseURLInvalid, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: %q is not an absolute URL", ErrBaseURLInvalid, c.JiraBaseURL)
	}
	if c.JiraUser == "" {
		return ErrUserMissing
	}
	if c.JiraAPIKey == "" {
		return ErrAPIKeyNotFound
	}
	if c.RequestsTimeout <= 0 {
		return fmt.Errorf("%w: %d", ErrTimeoutInvalid, c.RequestsTimeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: %v", ErrRateLimitInvalid, c.RateLimit)
	}
	return nil
}

// loadDotEnv loads .env from the working directory. Variables already present
// in the environment win.
func loadDotEnv() {
	if err := godotenv.Load(DotEnvFileName); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", DotEnvFileName).Msg("No .env file found")
			return
		}
		log.Warn().Err(err).Str("path", DotEnvFileName).Msg("Failed to load .env file")
		return
	}
	log.Debug().Str("path", DotEnvFileName).Msg("Loaded .env file")
}

// LoadConfig loads the configuration from .env, the optional config file
// (baseDir/config.yaml, defaulting to ~/.jira-mcp) and the environment, in
// increasing order of precedence. If baseDir is empty, the default directory is used.
func LoadConfig(baseDir string) (*AppConfig, error) {
	loadDotEnv()

	configDir, err := EnsureConfigDir(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure config directory: %w", err)
	}

	v := viper.New()

	v.SetDefault("jira_base_url", "")
	v.SetDefault("jira_user", "")
	v.SetDefault("jira_api_key", "")
	v.SetDefault("requests_timeout", DefaultRequestsTimeout)
	v.SetDefault("rate_limit", 0)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("metrics_addr", "")

	configPath := filepath.Join(configDir, DefaultConfigFileName)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	log.Debug().Str("path", configPath).Msg("Attempting to load config file")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("%w: bind %s: %w", ErrConfigParse, env, err)
		}
	}

	err = v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Str("path", configPath).Msg("Config file not found. Using defaults and environment variables.")
		} else {
			log.Error().Err(err).Str("path", configPath).Msg("Failed to read config file")
			return nil, fmt.Errorf("%w: %w", ErrConfigRead, err)
		}
	} else {
		log.Debug().Str("path", configPath).Msg("Read config file successfully")
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		log.Error().Err(err).Str("path", configPath).Msg("Failed to unmarshal config")
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	log.Debug().
		Str("jira_base_url", cfg.JiraBaseURL).
		Str("jira_user", cfg.JiraUser).
		Int("requests_timeout", cfg.RequestsTimeout).
		Msg("Unmarshalled config successfully")

	return &cfg, nil
}

// --- Default File Creation ---

const defaultConfigYAML = `# Configuration for the Jira MCP server (jira-mcp)
# Environment variables (JIRA_BASE_URL, JIRA_USER, JIRA_API_KEY, REQUESTS_TIMEOUT,
# JIRA_RATE_LIMIT, LOG_LEVEL, LOG_FILE, METRICS_ADDR) override the values below.

# Absolute base URL of the Jira Cloud REST API. Keep the trailing slash.
jira_base_url: "https://your-org.atlassian.net/rest/api/3/"

# Account e-mail used for Basic authentication.
jira_user: ""

# The API token is best stored with 'jira-mcp config set-key <token>'.

# HTTP timeout for each Jira request, in seconds.
requests_timeout: 30

# Maximum outbound requests per second. 0 disables throttling.
rate_limit: 0

# Logging: DEBUG, INFO, WARNING, ERROR. Set log_file to write to logs/<log_file>.
log_level: "INFO"
# log_file: "jira-mcp.log"

# Serve Prometheus metrics on this address (e.g. ":9090"). Empty disables it.
# metrics_addr: ""
`

// writeFileIfNotExists checks if a file exists. If not, it writes the provided content.
func writeFileIfNotExists(filePath string, content string, perm os.FileMode) error {
	_, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", filePath).Msg("File does not exist, attempting to write default content")
			if errWrite := os.WriteFile(filePath, []byte(content), perm); errWrite != nil {
				log.Error().Err(errWrite).Str("path", filePath).Msg("Failed to write default file content")
				return fmt.Errorf("%w: %w", ErrDefaultFileWrite, errWrite)
			}
			log.Info().Str("path", filePath).Msg("Successfully wrote default file content")
			return nil
		}
		log.Error().Err(err).Str("path", filePath).Msg("Failed to stat file path")
		return fmt.Errorf("%w: %w", ErrDefaultFileStat, err)
	}
	log.Debug().Str("path", filePath).Msg("File already exists, no action needed")
	return nil
}

// CreateDefaultConfigFiles ensures the configuration directory exists and writes
// a commented config.yaml into it unless one is already present.
// If baseDir is empty, it uses the default ~/.jira-mcp.
func CreateDefaultConfigFiles(baseDir string) error {
	configDir, err := EnsureConfigDir(baseDir)
	if err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}
	return writeFileIfNotExists(filepath.Join(configDir, DefaultConfigFileName), defaultConfigYAML, 0600)
}

// --- API Key Handling ---

const (
	// KeyringServiceName is the OS keyring service the API token is stored under.
	KeyringServiceName = "jira-mcp"
	// KeyringUserName is the OS keyring account the API token is stored under.
	KeyringUserName = "jira_api_key"
	// EnvAPIKeyName is the environment variable holding the Jira API token.
	EnvAPIKeyName = "JIRA_API_KEY"
)

// GetAPIKey returns the Jira API token. A token from the environment or config
// file wins; otherwise the OS keyring is consulted. ErrAPIKeyNotFound is
// returned when neither source has one.
func GetAPIKey(cfg *AppConfig) (string, error) {
	if cfg != nil && cfg.JiraAPIKey != "" {
		log.Debug().Msg("API key taken from environment or config file")
		return cfg.JiraAPIKey, nil
	}

	log.Debug().Str("service", KeyringServiceName).Str("user", KeyringUserName).Msg("Attempting to get API key from keychain")
	key, err := keyring.Get(KeyringServiceName, KeyringUserName)
	if err == nil {
		log.Debug().Msg("API key retrieved successfully (from keychain)")
		return key, nil
	}
	if !errors.Is(err, keyring.ErrNotFound) {
		log.Error().Err(err).Str("service", KeyringServiceName).Msg("Error reading key from keychain")
		return "", fmt.Errorf("%w: %w", ErrKeyringGet, err)
	}

	log.Warn().Str("env_var", EnvAPIKeyName).Msg("API key not found in environment, config file or keychain")
	return "", ErrAPIKeyNotFound
}

// SetAPIKey stores the Jira API token in the OS keyring.
func SetAPIKey(apiKey string) error {
	log.Debug().Str("service", KeyringServiceName).Str("user", KeyringUserName).Msg("Attempting to set API key in keychain")
	if err := keyring.Set(KeyringServiceName, KeyringUserName, apiKey); err != nil {
		log.Error().Err(err).Str("service", KeyringServiceName).Msg("Failed to set API key in keychain")
		return fmt.Errorf("%w: %w", ErrKeyringSet, err)
	}
	log.Info().Str("service", KeyringServiceName).Msg("API key stored successfully in keychain")
	return nil
}
