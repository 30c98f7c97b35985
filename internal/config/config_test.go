package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

// clearEnv unsets every variable LoadConfig reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
		require.NoError(t, os.Unsetenv(env))
	}
	t.Setenv(ConfigDirEnvVar, "")
}

func validConfig() *AppConfig {
	return &AppConfig{
		JiraBaseURL:     "https://example.atlassian.net/rest/api/3/",
		JiraUser:        "bot@example.com",
		JiraAPIKey:      "token",
		RequestsTimeout: 30,
	}
}

func TestEnsureConfigDir(t *testing.T) {
	t.Run("DirectoryDoesNotExist", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", ".jira-mcp")

		returnedDir, err := EnsureConfigDir(dir)
		require.NoError(t, err)
		assert.DirExists(t, dir)
		assert.Equal(t, dir, returnedDir)
	})

	t.Run("DirectoryAlreadyExists", func(t *testing.T) {
		dir := t.TempDir()

		returnedDir, err := EnsureConfigDir(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, returnedDir)
	})

	t.Run("EnvironmentOverride", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(ConfigDirEnvVar, dir)

		returnedDir, err := EnsureConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, dir, returnedDir)
	})

	t.Run("PathIsAFile", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "config")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

		_, err := EnsureConfigDir(file)
		assert.ErrorIs(t, err, ErrConfigDirNotDir)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, cfg.JiraBaseURL)
		assert.Equal(t, DefaultRequestsTimeout, cfg.RequestsTimeout)
		assert.Equal(t, 30*time.Second, cfg.Timeout())
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
		assert.Zero(t, cfg.RateLimit)
	})

	t.Run("ConfigFile", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		yaml := `
jira_base_url: "https://file.atlassian.net/rest/api/3/"
jira_user: "file@example.com"
requests_timeout: 10
rate_limit: 2.5
log_level: "DEBUG"
log_file: "server.log"
metrics_addr: ":9090"
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFileName), []byte(yaml), 0600))

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "https://file.atlassian.net/rest/api/3/", cfg.JiraBaseURL)
		assert.Equal(t, "file@example.com", cfg.JiraUser)
		assert.Equal(t, 10, cfg.RequestsTimeout)
		assert.Equal(t, 2.5, cfg.RateLimit)
		assert.Equal(t, "DEBUG", cfg.LogLevel)
		assert.Equal(t, "server.log", cfg.LogFile)
		assert.Equal(t, ":9090", cfg.MetricsAddr)
	})

	t.Run("EnvironmentOverridesFile", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFileName),
			[]byte(`jira_user: "file@example.com"`+"\n"), 0600))
		t.Setenv("JIRA_BASE_URL", "https://env.atlassian.net/rest/api/3/")
		t.Setenv("JIRA_USER", "env@example.com")
		t.Setenv("JIRA_API_KEY", "env-token")
		t.Setenv("REQUESTS_TIMEOUT", "5")

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "https://env.atlassian.net/rest/api/3/", cfg.JiraBaseURL)
		assert.Equal(t, "env@example.com", cfg.JiraUser)
		assert.Equal(t, "env-token", cfg.JiraAPIKey)
		assert.Equal(t, 5, cfg.RequestsTimeout)
	})

	t.Run("DotEnv", func(t *testing.T) {
		clearEnv(t)
		wd, err := os.Getwd()
		require.NoError(t, err)
		workDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(workDir, DotEnvFileName),
			[]byte("JIRA_BASE_URL=https://dotenv.atlassian.net/rest/api/3/\nJIRA_USER=dotenv@example.com\n"), 0600))
		require.NoError(t, os.Chdir(workDir))
		t.Cleanup(func() { _ = os.Chdir(wd) })
		t.Setenv("JIRA_USER", "env@example.com")

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "https://dotenv.atlassian.net/rest/api/3/", cfg.JiraBaseURL)
		assert.Equal(t, "env@example.com", cfg.JiraUser, "the real environment wins over .env")
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFileName), []byte("jira_user: [unclosed"), 0600))

		_, err := LoadConfig(dir)
		assert.ErrorIs(t, err, ErrConfigRead)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr error
	}{
		{"Valid", func(c *AppConfig) {}, nil},
		{"MissingBaseURL", func(c *AppConfig) { c.JiraBaseURL = "" }, ErrBaseURLMissing},
		{"RelativeBaseURL", func(c *AppConfig) { c.JiraBaseURL = "rest/api/3/" }, ErrBaseURLInvalid},
		{"UnparsableBaseURL", func(c *AppConfig) { c.JiraBaseURL = "http://[::1" }, ErrBaseURLInvalid},
		{"MissingUser", func(c *AppConfig) { c.JiraUser = "" }, ErrUserMissing},
		{"MissingAPIKey", func(c *AppConfig) { c.JiraAPIKey = "" }, ErrAPIKeyNotFound},
		{"ZeroTimeout", func(c *AppConfig) { c.RequestsTimeout = 0 }, ErrTimeoutInvalid},
		{"NegativeRateLimit", func(c *AppConfig) { c.RateLimit = -1 }, ErrRateLimitInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateDefaultConfigFiles(t *testing.T) {
	t.Run("WritesDefaultFile", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()

		require.NoError(t, CreateDefaultConfigFiles(dir))

		path := filepath.Join(dir, DefaultConfigFileName)
		require.FileExists(t, path)
		cfg, err := LoadConfig(dir)
		require.NoError(t, err, "the generated file must load")
		assert.Equal(t, "https://your-org.atlassian.net/rest/api/3/", cfg.JiraBaseURL)
		assert.Equal(t, DefaultRequestsTimeout, cfg.RequestsTimeout)
	})

	t.Run("KeepsExistingFile", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("jira_user: mine\n"), 0600))

		require.NoError(t, CreateDefaultConfigFiles(dir))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "jira_user: mine\n", string(data))
	})
}

func TestGetAPIKey(t *testing.T) {
	t.Run("ConfiguredKeyWins", func(t *testing.T) {
		keyring.MockInit()
		require.NoError(t, keyring.Set(KeyringServiceName, KeyringUserName, "keyring-token"))

		key, err := GetAPIKey(&AppConfig{JiraAPIKey: "env-token"})
		require.NoError(t, err)
		assert.Equal(t, "env-token", key)
	})

	t.Run("Keyring", func(t *testing.T) {
		keyring.MockInit()
		require.NoError(t, SetAPIKey("keyring-token"))

		key, err := GetAPIKey(&AppConfig{})
		require.NoError(t, err)
		assert.Equal(t, "keyring-token", key)
	})

	t.Run("NotFound", func(t *testing.T) {
		keyring.MockInit()

		_, err := GetAPIKey(&AppConfig{})
		assert.ErrorIs(t, err, ErrAPIKeyNotFound)
	})

	t.Run("KeyringFailure", func(t *testing.T) {
		keyringErr := errors.New("dbus unavailable")
		keyring.MockInitWithError(keyringErr)

		_, err := GetAPIKey(nil)
		assert.ErrorIs(t, err, ErrKeyringGet)
		assert.ErrorIs(t, err, keyringErr)

		assert.ErrorIs(t, SetAPIKey("token"), ErrKeyringSet)
	})
}
