package config

import "errors"

// Sentinel errors for configuration loading and processing.

// ErrConfigRead indicates an error occurred while reading the config file.
var ErrConfigRead = errors.New("failed to read configuration file")

// ErrConfigParse indicates an error occurred while parsing the configuration.
var ErrConfigParse = errors.New("failed to parse configuration")

// ErrConfigDirCreate indicates an error occurred while creating the config directory.
var ErrConfigDirCreate = errors.New("failed to create config directory")

// ErrConfigDirStat indicates an error occurred while checking the config directory.
var ErrConfigDirStat = errors.New("failed to check config directory")

// ErrConfigDirNotDir indicates the config path exists but is not a directory.
var ErrConfigDirNotDir = errors.New("config path exists but is not a directory")

// ErrDefaultFileWrite indicates an error occurred while writing a default config file.
var ErrDefaultFileWrite = errors.New("failed to write default config file")

// ErrDefaultFileStat indicates an error occurred while checking a default config file.
var ErrDefaultFileStat = errors.New("failed to check default config file")

// ErrBaseURLMissing indicates JIRA_BASE_URL is not set.
var ErrBaseURLMissing = errors.New("Jira base URL is not configured (set JIRA_BASE_URL)")

// ErrBaseURLInvalid indicates JIRA_BASE_URL is not an absolute URL.
var ErrBaseURLInvalid = errors.New("Jira base URL is invalid")

// ErrUserMissing indicates JIRA_USER is not set.
var ErrUserMissing = errors.New("Jira user is not configured (set JIRA_USER)")

// ErrTimeoutInvalid indicates REQUESTS_TIMEOUT is not a positive number of seconds.
var ErrTimeoutInvalid = errors.New("requests timeout must be a positive number of seconds")

// ErrRateLimitInvalid indicates JIRA_RATE_LIMIT is negative.
var ErrRateLimitInvalid = errors.New("rate limit must not be negative")

// ErrAPIKeyNotFound is returned when the Jira API token cannot be found in any source.
var ErrAPIKeyNotFound = errors.New("Jira API key not found in environment, config file or OS keychain")

// ErrKeyringSet indicates an error occurred while setting a key in the OS keyring.
var ErrKeyringSet = errors.New("failed to set key in OS keyring")

// ErrKeyringGet indicates an error occurred while getting a key from the OS keyring (excluding 'not found').
var ErrKeyringGet = errors.New("failed to get key from OS keyring")
