package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// APIConfig is the configuration for the EsportLab backend API.
type APIConfig struct {
	// BaseURL is the base URL of the backend.
	BaseURL string `env:"BASE_URL" yaml:"base_url"`

	// Timeout is the per-request timeout.
	Timeout Duration `env:"TIMEOUT" yaml:"timeout"`

	// MaxRetries is the maximum number of retries for read requests.
	// Write requests are never retried.
	MaxRetries int `env:"MAX_RETRIES" yaml:"max_retries"`
}

// AuthConfig is the configuration for the Discord OAuth login flow.
type AuthConfig struct {
	// AuthorizeURL is the backend endpoint that redirects to Discord.
	AuthorizeURL string `env:"AUTHORIZE_URL" yaml:"authorize_url"`

	// CallbackAddr is the loopback address the client listens on for the
	// redirect back from the provider.
	CallbackAddr string `env:"CALLBACK_ADDR" yaml:"callback_addr"`

	// CallbackTimeout is how long the login command waits for the redirect.
	CallbackTimeout Duration `env:"CALLBACK_TIMEOUT" yaml:"callback_timeout"`
}

// CacheConfig is the configuration for the in-memory response cache.
type CacheConfig struct {
	// Driver is the cache driver. Valid values are "lru" and "noop".
	Driver string `env:"DRIVER" yaml:"driver"`

	// Size is the maximum number of entries kept by the lru driver.
	Size int `env:"SIZE" yaml:"size"`

	// TTL is how long a cached overview stays fresh.
	TTL Duration `env:"TTL" yaml:"ttl"`
}

// DBConfig is the local state database configuration.
type DBConfig struct {
	// Driver is the driver for the database.
	// Valid values are "sqlite" and "postgres".
	Driver string `env:"DRIVER" yaml:"driver"`

	// DataSource is the database data source name.
	DataSource string `env:"DATA_SOURCE" yaml:"data_source"`
}

// LogConfig is the logger configuration.
type LogConfig struct {
	// Format is the format of the logs.
	// Valid values are "json", "logfmt", and "text".
	Format string `env:"FORMAT" yaml:"format"`

	// Time format for the log `ts` field.
	// Format must be described in Golang's time format.
	TimeFormat string `env:"TIME_FORMAT" yaml:"time_format"`

	// Path to a file to write logs to.
	// If not set, logs will be written to stderr.
	Path string `env:"PATH" yaml:"path"`
}

// JobsConfig is the configuration for background jobs.
type JobsConfig struct {
	// OverviewRefresh is the cron spec for re-warming the current week's
	// overview while the UI is running. Empty disables the job.
	OverviewRefresh string `env:"OVERVIEW_REFRESH" yaml:"overview_refresh"`
}

// Config is the configuration for the EsportLab client.
type Config struct {
	// Timezone is the IANA timezone all wall-clock times are displayed and
	// edited in.
	Timezone string `env:"TIMEZONE" yaml:"timezone"`

	// API is the backend API configuration.
	API APIConfig `envPrefix:"API_" yaml:"api"`

	// Auth is the login flow configuration.
	Auth AuthConfig `envPrefix:"AUTH_" yaml:"auth"`

	// Cache is the response cache configuration.
	Cache CacheConfig `envPrefix:"CACHE_" yaml:"cache"`

	// DB is the local state database configuration.
	DB DBConfig `envPrefix:"DB_" yaml:"db"`

	// Log is the logger configuration.
	Log LogConfig `envPrefix:"LOG_" yaml:"log"`

	// Jobs is the configuration for background jobs.
	Jobs JobsConfig `envPrefix:"JOBS_" yaml:"jobs"`

	// DataPath is the path to the directory where the client stores its
	// config, credentials and local state.
	DataPath string `env:"DATA_PATH" yaml:"-"`
}

// Environ returns the config as a list of environment variables.
func (c *Config) Environ() []string {
	envs := []string{}
	if c == nil {
		return envs
	}

	envs = append(envs, []string{
		fmt.Sprintf("ELAB_DATA_PATH=%s", c.DataPath),
		fmt.Sprintf("ELAB_TIMEZONE=%s", c.Timezone),
		fmt.Sprintf("ELAB_API_BASE_URL=%s", c.API.BaseURL),
		fmt.Sprintf("ELAB_API_TIMEOUT=%s", c.API.Timeout),
		fmt.Sprintf("ELAB_API_MAX_RETRIES=%d", c.API.MaxRetries),
		fmt.Sprintf("ELAB_AUTH_AUTHORIZE_URL=%s", c.Auth.AuthorizeURL),
		fmt.Sprintf("ELAB_AUTH_CALLBACK_ADDR=%s", c.Auth.CallbackAddr),
		fmt.Sprintf("ELAB_AUTH_CALLBACK_TIMEOUT=%s", c.Auth.CallbackTimeout),
		fmt.Sprintf("ELAB_CACHE_DRIVER=%s", c.Cache.Driver),
		fmt.Sprintf("ELAB_CACHE_SIZE=%d", c.Cache.Size),
		fmt.Sprintf("ELAB_CACHE_TTL=%s", c.Cache.TTL),
		fmt.Sprintf("ELAB_DB_DRIVER=%s", c.DB.Driver),
		fmt.Sprintf("ELAB_DB_DATA_SOURCE=%s", c.DB.DataSource),
		fmt.Sprintf("ELAB_LOG_FORMAT=%s", c.Log.Format),
		fmt.Sprintf("ELAB_LOG_TIME_FORMAT=%s", c.Log.TimeFormat),
		fmt.Sprintf("ELAB_JOBS_OVERVIEW_REFRESH=%s", c.Jobs.OverviewRefresh),
	}...)

	return envs
}

// IsDebug returns true if the client is running in debug mode.
func IsDebug() bool {
	debug, _ := strconv.ParseBool(os.Getenv("ELAB_DEBUG"))
	return debug
}

// IsVerbose returns true if the client is running in verbose mode.
// Verbose mode is only enabled if debug mode is enabled.
func IsVerbose() bool {
	verbose, _ := strconv.ParseBool(os.Getenv("ELAB_VERBOSE"))
	return IsDebug() && verbose
}

// parseFile parses the given file as a configuration file.
// The file must be in YAML format.
func parseFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close() // nolint: errcheck
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	return cfg.Validate()
}

// ParseFile parses the config from the default file path.
// This also calls Validate() on the config.
func (c *Config) ParseFile() error {
	return parseFile(c, c.ConfigPath())
}

// parseEnv parses the environment variables as a configuration file.
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix: "ELAB_",
	}); err != nil {
		return fmt.Errorf("parse environment variables: %w", err)
	}

	return cfg.Validate()
}

// ParseEnv parses the config from the environment variables.
// This also calls Validate() on the config.
func (c *Config) ParseEnv() error {
	return parseEnv(c)
}

// ParseConfig parses the given file into cfg, then applies environment
// overrides.
func ParseConfig(cfg *Config, path string) error {
	if err := parseFile(cfg, path); err != nil {
		return err
	}
	return parseEnv(cfg)
}

// Parse parses the config from the default file path and environment
// variables. This also calls Validate() on the config.
func (c *Config) Parse() error {
	if err := c.ParseFile(); err != nil {
		return err
	}

	return c.ParseEnv()
}

// writeConfig writes the configuration to the given file.
func writeConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(newConfigFile(cfg)), 0o644) // nolint: errcheck, gosec
}

// WriteConfig writes the configuration to the default file.
func (c *Config) WriteConfig() error {
	return writeConfig(c, c.ConfigPath())
}

// DefaultDataPath returns the path to the data directory.
// It uses the ELAB_DATA_PATH environment variable if set, otherwise it
// uses "~/.local/share/elab", falling back to "data" when the home
// directory cannot be determined.
func DefaultDataPath() string {
	dp := os.Getenv("ELAB_DATA_PATH")
	if dp != "" {
		return dp
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "data"
	}

	return filepath.Join(home, ".local", "share", "elab")
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string { // nolint:revive
	return filepath.Join(c.DataPath, "config.yaml")
}

func exist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Exist returns true if the config file exists.
func (c *Config) Exist() bool {
	return exist(filepath.Join(c.DataPath, "config.yaml"))
}

// DefaultConfig returns the default Config. All the path values are relative
// to the data directory.
// Use Validate() to validate the config and ensure absolute paths.
func DefaultConfig() *Config {
	return &Config{
		Timezone: "Europe/Berlin",
		DataPath: DefaultDataPath(),
		API: APIConfig{
			BaseURL:    "https://esportlab-backend-production.up.railway.app",
			Timeout:    Duration(30 * time.Second),
			MaxRetries: 2,
		},
		Auth: AuthConfig{
			AuthorizeURL:    "https://esportlab-backend-production.up.railway.app/auth/discord",
			CallbackAddr:    "localhost:23917",
			CallbackTimeout: Duration(5 * time.Minute),
		},
		Cache: CacheConfig{
			Driver: "lru",
			Size:   128,
			TTL:    Duration(5 * time.Minute),
		},
		DB: DBConfig{
			Driver: "sqlite",
			DataSource: "elab.db" +
				"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		},
		Log: LogConfig{
			Format:     "text",
			TimeFormat: time.DateTime,
		},
		Jobs: JobsConfig{
			OverviewRefresh: "@every 5m",
		},
	}
}

// Validate validates the config.
func (c *Config) Validate() error {
	// Use absolute paths
	if !filepath.IsAbs(c.DataPath) {
		dp, err := filepath.Abs(c.DataPath)
		if err != nil {
			return err
		}
		c.DataPath = dp
	}

	c.API.BaseURL = strings.TrimSuffix(c.API.BaseURL, "/")
	c.Auth.AuthorizeURL = strings.TrimSuffix(c.Auth.AuthorizeURL, "/")

	if c.Timezone == "" {
		return fmt.Errorf("timezone cannot be empty")
	}

	if c.API.MaxRetries < 0 {
		return fmt.Errorf("api max_retries cannot be negative")
	}

	if strings.HasPrefix(c.DB.Driver, "sqlite") && !filepath.IsAbs(c.DB.DataSource) {
		c.DB.DataSource = filepath.Join(c.DataPath, c.DB.DataSource)
	}

	if c.Log.Path != "" && !filepath.IsAbs(c.Log.Path) {
		c.Log.Path = filepath.Join(c.DataPath, c.Log.Path)
	}

	return nil
}
