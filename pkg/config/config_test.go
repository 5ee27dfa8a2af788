package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestDefaultConfig(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.Timezone, "Europe/Berlin")
	is.Equal(cfg.Cache.Driver, "lru")
	is.Equal(cfg.API.MaxRetries, 2)
	is.Equal(cfg.Cache.TTL.Duration(), 5*time.Minute)
}

func TestParseEnvOverrides(t *testing.T) {
	is := is.New(t)
	is.NoErr(os.Setenv("ELAB_TIMEZONE", "UTC"))
	is.NoErr(os.Setenv("ELAB_API_MAX_RETRIES", "0"))
	is.NoErr(os.Setenv("ELAB_CACHE_TTL", "90s"))
	t.Cleanup(func() {
		is.NoErr(os.Unsetenv("ELAB_TIMEZONE"))
		is.NoErr(os.Unsetenv("ELAB_API_MAX_RETRIES"))
		is.NoErr(os.Unsetenv("ELAB_CACHE_TTL"))
	})

	cfg := DefaultConfig()
	is.NoErr(cfg.ParseEnv())
	is.Equal(cfg.Timezone, "UTC")
	is.Equal(cfg.API.MaxRetries, 0)
	is.Equal(cfg.Cache.TTL.Duration(), 90*time.Second)
}

func TestValidateRejectsEmptyTimezone(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.Timezone = ""
	is.True(cfg.Validate() != nil)
}

func TestWriteAndParseFile(t *testing.T) {
	is := is.New(t)
	dp := t.TempDir()
	cfg := DefaultConfig()
	cfg.DataPath = dp
	cfg.API.BaseURL = "http://localhost:8080"
	is.NoErr(cfg.WriteConfig())
	is.True(cfg.Exist())

	got := DefaultConfig()
	got.DataPath = dp
	is.NoErr(got.ParseFile())
	is.Equal(got.API.BaseURL, "http://localhost:8080")
	is.Equal(got.ConfigPath(), filepath.Join(dp, "config.yaml"))
}

func TestValidateResolvesSQLitePath(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.DataPath = t.TempDir()
	is.NoErr(cfg.Validate())
	is.True(filepath.IsAbs(cfg.DB.DataSource))
}
