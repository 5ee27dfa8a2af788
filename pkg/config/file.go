package config

import (
	"bytes"
	"text/template"
)

var configFileTmpl = template.Must(template.New("config").Parse(`# EsportLab client configurations

# The IANA timezone used to display and edit availability times.
timezone: "{{ .Timezone }}"

# Logging configuration.
log:
  # Log format to use. Valid values are "json", "logfmt", and "text".
  format: "{{ .Log.Format }}"
  # Time format for the log "timestamp" field.
  # Should be described in Golang's time format.
  time_format: "{{ .Log.TimeFormat }}"
  # Path to the log file. Leave empty to write to stderr.
  #path: "{{ .Log.Path }}"

# The backend API configuration.
api:
  # The base URL of the EsportLab backend.
  base_url: "{{ .API.BaseURL }}"

  # The per-request timeout.
  timeout: {{ .API.Timeout }}

  # The maximum number of retries for read requests.
  # Write requests are never retried.
  max_retries: {{ .API.MaxRetries }}

# The Discord OAuth login configuration.
auth:
  # The backend endpoint that redirects to the Discord authorization page.
  authorize_url: "{{ .Auth.AuthorizeURL }}"

  # The loopback address the client listens on for the redirect back from
  # the provider.
  callback_addr: "{{ .Auth.CallbackAddr }}"

  # How long the login command waits for the redirect.
  callback_timeout: {{ .Auth.CallbackTimeout }}

# The response cache configuration.
cache:
  # The cache driver to use. Valid values are "lru" and "noop".
  driver: "{{ .Cache.Driver }}"

  # The maximum number of entries kept by the lru driver.
  size: {{ .Cache.Size }}

  # How long a cached overview stays fresh.
  ttl: {{ .Cache.TTL }}

# The local state database configuration.
db:
  # The database driver to use.
  # Valid values are "sqlite" and "postgres".
  driver: "{{ .DB.Driver }}"
  # The database data source name.
  # This is driver specific and can be a file path or connection string.
  data_source: "{{ .DB.DataSource }}"

# Background jobs configuration.
jobs:
  # Cron spec for re-warming the current week's overview while the UI is
  # running. Leave empty to disable.
  overview_refresh: "{{ .Jobs.OverviewRefresh }}"
`))

func newConfigFile(cfg *Config) string {
	var b bytes.Buffer
	if err := configFileTmpl.Execute(&b, cfg); err != nil {
		return ""
	}
	return b.String()
}
