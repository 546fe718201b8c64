// Package config provides the settings loader for webbase.
//
// Settings are read from environment variables, with an optional YAML
// settings file underneath. Environment variables always win.
//
// # Environment Variables
//
//   - SECRET_KEY: signing key for auth tokens (required to serve)
//   - DEBUG: enables development behavior
//   - ALLOWED_HOSTS: comma-separated Host header allow list
//   - POSTGRES_DB, POSTGRES_USER, POSTGRES_PASSWORD,
//     POSTGRES_HOST, POSTGRES_PORT: database connection parts
//   - DATABASE_URL: full connection string, overrides POSTGRES_*
//   - PORT, BIND_ADDRESS: server listen address (default 0.0.0.0:9000)
//   - STATIC_ROOT, STATIC_URL: static asset destination and URL prefix
//   - SESSION_COOKIE_AGE, AUTH_TOKEN_TTL: lifetimes in seconds
//   - LOG_LEVEL: set to "debug" for SQL query logging
//   - WEBBASE_CONFIG_PATH: directory holding the optional webbase.yml
//
// # Settings File
//
// The optional settings file (default /etc/webbase/config/webbase.yml)
// may set the non-secret attributes. Secrets are environment-only.
package config
