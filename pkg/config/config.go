package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/webbase/config"
	ConfigFileName    = "webbase.yml"

	// DefaultPort is the port the server listens on when PORT is unset.
	DefaultPort = "9000"

	// DefaultSessionCookieAge is two weeks, the framework default the
	// template ships with.
	DefaultSessionCookieAge = 1209600

	// DefaultAuthTokenTTL is the lifetime of issued API tokens in seconds.
	DefaultAuthTokenTTL = 3600

	// MinSecretKeyLength is enforced outside of debug mode.
	MinSecretKeyLength = 32
)

// Settings holds all application settings.
//
// Secrets (SECRET_KEY, POSTGRES_PASSWORD) are only ever read from the
// environment. The optional settings file may set the non-secret
// attributes; environment variables take precedence over file values.
type Settings struct {
	// SecretKey signs auth tokens and session material
	SecretKey string `yaml:"-" json:"-"`

	// Debug enables development behavior (host checks off, verbose pages)
	Debug bool `yaml:"debug" json:"debug"`

	// AllowedHosts is the list of Host header values served outside debug.
	// A leading dot matches subdomains, "*" matches everything.
	AllowedHosts []string `yaml:"allowed_hosts" json:"allowed_hosts"`

	// Environment is the deployment environment (development/production/test)
	Environment Environment `yaml:"environment" json:"environment"`

	// DatabaseURL overrides the POSTGRES_* connection parts when set
	DatabaseURL string `yaml:"-" json:"-"`

	PostgresDB       string `yaml:"-" json:"-"`
	PostgresUser     string `yaml:"-" json:"-"`
	PostgresPassword string `yaml:"-" json:"-"`
	PostgresHost     string `yaml:"-" json:"-"`
	PostgresPort     string `yaml:"-" json:"-"`

	// BindAddress and Port define the server listen address
	BindAddress string `yaml:"bind_address" json:"bind_address"`
	Port        string `yaml:"port" json:"port"`

	// StaticRoot is where collectstatic places assets
	StaticRoot string `yaml:"static_root" json:"static_root"`

	// StaticURL is the URL prefix assets are served under
	StaticURL string `yaml:"static_url" json:"static_url"`

	// SessionCookieAge is the session lifetime in seconds
	SessionCookieAge int `yaml:"session_cookie_age" json:"session_cookie_age"`

	// AuthTokenTTL is the API token lifetime in seconds
	AuthTokenTTL int `yaml:"auth_token_ttl" json:"auth_token_ttl"`

	// LogLevel controls SQL and request log verbosity
	LogLevel string `yaml:"log_level" json:"log_level"`

	// sources tracks where each value came from
	sources map[string]string

	// settingsFilePath is the path to the settings file
	settingsFilePath string
}

// Attribute represents a settings attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton settings
var (
	globalSettings *Settings
	settingsMu     sync.RWMutex
)

// Get returns the global settings, loading them if necessary
func Get() *Settings {
	settingsMu.RLock()
	if globalSettings != nil {
		settingsMu.RUnlock()
		return globalSettings
	}
	settingsMu.RUnlock()

	settingsMu.Lock()
	defer settingsMu.Unlock()

	if globalSettings == nil {
		s, err := Load()
		if err != nil {
			// Fall back to defaults on error
			globalSettings = newDefault()
		} else {
			globalSettings = s
		}
	}
	return globalSettings
}

// Reload reloads the settings from file and environment. The loaded
// values are copied into the existing Settings in place, so references
// handed out by Get before the reload observe the new values.
func Reload() error {
	s, err := Load()
	if err != nil {
		return err
	}

	settingsMu.Lock()
	defer settingsMu.Unlock()
	if globalSettings == nil {
		globalSettings = s
		return nil
	}
	*globalSettings = *s
	return nil
}

// newDefault returns settings with default values
func newDefault() *Settings {
	return &Settings{
		Debug:            false,
		AllowedHosts:     []string{},
		Environment:      EnvironmentProduction,
		PostgresDB:       "postgres",
		PostgresUser:     "postgres",
		PostgresHost:     "localhost",
		PostgresPort:     "5432",
		BindAddress:      "0.0.0.0",
		Port:             DefaultPort,
		StaticRoot:       "staticfiles",
		StaticURL:        "/static/",
		SessionCookieAge: DefaultSessionCookieAge,
		AuthTokenTTL:     DefaultAuthTokenTTL,
		LogLevel:         "info",
		sources:          make(map[string]string),
	}
}

// Load loads settings from the settings file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Settings, error) {
	settings := newDefault()

	for _, name := range attributeNames() {
		settings.sources[name] = "default"
	}

	configPath := os.Getenv("WEBBASE_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	settings.settingsFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(settings.settingsFilePath); err == nil {
		var fileSettings Settings
		if err := yaml.Unmarshal(data, &fileSettings); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", settings.settingsFilePath, err)
		}
		settings.applyFileSettings(&fileSettings)
	}

	settings.applyEnvSettings()

	return settings, nil
}

func attributeNames() []string {
	return []string{
		"debug", "allowed_hosts", "environment", "bind_address", "port",
		"static_root", "static_url", "session_cookie_age", "auth_token_ttl",
		"log_level", "postgres_db", "postgres_user", "postgres_host",
		"postgres_port",
	}
}

func (s *Settings) applyFileSettings(file *Settings) {
	if file.Debug {
		s.Debug = true
		s.sources["debug"] = "file"
	}
	if len(file.AllowedHosts) > 0 {
		s.AllowedHosts = file.AllowedHosts
		s.sources["allowed_hosts"] = "file"
	}
	if file.Environment != 0 {
		s.Environment = file.Environment
		s.sources["environment"] = "file"
	}
	if file.BindAddress != "" {
		s.BindAddress = file.BindAddress
		s.sources["bind_address"] = "file"
	}
	if file.Port != "" {
		s.Port = file.Port
		s.sources["port"] = "file"
	}
	if file.StaticRoot != "" {
		s.StaticRoot = file.StaticRoot
		s.sources["static_root"] = "file"
	}
	if file.StaticURL != "" {
		s.StaticURL = file.StaticURL
		s.sources["static_url"] = "file"
	}
	if file.SessionCookieAge != 0 {
		s.SessionCookieAge = file.SessionCookieAge
		s.sources["session_cookie_age"] = "file"
	}
	if file.AuthTokenTTL != 0 {
		s.AuthTokenTTL = file.AuthTokenTTL
		s.sources["auth_token_ttl"] = "file"
	}
	if file.LogLevel != "" {
		s.LogLevel = file.LogLevel
		s.sources["log_level"] = "file"
	}
}

func (s *Settings) applyEnvSettings() {
	if val := os.Getenv("SECRET_KEY"); val != "" {
		s.SecretKey = val
	}
	if val := os.Getenv("DEBUG"); val != "" {
		s.Debug = val == "true" || val == "True" || val == "1"
		s.sources["debug"] = "environment"
	}
	if val := os.Getenv("ALLOWED_HOSTS"); val != "" {
		s.AllowedHosts = splitAndTrim(val)
		s.sources["allowed_hosts"] = "environment"
	}
	if val := os.Getenv("ENVIRONMENT"); val != "" {
		if env, err := EnvironmentString(val); err == nil {
			s.Environment = env
			s.sources["environment"] = "environment"
		}
	}
	if val := os.Getenv("DATABASE_URL"); val != "" {
		s.DatabaseURL = val
	}
	if val := os.Getenv("POSTGRES_DB"); val != "" {
		s.PostgresDB = val
		s.sources["postgres_db"] = "environment"
	}
	if val := os.Getenv("POSTGRES_USER"); val != "" {
		s.PostgresUser = val
		s.sources["postgres_user"] = "environment"
	}
	if val := os.Getenv("POSTGRES_PASSWORD"); val != "" {
		s.PostgresPassword = val
	}
	if val := os.Getenv("POSTGRES_HOST"); val != "" {
		s.PostgresHost = val
		s.sources["postgres_host"] = "environment"
	}
	if val := os.Getenv("POSTGRES_PORT"); val != "" {
		s.PostgresPort = val
		s.sources["postgres_port"] = "environment"
	}
	if val := os.Getenv("BIND_ADDRESS"); val != "" {
		s.BindAddress = val
		s.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("PORT"); val != "" {
		s.Port = val
		s.sources["port"] = "environment"
	}
	if val := os.Getenv("STATIC_ROOT"); val != "" {
		s.StaticRoot = val
		s.sources["static_root"] = "environment"
	}
	if val := os.Getenv("STATIC_URL"); val != "" {
		s.StaticURL = val
		s.sources["static_url"] = "environment"
	}
	if val := os.Getenv("SESSION_COOKIE_AGE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			s.SessionCookieAge = i
			s.sources["session_cookie_age"] = "environment"
		}
	}
	if val := os.Getenv("AUTH_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			s.AuthTokenTTL = i
			s.sources["auth_token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		s.LogLevel = strings.ToLower(val)
		s.sources["log_level"] = "environment"
	}
}

// SettingsFilePath returns the path to the settings file
func (s *Settings) SettingsFilePath() string {
	return s.settingsFilePath
}

// Source returns the source of a settings attribute
func (s *Settings) Source(name string) string {
	if s.sources == nil {
		return "default"
	}
	if src, ok := s.sources[name]; ok {
		return src
	}
	return "default"
}

// Addr returns the listen address for the HTTP server
func (s *Settings) Addr() string {
	return s.BindAddress + ":" + s.Port
}

// DatabaseDSN returns the database connection string. DATABASE_URL wins
// when set; otherwise the DSN is assembled from the POSTGRES_* parts.
func (s *Settings) DatabaseDSN() string {
	if s.DatabaseURL != "" {
		return s.DatabaseURL
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   s.PostgresHost + ":" + s.PostgresPort,
		Path:   "/" + s.PostgresDB,
	}
	if s.PostgresPassword != "" {
		u.User = url.UserPassword(s.PostgresUser, s.PostgresPassword)
	} else {
		u.User = url.User(s.PostgresUser)
	}
	q := url.Values{}
	q.Set("sslmode", "disable")
	u.RawQuery = q.Encode()
	return u.String()
}

// SessionTTL returns the session lifetime as a duration
func (s *Settings) SessionTTL() time.Duration {
	return time.Duration(s.SessionCookieAge) * time.Second
}

// TokenTTL returns the auth token lifetime as a duration
func (s *Settings) TokenTTL() time.Duration {
	return time.Duration(s.AuthTokenTTL) * time.Second
}

// HostAllowed reports whether the given Host header value may be served.
// The check is skipped entirely in debug mode.
func (s *Settings) HostAllowed(host string) bool {
	if s.Debug {
		return true
	}

	// Strip a port if present, leaving IPv6 literals intact
	if i := strings.LastIndex(host, ":"); i != -1 && !strings.Contains(host[i:], "]") {
		host = host[:i]
	}
	host = strings.ToLower(strings.TrimSuffix(host, "."))

	for _, pattern := range s.AllowedHosts {
		pattern = strings.ToLower(pattern)
		if pattern == "*" {
			return true
		}
		if strings.HasPrefix(pattern, ".") {
			if host == pattern[1:] || strings.HasSuffix(host, pattern) {
				return true
			}
			continue
		}
		if host == pattern {
			return true
		}
	}
	return false
}

// Validate validates the settings for serving traffic
func (s *Settings) Validate() error {
	if s.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY environment variable is required")
	}
	if !s.Debug && len(s.SecretKey) < MinSecretKeyLength {
		return fmt.Errorf("SECRET_KEY must be at least %d characters outside debug mode", MinSecretKeyLength)
	}
	if !s.Debug && len(s.AllowedHosts) == 0 {
		return fmt.Errorf("ALLOWED_HOSTS must not be empty when DEBUG is false")
	}
	if _, err := strconv.Atoi(s.Port); err != nil {
		return fmt.Errorf("invalid port: %s", s.Port)
	}
	if _, err := strconv.Atoi(s.PostgresPort); err != nil {
		return fmt.Errorf("invalid POSTGRES_PORT: %s", s.PostgresPort)
	}
	if s.SessionCookieAge <= 0 {
		return fmt.Errorf("session_cookie_age must be positive")
	}
	if s.AuthTokenTTL <= 0 {
		return fmt.Errorf("auth_token_ttl must be positive")
	}
	return nil
}

// Attributes returns all settings attributes with their values and sources
func (s *Settings) Attributes() []Attribute {
	return []Attribute{
		{Name: "debug", Value: strconv.FormatBool(s.Debug), Source: s.Source("debug")},
		{Name: "allowed_hosts", Value: strings.Join(s.AllowedHosts, ","), Source: s.Source("allowed_hosts")},
		{Name: "environment", Value: s.Environment.String(), Source: s.Source("environment")},
		{Name: "bind_address", Value: s.BindAddress, Source: s.Source("bind_address")},
		{Name: "port", Value: s.Port, Source: s.Source("port")},
		{Name: "static_root", Value: s.StaticRoot, Source: s.Source("static_root")},
		{Name: "static_url", Value: s.StaticURL, Source: s.Source("static_url")},
		{Name: "session_cookie_age", Value: strconv.Itoa(s.SessionCookieAge), Source: s.Source("session_cookie_age")},
		{Name: "auth_token_ttl", Value: strconv.Itoa(s.AuthTokenTTL), Source: s.Source("auth_token_ttl")},
		{Name: "log_level", Value: s.LogLevel, Source: s.Source("log_level")},
		{Name: "postgres_db", Value: s.PostgresDB, Source: s.Source("postgres_db")},
		{Name: "postgres_user", Value: s.PostgresUser, Source: s.Source("postgres_user")},
		{Name: "postgres_host", Value: s.PostgresHost, Source: s.Source("postgres_host")},
		{Name: "postgres_port", Value: s.PostgresPort, Source: s.Source("postgres_port")},
	}
}

// FormatText returns a text representation of the settings
func (s *Settings) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Settings file: %s\n\n", s.settingsFilePath))
	sb.WriteString(fmt.Sprintf("%-25s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-25s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range s.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-25s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the settings
func (s *Settings) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"settings_file": s.settingsFilePath,
		"attributes":    s.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
