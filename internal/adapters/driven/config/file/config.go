// Package file provides the TOML-based configuration store.
// Configuration lives in a TOML file within the deskboard config
// directory, with credentials optionally supplied via environment
// variables.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/calmskies/deskboard/internal/core/domain"
)

// Environment variables that override the [google] section. They are
// typically supplied through a .env file next to the binary.
const (
	envGoogleClientID     = "DESKBOARD_GOOGLE_CLIENT_ID"
	envGoogleClientSecret = "DESKBOARD_GOOGLE_CLIENT_SECRET"
)

// Location is a named coordinate pair for the weather panel.
type Location struct {
	Name      string  `toml:"name"`
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
}

// GoogleConfig holds the user's OAuth app registration for the
// calendar feature. Both fields empty means the feature is not
// configured.
type GoogleConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
}

// WeatherConfig selects the locations shown on the dashboard.
type WeatherConfig struct {
	Locations []Location `toml:"locations"`
}

// Config is the deskboard configuration.
type Config struct {
	DataDir string        `toml:"data_dir"`
	Weather WeatherConfig `toml:"weather"`
	Google  GoogleConfig  `toml:"google"`
}

// ConfigStore loads and persists the deskboard configuration file.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	config   Config
}

// NewConfigStore creates a TOML-based config store.
// If configDir is empty, defaults to ~/.deskboard/config.toml.
// A missing file is not an error; defaults are used instead.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".deskboard")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		config:   DefaultConfig(),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Weather: WeatherConfig{
			Locations: []Location{
				{Name: "Lisbon", Latitude: 38.7169, Longitude: -9.1399},
				{Name: "Munich", Latitude: 48.1374, Longitude: 11.5755},
			},
		},
	}
}

// Load reads the configuration from disk and applies environment
// overrides. A missing file leaves the defaults in place.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.applyEnvOverrides()
			return nil
		}
		return err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse %s: %w", s.filePath, err)
	}
	if len(cfg.Weather.Locations) == 0 {
		cfg.Weather.Locations = DefaultConfig().Weather.Locations
	}

	s.config = cfg
	s.applyEnvOverrides()
	return nil
}

// applyEnvOverrides lets environment variables take precedence over
// the [google] section (caller must hold lock).
func (s *ConfigStore) applyEnvOverrides() {
	if v := os.Getenv(envGoogleClientID); v != "" {
		s.config.Google.ClientID = v
	}
	if v := os.Getenv(envGoogleClientSecret); v != "" {
		s.config.Google.ClientSecret = v
	}
}

// Save persists the current configuration to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(s.config)
	if err != nil {
		return err
	}

	// Restricted permissions: the file may hold OAuth credentials.
	return os.WriteFile(s.filePath, data, 0600)
}

// Config returns a copy of the current configuration.
func (s *ConfigStore) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// SetGoogle updates the OAuth app registration and persists it.
func (s *ConfigStore) SetGoogle(clientID, clientSecret string) error {
	s.mu.Lock()
	s.config.Google.ClientID = clientID
	s.config.Google.ClientSecret = clientSecret
	s.mu.Unlock()
	return s.Save()
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// Locations converts the configured weather locations to domain values.
func (c Config) Locations() []domain.Location {
	locations := make([]domain.Location, 0, len(c.Weather.Locations))
	for _, l := range c.Weather.Locations {
		locations = append(locations, domain.Location{
			Name:      l.Name,
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
		})
	}
	return locations
}

// GoogleConfigured reports whether the calendar feature has an OAuth
// app registration to work with.
func (c Config) GoogleConfigured() bool {
	return c.Google.ClientID != "" && c.Google.ClientSecret != ""
}
