package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	DefaultLocale      = "en-US"
	DefaultDownloadDir = "."
)

type Profile struct {
	BaseURL        string `json:"base_url"`
	SessionToken   string `json:"session_token,omitempty"`
	EmbeddingToken string `json:"embedding_token,omitempty"`
	DownloadDir    string `json:"download_dir,omitempty"`
	Locale         string `json:"locale,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	currentProfile *Profile
	env            Env
	path           string
}

func LoadConfig() (*Config, error) {
	var env Env
	if err := ParseEnv(&env); err != nil {
		return nil, err
	}

	configPath, err := getConfigPath(env.Home)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.env = env
	config.path = configPath

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

// IsValid reports whether there is a server to talk to.
func (c *Config) IsValid() bool {
	return c.BaseURL() != ""
}

func (c *Config) BaseURL() string {
	return c.pick(c.env.BaseURL, func(p *Profile) string { return p.BaseURL }, "")
}

func (c *Config) SessionToken() string {
	return c.pick(c.env.SessionToken, func(p *Profile) string { return p.SessionToken }, "")
}

func (c *Config) EmbeddingToken() string {
	return c.pick(c.env.EmbeddingToken, func(p *Profile) string { return p.EmbeddingToken }, "")
}

func (c *Config) DownloadDir() string {
	return c.pick(c.env.DownloadDir, func(p *Profile) string { return p.DownloadDir }, DefaultDownloadDir)
}

func (c *Config) Locale() string {
	return c.pick(c.env.Locale, func(p *Profile) string { return p.Locale }, DefaultLocale)
}

func (c *Config) HTTPTimeout() time.Duration {
	if c.env.HTTPTimeout <= 0 {
		return 30 * time.Second
	}
	return c.env.HTTPTimeout
}

// Path is where the config file lives.
func (c *Config) Path() string {
	return c.path
}

// ProfileNames returns the profile names in sorted order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Use makes name the active profile.
func (c *Config) Use(name string) error {
	profile, exists := c.Profiles[name]
	if !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	c.currentProfile = &profile
	return nil
}

func (c *Config) pick(override string, field func(*Profile) string, fallback string) string {
	if override != "" {
		return override
	}
	if c.currentProfile != nil {
		if v := field(c.currentProfile); v != "" {
			return v
		}
	}
	return fallback
}

func getConfigPath(home string) (string, error) {
	// Use DICTPANEL_HOME if set, otherwise use user's home directory
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		home = homeDir
	}
	return filepath.Join(home, ".dictpanel", "config.json"), nil
}

func loadConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return createDefaultConfig(configPath)
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			"default": {Locale: DefaultLocale},
		},
		ActiveProfile: "default",
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}
	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	if c.path == "" {
		configPath, err := getConfigPath(c.env.Home)
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		c.path = configPath
	}
	return saveConfig(c, c.path)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// fall back to the first profile by name
		c.ActiveProfile = c.ProfileNames()[0]
		profile = c.Profiles[c.ActiveProfile]
	}

	c.currentProfile = &profile
	return nil
}
