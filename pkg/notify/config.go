package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the dispatcher settings.
type Config struct {
	// Enabled turns delivery on or off; a disabled dispatcher drops every message
	Enabled bool `json:"enabled"`
	// AppName is reported to the host notification service as the sender
	AppName string `json:"app_name"`
	// Sound plays the platform default sound with each notification
	Sound bool `json:"sound"`
	// IconPath is an optional image shown next to the notification
	IconPath string `json:"icon_path"`

	// Authorization styles requested at startup
	RequestAlert bool `json:"request_alert"`
	RequestSound bool `json:"request_sound"`
	RequestBadge bool `json:"request_badge"`
}

const DefaultAppName = "lanFileSharer"

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		AppName:      DefaultAppName,
		Sound:        true,
		RequestAlert: true,
		RequestSound: true,
		RequestBadge: true,
	}
}

// Validate checks if the configuration values are valid
func (c Config) Validate() error {
	if strings.TrimSpace(c.AppName) == "" {
		return errors.New("app_name cannot be empty")
	}
	if !c.RequestAlert && !c.RequestSound && !c.RequestBadge {
		return errors.New("at least one of request_alert, request_sound, request_badge must be set")
	}
	if c.IconPath != "" {
		info, err := os.Stat(c.IconPath)
		if err != nil {
			return fmt.Errorf("icon_path %q: %w", c.IconPath, err)
		}
		if info.IsDir() {
			return fmt.Errorf("icon_path %q is a directory", c.IconPath)
		}
	}
	return nil
}

// AuthOptions returns the authorization styles to request from the platform.
func (c Config) AuthOptions() AuthOptions {
	return AuthOptions{Alert: c.RequestAlert, Sound: c.RequestSound, Badge: c.RequestBadge}
}

// LoadConfig reads a JSON or YAML (.yaml, .yml) file on top of DefaultConfig.
// Unknown fields are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(path, data)
}

// ParseConfig decodes data using the format implied by path's extension.
func ParseConfig(path string, data []byte) (Config, error) {
	cfg := DefaultConfig()

	jsonData, err := toJSON(path, data)
	if err != nil {
		return Config{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", filepath.Base(path), err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// toJSON converts YAML input to JSON so both formats share the strict decoder.
func toJSON(path string, data []byte) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return data, nil
	}

	var v map[string]any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if v == nil {
		v = map[string]any{}
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yaml->json marshal: %w", err)
	}
	return out, nil
}
