package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Setting keys, shared by the settings file and Settings lookups.
const (
	KeyAPIKey             = "api_key"
	KeyAPIKeyFile         = "api_key_file"
	KeyPasteURL           = "paste_url"
	KeyOpenInBrowser      = "open_in_browser"
	KeyNotifyOnSuccess    = "notify_on_success"
	KeyNotifyOnError      = "notify_on_error"
	KeySaveToClipboard    = "save_to_clipboard"
	KeyNotificationSounds = "notification_sounds"
	KeyNotifier           = "notifier"
)

var defaults = map[string]any{
	KeyAPIKey:             "",
	KeyAPIKeyFile:         "",
	KeyPasteURL:           "",
	KeyOpenInBrowser:      true,
	KeyNotifyOnSuccess:    false,
	KeyNotifyOnError:      true,
	KeySaveToClipboard:    true,
	KeyNotificationSounds: false,
	KeyNotifier:           "auto",
}

// Settings is a read-only key/value view with defined defaults.
type Settings interface {
	GetString(key string) string
	GetBool(key string) bool
}

// MapSettings is a Settings backed by a decoded JSON object.
// Keys missing from the map, or holding a value of the wrong type,
// fall back to the package defaults.
type MapSettings map[string]any

// GetString returns the string value for key.
func (m MapSettings) GetString(key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	s, _ := defaults[key].(string)
	return s
}

// GetBool returns the boolean value for key.
func (m MapSettings) GetBool(key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	b, _ := defaults[key].(bool)
	return b
}

// LoadSettings reads a JSON settings file. A missing file yields an empty
// MapSettings (all defaults); a malformed one is an error.
func LoadSettings(path string) (MapSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return MapSettings{}, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	var m MapSettings
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	if m == nil {
		m = MapSettings{}
	}
	return m, nil
}
