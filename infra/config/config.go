package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"

	"github.com/CrestNiraj12/glue/infra/auth"
)

// Notifier variants accepted by the "notifier" setting.
const (
	NotifierAuto    = "auto"
	NotifierDesktop = "desktop"
	NotifierDialog  = "dialog"
	NotifierStatus  = "status"
)

// Config holds application-level configuration. It is read once at startup
// and passed by value; nothing consults the environment after Load.
type Config struct {
	APIKey             string `env:"GLUE_API_KEY"`
	APIKeyFile         string `env:"GLUE_API_KEY_FILE"` // Read when APIKey is empty
	PasteURL           string `env:"GLUE_PASTE_URL"`    // e.g. "https://glue.example/api/snippets"
	OpenInBrowser      bool   `env:"GLUE_OPEN_IN_BROWSER"`
	NotifyOnSuccess    bool   `env:"GLUE_NOTIFY_ON_SUCCESS"`
	NotifyOnError      bool   `env:"GLUE_NOTIFY_ON_ERROR"`
	SaveToClipboard    bool   `env:"GLUE_SAVE_TO_CLIPBOARD"`
	NotificationSounds bool   `env:"GLUE_NOTIFICATION_SOUNDS"`
	Notifier           string `env:"GLUE_NOTIFIER"`
	StateDir           string `env:"GLUE_STATE_DIR"` // Log directory
}

// FromSettings builds a Config from a Settings view.
func FromSettings(s Settings) Config {
	return Config{
		APIKey:             s.GetString(KeyAPIKey),
		APIKeyFile:         s.GetString(KeyAPIKeyFile),
		PasteURL:           s.GetString(KeyPasteURL),
		OpenInBrowser:      s.GetBool(KeyOpenInBrowser),
		NotifyOnSuccess:    s.GetBool(KeyNotifyOnSuccess),
		NotifyOnError:      s.GetBool(KeyNotifyOnError),
		SaveToClipboard:    s.GetBool(KeySaveToClipboard),
		NotificationSounds: s.GetBool(KeyNotificationSounds),
		Notifier:           s.GetString(KeyNotifier),
	}
}

// DefaultSettingsPath returns $GLUE_CONFIG or ~/.config/glue/settings.json.
func DefaultSettingsPath() (string, error) {
	if p := os.Getenv("GLUE_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, "glue", "settings.json"), nil
}

// Load reads configuration with increasing precedence from built-in
// defaults, the JSON settings file at path and GLUE_* environment variables.
// An empty path means DefaultSettingsPath.
//
//	GLUE_API_KEY        API key for the paste service
//	GLUE_API_KEY_FILE   File holding the API key, used when no key is set
//	GLUE_PASTE_URL      Snippet upload endpoint
//	GLUE_NOTIFIER       auto | desktop | dialog | status
//	GLUE_STATE_DIR      Log directory (default: <user cache dir>/glue)
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultSettingsPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	settings, err := LoadSettings(path)
	if err != nil {
		return Config{}, err
	}
	cfg := FromSettings(settings)

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" && cfg.APIKeyFile != "" {
		key, err := auth.NewFileKeyProvider(cfg.APIKeyFile).APIKey()
		if err != nil {
			return Config{}, err
		}
		cfg.APIKey = key
	}
	cfg.PasteURL = strings.TrimSpace(cfg.PasteURL)
	if cfg.PasteURL != "" {
		parsed, err := url.Parse(cfg.PasteURL)
		if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return Config{}, fmt.Errorf("invalid paste_url: must be an absolute http(s) URL")
		}
	}

	cfg.Notifier = strings.ToLower(strings.TrimSpace(cfg.Notifier))
	switch cfg.Notifier {
	case "":
		cfg.Notifier = NotifierAuto
	case NotifierAuto, NotifierDesktop, NotifierDialog, NotifierStatus:
	default:
		return Config{}, fmt.Errorf("invalid notifier %q: want auto, desktop, dialog or status", cfg.Notifier)
	}

	if cfg.StateDir == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine cache directory: %w", err)
		}
		cfg.StateDir = filepath.Join(dir, "glue")
	}

	return cfg, nil
}
