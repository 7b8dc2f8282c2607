// Package browser opens snippet URLs in the default web browser.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Opener implements app.Browser with the platform's URL opener.
type Opener struct {
	goos  string
	start func(name string, args ...string) error
}

// NewOpener creates an Opener for the running platform.
func NewOpener() *Opener {
	return &Opener{
		goos: runtime.GOOS,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// Open launches rawURL. Only absolute http(s) URLs are accepted.
func (o *Opener) Open(rawURL string) error {
	if !IsSafeExternalURL(rawURL) {
		return fmt.Errorf("refusing to open %q: not an http(s) URL", rawURL)
	}
	name, args := openCommand(o.goos, rawURL)
	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}

// IsSafeExternalURL reports whether raw is an absolute http or https URL.
func IsSafeExternalURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}

func openCommand(goos, rawURL string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{rawURL}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	default:
		return "xdg-open", []string{rawURL}
	}
}
