// Package clipboard copies snippet URLs to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Service implements app.Clipboard using github.com/atotto/clipboard.
type Service struct{}

// NewService creates a clipboard Service.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard.
func (s *Service) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard unavailable: install xclip, xsel or wl-clipboard")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
