package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/CrestNiraj12/glue/domain"
	"github.com/CrestNiraj12/glue/infra/config"
)

// Deps holds everything Glue needs. Plain struct, not a DI container.
type Deps struct {
	Config    config.Config
	Uploader  SnippetUploader
	Clipboard Clipboard
	Browser   Browser
	Status    Notifier // Quiet channel: status line
	Popup     Notifier // Attention channel: desktop notification or dialog
	Log       *slog.Logger
}

// Glue runs the paste command: upload, then clipboard, notification and browser.
type Glue struct {
	deps Deps
}

// New creates a Glue. A nil logger discards records.
func New(deps Deps) *Glue {
	if deps.Log == nil {
		deps.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Glue{deps: deps}
}

// Upload sends parts as a new snippet using the configured key and endpoint.
func (g *Glue) Upload(ctx context.Context, parts []string, filename string) domain.UploadResult {
	id := uuid.NewString()
	log := g.deps.Log.With("upload_id", id)
	log.Info("uploading snippet", "parts", len(parts), "filename", filename, "endpoint", g.deps.Config.PasteURL)

	res := g.deps.Uploader.Upload(ctx, domain.UploadRequest{
		TextParts:   parts,
		Filename:    filename,
		APIKey:      g.deps.Config.APIKey,
		EndpointURL: g.deps.Config.PasteURL,
	})

	if res.Succeeded() {
		log.Info("snippet uploaded", "url", res.URL)
	} else {
		log.Error("upload failed", "error", res.ErrorMessage(), "configuration", errors.Is(res.Err, domain.ErrConfiguration))
	}
	return res
}

// Deliver performs the side effects for res. Failures of individual side
// effects do not stop the others; they are joined into the returned error.
func (g *Glue) Deliver(res domain.UploadResult) error {
	cfg := g.deps.Config

	if !res.Succeeded() {
		msg := res.ErrorMessage()
		if msg == "" {
			msg = "upload returned no URL"
		}
		n := g.deps.Status
		if cfg.NotifyOnError {
			n = g.deps.Popup
		}
		if err := n.Notify(msg, true); err != nil {
			return fmt.Errorf("reporting error: %w", err)
		}
		return nil
	}

	var errs []error
	if cfg.SaveToClipboard {
		if err := g.deps.Clipboard.Copy(res.URL); err != nil {
			errs = append(errs, fmt.Errorf("clipboard: %w", err))
		}
	}

	n := g.deps.Status
	if cfg.NotifyOnSuccess {
		n = g.deps.Popup
	}
	if err := n.Notify(res.URL, false); err != nil {
		errs = append(errs, fmt.Errorf("notify: %w", err))
	}

	if cfg.OpenInBrowser {
		if err := g.deps.Browser.Open(res.URL); err != nil {
			errs = append(errs, fmt.Errorf("browser: %w", err))
		}
	}

	for _, err := range errs {
		g.deps.Log.Warn("side effect failed", "error", err.Error())
	}
	return errors.Join(errs...)
}

// Run uploads and delivers in one blocking call.
func (g *Glue) Run(ctx context.Context, parts []string, filename string) (domain.UploadResult, error) {
	res := g.Upload(ctx, parts, filename)
	return res, g.Deliver(res)
}
