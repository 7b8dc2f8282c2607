package paste

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/CrestNiraj12/glue/domain"
)

// Uploader posts snippets to a Glue-compatible paste service.
// It implements app.SnippetUploader.
type Uploader struct {
	http *http.Client
}

// NewUploader creates an Uploader. A nil client means http.DefaultClient
// semantics: redirects are followed, no timeout.
func NewUploader(client *http.Client) *Uploader {
	if client == nil {
		client = &http.Client{}
	}
	return &Uploader{http: client}
}

// Upload validates req, posts it once and reports the final URL of the response.
func (u *Uploader) Upload(ctx context.Context, req domain.UploadRequest) domain.UploadResult {
	if err := req.Validate(); err != nil {
		return domain.UploadResult{Err: err}
	}

	body, err := EncodePayload(req.TextParts, req.APIKey, req.Filename)
	if err != nil {
		return domain.UploadResult{Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.EndpointURL, strings.NewReader(body))
	if err != nil {
		return domain.UploadResult{Err: fmt.Errorf("creating request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.http.Do(httpReq)
	if err != nil {
		return domain.UploadResult{Err: &domain.TransportError{Err: err}}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.UploadResult{Err: &domain.StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(data)),
		}}
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	// resp.Request is the last request in the redirect chain.
	finalURL := req.EndpointURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	return domain.UploadResult{URL: finalURL}
}
