package domain

import "strings"

// PlaceholderAPIKey is the value shipped in the sample settings file.
// It is never a usable credential.
const PlaceholderAPIKey = "APIKEYGOESHERE"

// UploadRequest is everything needed for one snippet upload.
type UploadRequest struct {
	TextParts   []string // Selected regions in order, or the whole document
	Filename    string   // Base name of the originating file, may be empty
	APIKey      string
	EndpointURL string
}

// Validate reports the first configuration problem without touching the network.
func (r UploadRequest) Validate() error {
	key := strings.TrimSpace(r.APIKey)
	if key == "" || key == PlaceholderAPIKey {
		return ErrMissingAPIKey
	}
	if strings.TrimSpace(r.EndpointURL) == "" {
		return ErrMissingPasteURL
	}
	if len(r.TextParts) == 0 {
		return ErrEmptySnippet
	}
	return nil
}

// UploadResult is the outcome of a single upload.
type UploadResult struct {
	URL string // Final URL of the created snippet
	Err error
}

// Succeeded is true iff a URL was resolved and no error occurred.
func (r UploadResult) Succeeded() bool {
	return r.Err == nil && r.URL != ""
}

// ErrorMessage returns the failure reason, or "" on success.
func (r UploadResult) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
