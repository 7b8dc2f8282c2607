package paste

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Form field names understood by the paste service.
const (
	fieldSnippets = "snippets"
	fieldAPIKey   = "apiKey"
	fieldFilename = "filename"
	fieldRedirect = "redirect"
)

// Payload is the decoded form body of an upload.
type Payload struct {
	Snippets string // JSON array text, exactly as sent
	APIKey   string
	Filename string
	Redirect bool
}

// Parts decodes the snippets JSON array.
func (p Payload) Parts() ([]string, error) {
	var parts []string
	if err := json.Unmarshal([]byte(p.Snippets), &parts); err != nil {
		return nil, fmt.Errorf("parsing snippets: %w", err)
	}
	return parts, nil
}

// EncodePayload builds the form-urlencoded body for an upload.
func EncodePayload(parts []string, apiKey, filename string) (string, error) {
	snippets, err := encodeSnippets(parts)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set(fieldSnippets, snippets)
	form.Set(fieldAPIKey, apiKey)
	form.Set(fieldFilename, filename)
	form.Set(fieldRedirect, "true")
	return form.Encode(), nil
}

// DecodePayload parses a body produced by EncodePayload.
func DecodePayload(body string) (Payload, error) {
	form, err := url.ParseQuery(body)
	if err != nil {
		return Payload{}, fmt.Errorf("parsing form: %w", err)
	}
	return Payload{
		Snippets: form.Get(fieldSnippets),
		APIKey:   form.Get(fieldAPIKey),
		Filename: form.Get(fieldFilename),
		Redirect: form.Get(fieldRedirect) == "true",
	}, nil
}

// encodeSnippets marshals parts as a JSON array without HTML escaping,
// so code containing <, > or & is sent as written.
func encodeSnippets(parts []string) (string, error) {
	if parts == nil {
		parts = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(parts); err != nil {
		return "", fmt.Errorf("encoding snippets: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
