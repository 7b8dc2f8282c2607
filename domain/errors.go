package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every error raised before a snippet
	// leaves the machine because of missing or invalid settings.
	ErrConfiguration = errors.New("configuration error")

	// ErrMissingAPIKey indicates an empty or placeholder API key.
	ErrMissingAPIKey = configError("Please enter a valid API key!")

	// ErrMissingPasteURL indicates the paste endpoint is not configured.
	ErrMissingPasteURL = configError("Please enter a valid paste url!")

	// ErrEmptySnippet indicates there was nothing to upload.
	ErrEmptySnippet = errors.New("snippet cannot be empty")
)

type configErr struct {
	msg string
}

func configError(msg string) error {
	return &configErr{msg: msg}
}

func (e *configErr) Error() string { return e.msg }

func (e *configErr) Is(target error) bool { return target == ErrConfiguration }

// TransportError wraps an I/O failure during the upload POST.
// Error() returns the underlying message unchanged.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a final response outside the 2xx range.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("paste service returned %d", e.Code)
	}
	return fmt.Sprintf("paste service returned %d: %s", e.Code, e.Body)
}
