package app

import (
	"context"

	"github.com/CrestNiraj12/glue/domain"
)

// SnippetUploader publishes a snippet to a paste service.
type SnippetUploader interface {
	// Upload performs one upload. Failures are reported in the result,
	// never retried.
	Upload(ctx context.Context, req domain.UploadRequest) domain.UploadResult
}
