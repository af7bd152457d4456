package simulated

import (
	"context"
	"time"

	"github.com/vipmudancas/mirante/internal/core/domain"
)

// DefaultMimeType is used when an upload does not declare its type.
const DefaultMimeType = "application/pdf"

// Drive simulates document uploads.
type Drive struct {
	now func() time.Time
}

func (d *Drive) Upload(_ context.Context, in domain.DriveUpload) (*domain.DriveFile, error) {
	mime := in.MimeType
	if mime == "" {
		mime = DefaultMimeType
	}
	return &domain.DriveFile{
		ID:             newID("file"),
		Name:           in.Name,
		MimeType:       mime,
		WebViewLink:    "https://drive.google.com/file/d/exemplo/view",
		WebContentLink: "https://drive.google.com/uc?id=exemplo",
		CreatedTime:    d.now(),
	}, nil
}
