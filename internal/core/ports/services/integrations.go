package services

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// Mailer delivers outbound email.
type Mailer interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}

// MediaStore hosts uploaded receipt files.
type MediaStore interface {
	// Upload copies the local file to the host under objectName.
	Upload(ctx context.Context, localPath, objectName, contentType string) (*domain.StoredAsset, error)
	Delete(ctx context.Context, objectName string) error
}
