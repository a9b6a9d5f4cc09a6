// Package media stores receipt images in a Google Cloud Storage bucket.
package media

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"
)

const defaultPublicBaseURL = "https://storage.googleapis.com"

// GCSStore uploads objects to one bucket and serves them from its public URL.
type GCSStore struct {
	bucket        string
	objects       *storage.ObjectsService
	publicBaseURL string
}

var _ portssvc.MediaStore = (*GCSStore)(nil)

// NewGCSStore creates a store for bucket. With no options the client uses
// application default credentials.
func NewGCSStore(ctx context.Context, bucket string, opts ...option.ClientOption) (*GCSStore, error) {
	if bucket == "" {
		return nil, errors.New("media bucket name is required")
	}
	svc, err := storage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSStore{
		bucket:        bucket,
		objects:       storage.NewObjectsService(svc),
		publicBaseURL: defaultPublicBaseURL,
	}, nil
}

// WithPublicBaseURL overrides the host used to build object URLs.
func (s *GCSStore) WithPublicBaseURL(base string) *GCSStore {
	s.publicBaseURL = strings.TrimRight(base, "/")
	return s
}

func (s *GCSStore) Upload(ctx context.Context, localPath, objectName, contentType string) (*domain.StoredAsset, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %s: %w", localPath, err)
	}
	defer f.Close()

	obj, err := s.objects.Insert(s.bucket, &storage.Object{Name: objectName, ContentType: contentType}).
		Media(f, googleapi.ContentType(contentType)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s to bucket %s: %w", objectName, s.bucket, err)
	}

	return &domain.StoredAsset{ObjectName: obj.Name, URL: s.objectURL(obj.Name)}, nil
}

// Delete removes an object. A missing object is not an error.
func (s *GCSStore) Delete(ctx context.Context, objectName string) error {
	err := s.objects.Delete(s.bucket, objectName).Context(ctx).Do()
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s from bucket %s: %w", objectName, s.bucket, err)
	}
	return nil
}

func (s *GCSStore) objectURL(objectName string) string {
	segments := strings.Split(objectName, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.publicBaseURL + "/" + s.bucket + "/" + strings.Join(segments, "/")
}
