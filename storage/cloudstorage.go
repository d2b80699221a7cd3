package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/plateformprojob/backend/config"
)

// MediaClient wraps Google Cloud Storage operations for uploaded CVs
// and company logos. Uploaded objects are publicly fetchable under
// https://storage.googleapis.com/<bucket>/<object>.
type MediaClient struct {
	client     *storage.Client
	bucketName string
}

// NewMediaClient creates a new Cloud Storage client
func NewMediaClient(ctx context.Context, cfg *config.Config) (*MediaClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &MediaClient{
		client:     client,
		bucketName: cfg.MediaBucketName,
	}, nil
}

// Close closes the Cloud Storage client
func (m *MediaClient) Close() error {
	return m.client.Close()
}

// PublicURL returns the public URL for an object in the media bucket
func (m *MediaClient) PublicURL(objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", m.bucketName, objectName)
}

// Upload writes content under objectName and returns the public URL.
// A single attempt: any network failure surfaces to the caller.
func (m *MediaClient) Upload(ctx context.Context, objectName, contentType string, content []byte) (string, error) {
	obj := m.client.Bucket(m.bucketName).Object(objectName)

	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType

	if _, err := wc.Write(content); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return m.PublicURL(objectName), nil
}

// Download reads the content of an object previously uploaded to the
// media bucket, addressed by its public URL.
func (m *MediaClient) Download(ctx context.Context, publicURL string) ([]byte, error) {
	objectName, err := m.objectNameFromURL(publicURL)
	if err != nil {
		return nil, err
	}

	rc, err := m.client.Bucket(m.bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}

	return data, nil
}

// Delete removes an object from the media bucket by storage identifier
func (m *MediaClient) Delete(ctx context.Context, objectName string) error {
	if err := m.client.Bucket(m.bucketName).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// Owns reports whether the URL points into this client's bucket
func (m *MediaClient) Owns(publicURL string) bool {
	_, err := m.objectNameFromURL(publicURL)
	return err == nil
}

func (m *MediaClient) objectNameFromURL(publicURL string) (string, error) {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", m.bucketName)
	if !strings.HasPrefix(publicURL, prefix) {
		return "", fmt.Errorf("URL %q is not in bucket %s", publicURL, m.bucketName)
	}
	return strings.TrimPrefix(publicURL, prefix), nil
}
