package service

import (
	"context"
	"strings"

	"digiraksha/internal/apperr"
	"digiraksha/internal/logger"
	"digiraksha/internal/storage"
)

// MediaPolicy decides what happens to a request when its photo upload fails.
type MediaPolicy int

const (
	// AbortOnFailure fails the whole request with an upstream error.
	AbortOnFailure MediaPolicy = iota
	// ContinueWithoutMedia logs a warning and persists the record without a photo.
	ContinueWithoutMedia
)

func (p MediaPolicy) String() string {
	if p == ContinueWithoutMedia {
		return "continue-without-media"
	}
	return "abort-on-failure"
}

// MediaOutcome is the result of an optional upload. The zero value means no
// file was attached.
type MediaOutcome struct {
	URL    string
	Failed bool
	Reason string
}

func (o MediaOutcome) Uploaded() bool {
	return o.URL != ""
}

// URLPtr returns the URL for a nullable column.
func (o MediaOutcome) URLPtr() *string {
	if o.URL == "" {
		return nil
	}
	url := o.URL
	return &url
}

type MediaUploader struct {
	storage storage.Storage
}

func NewMediaUploader(store storage.Storage) *MediaUploader {
	return &MediaUploader{storage: store}
}

// Validate rejects anything that is not an image. A nil file is valid.
func (m *MediaUploader) Validate(file *storage.Object) error {
	if file == nil {
		return nil
	}
	_, err := storage.ValidateImage(file.Body, file.ContentType)
	return err
}

// Upload stores file under bucket/folder and applies policy on failure. The
// file must already have passed Validate.
func (m *MediaUploader) Upload(ctx context.Context, file *storage.Object, bucket, folder string, policy MediaPolicy) (MediaOutcome, error) {
	if file == nil {
		return MediaOutcome{}, nil
	}

	url, err := m.storage.Upload(ctx, *file, bucket, folder)
	if err == nil {
		return MediaOutcome{URL: url}, nil
	}

	outcome := MediaOutcome{Failed: true, Reason: err.Error()}
	if policy == ContinueWithoutMedia {
		logger.FromContext(ctx).WithError(err).
			WithField("bucket", bucket).
			Warn("photo upload failed, continuing without photo")
		return outcome, nil
	}

	return outcome, apperr.Upstream("Failed to upload photo", err)
}

// Discard removes an uploaded object whose record could not be saved.
// Failures are only logged.
func (m *MediaUploader) Discard(ctx context.Context, bucket string, outcome MediaOutcome) {
	if !outcome.Uploaded() {
		return
	}

	objectPath := strings.TrimPrefix(outcome.URL, m.storage.FileURL(bucket, ""))
	if err := m.storage.DeleteFile(ctx, bucket, objectPath); err != nil {
		logger.FromContext(ctx).WithError(err).
			WithField("bucket", bucket).
			Warn("failed to remove orphaned photo")
	}
}
