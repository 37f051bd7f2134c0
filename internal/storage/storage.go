package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"digiraksha/internal/config"
)

const (
	BucketProfilePhotos  = "profile-photos"
	BucketIncidentPhotos = "incident-photos"
	BucketMissingPhotos  = "missing-person-photos"
	BucketCommunityPhoto = "community-photos"

	defaultExtension = "jpg"
	cacheControl     = "max-age=3600"
)

// Buckets lists every bucket the service writes to.
var Buckets = []string{
	BucketProfilePhotos,
	BucketIncidentPhotos,
	BucketMissingPhotos,
	BucketCommunityPhoto,
}

// Object is an upload payload. Body must be seekable so it can be sniffed
// before the upload and re-read by request signing.
type Object struct {
	Body        io.ReadSeeker
	Size        int64
	FileName    string
	ContentType string
}

type Storage interface {
	// Upload stores obj under folder/<uuid>.<ext> in bucket and returns its public URL.
	Upload(ctx context.Context, obj Object, bucket, folder string) (string, error)
	DeleteFile(ctx context.Context, bucket, objectPath string) error
	EnsureBucketsExist(ctx context.Context) error
	FileURL(bucket, objectPath string) string
}

// New builds the storage driver selected by STORAGE_DRIVER.
func New(cfg *config.Config) (Storage, error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case "", "minio":
		return NewMinioStorage(cfg.Storage, cfg.StoragePublicURL())
	case "s3":
		return NewS3Storage(cfg.Storage, cfg.StoragePublicURL())
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Extension returns the lower-cased extension of fileName without the dot,
// or jpg when there is none.
func Extension(fileName string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	if ext == "" {
		return defaultExtension
	}
	return ext
}

var segmentReplacer = strings.NewReplacer("/", "_", "\\", "_")

// FolderSegment turns a client-supplied value into a single folder segment.
func FolderSegment(value string) string {
	return segmentReplacer.Replace(strings.TrimSpace(value))
}

// ObjectName generates a collision-resistant object path inside folder.
// Empty, "." and ".." segments of folder are dropped so the result never
// leaves it.
func ObjectName(folder, fileName string) string {
	segments := []string{}
	for _, segment := range strings.Split(folder, "/") {
		switch segment {
		case "", ".", "..":
			continue
		}
		segments = append(segments, segment)
	}
	segments = append(segments, uuid.New().String()+"."+Extension(fileName))
	return path.Join(segments...)
}

func publicURL(base, bucket, objectPath string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + strings.TrimLeft(objectPath, "/")
}

func contentTypeOf(obj Object) string {
	if obj.ContentType != "" {
		return obj.ContentType
	}
	return "application/octet-stream"
}
