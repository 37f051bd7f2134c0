package storage

import (
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"digiraksha/internal/apperr"
)

const notAnImageMessage = "File must be an image"

// ValidateImage checks the declared content type and sniffs the body. The
// body is rewound afterwards. It returns the detected MIME type.
func ValidateImage(body io.ReadSeeker, declaredType string) (string, error) {
	if !strings.HasPrefix(strings.ToLower(declaredType), "image/") {
		return "", apperr.Validation(notAnImageMessage)
	}

	detected, err := mimetype.DetectReader(body)
	if err != nil {
		return "", apperr.Validation("Could not read uploaded file")
	}

	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return "", apperr.Upstream("Could not read uploaded file", fmt.Errorf("rewind upload: %w", err))
	}

	for m := detected; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return detected.String(), nil
		}
	}

	return "", apperr.Validation(notAnImageMessage)
}
