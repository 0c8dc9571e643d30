package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultMaxUploadBytes caps accepted files at 10MB, matching the backend's
// body limit.
const DefaultMaxUploadBytes = 10 * 1024 * 1024

// ValidationError rejects a file before it ever enters the pipeline. Rejected
// files are never tracked.
type ValidationError struct {
	FileName string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.FileName, e.Reason)
}

// ValidateFile checks extension and size ahead of tracking. maxBytes <= 0
// falls back to the default limit.
func ValidateFile(fileName string, size int64, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}

	if !strings.EqualFold(filepath.Ext(fileName), ".pdf") {
		return &ValidationError{FileName: fileName, Reason: "only PDF files are supported"}
	}
	if size > maxBytes {
		return &ValidationError{
			FileName: fileName,
			Reason:   fmt.Sprintf("file exceeds the %dMB upload limit", maxBytes/(1024*1024)),
		}
	}
	if size <= 0 {
		return &ValidationError{FileName: fileName, Reason: "file is empty"}
	}
	return nil
}
