package dto

import (
	"time"

	"github.com/google/uuid"

	"pdf-evidence-be/pkg/processing"
)

type UploadFilesResponse struct {
	Accepted []PipelineItemResponse `json:"accepted"`
	Rejected []FileRejection        `json:"rejected"`
}

type FileRejection struct {
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

type PipelineItemResponse struct {
	Id        uuid.UUID                 `json:"id"`
	FileName  string                    `json:"file_name"`
	Size      int64                     `json:"size"`
	Stage     string                    `json:"stage"`
	Progress  int                       `json:"progress"`
	URL       string                    `json:"url,omitempty"`
	Error     string                    `json:"error,omitempty"`
	Analysis  *processing.PaperAnalysis `json:"analysis,omitempty"`
	UpdatedAt time.Time                 `json:"updated_at"`
}

// ListFilesResponse merges the remote store listing with any in-flight
// pipeline items that have not reached the store yet.
type ListFilesResponse struct {
	Files []FileEntry `json:"files"`
}

type FileEntry struct {
	FileName  string                    `json:"file_name"`
	URL       string                    `json:"url,omitempty"`
	SizeBytes int64                     `json:"size_bytes,omitempty"`
	Stage     string                    `json:"stage"`
	Progress  int                       `json:"progress"`
	Error     string                    `json:"error,omitempty"`
	Analysis  *processing.PaperAnalysis `json:"analysis,omitempty"`
}

type DeleteFileResponse struct {
	FileName string `json:"file_name"`
}
