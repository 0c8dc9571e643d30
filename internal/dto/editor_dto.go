package dto

import "time"

type SaveEditorDocumentRequest struct {
	Content string `json:"content" validate:"required"`
}

type ShowEditorDocumentResponse struct {
	Content   string     `json:"content"`
	UpdatedAt *time.Time `json:"updated_at"`
}
