package dto

import (
	"time"

	"pdf-evidence-be/pkg/processing"
)

type GenerateEssayRequest struct {
	// Topic is optional; an omitted topic falls back to the configured
	// default prompt.
	Topic            string `json:"topic"`
	WordCount        int    `json:"word_count" validate:"omitempty,min=100,max=5000"`
	IncludeCitations bool   `json:"include_citations"`
}

type GenerateEssayResponse struct {
	Structure *processing.EssayStructure `json:"structure"`
}

// ShowEssayResponse returns the draft with body paragraphs resolved through
// the stored display order.
type ShowEssayResponse struct {
	Structure      *processing.EssayStructure `json:"structure"`
	ParagraphOrder []int                      `json:"paragraph_order"`
	IsGenerating   bool                       `json:"is_generating"`
	UpdatedAt      *time.Time                 `json:"updated_at"`
}

type ReorderParagraphsRequest struct {
	FromIndex int `json:"from_index" validate:"min=0"`
	ToIndex   int `json:"to_index" validate:"min=0"`
}

type ReorderParagraphsResponse struct {
	ParagraphOrder []int `json:"paragraph_order"`
}

type ClearEssayResponse struct {
	Cleared bool `json:"cleared"`
}
