package dto

import "pdf-evidence-be/pkg/processing"

type ListEvidenceResponse struct {
	Documents []EvidenceDocument `json:"documents"`
	Selected  int                `json:"selected"`
}

// EvidenceDocument groups evidence records by source document.
type EvidenceDocument struct {
	DocumentName string              `json:"document_name"`
	Records      []EvidenceWithState `json:"records"`
}

type EvidenceWithState struct {
	processing.EvidenceRecord
	Selected bool `json:"selected"`
}

type SelectEvidenceRequest struct {
	DocumentName string `json:"document_name" validate:"required"`
	RawText      string `json:"raw_text" validate:"required"`
}

type ToggleEvidenceRequest struct {
	DocumentName string `json:"document_name" validate:"required"`
	RawText      string `json:"raw_text" validate:"required"`
}

type SelectionStateResponse struct {
	Selected bool `json:"selected"`
	Count    int  `json:"count"`
}

type ClearSelectionResponse struct {
	Cleared int `json:"cleared"`
}
