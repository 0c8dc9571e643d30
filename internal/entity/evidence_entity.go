package entity

import (
	"time"

	"pdf-evidence-be/pkg/selection"

	"github.com/google/uuid"
)

// Evidence is one extracted snippet as served by the processing API.
type Evidence struct {
	DocumentName          string
	FileName              string
	EssayTopic            string
	RawText               string
	Category              string
	Reasoning             string
	Strength              string
	StrengthJustification string
	RelevanceScore        float64
}

// Key returns the composite identity used for selection membership.
func (e Evidence) Key() selection.Key {
	return selection.Key{DocumentName: e.DocumentName, RawText: e.RawText}
}

// SelectedEvidence is a persisted selection entry for one workspace.
type SelectedEvidence struct {
	Id        uuid.UUID
	ClientId  uuid.UUID
	Evidence  Evidence
	CreatedAt time.Time
}
