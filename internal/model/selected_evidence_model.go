package model

import (
	"time"

	"github.com/google/uuid"
)

// SelectedEvidence persists the composition selection. RawTextHash exists
// only to keep the uniqueness index within btree limits; identity comparisons
// in code use the full (document_name, raw_text) pair.
type SelectedEvidence struct {
	Id                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientId              uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_selection_identity"`
	DocumentName          string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_selection_identity"`
	RawTextHash           string    `gorm:"type:char(32);not null;uniqueIndex:idx_selection_identity"`
	FileName              string    `gorm:"type:varchar(255)"`
	EssayTopic            string    `gorm:"type:text"`
	RawText               string    `gorm:"type:text;not null"`
	Category              string    `gorm:"type:varchar(128)"`
	Reasoning             string    `gorm:"type:text"`
	Strength              string    `gorm:"type:varchar(32)"`
	StrengthJustification string    `gorm:"type:text"`
	RelevanceScore        float64
	CreatedAt             time.Time `gorm:"autoCreateTime"`
}

func (SelectedEvidence) TableName() string {
	return "selected_evidence"
}
