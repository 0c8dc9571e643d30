package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EssayDraft struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientId       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Structure      datatypes.JSON `gorm:"type:jsonb"`
	ParagraphOrder datatypes.JSON `gorm:"type:jsonb"`
	IsGenerating   bool           `gorm:"not null;default:false"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

func (EssayDraft) TableName() string {
	return "essay_drafts"
}
