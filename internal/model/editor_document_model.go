package model

import (
	"time"

	"github.com/google/uuid"
)

type EditorDocument struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientId  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Content   string    `gorm:"type:text"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (EditorDocument) TableName() string {
	return "editor_documents"
}
