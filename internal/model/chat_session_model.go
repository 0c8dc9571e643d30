package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientId    uuid.UUID `gorm:"type:uuid;not null;index"` // Workspace ownership for data isolation
	AssistantId string    `gorm:"type:varchar(255)"`
	ThreadId    string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
