package model

import (
	"time"

	"github.com/google/uuid"
)

type Workspace struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Workspace) TableName() string {
	return "workspaces"
}
