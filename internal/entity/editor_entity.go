package entity

import (
	"time"

	"github.com/google/uuid"
)

// EditorDocument is the free-form editor content blob for one workspace.
type EditorDocument struct {
	Id        uuid.UUID
	ClientId  uuid.UUID
	Content   string
	UpdatedAt *time.Time
}
