package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession pairs a workspace with its backend assistant and thread.
type ChatSession struct {
	Id          uuid.UUID
	ClientId    uuid.UUID
	AssistantId string
	ThreadId    string
	CreatedAt   time.Time
}

type ChatMessage struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Role      string // "user" | "assistant"
	Content   string
	CreatedAt time.Time
}
