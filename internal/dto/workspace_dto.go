package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWorkspaceResponse struct {
	ClientId  uuid.UUID `json:"client_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ResetWorkspaceResponse struct {
	ClientId uuid.UUID `json:"client_id"`
}
