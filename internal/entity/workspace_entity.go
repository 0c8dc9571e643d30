package entity

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is one per-browser session, identified by the random client id
// issued once and reused by the browser.
type Workspace struct {
	Id        uuid.UUID
	CreatedAt time.Time
}
